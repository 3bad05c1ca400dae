// File: iter.go
// Title: Window Iteration
// Description: Implements forward and reverse iterators over a view's
//              visible window.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package sview

// Iterator walks the characters of a view's window in one direction. A
// view carries no cursor; every call to Iter or ReverseIter starts a fresh
// traversal.
//
// The iterator snapshots the window at creation, so it stays valid and
// finite even if the view is appended to mid-traversal.
type Iterator struct {
	data []byte
	next int
	cur  int
	rev  bool
}

// Iter returns a forward iterator over the visible window.
func (v View) Iter() *Iterator {
	return &Iterator{data: v.window(), next: 0, cur: -1}
}

// ReverseIter returns an iterator over the visible window from the last
// character to the first.
func (v View) ReverseIter() *Iterator {
	d := v.window()
	return &Iterator{data: d, next: len(d) - 1, cur: -1, rev: true}
}

// Next advances to the next character. It returns false once the traversal
// is exhausted.
func (it *Iterator) Next() bool {
	if it.rev {
		if it.next < 0 {
			return false
		}
		it.cur = it.next
		it.next--
		return true
	}
	if it.next >= len(it.data) {
		return false
	}
	it.cur = it.next
	it.next++
	return true
}

// Byte returns the character at the iterator's current position. Valid only
// after a Next call that returned true.
func (it *Iterator) Byte() byte {
	return it.data[it.cur]
}

// Index returns the window-relative position of the current character.
// Valid only after a Next call that returned true.
func (it *Iterator) Index() int {
	return it.cur
}
