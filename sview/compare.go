// File: compare.go
// Title: Comparison and Ordering
// Description: Implements content-based equality and total ordering over
//              views, with the absent view ordered before every buffer-backed
//              view.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package sview

import "bytes"

// Equal reports whether v and rhs hold equal visible text. Buffer identity
// is irrelevant: views built from equal text over different buffers compare
// equal. Two absent views are equal; an absent view never equals a
// buffer-backed view, not even an empty one.
func (v View) Equal(rhs View) bool {
	if v.buf == nil || rhs.buf == nil {
		return v.buf == nil && rhs.buf == nil
	}
	return bytes.Equal(v.window(), rhs.window())
}

// EqualString reports whether v is a present view whose window equals s.
// The absent view equals no string, including "".
func (v View) EqualString(s string) bool {
	if v.buf == nil {
		return false
	}
	return string(v.window()) == s
}

// Compare returns -1, 0 or +1 ordering v against rhs. Present views are
// ordered lexicographically by their visible windows; the absent view
// orders strictly before every present view and equal to another absent
// view. The ordering is total.
func (v View) Compare(rhs View) int {
	switch {
	case v.buf != nil && rhs.buf != nil:
		return bytes.Compare(v.window(), rhs.window())
	case v.buf == nil && rhs.buf == nil:
		return 0
	case v.buf == nil:
		return -1
	default:
		return 1
	}
}

// Less reports whether v orders before rhs; convenience for sorting.
func (v View) Less(rhs View) bool {
	return v.Compare(rhs) < 0
}
