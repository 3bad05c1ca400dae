// File: doc.go
// Title: Package Documentation for sview
// Description: Package sview provides a shared, memory-safe string view with
//              zero-copy slicing and copy-on-write growth.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

// Package sview provides a shared, memory-safe string view.
//
// A View is a window into a shared character buffer. It extends the classic
// non-owning string view with shared ownership of the underlying storage:
// slicing a View never copies, every View derived from the same origin keeps
// the buffer alive, and the buffer is reclaimed by the garbage collector once
// the last holder is gone. This makes it safe to pass windows into long-lived
// or dynamically produced text through deep call chains and long-lived data
// structures without copying on every hand-off and without risking a dangling
// reference when the producer goes out of scope.
//
// Overview
//
// Views are small values and are copied by plain assignment; a copy shares
// the buffer of its source. The zero View is the distinguished absent view:
// it is bound to no buffer and represents "no string", which is not the same
// thing as a buffer-backed empty string.
//
//	v := sview.New("abc 123")
//	head := v.Substr(0, 3)     // "abc", shares v's buffer, no copy
//	head.AppendString("foo")   // copy-on-write: v is untouched
//	fmt.Println(head, v)       // "abcfoo" "abc 123"
//
// Slicing
//
// Substr clamps rather than fails: an offset past the window yields a
// zero-length view at the window's end, and an over-long requested length is
// truncated to what remains. Slices of slices compose the way substring
// arithmetic suggests they should.
//
// Growth
//
// The append operations mutate through a pointer receiver. When the view's
// window spans the entire buffer, the new content is appended to the shared
// buffer in place; when the window is narrower, the visible bytes are copied
// into a fresh private buffer first, so content held by other views is never
// disturbed. The binary Concat operations always allocate and never mutate
// either operand.
//
// Comparison and hashing
//
// Equality, ordering and hashing look only at the visible window, never at
// buffer identity, so views built from equal text over different buffers are
// interchangeable. Hash is computed with xxhash and agrees with HashString
// and HashBytes, keeping views and plain strings substitutable as keys in
// the same table.
//
// Thread Safety
//
// Sharing a buffer across goroutines is safe: ownership bookkeeping is the
// garbage collector's. All read-only operations (Substr, comparison, hashing,
// iteration, Bytes) may run concurrently. The append operations are not
// synchronized; callers that mutate a view whose buffer is visible to other
// goroutines must serialize externally.
package sview
