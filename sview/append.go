// File: append.go
// Title: Copy-on-Write Growth
// Description: Implements the mutating append operations with the full-span
//              in-place optimization, and the always-allocating binary
//              concatenation operations.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package sview

// Append appends rhs's visible window to v.
//
// When v's window spans its entire buffer, the bytes are appended to the
// shared buffer in place and v's window grows to match; the buffer growth is
// visible to every other holder of the same buffer, while their recorded
// windows keep addressing the original, unmoved bytes. When v's window is
// narrower, the window is copied into a fresh private buffer first and v
// rebinds to it, leaving all co-holders untouched.
//
// Appending a view to itself is safe. Appending to the absent view binds it
// to a fresh buffer, so it becomes present even when rhs is empty or absent.
//
// Append invalidates slices previously obtained from Bytes on v; see Bytes.
func (v *View) Append(rhs View) {
	v.appendBytes(rhs.window())
}

// AppendString appends s to v with the same copy-on-write behavior as
// Append.
func (v *View) AppendString(s string) {
	if v.tryAppendInPlace(len(s)) {
		v.buf.data = append(v.buf.data, s...)
		v.n = len(v.buf.data)
		return
	}
	data := make([]byte, 0, v.n+len(s))
	data = append(data, v.window()...)
	data = append(data, s...)
	*v = newFull(data)
}

// AppendByte appends a single character to v with the same copy-on-write
// behavior as Append.
func (v *View) AppendByte(c byte) {
	if v.tryAppendInPlace(1) {
		v.buf.data = append(v.buf.data, c)
		v.n = len(v.buf.data)
		return
	}
	data := make([]byte, 0, v.n+1)
	data = append(data, v.window()...)
	data = append(data, c)
	*v = newFull(data)
}

func (v *View) appendBytes(p []byte) {
	if v.tryAppendInPlace(len(p)) {
		// Self-append is fine here: the written region starts at the old
		// length, past the end of any window p can come from.
		v.buf.data = append(v.buf.data, p...)
		v.n = len(v.buf.data)
		return
	}
	data := make([]byte, 0, v.n+len(p))
	data = append(data, v.window()...)
	data = append(data, p...)
	*v = newFull(data)
}

// tryAppendInPlace reports whether v may grow its buffer in place. It binds
// the absent view to a fresh empty buffer first, so an append always leaves
// the view present.
func (v *View) tryAppendInPlace(extra int) bool {
	if v.buf == nil {
		v.buf = &buffer{data: make([]byte, 0, extra)}
		v.off, v.n = 0, 0
		return true
	}
	return v.off == 0 && v.n == len(v.buf.data)
}

// Concat returns a new view holding v's window followed by rhs's window.
// The result always lives in a fresh buffer; neither operand is mutated,
// full-span or not. The result is present even when both operands are
// absent.
func (v View) Concat(rhs View) View {
	data := make([]byte, 0, v.n+rhs.n)
	data = append(data, v.window()...)
	data = append(data, rhs.window()...)
	return newFull(data)
}

// ConcatString returns a new view holding v's window followed by s, with
// the same allocation behavior as Concat.
func (v View) ConcatString(s string) View {
	data := make([]byte, 0, v.n+len(s))
	data = append(data, v.window()...)
	data = append(data, s...)
	return newFull(data)
}
