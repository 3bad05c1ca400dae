// File: sview.go
// Title: Shared String View Core
// Description: Implements the View type: construction, window materialization,
//              indexed access, and the clamping Substr slicing algebra over a
//              shared character buffer.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package sview

// buffer is the shared character storage behind one or more views. Every
// view derived from the same origin holds the same *buffer; the garbage
// collector frees it when the last holder is gone.
type buffer struct {
	data []byte
}

// View is a window into a shared character buffer.
//
// The zero View is the absent view: bound to no buffer, length 0, distinct
// from a buffer-backed empty view. Views are copied by plain assignment;
// the copy shares the buffer of its source.
type View struct {
	buf *buffer
	off int
	n   int
}

// New builds a view over a fresh buffer holding a copy of s. The window
// spans the whole buffer.
func New(s string) View {
	return View{buf: &buffer{data: []byte(s)}, n: len(s)}
}

// FromBytes builds a view over a fresh buffer holding a copy of b. The
// caller keeps ownership of b; later changes to it are not visible through
// the view.
func FromBytes(b []byte) View {
	data := make([]byte, len(b))
	copy(data, b)
	return View{buf: &buffer{data: data}, n: len(data)}
}

// newFull wraps data in a fresh buffer with a full-span window. The caller
// must not retain data.
func newFull(data []byte) View {
	return View{buf: &buffer{data: data}, n: len(data)}
}

// IsZero reports whether v is the absent view, i.e. bound to no buffer.
// A buffer-backed view of length 0 is not absent.
func (v View) IsZero() bool {
	return v.buf == nil
}

// IsEmpty reports whether the view's window holds no characters. True for
// both the absent view and a buffer-backed empty view.
func (v View) IsEmpty() bool {
	return v.n == 0
}

// Len returns the number of characters visible through the window. The
// shared buffer may be longer.
func (v View) Len() int {
	return v.n
}

// window returns the visible bytes without copying. nil for the absent view.
func (v View) window() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf.data[v.off : v.off+v.n]
}

// Bytes returns the visible window as a byte slice without copying. The
// absent view yields an explicit empty slice. The result's capacity is
// clipped to the window, so appending to it cannot reach shared bytes
// beyond the window.
//
// The slice aliases the shared buffer. An append operation on any full-span
// view of the same buffer may rebind the storage, after which the slice
// keeps pointing at the old bytes; treat it like the borrowed pointer it is
// and re-materialize after mutation.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return []byte{}
	}
	return v.buf.data[v.off : v.off+v.n : v.off+v.n]
}

// String returns a copy of the visible window. The absent view yields "".
func (v View) String() string {
	return string(v.window())
}

// At returns the character at position i of the window.
//
// i must be in [0, Len()). The contract makes anything else a precondition
// violation; this implementation panics instead of reading adjacent buffer
// bytes, which is deliberately stricter than the raw window read.
func (v View) At(i int) byte {
	if i < 0 || i >= v.n {
		panic("sview: At index out of range")
	}
	return v.buf.data[v.off+i]
}

// Substr returns a view of at most n characters starting at offset off of
// the current window. The result shares the buffer; nothing is copied.
//
// Substr clamps instead of failing: an off beyond the window yields a
// zero-length view at the window's end, and an n larger than what remains
// is truncated. Negative arguments clamp to 0. Slicing the absent view
// yields the absent view.
func (v View) Substr(off, n int) View {
	if off < 0 {
		off = 0
	}
	if n < 0 {
		n = 0
	}
	end := v.off + v.n
	newOff := v.off + off
	if newOff > end || newOff < 0 { // second clause guards addition overflow
		newOff = end
	}
	newLen := end - newOff
	if n < newLen {
		newLen = n
	}
	return View{buf: v.buf, off: newOff, n: newLen}
}
