// File: iter_test.go
// Title: Unit Tests for Window Iteration
// Description: Tests forward and reverse traversal order, restartability,
//              and behavior on empty and absent views.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial test implementation

package sview

import "testing"

func collect(it *Iterator) string {
	var out []byte
	for it.Next() {
		out = append(out, it.Byte())
	}
	return string(out)
}

func TestIterForward(t *testing.T) {
	tests := []struct {
		name string
		v    View
		want string
	}{
		{"whole buffer", New("abc"), "abc"},
		{"window", New("abcdef").Substr(2, 3), "cde"},
		{"empty", New(""), ""},
		{"absent", View{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.v.Iter()); got != tt.want {
				t.Errorf("forward traversal = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestIterReverse(t *testing.T) {
	tests := []struct {
		name string
		v    View
		want string
	}{
		{"whole buffer", New("abc"), "cba"},
		{"window", New("abcdef").Substr(2, 3), "edc"},
		{"empty", New(""), ""},
		{"absent", View{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.v.ReverseIter()); got != tt.want {
				t.Errorf("reverse traversal = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestIterRestartable(t *testing.T) {
	v := New("abc")

	if got := collect(v.Iter()); got != "abc" {
		t.Fatalf("first traversal = %q; want %q", got, "abc")
	}
	// A view carries no cursor; a second traversal starts fresh.
	if got := collect(v.Iter()); got != "abc" {
		t.Errorf("second traversal = %q; want %q", got, "abc")
	}
}

func TestIterIndex(t *testing.T) {
	v := New("abcdef").Substr(2, 3)

	it := v.Iter()
	wantIdx := 0
	for it.Next() {
		if it.Index() != wantIdx {
			t.Errorf("Index() = %d; want %d", it.Index(), wantIdx)
		}
		if it.Byte() != v.At(it.Index()) {
			t.Errorf("Byte() = %q; want %q", it.Byte(), v.At(it.Index()))
		}
		wantIdx++
	}

	rit := v.ReverseIter()
	wantIdx = v.Len() - 1
	for rit.Next() {
		if rit.Index() != wantIdx {
			t.Errorf("reverse Index() = %d; want %d", rit.Index(), wantIdx)
		}
		wantIdx--
	}
}

func TestIterSnapshotsWindow(t *testing.T) {
	v := New("abc")
	it := v.Iter()

	// Growing the view mid-traversal must not extend the running iteration.
	it.Next()
	v.AppendString("defdefdefdefdefdefdefdefdefdef")

	got := []byte{it.Byte()}
	for it.Next() {
		got = append(got, it.Byte())
	}
	if string(got) != "abc" {
		t.Errorf("traversal after append = %q; want %q", got, "abc")
	}
}
