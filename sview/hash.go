// File: hash.go
// Title: Content Hashing
// Description: Implements xxhash-based content hashing consistent between
//              views, plain strings and byte slices, so all three are
//              interchangeable as keys in the same table.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package sview

import "github.com/cespare/xxhash/v2"

// Hash returns the xxhash of the visible window. For any view v and string
// s with the same characters, v.Hash() == HashString(s); buffer identity
// and window placement never enter the hash. The absent view hashes like
// its materialization, the empty string.
func (v View) Hash() uint64 {
	return xxhash.Sum64(v.window())
}

// HashString returns the hash of a plain string, consistent with View.Hash.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes returns the hash of a plain byte slice, consistent with
// View.Hash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
