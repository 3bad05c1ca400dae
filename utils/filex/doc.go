// File: doc.go
// Title: Package Documentation for utils/filex
// Description: Package filex provides a single-owner file handle with
//              temp-file lifecycle management and a few existence helpers.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

// Package filex provides a single-owner file handle.
//
// A File references a path on disk and, when created through CreateTemp,
// owns the duty of removing it. Ownership is never duplicated: copying the
// struct is not a transfer, Handoff is. After a Handoff the source handle is
// inert and only the new owner cleans up:
//
//	f, err := filex.CreateTemp("sview")
//	if err != nil { ... }
//	defer f.Cleanup()
//
//	owner := f.Handoff() // f no longer removes the file
//
// Rename refuses to clobber an existing destination and, like Remove,
// releases the temp-cleanup duty. All failures are coded errors from
// core/error.
//
// File is not safe for concurrent use; it models exclusive ownership.
package filex
