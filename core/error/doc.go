// File: doc.go
// Title: Package Documentation for core/error
// Description: Package error provides coded, categorized errors with
//              human-readable messages and severity levels for the sview
//              library.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

// Package error provides the error-code categorization facility used across
// the sview library.
//
// Every failure the library reports carries a Code: a small, stable
// identifier that maps to a human-readable message (Code.Message), a
// high-level category (Code.Category), and a default severity. Callers can
// branch on codes without parsing message text:
//
//	if sverror.HasCode(err, sverror.CodeParameterNotFound) {
//	    // fall back to a default
//	}
//
// The *Error type wraps a code together with a message, an optional cause,
// a detail map, and the operation that failed. It implements the standard
// error interface and Unwrap, so it composes with errors.Is and errors.As.
//
// The view core in package sview raises no errors of its own; the codes
// here serve the collaborator packages (params, filex) and their callers.
package error
