// File: doc.go
// Title: Package Documentation for core/params
// Description: Package params provides a generic enum-keyed typed-value
//              settings container with defaults, inheritance, and TOML/YAML
//              round-tripping.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

// Package params provides a minimal enum-keyed settings container.
//
// A Map associates keys of a caller-chosen comparable type (usually an
// integer enum) with values of any type. Typed access goes through the
// generic Get function, which reports a coded error when the key is unset
// or the stored value has a different dynamic type:
//
//	type setting int
//	const (
//	    windowOffset setting = iota
//	    windowLength
//	)
//
//	m := params.NewMap[setting]()
//	m.Set(windowLength, 26)
//	n, err := params.Get[int](m, windowLength)
//
// Lookup order is: explicitly set value, then the map's Defaults function,
// then the parent map (if any). Errors carry CodeParameterNotFound or
// CodeParameterWrongType from core/error.
//
// EncodeTOML/EncodeYAML and their Decode counterparts round-trip a map
// through a string-keyed projection, so settings containers read and write
// the same file formats as the rest of the library's configuration.
//
// A Map is safe for concurrent use.
package params
