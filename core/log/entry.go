// File: entry.go
// Title: Log Entry and Field Helpers
// Description: Defines the Entry type carried from logger to formatter and
//              the convenience constructors for structured fields.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package log

import "time"

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Uint64 creates a uint64 field for logging, used for content hashes
func Uint64(key string, value uint64) Fields {
	return Fields{key: value}
}

// merge folds a list of field maps into one, later maps winning on clashes.
func merge(base Fields, extra []Fields) Fields {
	out := make(Fields, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, fields := range extra {
		for k, v := range fields {
			out[k] = v
		}
	}
	return out
}
