// File: doc.go
// Title: Package Documentation for core/log
// Description: Package log provides structured, leveled logging with
//              contextual fields and pluggable formatters.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

// Package log provides structured, leveled logging for programs built on
// the sview library.
//
// A Logger carries a minimum level, a formatter (JSON or text), an output
// writer, and contextual fields; the With* methods return derived loggers
// without mutating their source:
//
//	logger := log.New().WithName("sview-cli")
//	logger.Info("sliced", log.Int("offset", 10), log.Int("length", 7))
//
// LogError understands the coded errors of core/error and maps their
// severity onto a log level, so a single call reports code, severity and
// details consistently.
//
// Correlation IDs tie related entries together; WithNewCorrelationID
// generates one when the caller has none.
//
// A Logger is safe for concurrent use. The library packages themselves do
// not log; logging belongs to the programs that drive them.
package log
