// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the default mapping
//              from error codes to severities.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: a missing optional parameter, a lookup falling back to defaults
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a settings value of the wrong type, a rename refused
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: file writes failing, temp files that cannot be created
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeFileWrite, CodeFileOpen, CodeTempFileFailed, CodeInternal:
		return SeverityHigh
	case CodeParameterWrongType, CodeFileExists, CodeValidationFailed,
		CodeValueOutOfRange, CodeInvalidInput:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
