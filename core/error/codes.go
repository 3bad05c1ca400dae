// File: codes.go
// Title: Error Code Definitions
// Description: Defines the stable error codes of the sview library together
//              with their human-readable messages and categories.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation with parameter and file codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes raised by the sview library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Settings parameters
	CodeParameterNotFound  Code = "PARAMETER_NOT_FOUND"
	CodeParameterWrongType Code = "PARAMETER_WRONG_TYPE"

	// File handling
	CodeNoFilePath     Code = "NO_FILE_PATH"
	CodeFileNotFound   Code = "FILE_NOT_FOUND"
	CodeFileExists     Code = "FILE_EXISTS_AT_TARGET"
	CodeFileOpen       Code = "FILE_OPEN_FAILED"
	CodeFileWrite      Code = "FILE_WRITE_FAILED"
	CodeTempFileFailed Code = "TEMP_FILE_FAILED"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// messages maps every code to its human-readable description.
var messages = map[Code]string{
	CodeUnknown:      "unknown error",
	CodeInternal:     "internal error",
	CodeNotFound:     "not found",
	CodeInvalidInput: "invalid input",

	CodeParameterNotFound:  "parameter not found",
	CodeParameterWrongType: "parameter has wrong type",

	CodeNoFilePath:     "no file path specified",
	CodeFileNotFound:   "file does not exist",
	CodeFileExists:     "a file already exists at the target path",
	CodeFileOpen:       "file could not be opened",
	CodeFileWrite:      "error writing to file",
	CodeTempFileFailed: "temporary file could not be created",

	CodeValidationFailed: "validation failed",
	CodeValueOutOfRange:  "value out of range",
}

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Error makes a Code usable as an error value, so codes can stand in as
// targets for errors.Is.
func (c Code) Error() string {
	return string(c) + ": " + c.Message()
}

// Message returns the human-readable message for the code. Unknown codes
// yield "unknown error".
func (c Code) Message() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return messages[CodeUnknown]
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	_, ok := messages[c]
	return ok
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParameterNotFound, CodeParameterWrongType:
		return "parameter"
	case CodeNoFilePath, CodeFileNotFound, CodeFileExists, CodeFileOpen,
		CodeFileWrite, CodeTempFileFailed:
		return "file"
	case CodeValidationFailed, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
