// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the Peregrine front end for
//              operational failures (files, configuration, options) and for
//              the two diagnostic classes reported by a failed parse run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set derived from the foundation codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Files and I/O
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Front end
	CodeLexicalError   Code = "LEXICAL_ERROR"
	CodeSyntaxError    Code = "SYNTAX_ERROR"
	CodeUnsupported    Code = "UNSUPPORTED"
	CodeInvalidOptions Code = "INVALID_OPTIONS"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsFrontEnd reports whether the code describes a failed parse run rather
// than an operational problem.
func (c Code) IsFrontEnd() bool {
	switch c {
	case CodeLexicalError, CodeSyntaxError, CodeUnsupported:
		return true
	default:
		return false
	}
}
