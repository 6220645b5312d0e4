// File: codes.go
// Title: Error Codes
// Description: Error codes used across the intp tools and their grouping
//              into categories and process exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Generic, syntax and configuration codes
// - 2026-10-17 v0.2.0: INCOMPLETE_TREE, exit codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source text
	CodeSyntaxError    Code = "SYNTAX_ERROR"
	CodeIncompleteTree Code = "INCOMPLETE_TREE"
	CodeInputTooLarge  Code = "INPUT_TOO_LARGE"

	// Files and streams
	CodeIOError Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntaxError, CodeIncompleteTree, CodeInputTooLarge,
		CodeIOError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntaxError, CodeIncompleteTree, CodeInputTooLarge:
		return "source"
	case CodeIOError, CodeNotFound:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the command line tools use
// for this code: 1 for rejected source text, 2 for everything else.
func (c Code) ExitCode() int {
	if c.Category() == "source" || c == CodeInvalidInput {
		return 1
	}
	return 2
}
