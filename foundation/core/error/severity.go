// File: severity.go
// Title: Error Severity
// Description: Severity levels of structured errors and their default
//              mapping from error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by user input, such as syntax errors
	SeverityLow Severity = iota

	// SeverityMedium marks errors that affect one operation
	SeverityMedium

	// SeverityHigh marks errors that stop a command
	SeverityHigh

	// SeverityCritical marks errors that leave the program unusable
	SeverityCritical
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
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh
	case CodeSyntaxError, CodeIncompleteTree, CodeInputTooLarge,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
