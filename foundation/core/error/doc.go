// Package error provides structured errors for the intp tools.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carrying a code, a severity, the failing operation
//              and key-value details. The logger uses the severity to pick a
//              log level and the command line tools map codes to exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Codes for incomplete syntax trees
//
// Usage:
//
//	import intperror "github.com/msto63/intp/foundation/core/error"
//
//	err := intperror.New("config file not found").
//		WithCode(intperror.CodeNotFound).
//		WithOperation("config.Load").
//		WithDetail("path", path)
//
//	wrapped := intperror.Wrap(err, "cannot start repl")
//	if intperror.HasCode(wrapped, intperror.CodeNotFound) {
//		// fall back to defaults
//	}
package error
