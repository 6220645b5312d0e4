// Package log provides structured logging for the intp tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with contextual fields, several
//              output formats and integration with the structured error
//              type. Logs go to stderr by default so that program output on
//              stdout stays clean.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Console formatter, session IDs
//
// Features:
// - Levels trace, debug, info, warn, error and fatal
// - Text, JSON, console and logfmt output
// - Immutable loggers: every With* call returns a copy
// - LogError picks the level from the severity of a structured error
// - Timers logging the duration of an operation
//
// Usage:
//
//	import intplog "github.com/msto63/intp/foundation/core/log"
//
//	logger := intplog.New().
//		WithLevel(intplog.LevelDebug).
//		WithFormat(intplog.FormatJSON).
//		WithField("component", "repl")
//
//	logger.Info("Session started", intplog.Fields{"mode": "ast"})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
