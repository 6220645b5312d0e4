// File: validation.go
// Title: Configuration Validation
// Description: Checks loaded settings against the values the tools accept
//              and turns the log section into a configured logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"io"
	"strings"

	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
)

// Validate reports the first setting that the tools cannot use
func (c *Config) Validate() error {
	switch c.REPL.Mode {
	case ModeTokens, ModeAST, ModeBoth:
	default:
		return invalid("repl.mode", c.REPL.Mode,
			fmt.Sprintf("must be one of %s", strings.Join([]string{ModeTokens, ModeAST, ModeBoth}, ", ")))
	}

	if c.REPL.HistorySize < 0 {
		return invalid("repl.history_size", c.REPL.HistorySize, "must not be negative")
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength, "must not be negative")
	}

	if _, err := intplog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err.Error())
	}
	if _, err := intplog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err.Error())
	}

	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return intperror.New(fmt.Sprintf("invalid value for %s: %v (%s)", key, value, reason)).
		WithCode(intperror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// Logger builds a logger from the log section. Unknown values fall back to
// the logger defaults; call Validate first to reject them.
func (l LogConfig) Logger(output io.Writer, name string) *intplog.Logger {
	level, err := intplog.ParseLevel(l.Level)
	if err != nil {
		level = intplog.DefaultLevel()
	}
	format, _ := intplog.ParseFormat(l.Format)

	return intplog.NewWithConfig(intplog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   name,
	})
}
