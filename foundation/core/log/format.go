// File: format.go
// Title: Log Formatters
// Description: Output formats for log entries: JSON, plain text, coloured
//              console text and logfmt.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: JSON, text and logfmt formatters
// - 2026-10-18 v0.2.0: Console formatter styled with lipgloss

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs
	FormatText Format = iota

	// FormatJSON outputs one JSON object per line
	FormatJSON

	// FormatConsole outputs coloured text for terminals
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, &ParseError{
			Input: format,
			Type:  "format",
			Valid: []string{"text", "json", "logfmt", "console"},
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.SessionID != "" {
		data["session_id"] = entry.SessionID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text. Fields are printed in key order.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(f.parts(entry, plainStyles), " ") + "\n"), nil
}

// lineStyles decorates the pieces of a text line
type lineStyles struct {
	level  func(Level, string) string
	fields func(string) string
}

var plainStyles = lineStyles{
	level:  func(_ Level, s string) string { return s },
	fields: func(s string) string { return s },
}

func (f *TextFormatter) parts(entry *Entry, styles lineStyles) []string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}

	parts = append(parts, styles.level(entry.Level, "["+entry.Level.ShortString()+"]"))

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}
	if entry.SessionID != "" {
		parts = append(parts, fmt.Sprintf("(session=%s)", entry.SessionID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, styles.fields("["+strings.Join(fieldParts, " ")+"]"))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return parts
}

// ConsoleFormatter formats log entries for terminals with coloured levels
type ConsoleFormatter struct {
	*TextFormatter

	levelStyles map[Level]lipgloss.Style
	fieldStyle  lipgloss.Style
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TextFormatter: NewTextFormatter(),
		levelStyles: map[Level]lipgloss.Style{
			LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			LevelFatal: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
		},
		fieldStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	styles := lineStyles{
		level: func(l Level, s string) string {
			if style, ok := f.levelStyles[l]; ok {
				return style.Render(s)
			}
			return s
		},
		fields: func(s string) string { return f.fieldStyle.Render(s) },
	}
	return []byte(strings.Join(f.parts(entry, styles), " ") + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		fmt.Sprintf("timestamp=%s", entry.Timestamp.Format(f.TimestampFormat)),
		fmt.Sprintf("level=%s", entry.Level.String()),
		fmt.Sprintf("message=%q", entry.Message),
	}

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("logger=%s", entry.Logger))
	}
	if entry.SessionID != "" {
		parts = append(parts, fmt.Sprintf("session_id=%s", entry.SessionID))
	}

	for _, k := range entry.Fields.Keys() {
		switch v := entry.Fields[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v))
		case error:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v.Error()))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewTextFormatter()
	}
}
