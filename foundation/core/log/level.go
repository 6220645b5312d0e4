// File: level.go
// Title: Log Levels
// Description: Severity levels for log entries. A single table holds the
//              long name, the console abbreviation and the accepted
//              spellings of every level.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Levels trace through fatal
// - 2026-10-17 v0.2.0: Short names for the console formatter
// - 2026-10-19 v0.3.0: Level table; parse errors list the accepted names

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota // grammar rule tracing
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	aliases []string
}

var levelTable = [...]levelInfo{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", []string{"ftl"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelTable)
}

// String returns the lower case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelTable[l].name
}

// ShortString returns the three letter form used in console output
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelTable[l].short
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name or one of its aliases, ignoring case and
// surrounding space. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for _, l := range AllLevels() {
		info := levelTable[l]
		if key == info.name {
			return l, nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return l, nil
			}
		}
	}

	names := make([]string, 0, len(levelTable))
	for _, info := range levelTable {
		names = append(names, info.name)
	}
	return LevelInfo, &ParseError{Input: level, Type: "level", Valid: names}
}

// ParseError reports a log level or format that could not be parsed
type ParseError struct {
	Input string
	Type  string
	Valid []string
}

func (e *ParseError) Error() string {
	msg := "invalid " + e.Type + ": " + e.Input
	if len(e.Valid) > 0 {
		msg += " (want " + strings.Join(e.Valid, ", ") + ")"
	}
	return msg
}

// AllLevels returns the levels from most to least verbose
func AllLevels() []Level {
	levels := make([]Level, len(levelTable))
	for i := range levelTable {
		levels[i] = Level(i)
	}
	return levels
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
