// File: level_test.go
// Title: Log Level Unit Tests
// Description: Tests level names, filtering and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-19 v0.1.1: Parse errors list accepted names

package log

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
		if got := tt.level.ShortString(); got != tt.short {
			t.Errorf("Level(%d).ShortString() = %q, want %q", int(tt.level), got, tt.short)
		}
	}
}

func TestLevel_ShouldLog(t *testing.T) {
	tests := []struct {
		level    Level
		minLevel Level
		want     bool
	}{
		{LevelTrace, LevelTrace, true},
		{LevelTrace, LevelDebug, false},
		{LevelWarn, LevelInfo, true},
		{LevelInfo, LevelWarn, false},
		{LevelFatal, LevelError, true},
	}

	for _, tt := range tests {
		if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
			t.Errorf("%v.ShouldLog(%v) = %v, want %v", tt.level, tt.minLevel, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseLevel("loud"); err == nil || err.Error() != "invalid level: loud (want trace, debug, info, warn, error, fatal)" {
		t.Errorf("ParseLevel(loud) error = %v", err)
	}
}

func TestAllLevels_RoundTrip(t *testing.T) {
	for _, level := range AllLevels() {
		got, err := ParseLevel(level.String())
		if err != nil || got != level {
			t.Errorf("ParseLevel(%q) = %v, %v", level.String(), got, err)
		}
	}
}
