// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     replclient
// Description: Transcript entries and async messages of the REPL terminal UI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package replclient

import (
	"time"
)

// EntryKind classifies a transcript entry
type EntryKind int

const (
	EntryInput  EntryKind = iota // a line the user entered
	EntryOutput                  // tokens or the rendered program
	EntryError                   // parser diagnostics
	EntrySystem                  // mode changes and notices
)

// Entry is one block of the transcript
type Entry struct {
	Kind      EntryKind
	Content   string
	Timestamp time.Time

	// Mode and Duration are set on outputs and errors
	Mode     string
	Duration time.Duration
}

// evalResultMsg carries the result of an evaluation back to Update
type evalResultMsg struct {
	output   string
	failed   bool
	mode     string
	duration time.Duration
}
