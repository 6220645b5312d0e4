// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     replclient
// Description: Input history with navigation and JSON persistence
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package replclient

import (
	"encoding/json"
	"os"
	"time"

	"github.com/msto63/intp/foundation/utils/filex"
)

// historyFile is the on-disk layout of the history
type historyFile struct {
	Entries []string  `json:"entries"`
	Updated time.Time `json:"updated"`
}

// History keeps the entered lines, newest last, capped at limit entries
type History struct {
	path    string
	limit   int
	entries []string

	index int    // position while navigating, -1 = not navigating
	draft string // input saved when navigation started
}

// LoadHistory reads the history from path. A missing or unreadable file
// yields an empty history; path "" disables persistence.
func LoadHistory(path string, limit int) *History {
	h := &History{path: path, limit: limit, index: -1}
	if path == "" {
		return h
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return h
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return h
	}
	h.entries = file.Entries
	h.trim()
	return h
}

// Add appends entry unless it repeats the newest one, and ends navigation
func (h *History) Add(entry string) {
	if len(h.entries) == 0 || h.entries[len(h.entries)-1] != entry {
		h.entries = append(h.entries, entry)
		h.trim()
	}
	h.Reset()
}

// Entries returns a copy of the stored lines
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Prev moves to the previous entry. current is kept as the draft when
// navigation starts. It reports false when there is no history.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.draft = current
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	}
	return h.entries[h.index], true
}

// Next moves to the next entry, returning to the draft after the newest.
// It reports false when not navigating.
func (h *History) Next() (string, bool) {
	if h.index == -1 {
		return "", false
	}

	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}

	draft := h.draft
	h.Reset()
	return draft, true
}

// Reset ends navigation
func (h *History) Reset() {
	h.index = -1
	h.draft = ""
}

// Save writes the history to its file
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(historyFile{Entries: h.entries, Updated: time.Now()}, "", "  ")
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(h.path, data, 0600)
}

func (h *History) trim() {
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}
