// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     replclient
// Description: Tests for the REPL client model
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package replclient

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/intp/foundation/core/config"
	intplog "github.com/msto63/intp/foundation/core/log"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Config{
		Mode:        config.ModeAST,
		HistoryFile: filepath.Join(t.TempDir(), "history.json"),
		HistorySize: 10,
		Logger:      intplog.Discard(),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNewDefaults(t *testing.T) {
	m := New(Config{Mode: "eval", Logger: intplog.Discard()})
	if m.Mode() != config.ModeAST {
		t.Errorf("Mode() = %q, want %q", m.Mode(), config.ModeAST)
	}
	if m.cfg.Prompt != ">> " {
		t.Errorf("Prompt = %q, want %q", m.cfg.Prompt, ">> ")
	}
	if m.View() != "Loading intp REPL..." {
		t.Errorf("View() before sizing = %q", m.View())
	}
}

func TestEnterEvaluates(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("let x = 1 + 2;")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter should return a command")
	}
	if !m.evaluating {
		t.Error("model should be evaluating after Enter")
	}
	if m.textarea.Value() != "" {
		t.Errorf("input not cleared: %q", m.textarea.Value())
	}
	if got := m.history.Entries(); !reflect.DeepEqual(got, []string{"let x = 1 + 2;"}) {
		t.Errorf("history = %v", got)
	}

	result := m.evaluate("let x = 1 + 2;", config.ModeAST)()
	updated, _ := m.Update(result)
	m = updated.(Model)

	if m.evaluating {
		t.Error("model should stop evaluating after the result arrives")
	}
	if len(m.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.entries))
	}
	if m.entries[0].Kind != EntryInput || m.entries[1].Kind != EntryOutput {
		t.Errorf("entry kinds = %v, %v", m.entries[0].Kind, m.entries[1].Kind)
	}
	if m.entries[1].Content != "let x = (1 + 2);" {
		t.Errorf("output = %q, want %q", m.entries[1].Content, "let x = (1 + 2);")
	}
}

func TestEvaluateModes(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		name   string
		input  string
		mode   string
		output string
		failed bool
	}{
		{"ast", "-5", config.ModeAST, "(-5);\n", false},
		{"tokens", "x;", config.ModeTokens, "IDENT     x\n;         ;\n", false},
		{"both", "x", config.ModeBoth, "IDENT     x\nx;\n", false},
		{"errors", "let 5;", config.ModeAST, "parser has 1 errors\n\texpected next token to be IDENT, got INT instead\n", true},
		{"tokens never fail", "let 5;", config.ModeTokens, "LET       let\nINT       5\n;         ;\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := m.evaluate(tt.input, tt.mode)().(evalResultMsg)
			if !ok {
				t.Fatal("evaluate() did not return an evalResultMsg")
			}
			if msg.output != tt.output {
				t.Errorf("output = %q, want %q", msg.output, tt.output)
			}
			if msg.failed != tt.failed {
				t.Errorf("failed = %v, want %v", msg.failed, tt.failed)
			}
			if msg.mode != tt.mode {
				t.Errorf("mode = %q, want %q", msg.mode, tt.mode)
			}
		})
	}
}

func TestErrorResultEntry(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(m.evaluate("let = ;", config.ModeAST)())
	m = updated.(Model)

	if len(m.entries) != 1 || m.entries[0].Kind != EntryError {
		t.Fatalf("entries = %+v, want one error entry", m.entries)
	}
	if !strings.HasPrefix(m.entries[0].Content, "parser has") {
		t.Errorf("content = %q", m.entries[0].Content)
	}
}

func TestModeCycle(t *testing.T) {
	m := newTestModel(t)

	want := []string{config.ModeTokens, config.ModeBoth, config.ModeAST}
	for _, mode := range want {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
		if m.Mode() != mode {
			t.Errorf("Mode() = %q, want %q", m.Mode(), mode)
		}
	}

	if len(m.entries) != 3 || m.entries[2].Kind != EntrySystem || m.entries[2].Content != "mode: ast" {
		t.Errorf("entries = %+v, want three mode notices", m.entries)
	}
}

func TestClear(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	if len(m.entries) != 0 {
		t.Errorf("got %d entries after clear, want 0", len(m.entries))
	}
}

func TestHistoryKeys(t *testing.T) {
	m := newTestModel(t)
	m.history.Add("first")
	m.history.Add("second")
	m.textarea.SetValue("draft")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.textarea.Value(); got != "second" {
		t.Errorf("after Up = %q, want %q", got, "second")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.textarea.Value(); got != "first" {
		t.Errorf("after Up Up = %q, want %q", got, "first")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.textarea.Value(); got != "draft" {
		t.Errorf("after returning = %q, want %q", got, "draft")
	}
}

func TestQuitSavesHistory(t *testing.T) {
	m := newTestModel(t)
	m.history.Add("let q = 1;")

	tests := []struct {
		name string
		prep func(Model) Model
		key  tea.KeyMsg
	}{
		{"ctrl+c", func(m Model) Model { return m }, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{":quit", func(m Model) Model { m.textarea.SetValue(":quit"); return m }, tea.KeyMsg{Type: tea.KeyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := press(t, tt.prep(m), tt.key)
			if cmd == nil {
				t.Fatal("quit should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command did not quit")
			}

			loaded := LoadHistory(m.cfg.HistoryFile, 10)
			if got := loaded.Entries(); len(got) == 0 || got[0] != "let q = 1;" {
				t.Errorf("saved history = %v", got)
			}
		})
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m.cfg.Version = "1.2.3"
	updated, _ := m.Update(m.evaluate("1 * 2", config.ModeAST)())
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{Logo, "(1 * 2);", "mode:", "v1.2.3", "Ctrl+T"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q", want)
		}
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := config.Default()
	cfg.REPL.Mode = config.ModeBoth
	cfg.REPL.HistoryFile = "/tmp/intp-history.json"
	cfg.Parser.Trace = true

	got := ConfigFrom(cfg, intplog.Discard())
	if got.Mode != config.ModeBoth || got.HistoryFile != "/tmp/intp-history.json" || !got.Parser.Trace {
		t.Errorf("ConfigFrom() = %+v", got)
	}
	if got.Parser.MaxInputLength != cfg.Parser.MaxInputLength {
		t.Errorf("MaxInputLength = %d, want %d", got.Parser.MaxInputLength, cfg.Parser.MaxInputLength)
	}
}
