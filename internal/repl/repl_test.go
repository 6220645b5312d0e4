// File: repl_test.go
// Title: REPL Tests
// Description: Drives the line REPL and the shared evaluation helpers with
//              in-memory streams.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/msto63/intp/foundation/core/config"
	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/parser"
)

func run(t *testing.T, input string, opts Options) string {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = intplog.Discard()
	}
	var out bytes.Buffer
	if err := Start(strings.NewReader(input), &out, opts); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return out.String()
}

func TestStartModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		input    string
		expected string
	}{
		{
			name:     "ast",
			mode:     config.ModeAST,
			input:    "let x = 1 + 2 * 3\n",
			expected: ">> let x = (1 + (2 * 3));\n>> \n",
		},
		{
			name:     "tokens",
			mode:     config.ModeTokens,
			input:    "let x = 5;\n",
			expected: ">> LET       let\nIDENT     x\n=         =\nINT       5\n;         ;\n>> \n",
		},
		{
			name:     "both",
			mode:     config.ModeBoth,
			input:    "-a\n",
			expected: ">> -         -\nIDENT     a\n(-a);\n>> \n",
		},
		{
			name:     "errors",
			mode:     config.ModeAST,
			input:    "let = 5;\n",
			expected: ">> parser has 1 errors\n\texpected next token to be IDENT, got = instead\n>> \n",
		},
		{
			name:     "blank lines are skipped",
			mode:     config.ModeAST,
			input:    "\n   \nx\n",
			expected: ">> >> >> x;\n>> \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.input, Options{Mode: tt.mode})
			if got != tt.expected {
				t.Errorf("output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStartQuit(t *testing.T) {
	got := run(t, "1\n:quit\n2\n", Options{Prompt: "$ "})
	if want := "$ 1;\n$ "; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStartCommands(t *testing.T) {
	got := run(t, ":mode tokens\nx\n:mode\n:mode eval\n:nope\n:help\n", Options{})

	for _, want := range []string{
		"mode: tokens\n",
		"IDENT     x\n",
		"unknown mode \"eval\"",
		"unknown command :nope",
		":quit                    leave the REPL",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestStartInvalidMode(t *testing.T) {
	err := Start(strings.NewReader(""), &bytes.Buffer{}, Options{Mode: "eval", Logger: intplog.Discard()})
	if !intperror.HasCode(err, intperror.CodeInvalidInput) {
		t.Errorf("Start() error = %v, want INVALID_INPUT", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestStartReadError(t *testing.T) {
	err := Start(failingReader{}, &bytes.Buffer{}, Options{Logger: intplog.Discard()})
	if !intperror.HasCode(err, intperror.CodeIOError) {
		t.Errorf("Start() error = %v, want IO_ERROR", err)
	}
}

func TestStartLogsSession(t *testing.T) {
	var logs bytes.Buffer
	logger := intplog.NewWithConfig(intplog.Config{Level: intplog.LevelInfo, Format: intplog.FormatText, Output: &logs})

	run(t, "1\n2\n", Options{Logger: logger})

	out := logs.String()
	for _, want := range []string{"Session started", "Session ended", "lines=2", "(session=", "{repl}"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestMaxInputLength(t *testing.T) {
	got := Eval("let x = 12345;", config.ModeAST, parser.Options{MaxInputLength: 5, Logger: intplog.Discard()})
	if !strings.Contains(got, "input exceeds maximum length: 14 > 5") {
		t.Errorf("Eval() = %q, want length diagnostic", got)
	}
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{config.ModeAST, config.ModeTokens},
		{config.ModeTokens, config.ModeBoth},
		{config.ModeBoth, config.ModeAST},
		{"unknown", config.ModeAST},
	}

	for _, tt := range tests {
		if got := NextMode(tt.mode); got != tt.expected {
			t.Errorf("NextMode(%q) = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestFormatTokensSkipsEOF(t *testing.T) {
	if got := FormatTokens(""); got != "" {
		t.Errorf("FormatTokens(\"\") = %q, want empty", got)
	}
	if got := FormatTokens("@"); got != "ILLEGAL   @\n" {
		t.Errorf("FormatTokens(\"@\") = %q, want %q", got, "ILLEGAL   @\n")
	}
}
