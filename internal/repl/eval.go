// File: eval.go
// Title: REPL Line Evaluation
// Description: Turns one line of input into the text a REPL prints for it,
//              as a token listing, a parsed program or both. Shared by the
//              line REPL and the terminal UI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package repl

import (
	"strings"

	"github.com/msto63/intp/foundation/core/config"
	"github.com/msto63/intp/foundation/intp/lexer"
	"github.com/msto63/intp/foundation/intp/parser"
	"github.com/msto63/intp/foundation/intp/token"
	"github.com/msto63/intp/foundation/utils/stringx"
)

// kindWidth is the column width of token kinds in listings
const kindWidth = 10

// Modes lists the REPL modes in cycle order
var Modes = []string{config.ModeAST, config.ModeTokens, config.ModeBoth}

// ValidMode reports whether mode is a known REPL mode
func ValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// NextMode returns the mode after mode in cycle order
func NextMode(mode string) string {
	for i, m := range Modes {
		if m == mode {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Eval processes one line in the given mode
func Eval(line, mode string, opts parser.Options) string {
	var out strings.Builder

	if mode == config.ModeTokens || mode == config.ModeBoth {
		out.WriteString(FormatTokens(line))
	}
	if mode == config.ModeAST || mode == config.ModeBoth {
		out.WriteString(FormatResult(parser.Parse(line, opts)))
	}

	return out.String()
}

// FormatTokens lists every token of input up to, not including, EOF.
// One line per token: the kind followed by the literal.
func FormatTokens(input string) string {
	var out strings.Builder

	l := lexer.New(input)
	for tok := l.NextToken(); tok.Kind != token.EOF; tok = l.NextToken() {
		out.WriteString(stringx.PadRight(tok.Kind.String(), kindWidth, ' '))
		out.WriteString(tok.Literal)
		out.WriteString("\n")
	}

	return out.String()
}

// FormatResult renders the parsed program, or the diagnostics when the
// parser recorded any
func FormatResult(result *parser.Result) string {
	if result.HasErrors() {
		return result.String()
	}
	return result.Program.String() + "\n"
}
