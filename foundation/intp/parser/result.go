// File: result.go
// Title: Structured Parse Result
// Description: One-call entry point returning the program together with
//              its diagnostics, and conversion of those diagnostics into a
//              structured error for callers that need one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Parse timer logs its result counts

package parser

import (
	"fmt"
	"strings"

	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/lexer"
	"github.com/msto63/intp/foundation/intp/token"
)

// Result holds a parsed program and every diagnostic recorded while
// parsing it. Program is never nil.
type Result struct {
	Program     *ast.Program
	Diagnostics []*ParseError

	code intperror.Code
}

// Parse lexes and parses input in one step
func Parse(input string, opts Options) *Result {
	if opts.Logger == nil {
		opts.Logger = intplog.GetDefault()
	}

	if opts.MaxInputLength > 0 && len(input) > opts.MaxInputLength {
		msg := fmt.Sprintf("input exceeds maximum length: %d > %d", len(input), opts.MaxInputLength)
		opts.Logger.Warn("Input rejected", intplog.Fields{
			"length":     len(input),
			"max_length": opts.MaxInputLength,
		})
		return &Result{
			Program:     &ast.Program{Statements: []ast.Statement{}},
			Diagnostics: []*ParseError{newParseError(msg, token.Token{Kind: token.ILLEGAL, Pos: token.Pos{Line: 1, Column: 1}})},
			code:        intperror.CodeInputTooLarge,
		}
	}

	timer := opts.Logger.StartTimer("parse").WithField("length", len(input))
	p := NewWithOptions(lexer.New(input), opts)
	program := p.ParseProgram()
	timer.Stop(intplog.Fields{
		"statements": len(program.Statements),
		"errors":     len(p.errors),
	})

	return &Result{
		Program:     program,
		Diagnostics: p.Diagnostics(),
		code:        intperror.CodeSyntaxError,
	}
}

// Errors returns the diagnostic messages in order
func (r *Result) Errors() []string {
	msgs := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

// HasErrors reports whether any diagnostic was recorded
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Err returns nil for a clean parse, otherwise an error carrying the
// number of diagnostics and the first of them.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}

	first := r.Diagnostics[0]
	return intperror.New(fmt.Sprintf("%d syntax error(s), first: %s", len(r.Diagnostics), first.Error())).
		WithCode(r.code).
		WithOperation("parser.Parse").
		WithDetail("count", len(r.Diagnostics)).
		WithDetail("first", first.Message).
		WithDetail("line", first.Line).
		WithDetail("column", first.Column)
}

// String renders the program, or the error count followed by one
// indented message per line when parsing failed.
func (r *Result) String() string {
	if !r.HasErrors() {
		return r.Program.String()
	}

	var out strings.Builder
	fmt.Fprintf(&out, "parser has %d errors\n", len(r.Diagnostics))
	for _, msg := range r.Errors() {
		out.WriteString("\t" + msg + "\n")
	}
	return out.String()
}
