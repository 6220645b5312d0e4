// File: errors_test.go
// Title: Parser Diagnostics Unit Tests
// Description: Tests error accumulation, diagnostic positions, statement
//              resynchronisation and robustness against malformed input.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Let statement error tests
// - 2026-10-17 v0.2.0: Positions, resynchronisation and malformed input
// - 2026-10-19 v0.2.1: Statements with missing tokens, bare return

package parser

import (
	"strings"
	"testing"

	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/lexer"
)

func parseWithErrors(input string) (*ast.Program, *Parser) {
	p := New(lexer.New(input))
	return p.ParseProgram(), p
}

func TestLetStatementMissingAssign(t *testing.T) {
	program, p := parseWithErrors("let x 5;")

	if len(program.Statements) != 0 {
		t.Errorf("program has %d statements, want 0: %q", len(program.Statements), program.String())
	}

	errors := p.Errors()
	if len(errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errors), errors)
	}
	if errors[0] != "expected next token to be =, got INT instead" {
		t.Errorf("errors[0] = %q", errors[0])
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input          string
		wantErrors     []string
		wantStatements int
	}{
		{
			input:      "let x 5; let = 10; let 838383;",
			wantErrors: []string{
				"expected next token to be =, got INT instead",
				"expected next token to be IDENT, got = instead",
				"expected next token to be IDENT, got INT instead",
			},
			wantStatements: 0,
		},
		{
			input:          "let x 5; let y = 2;",
			wantErrors:     []string{"expected next token to be =, got INT instead"},
			wantStatements: 1,
		},
		{
			input:          "+5;",
			wantErrors:     []string{"no prefix parse function for + found"},
			wantStatements: 2,
		},
		{
			input:          "@;",
			wantErrors:     []string{"no prefix parse function for ILLEGAL found"},
			wantStatements: 1,
		},
		{
			input:          "9223372036854775808;",
			wantErrors:     []string{`could not parse "9223372036854775808" as integer`},
			wantStatements: 1,
		},
		{
			input:          "(1 + 2",
			wantErrors:     []string{"expected next token to be ), got EOF instead"},
			wantStatements: 0,
		},
		{
			input:          "if (x) { x",
			wantErrors:     []string{"expected next token to be }, got EOF instead"},
			wantStatements: 1,
		},
		{
			input:          `{"a" 1}`,
			wantErrors:     []string{"expected next token to be :, got INT instead"},
			wantStatements: 0,
		},
		{
			input:          "let x = ;",
			wantErrors:     []string{"no prefix parse function for ; found"},
			wantStatements: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, p := parseWithErrors(tt.input)

			got := p.Errors()
			if strings.Join(got, "\n") != strings.Join(tt.wantErrors, "\n") {
				t.Errorf("Errors() = %q, want %q", got, tt.wantErrors)
			}
			if len(program.Statements) != tt.wantStatements {
				t.Errorf("program has %d statements, want %d: %q", len(program.Statements), tt.wantStatements, program.String())
			}
		})
	}
}

func TestMissingTokenDropsStatement(t *testing.T) {
	tests := []struct {
		input       string
		wantError   string
		wantProgram string
	}{
		{"(a b; c;", "expected next token to be ), got IDENT instead", "c;"},
		{"add(1 2); z;", "expected next token to be ), got INT instead", "z;"},
		{"[1 2 3]; z;", "expected next token to be ], got INT instead", "z;"},
		{"a[1 2]; z;", "expected next token to be ], got INT instead", "z;"},
		{`{"a" 1, "b": 2}; z;`, "expected next token to be :, got INT instead", "z;"},
		{"if (x { y }; z;", "expected next token to be ), got { instead", "z;"},
		{"fn(x y) { x }; z;", "expected next token to be ), got IDENT instead", "z;"},
		{"fn(x + y) { x }; z;", "expected next token to be ), got + instead", "z;"},
		{"let x = (1 2); let y = 3;", "expected next token to be ), got INT instead", "let y = 3;"},
		{"return add(1 2); z;", "expected next token to be ), got INT instead", "z;"},
		{"let f = fn() { (a b }; f;", "expected next token to be ), got IDENT instead", "let f = fn() { };f;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, p := parseWithErrors(tt.input)

			errors := p.Errors()
			if len(errors) != 1 {
				t.Fatalf("got %d errors, want 1: %q", len(errors), errors)
			}
			if errors[0] != tt.wantError {
				t.Errorf("errors[0] = %q, want %q", errors[0], tt.wantError)
			}
			if program.String() != tt.wantProgram {
				t.Errorf("program.String() = %q, want %q", program.String(), tt.wantProgram)
			}
		})
	}
}

func TestBareReturn(t *testing.T) {
	tests := []struct {
		input       string
		wantProgram string
	}{
		{"return", "return;"},
		{"fn() { return }", "fn() { return; };"},
		{"if (x) { return } else { 1 }", "if (x) { return; } else { 1; };"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, p := parseWithErrors(tt.input)

			if errors := p.Errors(); len(errors) != 0 {
				t.Fatalf("unexpected errors: %q", errors)
			}
			if program.String() != tt.wantProgram {
				t.Errorf("program.String() = %q, want %q", program.String(), tt.wantProgram)
			}
		})
	}
}

func TestMissingPrefixLeavesHole(t *testing.T) {
	program, _ := parseWithErrors("+5;")

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	if stmt.Expression != nil {
		t.Errorf("stmt.Expression = %v, want nil", stmt.Expression)
	}
	if program.String() != ";5;" {
		t.Errorf("program.String() = %q, want %q", program.String(), ";5;")
	}
	if errs := ast.Validate(program); len(errs) != 1 {
		t.Errorf("Validate() returned %d errors, want 1", len(errs))
	}
}

func TestResyncInsideBlock(t *testing.T) {
	program, p := parseWithErrors("let f = fn() { let x }; f;")

	errors := p.Errors()
	if len(errors) != 1 || errors[0] != "expected next token to be =, got } instead" {
		t.Fatalf("Errors() = %q", errors)
	}
	if program.String() != "let f = fn() { };f;" {
		t.Errorf("program.String() = %q, want %q", program.String(), "let f = fn() { };f;")
	}
}

func TestDiagnosticPositions(t *testing.T) {
	tests := []struct {
		input      string
		wantLine   int
		wantColumn int
		wantNear   string
	}{
		{"let x 5;", 1, 7, "5"},
		{"let a = 1;\nlet b 2;", 2, 7, "2"},
		{"let a = 1;\n\n  +", 3, 3, "+"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, p := parseWithErrors(tt.input)

			diags := p.Diagnostics()
			if len(diags) == 0 {
				t.Fatal("no diagnostics recorded")
			}

			d := diags[0]
			if d.Line != tt.wantLine || d.Column != tt.wantColumn {
				t.Errorf("position = %d:%d, want %d:%d", d.Line, d.Column, tt.wantLine, tt.wantColumn)
			}
			if d.Token.Literal != tt.wantNear {
				t.Errorf("token literal = %q, want %q", d.Token.Literal, tt.wantNear)
			}
			if !strings.Contains(d.Error(), "near '"+tt.wantNear+"'") {
				t.Errorf("Error() = %q, want mention of %q", d.Error(), tt.wantNear)
			}
		})
	}
}

func TestDiagnosticAtEndOfInput(t *testing.T) {
	_, p := parseWithErrors("let")

	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if !strings.Contains(diags[0].Error(), "at end of input") {
		t.Errorf("Error() = %q", diags[0].Error())
	}
}

func TestErrorsAreOrderedAndStable(t *testing.T) {
	_, p := parseWithErrors("let 1; let 2; let 3;")

	first := p.Errors()
	first[0] = "changed"

	second := p.Errors()
	if second[0] == "changed" {
		t.Error("Errors() exposes internal state")
	}
	if len(second) != 3 {
		t.Errorf("got %d errors, want 3", len(second))
	}
}

func TestMalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		")",
		";;;",
		"let",
		"let x",
		"let x =",
		"return",
		"fn(",
		"fn(x,",
		"fn(x y) {}",
		"if",
		"if (",
		"if (x) {",
		"if (x) { } else",
		"[1, 2",
		"{1:",
		"{1: 2,",
		"a[",
		"a[1",
		"add(1,",
		`"abc`,
		"@#$",
		"}{",
		"let x = ;",
		"!",
		"- - -",
		"((((",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			program, p := parseWithErrors(input)
			if program == nil {
				t.Fatal("ParseProgram() returned nil")
			}
			_ = program.String()
			_ = ast.Validate(program)
			_ = p.Errors()
		})
	}
}
