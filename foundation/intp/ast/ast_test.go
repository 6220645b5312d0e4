// File: ast_test.go
// Title: AST Node Unit Tests
// Description: Tests source rendering of every node kind, including trees
//              with missing children.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Program rendering test
// - 2026-10-17 v0.2.0: Rendering of all node kinds and empty slots

package ast

import (
	"testing"

	"github.com/msto63/intp/foundation/intp/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.New(token.IDENT, name), Value: name}
}

func integer(v int64, lit string) *IntegerLiteral {
	return &IntegerLiteral{Token: token.New(token.INT, lit), Value: v}
}

func block(stmts ...Statement) *BlockStatement {
	return &BlockStatement{Token: token.New(token.LBRACE, "{"), Statements: stmts}
}

func exprStmt(e Expression) *ExpressionStatement {
	return &ExpressionStatement{Token: token.New(token.IDENT, e.TokenLiteral()), Expression: e}
}

func TestProgram_String(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.New(token.LET, "let"),
				Name:  ident("myVar"),
				Value: ident("anotherVar"),
			},
		},
	}

	if got := program.String(); got != "let myVar = anotherVar;" {
		t.Errorf("program.String() = %q, want %q", got, "let myVar = anotherVar;")
	}
	if got := program.TokenLiteral(); got != "let" {
		t.Errorf("program.TokenLiteral() = %q, want %q", got, "let")
	}
}

func TestProgram_Empty(t *testing.T) {
	program := &Program{}
	if program.String() != "" {
		t.Errorf("empty program rendered %q", program.String())
	}
	if program.TokenLiteral() != "" {
		t.Errorf("empty program token literal %q", program.TokenLiteral())
	}
	if program.Pos().IsValid() {
		t.Error("empty program should have no position")
	}
}

func TestNode_String(t *testing.T) {
	plus := token.New(token.PLUS, "+")

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "return",
			node: &ReturnStatement{Token: token.New(token.RETURN, "return"), ReturnValue: integer(5, "5")},
			want: "return 5;",
		},
		{
			name: "expression statement",
			node: exprStmt(ident("x")),
			want: "x;",
		},
		{
			name: "string",
			node: &StringLiteral{Token: token.New(token.STRING, "hi there"), Value: "hi there"},
			want: `"hi there"`,
		},
		{
			name: "boolean",
			node: &Boolean{Token: token.New(token.TRUE, "true"), Value: true},
			want: "true",
		},
		{
			name: "integer keeps source text",
			node: integer(7, "007"),
			want: "007",
		},
		{
			name: "prefix",
			node: &PrefixExpression{Token: token.New(token.MINUS, "-"), Operator: "-", Right: ident("a")},
			want: "(-a)",
		},
		{
			name: "infix",
			node: &InfixExpression{Token: plus, Left: ident("a"), Operator: "+", Right: ident("b")},
			want: "(a + b)",
		},
		{
			name: "empty block",
			node: block(),
			want: "{ }",
		},
		{
			name: "block",
			node: block(exprStmt(ident("x")), exprStmt(ident("y"))),
			want: "{ x; y; }",
		},
		{
			name: "if",
			node: &IfExpression{
				Token:       token.New(token.IF, "if"),
				Condition:   &InfixExpression{Token: token.New(token.LT, "<"), Left: ident("x"), Operator: "<", Right: ident("y")},
				Consequence: block(exprStmt(ident("x"))),
			},
			want: "if ((x < y)) { x; }",
		},
		{
			name: "if else",
			node: &IfExpression{
				Token:       token.New(token.IF, "if"),
				Condition:   ident("c"),
				Consequence: block(exprStmt(ident("x"))),
				Alternative: block(exprStmt(ident("y"))),
			},
			want: "if (c) { x; } else { y; }",
		},
		{
			name: "function",
			node: &FunctionLiteral{
				Token:      token.New(token.FUNCTION, "fn"),
				Parameters: []*Identifier{ident("x"), ident("y")},
				Body:       block(exprStmt(&InfixExpression{Token: plus, Left: ident("x"), Operator: "+", Right: ident("y")})),
			},
			want: "fn(x, y) { (x + y); }",
		},
		{
			name: "call",
			node: &CallExpression{
				Token:     token.New(token.LPAREN, "("),
				Function:  ident("add"),
				Arguments: []Expression{integer(1, "1"), ident("b")},
			},
			want: "add(1, b)",
		},
		{
			name: "array",
			node: &ArrayLiteral{Token: token.New(token.LBRACKET, "["), Elements: []Expression{integer(1, "1"), integer(2, "2")}},
			want: "[1, 2]",
		},
		{
			name: "empty array",
			node: &ArrayLiteral{Token: token.New(token.LBRACKET, "[")},
			want: "[]",
		},
		{
			name: "index",
			node: &IndexExpression{Token: token.New(token.LBRACKET, "["), Left: ident("arr"), Index: integer(0, "0")},
			want: "(arr[0])",
		},
		{
			name: "hash keeps pair order",
			node: &HashLiteral{
				Token: token.New(token.LBRACE, "{"),
				Pairs: []HashPair{
					{Key: &StringLiteral{Token: token.New(token.STRING, "two"), Value: "two"}, Value: integer(2, "2")},
					{Key: &StringLiteral{Token: token.New(token.STRING, "one"), Value: "one"}, Value: integer(1, "1")},
				},
			},
			want: `{"two": 2, "one": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_StringWithMissingChildren(t *testing.T) {
	var missingBody *BlockStatement

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"let without value", &LetStatement{Token: token.New(token.LET, "let"), Name: ident("x")}, "let x = ;"},
		{"let without name", &LetStatement{Token: token.New(token.LET, "let")}, "let  = ;"},
		{"return without value", &ReturnStatement{Token: token.New(token.RETURN, "return")}, "return;"},
		{"expression hole", &ExpressionStatement{Token: token.New(token.RPAREN, ")")}, ";"},
		{"prefix hole", &PrefixExpression{Token: token.New(token.BANG, "!"), Operator: "!"}, "(!)"},
		{"infix hole", &InfixExpression{Token: token.New(token.PLUS, "+"), Left: ident("a"), Operator: "+"}, "(a + )"},
		{"function typed nil body", &FunctionLiteral{Token: token.New(token.FUNCTION, "fn"), Body: missingBody}, "fn() "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_PosAndTokenLiteral(t *testing.T) {
	tok := token.Token{Kind: token.LET, Literal: "let", Pos: token.Pos{Offset: 4, Line: 2, Column: 1}}
	stmt := &LetStatement{Token: tok, Name: ident("x"), Value: integer(1, "1")}

	if stmt.TokenLiteral() != "let" {
		t.Errorf("TokenLiteral() = %q, want %q", stmt.TokenLiteral(), "let")
	}
	if stmt.Pos() != tok.Pos {
		t.Errorf("Pos() = %v, want %v", stmt.Pos(), tok.Pos)
	}

	program := &Program{Statements: []Statement{stmt}}
	if program.Pos() != tok.Pos {
		t.Errorf("program.Pos() = %v, want %v", program.Pos(), tok.Pos)
	}
}
