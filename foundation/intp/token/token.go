// File: token.go
// Title: Token Model
// Description: Defines the closed set of lexical categories of the language
//              and the immutable token value produced by the lexer. Token kind
//              names double as the vocabulary of parser diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial token set (operators, delimiters, keywords)
// - 2026-10-16 v0.2.0: Added STRING, COLON and bracket kinds, position tracking

package token

import "fmt"

// Kind represents the lexical category of a token
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	ILLEGAL

	// Identifiers and literals
	IDENT  // add, foobar, x, y
	INT    // 1343456
	STRING // "foo bar"

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NOT_EQ   // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	kindCount
)

var kindNames = [...]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	STRING:    "STRING",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NOT_EQ:    "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the canonical name of the kind as used in diagnostics
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsKeyword reports whether the kind is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= FUNCTION && k <= RETURN
}

// Kinds returns all defined token kinds in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindCount))
	for k := EOF; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Pos is a location in the source text
type Pos struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set by the lexer
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical unit. Tokens are values and never mutated
// after the lexer produced them.
type Token struct {
	Kind    Kind   // Lexical category
	Literal string // Exact source text
	Pos     Pos    // Start of the token in the source
}

// New creates a token without position information
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

// String returns a short representation for diagnostics
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%q)", t.Literal)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Literal)
	}
}

var keywords = map[string]Kind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent classifies an identifier run as keyword or plain identifier.
// Keywords are case-sensitive.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}
