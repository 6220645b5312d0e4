// File: errors.go
// Title: Parse Diagnostics
// Description: Positioned syntax error type recorded by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	"github.com/msto63/intp/foundation/intp/token"
)

// ParseError represents a syntax error with position information.
// Message holds the bare diagnostic text as returned by Errors.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Column  int
	Token   token.Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Kind == token.EOF {
		return fmt.Sprintf("parse error at line %d, column %d: %s (at end of input)",
			pe.Line, pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, pe.Token.Literal)
}

// newParseError creates a diagnostic located at tok
func newParseError(message string, tok token.Token) *ParseError {
	return &ParseError{
		Message: message,
		Offset:  tok.Pos.Offset,
		Line:    tok.Pos.Line,
		Column:  tok.Pos.Column,
		Token:   tok,
	}
}
