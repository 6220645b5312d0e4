// File: precedence.go
// Title: Operator Binding Powers
// Description: Precedence levels used by the Pratt expression parser and
//              the table mapping operator tokens to them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Levels LOWEST through PREFIX
// - 2026-10-17 v0.2.0: CALL and INDEX bound to ( and [

package parser

import "github.com/msto63/intp/foundation/intp/token"

// Precedence is the binding power of an operator. Higher binds tighter.
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
	INDEX       // a[i]
)

var precedenceNames = map[Precedence]string{
	LOWEST:      "LOWEST",
	EQUALS:      "EQUALS",
	LESSGREATER: "LESSGREATER",
	SUM:         "SUM",
	PRODUCT:     "PRODUCT",
	PREFIX:      "PREFIX",
	CALL:        "CALL",
	INDEX:       "INDEX",
}

func (p Precedence) String() string {
	if name, ok := precedenceNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// defaultPrecedences maps infix operator kinds to their binding power.
// Kinds not listed bind at LOWEST.
var defaultPrecedences = map[token.Kind]Precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

// PrecedenceOf returns the binding power of kind when used as an infix operator
func PrecedenceOf(kind token.Kind) Precedence {
	if p, ok := defaultPrecedences[kind]; ok {
		return p
	}
	return LOWEST
}
