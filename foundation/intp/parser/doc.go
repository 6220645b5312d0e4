// File: doc.go
// Title: Parser Package Documentation
// Description: Pratt parser turning intp source text into an AST.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation
// - 2026-10-17 v0.2.0: Structured results, positioned diagnostics, tracing

/*
Package parser implements the syntax analysis of intp source text.

Statements are parsed by recursive descent. Expressions are parsed by a
Pratt parser: every token kind may own a prefix parse function (it starts
an expression) and an infix parse function (it continues one), and every
infix operator has a binding power:

	LOWEST < EQUALS < LESSGREATER < SUM < PRODUCT < PREFIX < CALL < INDEX

Operators of equal power associate to the left, so a + b + c parses as
((a + b) + c) and -a * b as ((-a) * b).

# Usage

	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		// reject the program
	}

or in one call with a structured result:

	res := parser.Parse(input, parser.Options{MaxInputLength: 64 * 1024})
	if err := res.Err(); err != nil {
		return err
	}
	fmt.Println(res.Program)

# Error Handling

The parser never panics on malformed input and never stops early. Every
syntax error is recorded with its position; a statement whose required
tokens are missing is dropped and parsing resumes after its semicolon. An
expression that cannot be parsed leaves a nil child in the tree. Whether a
program with diagnostics is acceptable is the caller's decision.
*/
package parser
