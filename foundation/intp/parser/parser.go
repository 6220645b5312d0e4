// File: parser.go
// Title: Pratt Parser
// Description: Turns the token stream of a lexer into an AST. Statements
//              are parsed by recursive descent, expressions by precedence
//              climbing over prefix and infix function tables. Syntax errors
//              are collected, never raised.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Let, return and expression statements; prefix and
//                      infix operators
// - 2026-10-17 v0.2.0: Options, positioned diagnostics, statement
//                      resynchronisation and tracing
// - 2026-10-19 v0.2.1: Missing tokens inside expressions drop the whole
//                      statement

package parser

import (
	"fmt"

	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/lexer"
	"github.com/msto63/intp/foundation/intp/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Options configures parser behavior
type Options struct {
	// Logger receives debug and trace output. Defaults to the package default logger.
	Logger *intplog.Logger

	// Trace logs BEGIN/END lines for every grammar rule at trace level
	Trace bool

	// MaxInputLength limits the input accepted by Parse. Zero means unlimited.
	MaxInputLength int
}

// Parser consumes tokens from a lexer with a two-token window
type Parser struct {
	l      *lexer.Lexer
	errors []*ParseError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
	precedences    map[token.Kind]Precedence

	// aborted is set when a required token was missing; the enclosing
	// statement is then dropped
	aborted    bool
	blockDepth int

	logger     *intplog.Logger
	options    Options
	traceDepth int
}

// New creates a parser reading from l with default options
func New(l *lexer.Lexer) *Parser {
	return NewWithOptions(l, Options{})
}

// NewWithOptions creates a parser reading from l
func NewWithOptions(l *lexer.Lexer, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = intplog.GetDefault()
	}

	p := &Parser{
		l:           l,
		errors:      []*ParseError{},
		precedences: defaultPrecedences,
		logger:      opts.Logger.WithField("component", "intp-parser"),
		options:     opts,
	}

	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[token.Kind]infixParseFn)
	for _, kind := range []token.Kind{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses statements until end of input. Statements that fail
// to parse are dropped and their errors recorded.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	p.logger.Debug("Program parsed", intplog.Fields{
		"statements": len(program.Statements),
		"errors":     len(p.errors),
	})

	return program
}

// Errors returns the recorded diagnostic messages in order
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, e := range p.errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Diagnostics returns the recorded errors with their positions
func (p *Parser) Diagnostics() []*ParseError {
	out := make([]*ParseError, len(p.errors))
	copy(out, p.errors)
	return out
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(kind token.Kind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenIs(kind token.Kind) bool {
	return p.peekToken.Kind == kind
}

// expectPeek advances if the peek token has the given kind. Otherwise it
// records an error and leaves the window untouched.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(kind token.Kind) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", kind, p.peekToken.Kind)
	p.addError(msg, p.peekToken)
	p.aborted = true
}

func (p *Parser) noPrefixParseFnError(kind token.Kind) {
	msg := fmt.Sprintf("no prefix parse function for %s found", kind)
	p.addError(msg, p.curToken)
}

func (p *Parser) addError(msg string, tok token.Token) {
	p.errors = append(p.errors, newParseError(msg, tok))
	p.logger.Debug("Syntax error", intplog.Fields{
		"message": msg,
		"line":    tok.Pos.Line,
		"column":  tok.Pos.Column,
	})
}

// synchronize skips the rest of an aborted statement. It stops on the
// terminating semicolon, at end of input, or inside a block before a
// closing brace so the block still sees its end.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		if p.blockDepth > 0 && p.peekTokenIs(token.RBRACE) {
			return
		}
		p.nextToken()
	}
}

func (p *Parser) peekPrecedence() Precedence {
	if prec, ok := p.precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() Precedence {
	if prec, ok := p.precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}
