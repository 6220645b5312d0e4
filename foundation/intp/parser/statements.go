// File: statements.go
// Title: Statement Parsing
// Description: Recursive descent rules for let, return, expression and
//              block statements.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Let, return and expression statements
// - 2026-10-17 v0.2.0: Let and return parse their value expression;
//                      block statements
// - 2026-10-19 v0.2.1: Aborted statements are dropped in one place; bare
//                      return before } or end of input

package parser

import (
	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/token"
)

// parseStatement parses one statement. A statement in which a required
// token was missing is dropped and the input skipped to its end.
func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement

	switch p.curToken.Kind {
	case token.LET:
		stmt = p.parseLetStatement()
	case token.RETURN:
		stmt = p.parseReturnStatement()
	default:
		stmt = p.parseExpressionStatement()
	}

	if p.aborted {
		p.aborted = false
		p.synchronize()
		return nil
	}
	return stmt
}

// parseLetStatement parses: let <identifier> = <expression>[;]
func (p *Parser) parseLetStatement() ast.Statement {
	defer p.trace("parseLetStatement")()

	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses: return [<expression>][;]
// The value may be omitted before ;, } or end of input.
func (p *Parser) parseReturnStatement() ast.Statement {
	defer p.trace("parseReturnStatement")()

	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}
	if p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression with an optional
// trailing semicolon. A failed expression leaves a nil hole.
func (p *Parser) parseExpressionStatement() ast.Statement {
	defer p.trace("parseExpressionStatement")()

	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseBlockStatement parses statements up to the closing brace. The
// current token is { on entry and } (or EOF) on return.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	defer p.trace("parseBlockStatement")()

	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.blockDepth++
	defer func() { p.blockDepth-- }()

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.addError("expected next token to be }, got EOF instead", p.curToken)
	}

	return block
}
