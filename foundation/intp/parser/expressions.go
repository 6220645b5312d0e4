// File: expressions.go
// Title: Expression Parsing
// Description: Pratt expression loop together with all prefix and infix
//              parse functions.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Identifiers, integers, prefix and infix operators
// - 2026-10-17 v0.2.0: Booleans, grouping, if, functions, calls, strings,
//                      arrays, index and hash literals
// - 2026-10-19 v0.2.1: Stop climbing once the statement is aborted

package parser

import (
	"fmt"
	"strconv"

	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/token"
)

// parseExpression parses an expression whose operators bind tighter than
// precedence. It returns nil when the current token cannot start one.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	defer p.trace("parseExpression")()

	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Kind)
		return nil
	}
	leftExp := prefix()

	for !p.aborted && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return leftExp
		}

		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	defer p.trace("parseIntegerLiteral")()

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as integer", p.curToken.Literal), p.curToken)
		return nil
	}

	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	defer p.trace("parsePrefixExpression")()

	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	defer p.trace("parseInfixExpression")()

	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// parseIfExpression parses: if (<condition>) { ... } [else { ... }]
func (p *Parser) parseIfExpression() ast.Expression {
	defer p.trace("parseIfExpression")()

	expression := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

// parseFunctionLiteral parses: fn(<parameters>) { ... }
func (p *Parser) parseFunctionLiteral() ast.Expression {
	defer p.trace("parseFunctionLiteral")()

	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	lit.Parameters = params

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}

	return identifiers, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	defer p.trace("parseCallExpression")()

	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	exp.Arguments = args

	return exp
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	defer p.trace("parseArrayLiteral")()

	array := &ast.ArrayLiteral{Token: p.curToken}

	elements, ok := p.parseExpressionList(token.RBRACKET)
	if !ok {
		return nil
	}
	array.Elements = elements

	return array
}

// parseExpressionList parses comma separated expressions up to end. The
// opening delimiter is the current token on entry.
func (p *Parser) parseExpressionList(end token.Kind) ([]ast.Expression, bool) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil, false
	}

	return list, true
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	defer p.trace("parseIndexExpression")()

	exp := &ast.IndexExpression{Token: p.curToken, Left: left}

	p.nextToken()
	exp.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return exp
}

// parseHashLiteral parses: {<key>: <value>, ...}
func (p *Parser) parseHashLiteral() ast.Expression {
	defer p.trace("parseHashLiteral")()

	hash := &ast.HashLiteral{Token: p.curToken, Pairs: []ast.HashPair{}}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(token.COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	return hash
}
