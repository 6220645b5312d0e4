// File: ast.go
// Title: AST Node Definitions
// Description: Defines the statement and expression nodes produced by the
//              parser. Every node reports the literal of the token that
//              introduced it and renders itself back to re-parseable source.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Program, let/return/expression statements, identifiers,
//                      integer literals, prefix and infix expressions
// - 2026-10-17 v0.2.0: Booleans, strings, if, blocks, functions, calls,
//                      arrays, index and hash literals

package ast

import (
	"strings"

	"github.com/msto63/intp/foundation/intp/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// TokenLiteral returns the literal of the token that introduced the node
	TokenLiteral() string

	// String renders the node as source text
	String() string

	// Pos returns the source position of the introducing token
	Pos() token.Pos
}

// Statement is a node that can appear in a statement list
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that yields a value
type Expression interface {
	Node
	expressionNode()
}

// render returns the source text of a possibly missing child
func render(n Node) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

// isNil reports whether a child slot is empty. Typed nil pointers count as empty.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *BlockStatement:
		return v == nil
	}
	return false
}

// Program is the root node and owns all top-level statements
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Pos{}
}

// Statements

// LetStatement binds a name: let <name> = <value>;
type LetStatement struct {
	Token token.Token // the LET token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() token.Pos       { return ls.Token.Pos }

func (ls *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(render(ls.Name))
	out.WriteString(" = ")
	out.WriteString(render(ls.Value))
	out.WriteString(";")
	return out.String()
}

// ReturnStatement: return <value>;
type ReturnStatement struct {
	Token       token.Token // the RETURN token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Pos       { return rs.Token.Pos }

func (rs *ReturnStatement) String() string {
	if isNil(rs.ReturnValue) {
		return rs.TokenLiteral() + ";"
	}
	return rs.TokenLiteral() + " " + rs.ReturnValue.String() + ";"
}

// ExpressionStatement wraps a bare expression used as a statement
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Pos       { return es.Token.Pos }

func (es *ExpressionStatement) String() string {
	return render(es.Expression) + ";"
}

// BlockStatement is a braced statement list
type BlockStatement struct {
	Token      token.Token // the { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Pos       { return bs.Token.Pos }

func (bs *BlockStatement) String() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// Expressions

// Identifier is a name reference
type Identifier struct {
	Token token.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() token.Pos       { return i.Token.Pos }

// IntegerLiteral carries the parsed value and the original text
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Pos       { return il.Token.Pos }

// StringLiteral is a double-quoted string without escapes
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }
func (sl *StringLiteral) Pos() token.Pos       { return sl.Token.Pos }

// Boolean is true or false
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) String() string       { return b.Token.Literal }
func (b *Boolean) Pos() token.Pos       { return b.Token.Pos }

// PrefixExpression applies a unary operator: !x, -x
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) Pos() token.Pos       { return pe.Token.Pos }

func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + render(pe.Right) + ")"
}

// InfixExpression applies a binary operator
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) Pos() token.Pos       { return ie.Token.Pos }

func (ie *InfixExpression) String() string {
	return "(" + render(ie.Left) + " " + ie.Operator + " " + render(ie.Right) + ")"
}

// IfExpression: if (<condition>) <consequence> else <alternative>
type IfExpression struct {
	Token       token.Token // the IF token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) Pos() token.Pos       { return ie.Token.Pos }

func (ie *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if (")
	out.WriteString(render(ie.Condition))
	out.WriteString(") ")
	out.WriteString(render(ie.Consequence))
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

// FunctionLiteral: fn(<parameters>) <body>
type FunctionLiteral struct {
	Token      token.Token // the FUNCTION token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) Pos() token.Pos       { return fl.Token.Pos }

func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.String())
	}

	return fl.TokenLiteral() + "(" + strings.Join(params, ", ") + ") " + render(fl.Body)
}

// CallExpression: <function>(<arguments>)
type CallExpression struct {
	Token     token.Token // the ( token
	Function  Expression  // Identifier or FunctionLiteral
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Pos       { return ce.Token.Pos }

func (ce *CallExpression) String() string {
	return render(ce.Function) + "(" + joinExpressions(ce.Arguments) + ")"
}

// ArrayLiteral: [<elements>]
type ArrayLiteral struct {
	Token    token.Token // the [ token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) Pos() token.Pos       { return al.Token.Pos }

func (al *ArrayLiteral) String() string {
	return "[" + joinExpressions(al.Elements) + "]"
}

// IndexExpression: <left>[<index>]
type IndexExpression struct {
	Token token.Token // the [ token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Pos       { return ie.Token.Pos }

func (ie *IndexExpression) String() string {
	return "(" + render(ie.Left) + "[" + render(ie.Index) + "])"
}

// HashPair is one key/value entry of a hash literal
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral: {<key>: <value>, ...}. Pairs keep source order.
type HashLiteral struct {
	Token token.Token // the { token
	Pairs []HashPair
}

func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) Pos() token.Pos       { return hl.Token.Pos }

func (hl *HashLiteral) String() string {
	pairs := make([]string, 0, len(hl.Pairs))
	for _, pair := range hl.Pairs {
		pairs = append(pairs, render(pair.Key)+": "+render(pair.Value))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, render(e))
	}
	return strings.Join(parts, ", ")
}
