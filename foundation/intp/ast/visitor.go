// File: visitor.go
// Title: AST Traversal
// Description: Depth-first traversal of AST nodes with a Visitor interface,
//              plus visitors built on it: an indented tree printer and a
//              validator that reports missing child nodes left behind by
//              parse errors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Walk, Inspect and tree printer
// - 2026-10-17 v0.2.0: Validation visitor for incomplete trees

package ast

import (
	"fmt"
	"strings"

	intperror "github.com/msto63/intp/foundation/core/error"
)

// Visitor is called by Walk for every node. If Visit returns a non-nil
// visitor w, Walk visits each child of node with w and finally calls
// w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at node in depth-first order.
// Missing children are skipped.
func Walk(v Visitor, node Node) {
	if isNil(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *LetStatement:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Value)
	case *ReturnStatement:
		Walk(v, n.ReturnValue)
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *PrefixExpression:
		Walk(v, n.Right)
	case *InfixExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *IfExpression:
		Walk(v, n.Condition)
		if n.Consequence != nil {
			Walk(v, n.Consequence)
		}
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *CallExpression:
		Walk(v, n.Function)
		for _, a := range n.Arguments {
			Walk(v, a)
		}
	case *ArrayLiteral:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *IndexExpression:
		Walk(v, n.Left)
		Walk(v, n.Index)
	case *HashLiteral:
		for _, pair := range n.Pairs {
			Walk(v, pair.Key)
			Walk(v, pair.Value)
		}
	case *Identifier, *IntegerLiteral, *StringLiteral, *Boolean:
		// leaves
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree calling f for each node; when f returns
// false the children of that node are skipped. After the children of a
// node f is called with nil.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// treePrinter renders one node per line, indented by depth
type treePrinter struct {
	out   *strings.Builder
	depth *int
}

func (tp treePrinter) Visit(node Node) Visitor {
	if node == nil {
		*tp.depth--
		return nil
	}

	tp.out.WriteString(strings.Repeat("  ", *tp.depth))
	tp.out.WriteString(describe(node))
	tp.out.WriteString("\n")
	*tp.depth++
	return tp
}

// describe returns a one-line label for a node
func describe(node Node) string {
	switch n := node.(type) {
	case *Program:
		return fmt.Sprintf("Program (%d statements)", len(n.Statements))
	case *LetStatement:
		return "LetStatement"
	case *ReturnStatement:
		return "ReturnStatement"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "BlockStatement"
	case *Identifier:
		return fmt.Sprintf("Identifier %s", n.Value)
	case *IntegerLiteral:
		return fmt.Sprintf("IntegerLiteral %d", n.Value)
	case *StringLiteral:
		return fmt.Sprintf("StringLiteral %q", n.Value)
	case *Boolean:
		return fmt.Sprintf("Boolean %t", n.Value)
	case *PrefixExpression:
		return fmt.Sprintf("PrefixExpression %s", n.Operator)
	case *InfixExpression:
		return fmt.Sprintf("InfixExpression %s", n.Operator)
	case *IfExpression:
		return "IfExpression"
	case *FunctionLiteral:
		return fmt.Sprintf("FunctionLiteral (%d parameters)", len(n.Parameters))
	case *CallExpression:
		return fmt.Sprintf("CallExpression (%d arguments)", len(n.Arguments))
	case *ArrayLiteral:
		return fmt.Sprintf("ArrayLiteral (%d elements)", len(n.Elements))
	case *IndexExpression:
		return "IndexExpression"
	case *HashLiteral:
		return fmt.Sprintf("HashLiteral (%d pairs)", len(n.Pairs))
	default:
		return fmt.Sprintf("%T", node)
	}
}

// TreeString returns an indented outline of the tree rooted at node
func TreeString(node Node) string {
	var out strings.Builder
	depth := 0
	Walk(treePrinter{out: &out, depth: &depth}, node)
	return out.String()
}

// validator collects missing-child errors
type validator struct {
	errs []error
}

func (v *validator) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *LetStatement:
		if n.Name == nil {
			v.missing(n, "name")
		}
		if isNil(n.Value) {
			v.missing(n, "value")
		}
	case *ExpressionStatement:
		if isNil(n.Expression) {
			v.missing(n, "expression")
		}
	case *PrefixExpression:
		if isNil(n.Right) {
			v.missing(n, "right operand")
		}
	case *InfixExpression:
		if isNil(n.Left) {
			v.missing(n, "left operand")
		}
		if isNil(n.Right) {
			v.missing(n, "right operand")
		}
	case *IfExpression:
		if isNil(n.Condition) {
			v.missing(n, "condition")
		}
		if n.Consequence == nil {
			v.missing(n, "consequence")
		}
	case *FunctionLiteral:
		if n.Body == nil {
			v.missing(n, "body")
		}
	case *CallExpression:
		for i, a := range n.Arguments {
			if isNil(a) {
				v.missing(n, fmt.Sprintf("argument %d", i+1))
			}
		}
	case *ArrayLiteral:
		for i, e := range n.Elements {
			if isNil(e) {
				v.missing(n, fmt.Sprintf("element %d", i+1))
			}
		}
	case *IndexExpression:
		if isNil(n.Index) {
			v.missing(n, "index")
		}
	case *HashLiteral:
		for i, pair := range n.Pairs {
			if isNil(pair.Key) || isNil(pair.Value) {
				v.missing(n, fmt.Sprintf("pair %d", i+1))
			}
		}
	}

	return v
}

func (v *validator) missing(node Node, what string) {
	v.errs = append(v.errs, intperror.New(fmt.Sprintf("%s at %s is missing its %s", describeKind(node), node.Pos(), what)).
		WithCode(intperror.CodeIncompleteTree).
		WithOperation("ast.Validate").
		WithDetail("line", node.Pos().Line).
		WithDetail("column", node.Pos().Column))
}

// describeKind returns the bare node type name
func describeKind(node Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

// Validate reports every child slot that the parser left empty. A tree
// built from input without diagnostics validates cleanly.
func Validate(node Node) []error {
	v := &validator{}
	Walk(v, node)
	return v.errs
}
