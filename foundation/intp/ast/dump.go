// File: dump.go
// Title: Structural AST Dump
// Description: Converts an AST into nested maps and slices that encode
//              cleanly as JSON or YAML. Used by the command line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

// Dump returns a structural representation of node. Every node becomes a
// map with at least "kind" and "pos"; child nodes are nested under their
// field names. A missing child is represented as nil.
func Dump(node Node) map[string]interface{} {
	if isNil(node) {
		return nil
	}

	m := map[string]interface{}{
		"kind": describeKind(node),
		"pos":  node.Pos().String(),
	}

	switch n := node.(type) {
	case *Program:
		m["statements"] = dumpStatements(n.Statements)
	case *LetStatement:
		m["name"] = dumpIdentifier(n.Name)
		m["value"] = Dump(n.Value)
	case *ReturnStatement:
		m["value"] = Dump(n.ReturnValue)
	case *ExpressionStatement:
		m["expression"] = Dump(n.Expression)
	case *BlockStatement:
		m["statements"] = dumpStatements(n.Statements)
	case *Identifier:
		m["value"] = n.Value
	case *IntegerLiteral:
		m["value"] = n.Value
	case *StringLiteral:
		m["value"] = n.Value
	case *Boolean:
		m["value"] = n.Value
	case *PrefixExpression:
		m["operator"] = n.Operator
		m["right"] = Dump(n.Right)
	case *InfixExpression:
		m["operator"] = n.Operator
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
	case *IfExpression:
		m["condition"] = Dump(n.Condition)
		m["consequence"] = dumpBlock(n.Consequence)
		if n.Alternative != nil {
			m["alternative"] = dumpBlock(n.Alternative)
		}
	case *FunctionLiteral:
		params := make([]interface{}, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, dumpIdentifier(p))
		}
		m["parameters"] = params
		m["body"] = dumpBlock(n.Body)
	case *CallExpression:
		m["function"] = Dump(n.Function)
		m["arguments"] = dumpExpressions(n.Arguments)
	case *ArrayLiteral:
		m["elements"] = dumpExpressions(n.Elements)
	case *IndexExpression:
		m["left"] = Dump(n.Left)
		m["index"] = Dump(n.Index)
	case *HashLiteral:
		pairs := make([]interface{}, 0, len(n.Pairs))
		for _, pair := range n.Pairs {
			pairs = append(pairs, map[string]interface{}{
				"key":   Dump(pair.Key),
				"value": Dump(pair.Value),
			})
		}
		m["pairs"] = pairs
	}

	return m
}

// The typed helpers avoid passing typed nil pointers through the Node interface.

func dumpIdentifier(id *Identifier) map[string]interface{} {
	if id == nil {
		return nil
	}
	return Dump(id)
}

func dumpBlock(bs *BlockStatement) map[string]interface{} {
	if bs == nil {
		return nil
	}
	return Dump(bs)
}

func dumpStatements(stmts []Statement) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func dumpExpressions(exprs []Expression) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Dump(e))
	}
	return out
}
