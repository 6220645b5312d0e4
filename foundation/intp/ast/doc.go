// File: doc.go
// Title: Abstract Syntax Tree Package Documentation
// Description: Defines the statement and expression nodes that the parser
//              builds, their source rendering, and traversal utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial AST implementation
// - 2026-10-17 v0.2.0: Walk, Inspect, Validate and Dump

/*
Package ast defines the Abstract Syntax Tree of the intp language.

A parsed source text is a *Program holding a list of statements. The
statement set is closed: *LetStatement, *ReturnStatement,
*ExpressionStatement and *BlockStatement. Expressions are identifiers,
integer, string and boolean literals, prefix and infix operations, if
expressions, function literals, calls, arrays, index operations and hash
literals.

Every node renders itself back to source text with String(). Operator
applications are fully parenthesized, so the rendering shows exactly how
the parser grouped the input:

	-a * b      =>  ((-a) * b);
	a + b * c   =>  (a + (b * c));

A tree produced from input with syntax errors may contain empty child
slots. Rendering prints them as nothing, Walk skips them and Validate
reports each one with its position.

Traversal follows the go/ast model:

	ast.Inspect(program, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			fmt.Println(id.Value)
		}
		return true
	})
*/
package ast
