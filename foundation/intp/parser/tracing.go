// File: tracing.go
// Title: Grammar Rule Tracing
// Description: Optional BEGIN/END logging of grammar rules, indented by
//              nesting depth, for following the parser through an input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"strings"

	intplog "github.com/msto63/intp/foundation/core/log"
)

const traceIndent = "  "

// trace logs entry into rule and returns the function logging its exit.
// Usage: defer p.trace("parseExpression")()
func (p *Parser) trace(rule string) func() {
	if !p.options.Trace {
		return func() {}
	}

	p.traceDepth++
	p.traceLine("BEGIN " + rule)

	return func() {
		p.traceLine("END " + rule)
		p.traceDepth--
	}
}

func (p *Parser) traceLine(msg string) {
	p.logger.Trace(strings.Repeat(traceIndent, p.traceDepth-1)+msg, intplog.Fields{
		"token": p.curToken.String(),
	})
}
