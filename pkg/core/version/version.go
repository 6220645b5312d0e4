// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for all intp components
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

// Version constants for all intp components
const (
	// Release version of the tools
	Platform = "0.1.0"

	// Component versions
	Lexer  = "0.2.0"
	Parser = "0.2.0"
	REPL   = "0.2.0"
	TUI    = "0.1.0"
)

// Components lists the component names in display order
var Components = []string{"lexer", "parser", "repl", "tui"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "repl":
		return REPL
	case "tui":
		return TUI
	default:
		return Platform
	}
}
