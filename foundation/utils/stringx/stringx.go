// File: stringx.go
// Title: String Utility Functions
// Description: Small Unicode-safe string helpers used by the command line
//              tools and the terminal UI for formatting output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.1.0: IsBlank, Truncate, PadRight
// - 2026-10-19 v0.2.0: Indent, FirstNonBlank

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended by Truncate
const Ellipsis = "..."

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes. A shortened string ends in
// Ellipsis, which counts towards maxLen.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(Ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(Ellipsis)[:maxLen])
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + Ellipsis
}

// PadRight pads s with pad runes up to width runes
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// Indent prefixes every non-empty line of s with prefix
func Indent(s, prefix string) string {
	if s == "" || prefix == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
