// Package stringx provides Unicode-safe string helpers for formatting
// terminal output: blank checks, truncation with an ellipsis, padding of
// table columns and line indentation.
//
//	stringx.Truncate("let answer = 42;", 10)   // "let ans..."
//	stringx.PadRight("INT", 8, ' ')            // "INT     "
//	stringx.Indent("a\nb", "  ")               // "  a\n  b"
package stringx
