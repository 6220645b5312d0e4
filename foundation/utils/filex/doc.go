// Package filex provides the file helpers of the intp tools: reading a
// source input from a path or standard input, and atomic replacement of
// small state files.
package filex
