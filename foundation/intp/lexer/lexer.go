// File: lexer.go
// Title: Lexical Analyzer (Tokenizer)
// Description: Converts source text into a stream of tokens, one token per
//              NextToken call. Tracks byte offset, line and column for every
//              token so the parser can report positioned diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial lexer (operators, identifiers, integers)
// - 2026-10-16 v0.2.0: String literals, brackets, colon, rune-safe ILLEGAL tokens

package lexer

import (
	"unicode/utf8"

	"github.com/msto63/intp/foundation/intp/token"
)

// Lexer performs lexical analysis of a single source string. It is a
// stateful producer: every NextToken call advances the input.
type Lexer struct {
	input        string
	position     int  // Current position in input (points to current char)
	readPosition int  // Current reading position (after current char)
	ch           byte // Current char under examination, 0 past the end
	line         int  // Current line number (1-based)
	column       int  // Current column number (1-based, in bytes)
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. Once the input is
// exhausted it returns an EOF token on every call.
func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	pos := token.Pos{Offset: l.position, Line: l.line, Column: l.column}

	if l.atEOF() {
		return token.Token{Kind: token.EOF, Literal: "", Pos: pos}
	}

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			tok = l.readTwoCharToken(token.EQ, pos)
		} else {
			tok = newToken(token.ASSIGN, l.ch, pos)
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.readTwoCharToken(token.NOT_EQ, pos)
		} else {
			tok = newToken(token.BANG, l.ch, pos)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, pos)
	case '-':
		tok = newToken(token.MINUS, l.ch, pos)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, pos)
	case '/':
		tok = newToken(token.SLASH, l.ch, pos)
	case '<':
		tok = newToken(token.LT, l.ch, pos)
	case '>':
		tok = newToken(token.GT, l.ch, pos)
	case ',':
		tok = newToken(token.COMMA, l.ch, pos)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, pos)
	case ':':
		tok = newToken(token.COLON, l.ch, pos)
	case '(':
		tok = newToken(token.LPAREN, l.ch, pos)
	case ')':
		tok = newToken(token.RPAREN, l.ch, pos)
	case '{':
		tok = newToken(token.LBRACE, l.ch, pos)
	case '}':
		tok = newToken(token.RBRACE, l.ch, pos)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, pos)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, pos)
	case '"':
		literal, terminated := l.readString()
		if !terminated {
			// Nothing left to consume; the closing readChar below is a no-op.
			return token.Token{Kind: token.ILLEGAL, Literal: literal, Pos: pos}
		}
		tok = token.Token{Kind: token.STRING, Literal: literal, Pos: pos}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.Token{Kind: token.LookupIdent(literal), Literal: literal, Pos: pos}
		} else if isDigit(l.ch) {
			return token.Token{Kind: token.INT, Literal: l.readNumber(), Pos: pos}
		}
		return l.readIllegal(pos)
	}

	l.readChar()
	return tok
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	// The character being left behind decides the line change.
	if l.position < len(l.input) && l.readPosition > 0 && l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// atEOF reports whether the current position is past the input.
// A NUL byte inside the input is not end of input.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// readTwoCharToken consumes the current and the peeked character as one token
func (l *Lexer) readTwoCharToken(kind token.Kind, pos token.Pos) token.Token {
	ch := l.ch
	l.readChar()
	return token.Token{Kind: kind, Literal: string(ch) + string(l.ch), Pos: pos}
}

// readIdentifier reads a maximal run of letters and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a double-quoted string literal without escape handling.
// It returns the text between the quotes, or for an unterminated string the
// opening quote plus the rest of the input and false.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1
	for {
		l.readChar()
		if l.atEOF() {
			return l.input[start-1:], false
		}
		if l.ch == '"' {
			return l.input[start:l.position], true
		}
	}
}

// readIllegal consumes one whole character, which may span several bytes
func (l *Lexer) readIllegal(pos token.Pos) token.Token {
	size := 1
	if l.ch >= utf8.RuneSelf {
		_, size = utf8.DecodeRuneInString(l.input[l.position:])
	}

	literal := l.input[l.position : l.position+size]
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return token.Token{Kind: token.ILLEGAL, Literal: literal, Pos: pos}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a single-character token
func newToken(kind token.Kind, ch byte, pos token.Pos) token.Token {
	return token.Token{Kind: kind, Literal: string(ch), Pos: pos}
}

// isLetter checks if the character may appear in an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize returns all tokens of the input up to and including the single
// terminating EOF token.
func Tokenize(input string) []token.Token {
	l := New(input)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
