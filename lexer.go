// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"go4.org/mem"
)

// Tokenize scans src into a sequence of tokens according to the settings in
// cfg. Whitespace and comments are discarded.  Tokenize stops at the first
// lexical error, which has concrete type *Error.
func Tokenize(src string, cfg Config) ([]Token, error) { return tokenize(mem.S(src), cfg) }

// TokenizeBytes is as Tokenize, but scans a byte slice.
func TokenizeBytes(src []byte, cfg Config) ([]Token, error) { return tokenize(mem.B(src), cfg) }

func tokenize(src mem.RO, cfg Config) ([]Token, error) {
	lx := &lexer{c: newCursor(src), comments: cfg.AllowComments}
	var toks []Token
	for !lx.c.isFinished() {
		lx.c.step()
		tok, ok, err := lx.scanToken()
		if err != nil {
			return nil, err
		} else if ok {
			toks = append(toks, tok)
		}
	}
	return toks, nil
}

// A lexer drives a cursor to produce tokens.
type lexer struct {
	c        *cursor
	comments bool // allow comments
}

// scanToken scans a single lexeme starting at the current position. It
// reports false without error if the lexeme produced no token (whitespace
// and comments).
func (lx *lexer) scanToken() (Token, bool, error) {
	ch := lx.c.advance()

	// Handle punctuation.
	if t, ok := punctuation(ch); ok {
		return lx.token(t)
	}

	switch {
	case isSpace(ch):
		return Token{}, false, nil
	case ch == '/':
		return Token{}, false, lx.scanComment()
	case ch == '"':
		return lx.scanString()
	case isDigit(ch):
		return lx.scanNumber()
	case isAlpha(ch):
		return lx.scanKeyword()
	default:
		return Token{}, false, lx.failf("Unexpected character %q", ch)
	}
}

func (lx *lexer) token(kind TokenKind) (Token, bool, error) {
	return Token{Kind: kind, Span: lx.c.span()}, true, nil
}

// scanComment consumes a comment whose leading "/" has been read.
func (lx *lexer) scanComment() error {
	if !lx.comments {
		return lx.failf("Comments are not supported")
	}
	switch {
	case lx.c.matchNext('/'):
		lx.c.advanceWhile(isNotLF) // leave the newline as whitespace
		return nil

	case lx.c.matchNext('*'):
		for {
			if !lx.c.advanceWhile(isNotStar) {
				return lx.failf("Non-terminated comment block")
			}
			lx.c.advance() // the "*"
			if lx.c.matchNext('/') {
				return nil
			}
			// We saw "*" but not "/", so keep scanning for the end of the block.
		}

	default:
		return lx.failf("Unexpected character %q", '/')
	}
}

// scanString consumes a string whose opening quote has been read.
func (lx *lexer) scanString() (Token, bool, error) {
	var esc bool
	for {
		ch := lx.c.advance()
		switch {
		case ch == eof:
			return Token{}, false, lx.failf("Unterminated string")
		case esc:
			esc = false
		case ch == '\\':
			esc = true
		case ch == '"':
			return lx.token(StringToken)
		}
	}
}

// scanNumber consumes the digits of a number whose first digit has been read,
// followed by an optional fraction.
func (lx *lexer) scanNumber() (Token, bool, error) {
	lx.c.advanceWhile(isDigit)
	if lx.c.peek() == '.' && isDigit(lx.c.peekNext()) {
		lx.c.advance() // the "."
		lx.c.advanceWhile(isDigit)
	}
	return lx.token(NumberToken)
}

// scanKeyword consumes a name whose first letter has been read. The name
// must be one of the constants true, false, or null.
func (lx *lexer) scanKeyword() (Token, bool, error) {
	lx.c.advanceWhile(isNameRune)
	switch name := lx.c.lexeme(); {
	case name.EqualString("true"):
		return lx.token(TrueToken)
	case name.EqualString("false"):
		return lx.token(FalseToken)
	case name.EqualString("null"):
		return lx.token(NullToken)
	default:
		return Token{}, false, lx.failf("Unknown keyword '%s'", name.StringCopy())
	}
}

// failf reports an error located at the lexeme under construction.
func (lx *lexer) failf(msg string, args ...any) error {
	return newError(lx.c.filePos(), msg, args...)
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNotStar(ch rune) bool { return ch != '*' }
func isNotLF(ch rune) bool   { return ch != '\n' }
func isDigit(ch rune) bool   { return '0' <= ch && ch <= '9' }
func isAlpha(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

func isNameRune(ch rune) bool { return isAlpha(ch) || isDigit(ch) || ch == '_' }
