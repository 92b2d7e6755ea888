// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// TokenKind is the type of a lexical token in the grammar.
type TokenKind byte

// Constants defining the valid TokenKind values.
const (
	Invalid TokenKind = iota // invalid token
	LBrace                   // left brace "{"
	RBrace                   // right brace "}"
	LSquare                  // left square bracket "["
	RSquare                  // right square bracket "]"
	Comma                    // comma ","
	Dot                      // period "."
	Minus                    // minus sign "-"
	Plus                     // plus sign "+"
	Colon                    // colon ":"
	StringToken              // quoted string
	NumberToken              // number: digits with an optional fraction
	TrueToken                // constant: true
	FalseToken               // constant: false
	NullToken                // constant: null

	// Do not modify the order of these constants without updating the
	// punctuation table below.
)

var tokenStr = [...]string{
	Invalid:     "invalid token",
	LBrace:      `"{"`,
	RBrace:      `"}"`,
	LSquare:     `"["`,
	RSquare:     `"]"`,
	Comma:       `","`,
	Dot:         `"."`,
	Minus:       `"-"`,
	Plus:        `"+"`,
	Colon:       `":"`,
	StringToken: "string",
	NumberToken: "number",
	TrueToken:   "true",
	FalseToken:  "false",
	NullToken:   "null",
}

func (t TokenKind) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Token is a classified, located unit of source text. A Token does not
// carry its text; use the Span to slice it from the source.
type Token struct {
	Kind TokenKind
	Span Span
}

// Text returns the lexeme of t in src.
func (t Token) Text(src string) string { return t.Span.Slice(src) }

func (t Token) String() string { return fmt.Sprintf("%v%v", t.Kind, t.Span) }

var punct = [...]TokenKind{LBrace, RBrace, LSquare, RSquare, Comma, Dot, Minus, Plus, Colon}

// punctuation reports the token kind of a single-rune punctuation token.
func punctuation(ch rune) (TokenKind, bool) {
	const chars = "{}[],.-+:"
	for i, c := range chars {
		if c == ch {
			return punct[i], true
		}
	}
	return Invalid, false
}
