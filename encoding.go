// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// Quote constructs a String whose decoded content is s. Characters that may
// not appear literally between quotation marks are escaped.
//
// The parser and serializer never decode or encode escapes; Quote and
// Unquote are for callers that need the plain text.
func Quote(s string) String { return String(escape.Quote(mem.S(s))) }

// Unquote decodes the escape sequences in s and returns the plain text.
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func (s String) Unquote() (string, error) {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
