// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// shortEsc maps control characters with a two-character escape to the
// letter that follows the backslash.
var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  0, // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote escapes src for inclusion between the quotation marks of a string.
// The result does not include the quotation marks.
//
// Quotation marks, backslashes, and control characters are escaped, as are
// the replacement rune and the Unicode line and paragraph separators. All
// other runes are copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := shortEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = appendU4(buf, r)
			}
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			buf = appendU4(buf, r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	return buf
}

// appendU4 appends a \uXXXX escape for r, which must be in the BMP.
func appendU4(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
}
