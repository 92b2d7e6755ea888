// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// Slice returns the text of src covered by s.
func (s Span) Slice(src string) string { return src[s.Pos:s.End] }

func (s Span) slice(src mem.RO) mem.RO { return src.Slice(s.Pos, s.End) }

func (s Span) String() string { return fmt.Sprintf("[%d:%d]", s.Pos, s.End) }

// FilePosition computes the line and column range of s in src.
// It panics if s is out of range for src.
func (s Span) FilePosition(src string) FilePosition { return s.filePosition(mem.S(src)) }

func (s Span) filePosition(src mem.RO) FilePosition {
	start := advanceLineCol(LineCol{Line: 1, Column: 1}, src.SliceTo(s.Pos))
	return FilePosition{
		Start: start,
		End:   advanceLineCol(start, s.slice(src)),
	}
}

// advanceLineCol returns the position reached from lc after consuming text.
func advanceLineCol(lc LineCol, text mem.RO) LineCol {
	for text.Len() != 0 {
		r, n := mem.DecodeRune(text)
		if n == 0 {
			n = 1
		}
		lc = lc.next(r)
		text = text.SliceFrom(n)
	}
	return lc
}

// A LineCol describes the line number and column of a location in source
// text. Both are 1-based; columns count runes, not bytes.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// next reports the position following lc after reading r.
func (lc LineCol) next(r rune) LineCol {
	if r == '\n' {
		return LineCol{Line: lc.Line + 1, Column: 1}
	}
	return LineCol{Line: lc.Line, Column: lc.Column + 1}
}

// A FilePosition describes the human-facing location of a range of source
// text. Start is the position of the first rune of the range, End is the
// position immediately following its last rune.
//
// The zero FilePosition is not valid, and denotes "no position".
type FilePosition struct {
	Start, End LineCol
}

// IsValid reports whether p denotes an actual position.
func (p FilePosition) IsValid() bool { return p.Start.Line > 0 }

// String renders p as "[l1:c1,l2:c2]".
func (p FilePosition) String() string {
	if !p.IsValid() {
		return "[-]"
	}
	return fmt.Sprintf("[%s,%s]", p.Start, p.End)
}
