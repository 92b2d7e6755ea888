// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// eof is the sentinel rune reported by a cursor at the end of its input.
const eof rune = -1

// A cursor scans the runes of a source text, keeping track of the byte
// offsets and line/column positions of the current lexeme.
//
// The lexeme under construction runs from the last call to step up to the
// current position.
type cursor struct {
	src mem.RO

	start, pos int // byte offsets of the lexeme start and the next rune

	first, cur LineCol // line/column at start and at pos
}

func newCursor(src mem.RO) *cursor {
	lc := LineCol{Line: 1, Column: 1}
	return &cursor{src: src, first: lc, cur: lc}
}

// decode reports the rune at offset and its length in bytes.
// At the end of input it returns eof, 0.
func (c *cursor) decode(offset int) (rune, int) {
	if offset >= c.src.Len() {
		return eof, 0
	}
	return mem.DecodeRune(c.src.SliceFrom(offset))
}

// advance consumes and returns the next rune, or returns eof.
func (c *cursor) advance() rune {
	r, n := c.decode(c.pos)
	if n == 0 {
		return eof
	}
	c.pos += n
	c.cur = c.cur.next(r)
	return r
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() rune {
	r, _ := c.decode(c.pos)
	return r
}

// peekNext returns the rune after the next one without consuming anything.
func (c *cursor) peekNext() rune {
	_, n := c.decode(c.pos)
	if n == 0 {
		return eof
	}
	r, _ := c.decode(c.pos + n)
	return r
}

// matchNext consumes the next rune if it equals want, and reports whether it
// did so.
func (c *cursor) matchNext(want rune) bool {
	if c.peek() == want {
		c.advance()
		return true
	}
	return false
}

// advanceWhile consumes the maximal run of runes satisfying f.  It reports
// false if the input was exhausted during the run, true if the run ended at a
// rune not satisfying f.
func (c *cursor) advanceWhile(f func(rune) bool) bool {
	for {
		r := c.peek()
		if r == eof {
			return false
		} else if !f(r) {
			return true
		}
		c.advance()
	}
}

// isFinished reports whether the cursor has consumed all its input.
func (c *cursor) isFinished() bool { return c.pos >= c.src.Len() }

// step commits the current position as the start of the next lexeme.
func (c *cursor) step() { c.start, c.first = c.pos, c.cur }

// span returns the span of everything consumed since the last step.
func (c *cursor) span() Span { return Span{Pos: c.start, End: c.pos} }

// lexeme returns the text consumed since the last step.
func (c *cursor) lexeme() mem.RO { return c.src.Slice(c.start, c.pos) }

// filePos returns the position range of the current lexeme.
func (c *cursor) filePos() FilePosition { return FilePosition{Start: c.first, End: c.cur} }
