// Package testutil defines support code for unit tests.
package testutil

import (
	"errors"
	"strings"
)

// Nest returns inner wrapped in n levels of open and close delimiters,
// for example Nest(2, "[", "]", "1") == "[[1]]".
func Nest(n int, open, close, inner string) string {
	return strings.Repeat(open, n) + inner + strings.Repeat(close, n)
}

// ErrSinkFull is the error reported by a FailWriter when its limit is
// exceeded.
var ErrSinkFull = errors.New("sink is full")

// FailWriter is an io.Writer that accepts up to Limit bytes and then fails
// with ErrSinkFull. The bytes accepted are recorded in Got.
type FailWriter struct {
	Limit int
	Got   strings.Builder
}

func (f *FailWriter) Write(data []byte) (int, error) {
	room := f.Limit - f.Got.Len()
	if len(data) <= room {
		return f.Got.Write(data)
	}
	if room > 0 {
		f.Got.Write(data[:room])
	} else {
		room = 0
	}
	return room, ErrSinkFull
}
