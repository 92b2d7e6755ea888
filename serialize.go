// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrNonFinite is reported by Encode for a Number that is infinite or NaN,
// which has no representation in the text grammar.
var ErrNonFinite = errors.New("non-finite number")

// Serialize writes the compact text encoding of v to w using the default
// Encoder settings. It returns the first error reported by w, if any.
func Serialize(w io.Writer, v Value) error {
	var enc Encoder
	return enc.Encode(w, v)
}

// ToText returns the compact text encoding of v as a string.
// Unlike Serialize, it renders a non-finite Number as +Inf, -Inf, or NaN,
// which Deserialize does not accept.
func ToText(v Value) string {
	var enc Encoder
	return enc.ToText(v)
}

// An Encoder carries settings for rendering values as text.
// A zero value is ready for use with default settings.
//
// The output contains no inserted whitespace. Strings are written verbatim
// between quotation marks, since their content is stored undecoded. Numbers
// use the shortest representation that round-trips, without an exponent.
// A nil Value is written as null.
type Encoder struct {
	// SortKeys causes object members to be written in ascending order by key.
	// Otherwise members are written in an unspecified order.
	SortKeys bool

	lax bool // render non-finite numbers instead of failing
}

// Encode writes the compact text encoding of v to w.
// It returns the first error reported by w, if any. If v contains a Number
// that is infinite or NaN, Encode reports an error wrapping ErrNonFinite.
func (e Encoder) Encode(w io.Writer, v Value) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	ew := &errWriter{w: bw}
	e.encodeValue(ew, v)
	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// ToText returns the compact text encoding of v as a string.
// A non-finite Number is rendered as by the ToText function.
func (e Encoder) ToText(v Value) string {
	var sb strings.Builder
	e.lax = true
	e.Encode(&sb, v) // a strings.Builder does not fail
	return sb.String()
}

func (e Encoder) encodeValue(w *errWriter, v Value) {
	if w.err != nil {
		return
	}
	switch t := orNull(v).(type) {
	case Array:
		w.writeByte('[')
		for i, elt := range t {
			if i > 0 {
				w.writeByte(',')
			}
			e.encodeValue(w, elt)
		}
		w.writeByte(']')

	case Object:
		w.writeByte('{')
		for i, key := range e.keys(t) {
			if i > 0 {
				w.writeByte(',')
			}
			w.writeByte('"')
			w.writeString(key)
			w.writeString(`":`)
			e.encodeValue(w, t[key])
		}
		w.writeByte('}')

	case String:
		w.writeByte('"')
		w.writeString(string(t))
		w.writeByte('"')

	case Number:
		f := float64(t)
		if !e.lax && (math.IsInf(f, 0) || math.IsNaN(f)) {
			w.err = fmt.Errorf("%w: %v", ErrNonFinite, f)
			return
		}
		w.writeString(formatNumber(f))

	case Constant:
		w.writeString(t.JSON())
	}
}

// keys returns the keys of o in the order they should be written.
func (e Encoder) keys(o Object) []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	if e.SortKeys {
		slices.Sort(keys)
	}
	return keys
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// errWriter wraps a writer and records the first error it reports.
// Once an error has occurred, further writes are discarded.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (w *errWriter) writeByte(b byte) {
	if w.err == nil {
		w.err = w.w.WriteByte(b)
	}
}

func (w *errWriter) writeString(s string) {
	if w.err == nil {
		_, w.err = w.w.WriteString(s)
	}
}
