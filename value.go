// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"unicode/utf8"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota
	KindArray
	KindObject
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindArray:   "array",
	KindObject:  "object",
	KindString:  "string",
	KindNumber:  "number",
	KindTrue:    "true",
	KindFalse:   "false",
	KindNull:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[k]
}

// A Value is a node of a value tree.  The concrete type of a Value is one of
// Array, Object, String, Number, or Constant; no other implementations are
// possible.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind

	// JSON renders the value as compact text (see ToText).
	JSON() string

	isValue()
}

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return ToText(a) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (Array) isValue() {}

// An Object is a collection of values indexed by unique string keys.
// Keys are stored undecoded, exactly as written between quotes.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return ToText(o) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

func (Object) isValue() {}

// A String is a string value. Its content is the raw text between the
// quotation marks of the source, with escape sequences left undecoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(s) + `"` }

func (String) isValue() {}

// A Number is a floating-point value. Deserialize produces only finite
// numbers; Encode rejects an infinite or NaN Number with ErrNonFinite.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return formatNumber(float64(n)) }

func (Number) isValue() {}

// A Constant is one of the unit values True, False, or Null.
type Constant byte

// The constant values. Each is a distinct variant with its own Kind.
const (
	True Constant = iota + 1
	False
	Null
)

// Kind satisfies the Value interface.
func (c Constant) Kind() Kind {
	switch c {
	case True:
		return KindTrue
	case False:
		return KindFalse
	case Null:
		return KindNull
	}
	return KindInvalid
}

// JSON satisfies the Value interface.
func (c Constant) JSON() string { return c.Kind().String() }

func (c Constant) String() string { return c.JSON() }

func (Constant) isValue() {}

// Bool returns True if b is true, otherwise False.
func Bool(b bool) Constant {
	if b {
		return True
	}
	return False
}

// Equal reports whether a and b are structurally equal.  Arrays are equal if
// they have equal elements in the same order; objects are equal if they have
// the same set of keys with equal values. A nil Value is equal to Null.
func Equal(a, b Value) bool {
	a, b = orNull(a), orNull(b)
	switch at := a.(type) {
	case Array:
		bt, ok := b.(Array)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case Object:
		bt, ok := b.(Object)
		if !ok || len(at) != len(bt) {
			return false
		}
		for key, av := range at {
			bv, ok := bt[key]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func orNull(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}

// Describe returns a short human-readable summary of v, suitable for
// diagnostics. Unlike JSON, it does not render the contents of containers.
func Describe(v Value) string {
	switch t := orNull(v).(type) {
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(t))
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(t))
	case String:
		const maxLen = 24
		if len(t) > maxLen {
			cut := maxLen
			for cut > 0 && !utf8.RuneStart(t[cut]) {
				cut--
			}
			return fmt.Sprintf("String(%q...)", string(t[:cut]))
		}
		return fmt.Sprintf("String(%q)", string(t))
	default:
		return t.JSON()
	}
}
