// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a parser and serializer for a JSON-like grammar
// that converts source text into a tree of values and back.
//
// # Parsing
//
// Call Deserialize to parse a complete text into a Value:
//
//	v, err := jvalue.Deserialize(`{"name": "thing", "sizes": [1, 2.5]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parsing proceeds in two phases. First the text is split into a sequence of
// tokens (see Tokenize); then the tokens are parsed by recursive descent into
// a value tree. An error in either phase stops processing, and no partial
// value is returned. Errors have concrete type *Error, and include the line
// and column of the failure when it is known:
//
//	[3:14]: Trailing comma on list
//
// The grammar is close to JSON, with these differences:
//
//   - Numbers are decimal digits with an optional fraction. There is no
//     exponent notation, and a minus sign is accepted only immediately before
//     the digits.
//   - String contents are kept exactly as written: escape sequences are
//     neither validated nor decoded (but see Quote and String.Unquote).
//   - Duplicate object keys are allowed; the last one wins.
//
// # Configuration
//
// DeserializeWithConfig accepts a Config to control leniency:
//
//	cfg := jvalue.DefaultConfig()
//	cfg.AllowComments = true     // accept // and /* */ comments
//	cfg.RecoverFromErrors = true // accept [1, 2,] and {"a": 1,}
//	cfg.MaxDepth = 64            // reject values nested more deeply
//
// # Values
//
// A Value is one of the concrete types Array, Object, String, Number, or
// Constant (True, False, Null). Use a type switch or the Kind method to
// discriminate them, or the accessor functions Get, Index, AsString,
// AsNumber, and AsBool, which report false when the shape does not match.
// The Expect and Must variants panic instead, for call sites where the shape
// is already known.
//
// # Serialization
//
// Serialize writes the compact text of a value to an io.Writer, and ToText
// returns it as a string. Object members are written in unspecified order
// unless an Encoder with SortKeys is used.
//
// Values and tokens are not shared between calls, and the package has no
// mutable global state, so concurrent calls on independent inputs are safe.
package jvalue
