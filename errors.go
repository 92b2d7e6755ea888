// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// Error is the concrete type of errors reported by the lexer and parser.
//
// Pos is the location of the failure in the source, if known; a zero Pos
// (for which Pos.IsValid reports false) means no position is available.
type Error struct {
	Message string
	Pos     FilePosition

	err error
}

// Error satisfies the error interface. If e has a position, the message is
// prefixed with "[line:col]: ".
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("[%s]: %s", e.Pos.Start, e.Message)
	}
	return e.Message
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }

func newError(pos FilePosition, msg string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(msg, args...), Pos: pos}
}
