// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "math"

// Config carries the settings that control lexing and parsing.
// Use DefaultConfig to obtain the default settings and modify a copy.
type Config struct {
	// MaxDepth is the maximum nesting depth of arrays and objects. A value
	// nested inside MaxDepth containers is accepted; one more level fails.
	//
	// The parser recurses once per level of nesting. With the default bound,
	// input nested millions of levels deep can exhaust the goroutine stack,
	// which is a fatal error rather than a returned *Error. Programs that
	// parse untrusted input should set a finite bound, such as 10000.
	MaxDepth int `yaml:"max_depth"`

	// RecoverFromErrors allows a trailing comma before the closing bracket
	// of an array or the closing brace of an object.
	RecoverFromErrors bool `yaml:"recover_from_errors"`

	// AllowComments enables "//" line comments and "/* ... */" block
	// comments, which are otherwise rejected.
	AllowComments bool `yaml:"allow_comments"`
}

// DefaultConfig returns the default configuration: unbounded depth, no
// trailing commas, and no comments. See Config.MaxDepth for the hazard of
// unbounded depth on untrusted input.
func DefaultConfig() Config {
	return Config{MaxDepth: math.MaxInt}
}
