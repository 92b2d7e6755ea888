// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// Get returns the value of the member of v with the given key.  It reports
// false if v is not an Object or has no such key.
func Get(v Value, key string) (Value, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	elt, ok := obj[key]
	return elt, ok
}

// Index returns the element of v at offset i. It reports false if v is not
// an Array or i is out of range.
func Index(v Value, i int) (Value, bool) {
	arr, ok := v.(Array)
	if !ok || i < 0 || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

// AsString returns the raw content of v if it is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsNumber returns the value of v if it is a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsBool returns the truth value of v if it is True or False.
func AsBool(v Value) (bool, bool) {
	switch v {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// ExpectString returns the content of v, which must be a String.
// It panics if v has any other type.
func ExpectString(v Value) string { return expect(AsString, v, "string") }

// ExpectNumber returns the value of v, which must be a Number.
// It panics if v has any other type.
func ExpectNumber(v Value) float64 { return expect(AsNumber, v, "number") }

// ExpectBool returns the truth value of v, which must be True or False.
// It panics if v has any other type.
func ExpectBool(v Value) bool { return expect(AsBool, v, "true or false") }

func expect[T any](get func(Value) (T, bool), v Value, want string) T {
	out, ok := get(v)
	if !ok {
		panic(fmt.Sprintf("got %s, want %s", Describe(v), want))
	}
	return out
}

// MustGet returns the value of the member of v with the given key.
// It panics if v is not an Object or does not contain key.
func MustGet(v Value, key string) Value {
	obj, ok := v.(Object)
	if !ok {
		panic(fmt.Sprintf("cannot look up key %q in %s", key, Describe(v)))
	}
	elt, ok := obj[key]
	if !ok {
		panic(fmt.Sprintf("key %q not found", key))
	}
	return elt
}

// MustIndex returns the element of v at offset i.
// It panics if v is not an Array or i is out of range.
func MustIndex(v Value, i int) Value {
	arr, ok := v.(Array)
	if !ok {
		panic(fmt.Sprintf("cannot index %s at %d", Describe(v), i))
	} else if i < 0 || i >= len(arr) {
		panic(fmt.Sprintf("index %d out of range (len=%d)", i, len(arr)))
	}
	return arr[i]
}
