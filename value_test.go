// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/mds/mtest"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input jvalue.Value
		want  jvalue.Kind
		name  string
	}{
		{jvalue.Array{}, jvalue.KindArray, "array"},
		{jvalue.Object{}, jvalue.KindObject, "object"},
		{jvalue.String("x"), jvalue.KindString, "string"},
		{jvalue.Number(1), jvalue.KindNumber, "number"},
		{jvalue.True, jvalue.KindTrue, "true"},
		{jvalue.False, jvalue.KindFalse, "false"},
		{jvalue.Null, jvalue.KindNull, "null"},
		{jvalue.Constant(0), jvalue.KindInvalid, "invalid"},
	}
	for _, test := range tests {
		if got := test.input.Kind(); got != test.want {
			t.Errorf("Kind %v: got %v, want %v", test.input, got, test.want)
		}
		if got := test.input.Kind().String(); got != test.name {
			t.Errorf("Kind %v: got name %q, want %q", test.input, got, test.name)
		}
	}
	if jvalue.True == jvalue.False || jvalue.False == jvalue.Null || jvalue.True == jvalue.Null {
		t.Error("Constants are not distinct")
	}
	if jvalue.Bool(true) != jvalue.True || jvalue.Bool(false) != jvalue.False {
		t.Error("Bool does not map to the constants")
	}
}

func TestEqual(t *testing.T) {
	obj := jvalue.Object{
		"a": jvalue.Array{jvalue.Number(1), jvalue.String("x")},
		"b": jvalue.Null,
	}
	tests := []struct {
		a, b jvalue.Value
		want bool
	}{
		{nil, nil, true},
		{nil, jvalue.Null, true},
		{jvalue.Null, jvalue.False, false},
		{jvalue.Number(0), jvalue.Number(-0.0), true},
		{jvalue.Number(1), jvalue.String("1"), false},
		{jvalue.String("a"), jvalue.String("a"), true},
		{jvalue.Array{}, jvalue.Array{}, true},
		{jvalue.Array{}, jvalue.Object{}, false},
		{jvalue.Array{jvalue.True, jvalue.False}, jvalue.Array{jvalue.False, jvalue.True}, false},
		{jvalue.Array{jvalue.True}, jvalue.Array{jvalue.True, jvalue.True}, false},
		{jvalue.Array{nil}, jvalue.Array{jvalue.Null}, true},
		{obj, jvalue.Object{
			"b": jvalue.Null,
			"a": jvalue.Array{jvalue.Number(1), jvalue.String("x")},
		}, true},
		{obj, jvalue.Object{"a": jvalue.Array{jvalue.Number(1), jvalue.String("x")}}, false},
		{obj, jvalue.Object{
			"a": jvalue.Array{jvalue.Number(1), jvalue.String("x")},
			"c": jvalue.Null,
		}, false},
	}
	for _, test := range tests {
		if got := jvalue.Equal(test.a, test.b); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
		if got := jvalue.Equal(test.b, test.a); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.b, test.a, got, test.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	v, err := jvalue.Deserialize(`{"name": "thing", "size": 2.5, "ok": true, "list": [false, null]}`)
	if err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		if name, ok := jvalue.Get(v, "name"); !ok || name != jvalue.String("thing") {
			t.Errorf(`Get "name": got (%v, %v), want thing`, name, ok)
		}
		if got, ok := jvalue.Get(v, "nonesuch"); ok {
			t.Errorf(`Get "nonesuch": got %v, want not found`, got)
		}
		if got, ok := jvalue.Get(jvalue.Array{}, "name"); ok {
			t.Errorf(`Get on array: got %v, want not found`, got)
		}
	})

	t.Run("Index", func(t *testing.T) {
		list := jvalue.MustGet(v, "list")
		if elt, ok := jvalue.Index(list, 1); !ok || elt != jvalue.Null {
			t.Errorf("Index 1: got (%v, %v), want null", elt, ok)
		}
		for _, i := range []int{-1, 2, 100} {
			if elt, ok := jvalue.Index(list, i); ok {
				t.Errorf("Index %d: got %v, want not found", i, elt)
			}
		}
		if elt, ok := jvalue.Index(v, 0); ok {
			t.Errorf("Index on object: got %v, want not found", elt)
		}
	})

	t.Run("As", func(t *testing.T) {
		if s, ok := jvalue.AsString(jvalue.MustGet(v, "name")); !ok || s != "thing" {
			t.Errorf("AsString: got (%q, %v), want thing", s, ok)
		}
		if _, ok := jvalue.AsString(jvalue.MustGet(v, "size")); ok {
			t.Error("AsString of a number: got ok, want not ok")
		}
		if n, ok := jvalue.AsNumber(jvalue.MustGet(v, "size")); !ok || n != 2.5 {
			t.Errorf("AsNumber: got (%v, %v), want 2.5", n, ok)
		}
		if _, ok := jvalue.AsNumber(jvalue.Null); ok {
			t.Error("AsNumber of null: got ok, want not ok")
		}
		if b, ok := jvalue.AsBool(jvalue.MustGet(v, "ok")); !ok || !b {
			t.Errorf("AsBool: got (%v, %v), want true", b, ok)
		}
		if b, ok := jvalue.AsBool(jvalue.False); !ok || b {
			t.Errorf("AsBool: got (%v, %v), want false", b, ok)
		}
		if _, ok := jvalue.AsBool(jvalue.Null); ok {
			t.Error("AsBool of null: got ok, want not ok")
		}
	})

	t.Run("Expect", func(t *testing.T) {
		if got := jvalue.ExpectString(jvalue.MustGet(v, "name")); got != "thing" {
			t.Errorf("ExpectString: got %q, want thing", got)
		}
		if got := jvalue.ExpectNumber(jvalue.MustGet(v, "size")); got != 2.5 {
			t.Errorf("ExpectNumber: got %v, want 2.5", got)
		}
		if got := jvalue.ExpectBool(jvalue.MustIndex(jvalue.MustGet(v, "list"), 0)); got {
			t.Errorf("ExpectBool: got %v, want false", got)
		}

		checkPanic(t, func() { jvalue.ExpectString(jvalue.Number(1)) }, "got 1, want string")
		checkPanic(t, func() { jvalue.ExpectNumber(jvalue.String("1")) }, `got String("1"), want number`)
		checkPanic(t, func() { jvalue.ExpectBool(jvalue.Null) }, "got null, want true or false")
		checkPanic(t, func() { jvalue.ExpectBool(jvalue.Array{}) }, "got Array(len=0), want true or false")
	})

	t.Run("Must", func(t *testing.T) {
		checkPanic(t, func() { jvalue.MustGet(v, "nonesuch") }, `key "nonesuch" not found`)
		checkPanic(t, func() { jvalue.MustGet(jvalue.True, "x") }, `cannot look up key "x" in true`)
		checkPanic(t, func() { jvalue.MustIndex(v, 0) }, "cannot index Object(len=4) at 0")
		checkPanic(t, func() { jvalue.MustIndex(jvalue.Array{}, 0) }, "index 0 out of range (len=0)")
	})
}

func checkPanic(t *testing.T, f func(), want string) {
	t.Helper()
	got := mtest.MustPanic(t, f)
	if got != want {
		t.Errorf("Panic: got %q, want %q", got, want)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input jvalue.Value
		want  string
	}{
		{nil, "null"},
		{jvalue.True, "true"},
		{jvalue.Number(-3.5), "-3.5"},
		{jvalue.String("short"), `String("short")`},
		{jvalue.String("a string long enough to be cut short"), `String("a string long enough to "...)`},
		{jvalue.String("x" + strings.Repeat("é", 20)), `String("x` + strings.Repeat("é", 11) + `"...)`},
		{jvalue.String("a" + strings.Repeat("日", 10)), `String("a` + strings.Repeat("日", 7) + `"...)`},
		{jvalue.Array{jvalue.Null, jvalue.Null}, "Array(len=2)"},
		{jvalue.Object{"a": nil}, "Object(len=1)"},
	}
	for _, test := range tests {
		if got := jvalue.Describe(test.input); got != test.want {
			t.Errorf("Describe(%#v): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		plain string
		raw   jvalue.String
	}{
		{"", ""},
		{"hello", "hello"},
		{"a\tb\n", `a\tb\n`},
		{`say "hi"`, `say \"hi\"`},
		{`C:\dir`, `C:\\dir`},
	}
	for _, test := range tests {
		if got := jvalue.Quote(test.plain); got != test.raw {
			t.Errorf("Quote(%#q): got %#q, want %#q", test.plain, got, test.raw)
		}
		dec, err := test.raw.Unquote()
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.raw, err)
		} else if dec != test.plain {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.raw, dec, test.plain)
		}
	}

	// A quoted string survives a trip through the parser unchanged.
	s := jvalue.Quote("line one\nline \"two\"")
	v, err := jvalue.Deserialize(jvalue.Array{s}.JSON())
	if err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}
	raw := jvalue.ExpectString(jvalue.MustIndex(v, 0))
	if got, err := jvalue.String(raw).Unquote(); err != nil || got != "line one\nline \"two\"" {
		t.Errorf("Unquote: got (%q, %v), want original", got, err)
	}

	if _, err := jvalue.String(`bad\`).Unquote(); err == nil {
		t.Error("Unquote: got nil, want error for incomplete escape")
	}
}
