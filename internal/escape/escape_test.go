// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ``},
		{" ", ` `},
		{"a\t\nb", `a\t\nb`},
		{"\b\f\r", `\b\f\r`},
		{"\x00\x01\x02", `\u0000\u0001\u0002`},
		{`a "b c\" d"`, `a \"b c\\\" d\"`},
		{`\ufffd`, `\\ufffd`},
		{"\u2028 \u2029 \ufffd", `\u2028 \u2029 \ufffd`},
		{"This is the end\v", `This is the end\u000b`},
		{"<\x1e>", `<\u001e>`},
		{"café \U0001f600", "café \U0001f600"},
		{"bad \xff byte", `bad \ufffd byte`},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},                           // ok
		{`ok go`, "ok go", false},                 // ok
		{`abc\ndef`, "abc\ndef", false},           // C escapes
		{`\tabc\n`, "\tabc\n", false},             // C escapes
		{`\b\f\n\r\t`, "\b\f\n\r\t", false},       // C escapes
		{`a\/b`, "a/b", false},                    // solidus
		{`a \u0026 b`, "a & b", false},            // short Unicode escape
		{`\u00E9t\u00e9`, "\u00e9t\u00e9", false}, // mixed case hex
		{`\u`, ``, true},                          // incomplete Unicode escape
		{`\u00`, ``, true},                        // incomplete Unicode escape
		{`abc\`, ``, true},                        // incomplete escape
		{`\u00x9`, "\ufffd", false},               // invalid Unicode escape
		{`\u019 `, "\ufffd", false},               // invalid Unicode escape
		{`\q`, "\ufffd", false},                   // unknown escape
		{`a\"b`, `a"b`, false},                    // ok
		{`a\\b\\cd`, `a\b\cd`, false},             // ok
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"", "plain", "tab\there", `quote " and \ slash`, "\x00\x1f\x7f", "\u2028\u2029", "日本語",
	} {
		enc := escape.Quote(mem.S(input))
		dec, err := escape.Unquote(mem.B(enc))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", enc, err)
		} else if got := string(dec); got != input {
			t.Errorf("Round trip %#q: got %#q", input, got)
		}
	}
}
