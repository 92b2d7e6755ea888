package jvalue_test

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jvalue"
)

// benchInput returns a synthetic document of n records.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "record %d", "score": %d.25, "tags": ["a", "b\"c"], "ok": %v, "next": null}`,
			i, i, i*3, i%2 == 0)
	}
	sb.WriteString("]")
	return sb.String()
}

func BenchmarkDeserialize(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		data := []byte(input)
		for b.Loop() {
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for b.Loop() {
			if _, err := jvalue.Tokenize(input, jvalue.DefaultConfig()); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Deserialize", func(b *testing.B) {
		for b.Loop() {
			if _, err := jvalue.Deserialize(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkSerialize(b *testing.B) {
	v, err := jvalue.Deserialize(benchInput(2000))
	if err != nil {
		b.Fatalf("Deserialize: %v", err)
	}
	for _, sort := range []bool{false, true} {
		b.Run(fmt.Sprintf("SortKeys=%v", sort), func(b *testing.B) {
			enc := jvalue.Encoder{SortKeys: sort}
			for b.Loop() {
				if err := enc.Encode(io.Discard, v); err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		})
	}
}
