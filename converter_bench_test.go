//go:build bench

package chatmd

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// benchMessage builds a message of n sections mixing every supported construct.
func benchMessage(n int) string {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "## Section %d\n", i)
		sb.WriteString("Some **bold** and *italic* text with `code` and a [link](https://example.com).\n")
		sb.WriteString("- first\n- second\n1. one\n2. two\n")
		sb.WriteString("```go\nfunc main() { fmt.Println(\"hi\") }\n```\n")
	}
	return sb.String()
}

// BenchmarkConverterConvert benchmarks each mode with a mock PDF backend.
func BenchmarkConverterConvert(b *testing.B) {
	conv, err := NewConverter(withRenderer(&mockRenderer{}))
	if err != nil {
		b.Fatal(err)
	}
	defer conv.Close()

	ctx := context.Background()
	message := benchMessage(20)

	cases := []struct {
		name  string
		input Input
	}{
		{name: "fragment", input: Input{Message: message}},
		{name: "page", input: Input{Message: message, Mode: ModePage}},
		{name: "page_highlight", input: Input{Message: message, Mode: ModePage, Highlight: true}},
		{name: "pdf_mock", input: Input{Message: message, Mode: ModePDF}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := conv.Convert(ctx, tc.input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkConverterPool measures acquire/release overhead under contention.
func BenchmarkConverterPool(b *testing.B) {
	pool := NewConverterPool(4, withRenderer(&mockRenderer{}))
	defer pool.Close()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c, err := pool.Acquire()
			if err != nil {
				b.Error(err)
				return
			}
			pool.Release(c)
		}
	})
}
