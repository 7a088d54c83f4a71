package main

import "testing"

func TestDecodeMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "plain utf-8", input: []byte("# Hi\n- a"), expected: "# Hi\n- a"},
		{name: "utf-8 bom dropped", input: []byte("\xef\xbb\xbf# Hi"), expected: "# Hi"},
		{name: "utf-16le with bom", input: []byte{0xff, 0xfe, '#', 0, ' ', 0, 'H', 0, 'i', 0}, expected: "# Hi"},
		{name: "utf-16be with bom", input: []byte{0xfe, 0xff, 0, '#', 0, ' ', 0, 'H', 0, 'i'}, expected: "# Hi"},
		{name: "cjk untouched", input: []byte("交通事故"), expected: "交通事故"},
		{name: "invalid byte replaced", input: []byte("a\xffb"), expected: "a�b"},
		{name: "empty", input: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeMessage(tt.input)
			if err != nil {
				t.Fatalf("decodeMessage() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("decodeMessage(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
