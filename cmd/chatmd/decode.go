package main

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeMessage turns raw message bytes into text. A UTF-8 or UTF-16 byte
// order mark selects the encoding and is dropped; without one the bytes are
// read as UTF-8 and invalid sequences become U+FFFD.
func decodeMessage(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
