package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// maxAssetNameLen bounds style names so they stay usable as file names.
const maxAssetNameLen = 64

// ValidateAssetName checks that a style name maps to a single file inside
// the styles directory. Separators and dots are rejected, which rules out
// traversal and extension games; whitespace and control characters are
// rejected because they never appear in a style shipped with the tool.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, maxAssetNameLen)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
