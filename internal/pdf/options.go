package pdf

import (
	"fmt"
	"strings"
)

// Page sizes.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds and default, in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// Options controls the printed page geometry.
type Options struct {
	PageSize string  // letter, a4 or legal (empty = letter)
	Margin   float64 // inches on every side (0 = DefaultMargin)
}

// DefaultOptions returns US Letter with half-inch margins.
func DefaultOptions() *Options {
	return &Options{PageSize: PageSizeLetter, Margin: DefaultMargin}
}

// Validate checks the page size and margin.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.PageSize != "" {
		if _, _, ok := pageDimensions(o.PageSize); !ok {
			return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, o.PageSize)
		}
	}
	if o.Margin != 0 && (o.Margin < MinMargin || o.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.1f inches)", ErrInvalidMargin, o.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// pageDimensions returns width and height in inches for a page size name.
func pageDimensions(size string) (width, height float64, ok bool) {
	switch strings.ToLower(size) {
	case PageSizeLetter, "":
		return 8.5, 11, true
	case PageSizeA4:
		return 8.27, 11.69, true
	case PageSizeLegal:
		return 8.5, 14, true
	}
	return 0, 0, false
}
