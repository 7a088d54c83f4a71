package chatmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-chatmd/internal/pdf"
)

// Mode selects what Convert produces.
type Mode string

// Output modes.
const (
	ModeFragment Mode = "fragment" // the formatted message only
	ModePage     Mode = "page"     // a standalone HTML5 document
	ModePDF      Mode = "pdf"      // the page printed by headless Chrome
)

// ParseMode converts a mode name (case-insensitive) to a Mode.
// An empty name yields ModeFragment.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeFragment, nil
	case ModeFragment, ModePage, ModePDF:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (must be fragment, page, or pdf)", ErrInvalidMode, s)
	}
}

// Page size constants.
const (
	PageSizeLetter = pdf.PageSizeLetter
	PageSizeA4     = pdf.PageSizeA4
	PageSizeLegal  = pdf.PageSizeLegal
)

// Margin bounds in inches.
const (
	MinMargin     = pdf.MinMargin
	MaxMargin     = pdf.MaxMargin
	DefaultMargin = pdf.DefaultMargin
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size   string  // "letter", "a4", "legal"
	Margin float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{Size: PageSizeLetter, Margin: DefaultMargin}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	return p.options().Validate()
}

func (p *PageSettings) options() *pdf.Options {
	if p == nil {
		return pdf.DefaultOptions()
	}
	return &pdf.Options{PageSize: p.Size, Margin: p.Margin}
}

// Input contains conversion parameters.
type Input struct {
	Message       string        // Chat message (may be empty)
	Mode          Mode          // Output mode (empty = fragment)
	Title         string        // Page title (empty = first heading, then FallbackTitle)
	FallbackTitle string        // Used when the message has no heading, e.g. the file name
	CSS           string        // Extra CSS appended after the converter style
	Highlight     bool          // Syntax-highlight fenced code blocks (page and pdf)
	SourceDir     string        // Directory relative links resolve against (page and pdf)
	Page          *PageSettings // PDF page settings (nil = defaults)
}

// ConvertResult holds the output of a conversion. Fragment is always set;
// HTML is set for page and pdf modes; PDF only for pdf mode.
type ConvertResult struct {
	Fragment string
	HTML     []byte
	PDF      []byte
}

// Bytes returns the primary artifact for mode.
func (r *ConvertResult) Bytes(mode Mode) []byte {
	switch mode {
	case ModePDF:
		return r.PDF
	case ModePage:
		return r.HTML
	default:
		return []byte(r.Fragment)
	}
}

// Extension returns the file extension, with dot, for mode's artifact.
func (m Mode) Extension() string {
	switch m {
	case ModePDF:
		return ".pdf"
	default:
		return ".html"
	}
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	styleInput     string // style name or CSS file path
	assetPath      string
	noStyle        bool
	highlightStyle string
	resolvedStyle  string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-render PDF timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chatmd: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the page style: an embedded or custom style name, or a
// path to a CSS file (any value containing a path separator).
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath adds a custom asset directory searched before the embedded styles.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithNoStyle renders pages without any converter style.
func WithNoStyle() Option {
	return func(c *Converter) {
		c.cfg.noStyle = true
	}
}

// WithHighlightStyle sets the chroma style used for code highlighting.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}
