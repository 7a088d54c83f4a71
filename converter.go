package chatmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chatmd/internal/assets"
	"github.com/alnah/go-chatmd/internal/pdf"
	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.CSSInjector     = (*pipeline.CSSInjection)(nil)
	_ pipeline.PageBuilder     = (*pipeline.PageRendering)(nil)
	_ pipeline.CodeHighlighter = (*pipeline.ChromaHighlighting)(nil)
	_ pdf.Renderer             = (*pdf.RodRenderer)(nil)
	_ assets.AssetLoader       = (*assets.AssetResolver)(nil)
)

// DefaultStyle is the embedded style applied to pages unless WithNoStyle or
// WithStyle says otherwise.
const DefaultStyle = "default"

// Converter turns chat messages into fragments, pages, or PDFs.
// Create with NewConverter, use Convert for conversion, and Close when done.
// A Converter is not safe for concurrent use; use a ConverterPool for that.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.AssetLoader
	highlighter pipeline.CodeHighlighter
	pages       *pipeline.PageRendering
	renderer    pdf.Renderer
}

// NewConverter creates a Converter. The browser used for PDF output is
// started on the first pdf conversion, not here.
// Returns error if the asset path or the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout, styleInput: DefaultStyle},
		assetLoader: assets.NewEmbeddedLoader(),
		pages:       pipeline.NewPageRendering(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	highlightStyle := c.cfg.highlightStyle
	if highlightStyle == "" {
		highlightStyle = pipeline.DefaultHighlightStyle
	}
	c.highlighter = pipeline.NewChromaHighlighting(highlightStyle)

	if c.renderer == nil {
		c.renderer = pdf.NewRodRenderer(c.cfg.timeout)
	}

	return c, nil
}

// withRenderer replaces the PDF backend. Used by tests.
func withRenderer(r pdf.Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// resolveStyle turns the style option into CSS content.
// A value that looks like a path is read from disk; anything else is a style name.
func (c *Converter) resolveStyle() error {
	if c.cfg.noStyle || c.cfg.styleInput == "" {
		c.cfg.resolvedStyle = ""
		return nil
	}

	input := c.cfg.styleInput
	if isStylePath(input) {
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided style path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		c.cfg.resolvedStyle = string(data)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

func isStylePath(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.EqualFold(filepath.Ext(s), ".css")
}

// Styles lists the style names the converter can load by name.
func (c *Converter) Styles() ([]string, error) {
	return c.assetLoader.ListStyles()
}

// Convert runs the pipeline for input.Mode and returns the result.
// The context is used for cancellation and for bounding PDF rendering.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	mode, err := ParseMode(string(input.Mode))
	if err != nil {
		return nil, err
	}
	if mode == ModePDF {
		if err := input.Page.Validate(); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fragment := pipeline.FormatMessage(input.Message)
	res := &ConvertResult{Fragment: fragment}
	if mode == ModeFragment {
		return res, nil
	}

	if input.Highlight {
		fragment, err = c.highlighter.HighlightCode(ctx, fragment, input.Message)
		if err != nil {
			return nil, err
		}
	}

	fragment, err = pipeline.RewriteRelativeLinks(fragment, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting relative links: %w", err)
	}

	// Converter style first, caller CSS last so it can override.
	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		if css != "" {
			css += "\n"
		}
		css += input.CSS
	}

	page, err := c.pages.BuildPage(ctx, &pipeline.PageData{
		Title:    resolveTitle(input),
		Fragment: fragment,
		CSS:      css,
	})
	if err != nil {
		return nil, err
	}
	res.HTML = []byte(page)
	if mode == ModePage {
		return res, nil
	}

	pdfBytes, err := c.renderer.ToPDF(ctx, page, input.Page.options())
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// resolveTitle picks the page title: explicit, then first heading, then fallback.
func resolveTitle(input Input) string {
	if t := strings.TrimSpace(input.Title); t != "" {
		return t
	}
	if t := pipeline.ExtractTitle(input.Message); t != "" {
		return t
	}
	return strings.TrimSpace(input.FallbackTitle)
}

// Close releases browser resources.
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
