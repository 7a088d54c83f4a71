package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight indicates a code block could not be highlighted.
var ErrHighlight = errors.New("code highlighting failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

var (
	// Fenced blocks as produced by the formatter.
	formattedCodeBlock = regexp.MustCompile(`(?s)<pre><code>(.*?)</code></pre>`)

	// Markup the formatter may have added inside a block.
	anyTag = regexp.MustCompile(`<[^>]*>`)

	// A lone word on the first line of a fence, e.g. "go" or "c++".
	languageHint = regexp.MustCompile(`^[A-Za-z0-9_+#.-]+$`)
)

// CodeHighlighter defines the contract for highlighting code blocks in a fragment.
type CodeHighlighter interface {
	HighlightCode(ctx context.Context, fragment, message string) (string, error)
}

// ChromaHighlighting re-renders fenced code blocks with chroma inline styles.
type ChromaHighlighting struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighting creates a highlighter for the named chroma style.
// Unknown names use chroma's fallback style.
func NewChromaHighlighting(styleName string) *ChromaHighlighting {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	return &ChromaHighlighting{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
}

// HighlightStyleNames lists the chroma style names NewChromaHighlighting knows.
func HighlightStyleNames() []string {
	return styles.Names()
}

// HighlightCode replaces every <pre><code> block of a formatted fragment with
// chroma output. A leading language word on the first line selects the lexer;
// otherwise the lexer is guessed from the content.
//
// message is the text the fragment was formatted from. Its fenced blocks are
// highlighted as written, since inside a block the formatter has already
// turned stars, hashes, dashes and link syntax into markup. When message is
// empty or its fences do not line up with the fragment's blocks, the code is
// recovered from the fragment instead, without that markup.
func (h *ChromaHighlighting) HighlightCode(ctx context.Context, fragment, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	blocks := formattedCodeBlock.FindAllStringSubmatchIndex(fragment, -1)
	if len(blocks) == 0 {
		return fragment, nil
	}

	sources := fencedSources(message)
	if len(sources) != len(blocks) {
		sources = nil
	}

	var out strings.Builder
	last := 0
	for i, loc := range blocks {
		var code string
		if sources != nil {
			code = sources[i]
		} else {
			code = blockSource(fragment[loc[2]:loc[3]])
		}

		lang, code := splitLanguageHint(code)
		highlighted, err := h.highlight(lang, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHighlight, err)
		}

		out.WriteString(fragment[last:loc[0]])
		out.WriteString(highlighted)
		last = loc[1]
	}
	out.WriteString(fragment[last:])
	return out.String(), nil
}

// fencedSources returns the text between each pair of ``` fences in message,
// paired the same way the fenced-code stage pairs them.
func fencedSources(message string) []string {
	matches := fencedCode.FindAllStringSubmatch(message, -1)
	sources := make([]string, len(matches))
	for i, m := range matches {
		sources[i] = m[1]
	}
	return sources
}

func (h *ChromaHighlighting) highlight(lang, code string) (string, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// blockSource recovers plain code from a formatted block: <br> back to line
// feeds, other markup dropped, entities decoded.
func blockSource(inner string) string {
	text := strings.ReplaceAll(inner, "<br>", "\n")
	text = anyTag.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// splitLanguageHint separates a known lexer name on the first line from the code.
func splitLanguageHint(code string) (lang, rest string) {
	first, rest, found := strings.Cut(code, "\n")
	first = strings.TrimSpace(first)
	if !found || !languageHint.MatchString(first) || lexers.Get(first) == nil {
		return "", code
	}
	return first, rest
}
