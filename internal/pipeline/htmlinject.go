package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the page template could not be rendered.
var ErrPageRender = errors.New("page template rendering failed")

// DefaultPageTitle is used when neither the caller nor the message provides one.
const DefaultPageTitle = "Message"

// pageTemplate wraps a formatted fragment in a complete HTML5 document.
// Body is trusted: it is the formatter's own output.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<article class="message">{{.Body}}</article>
</body>
</html>`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// PageData holds what BuildPage needs to produce a standalone document.
type PageData struct {
	Title    string
	Fragment string
	CSS      string
}

// PageBuilder defines the contract for wrapping fragments into documents.
type PageBuilder interface {
	BuildPage(ctx context.Context, data *PageData) (string, error)
}

// PageRendering renders the page template and injects CSS.
type PageRendering struct {
	css CSSInjector
}

// NewPageRendering creates a PageRendering using the default CSS injector.
func NewPageRendering() *PageRendering {
	return &PageRendering{css: &CSSInjection{}}
}

// BuildPage renders the fragment into the page template.
// An empty title falls back to DefaultPageTitle.
func (p *PageRendering) BuildPage(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data == nil {
		data = &PageData{}
	}

	title := strings.TrimSpace(data.Title)
	if title == "" {
		title = DefaultPageTitle
	}

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(data.Fragment), // #nosec G203 -- formatter output, user HTML already escaped
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	return p.css.InjectCSS(ctx, buf.String(), data.CSS), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
