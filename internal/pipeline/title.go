package pipeline

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MaxTitleWidth caps derived titles, in terminal display cells.
const MaxTitleWidth = 80

// titleCells measures width the same way whatever the user's locale says
// about ambiguous-width runes.
var titleCells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// titleParser is shared; goldmark parsers are safe for concurrent Parse calls.
var titleParser = goldmark.New().Parser()

// ExtractTitle returns the text of the message's first level-1 heading, or of
// its first heading of any level when there is no level-1 heading.
// Returns "" when the message has no ATX or setext heading.
func ExtractTitle(message string) string {
	if message == "" {
		return ""
	}

	source := []byte(message)
	doc := titleParser.Parse(text.NewReader(source))

	var first, firstH1 string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(inlineText(heading, source))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		if first == "" {
			first = title
		}
		if heading.Level == 1 {
			firstH1 = title
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})

	if firstH1 != "" {
		return shortenTitle(firstH1)
	}
	return shortenTitle(first)
}

// shortenTitle cuts title to MaxTitleWidth cells, counting wide runes as two.
func shortenTitle(title string) string {
	return titleCells.Truncate(title, MaxTitleWidth, "…")
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
