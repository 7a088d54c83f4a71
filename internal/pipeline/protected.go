package pipeline

import (
	"strconv"
	"strings"
)

// Heading levels accepted by the heading stage.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// ProtectedTag is an element emitted by the heading stage before escaping.
// Only these twelve shapes are restored after the escaping stage; every
// other escaped angle bracket stays inert text.
type ProtectedTag struct {
	Level   int
	Closing bool
}

// String returns the literal tag, e.g. "<h2>" or "</h2>".
func (t ProtectedTag) String() string {
	slash := ""
	if t.Closing {
		slash = "/"
	}
	return "<" + slash + "h" + strconv.Itoa(t.Level) + ">"
}

// Escaped returns the tag as it looks after the escaping stage.
func (t ProtectedTag) Escaped() string {
	return htmlEscaper.Replace(t.String())
}

// ProtectedTags lists every tag the restore stage recognizes, open and close
// for each heading level.
func ProtectedTags() []ProtectedTag {
	tags := make([]ProtectedTag, 0, 2*MaxHeadingLevel)
	for level := MinHeadingLevel; level <= MaxHeadingLevel; level++ {
		tags = append(tags,
			ProtectedTag{Level: level},
			ProtectedTag{Level: level, Closing: true},
		)
	}
	return tags
}

// htmlEscaper escapes the five HTML special characters. A single-pass
// Replacer yields the same result as replacing & first, then < > " '.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// tagRestorer maps each escaped protected tag back to its literal form.
var tagRestorer = func() *strings.Replacer {
	tags := ProtectedTags()
	pairs := make([]string, 0, 2*len(tags))
	for _, tag := range tags {
		pairs = append(pairs, tag.Escaped(), tag.String())
	}
	return strings.NewReplacer(pairs...)
}()

// escapeHTML replaces &, <, >, " and ' with their entities.
func escapeHTML(content string) string {
	return htmlEscaper.Replace(content)
}

// restoreHeadingTags turns escaped heading tags back into markup.
func restoreHeadingTags(content string) string {
	return tagRestorer.Replace(content)
}
