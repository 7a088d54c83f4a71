package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Heading line: 1-6 leading #, optional horizontal space, rest of line.
	// #{1,6} is greedy so the longest marker always wins. A CR before the
	// line feed is not part of the heading.
	headingLine = regexp.MustCompile(`(?m)^(#{1,6})[ \t]*(.*?)\r?$`)

	// Fenced code spans lines; the first closing fence ends the block.
	fencedCode = regexp.MustCompile("(?s)```(.*?)```")

	// Inline code, or an already built fenced block that must be left alone.
	// Spans never contain '<': user text is escaped by then, so a '<' is
	// formatter markup and a stray backtick cannot pair across it.
	inlineCodeOrFence = regexp.MustCompile("(?s)<pre><code>.*?</code></pre>|`[^`\n<]+`")

	// Emphasis, shortest span first.
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)

	// List item lines.
	unorderedItem = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+(.*?)\r?$`)
	orderedItem   = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+(.*?)\r?$`)

	// Maximal run of consecutive lines that are each a single <li> element.
	listItemRun = regexp.MustCompile(`(?m)^<li>.*</li>$(?:\n<li>.*</li>$)*`)

	// Inline link [text](url).
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

var lineBreaks = strings.NewReplacer("\r\n", "<br>", "\n", "<br>")

const (
	preCodeOpen  = "<pre><code>"
	preCodeClose = "</code></pre>"
)

// convertHeadings rewrites "## Title" lines to <h2>Title</h2>.
func convertHeadings(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		level := len(m[1])
		return ProtectedTag{Level: level}.String() + m[2] + ProtectedTag{Level: level, Closing: true}.String()
	})
}

// convertFencedCode rewrites ```code``` to <pre><code>code</code></pre>.
func convertFencedCode(content string) string {
	return fencedCode.ReplaceAllString(content, preCodeOpen+"${1}"+preCodeClose)
}

// convertInlineCode rewrites `code` to <code>code</code>, skipping fenced blocks
// so their backticks stay literal.
func convertInlineCode(content string) string {
	return inlineCodeOrFence.ReplaceAllStringFunc(content, func(match string) string {
		if strings.HasPrefix(match, preCodeOpen) {
			return match
		}
		return "<code>" + match[1:len(match)-1] + "</code>"
	})
}

// convertBold rewrites **text** to <strong>text</strong>.
func convertBold(content string) string {
	return boldPattern.ReplaceAllString(content, "<strong>${1}</strong>")
}

// convertItalic rewrites *text* to <em>text</em>.
// Runs after convertBold; stray or tripled stars match first-come.
func convertItalic(content string) string {
	return italicPattern.ReplaceAllString(content, "<em>${1}</em>")
}

// convertUnorderedLists rewrites "- item" lines to <li> and wraps each run in <ul>.
func convertUnorderedLists(content string) string {
	content = unorderedItem.ReplaceAllString(content, "<li>${1}</li>")
	return wrapListRuns(content, "ul")
}

// convertOrderedLists rewrites "1. item" lines to <li> and wraps each run in <ol>.
func convertOrderedLists(content string) string {
	content = orderedItem.ReplaceAllString(content, "<li>${1}</li>")
	return wrapListRuns(content, "ol")
}

// wrapListRuns wraps every run of bare <li> lines in the given list element.
// The line feeds inside a run are dropped, so a wrapped list occupies one
// line and no later pass sees its items as bare <li> lines.
func wrapListRuns(content, element string) string {
	return listItemRun.ReplaceAllStringFunc(content, func(run string) string {
		return "<" + element + ">" + strings.ReplaceAll(run, "\n", "") + "</" + element + ">"
	})
}

// convertLinks rewrites [text](url) to an anchor opening in a new tab.
// The URL is not validated; quotes in it were escaped earlier.
func convertLinks(content string) string {
	return linkPattern.ReplaceAllString(content, `<a href="${2}" target="_blank">${1}</a>`)
}

// convertLineBreaks replaces every remaining line feed, or CRLF pair, with <br>.
func convertLineBreaks(content string) string {
	return lineBreaks.Replace(content)
}
