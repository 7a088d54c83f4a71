package pipeline

// Stage is one full-buffer rewrite of the message formatter.
// Apply receives the previous stage's output and returns its full successor.
type Stage struct {
	Name  string
	Apply func(content string) string
}

// messageStages is the fixed execution order. Headings are emitted before
// escaping and restored right after it; fenced code runs before inline code;
// bold before italic; line breaks last.
var messageStages = []Stage{
	{Name: "headings", Apply: convertHeadings},
	{Name: "escape", Apply: escapeHTML},
	{Name: "restore-headings", Apply: restoreHeadingTags},
	{Name: "fenced-code", Apply: convertFencedCode},
	{Name: "inline-code", Apply: convertInlineCode},
	{Name: "bold", Apply: convertBold},
	{Name: "italic", Apply: convertItalic},
	{Name: "unordered-lists", Apply: convertUnorderedLists},
	{Name: "ordered-lists", Apply: convertOrderedLists},
	{Name: "links", Apply: convertLinks},
	{Name: "line-breaks", Apply: convertLineBreaks},
}

// Stages returns a copy of the formatter stages in execution order.
func Stages() []Stage {
	stages := make([]Stage, len(messageStages))
	copy(stages, messageStages)
	return stages
}

// FormatMessage converts a chat message with lightweight Markdown into an
// HTML fragment. Empty input yields an empty fragment.
func FormatMessage(content string) string {
	if content == "" {
		return ""
	}
	for _, stage := range messageStages {
		content = stage.Apply(content)
	}
	return content
}
