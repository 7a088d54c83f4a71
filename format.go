package chatmd

import "github.com/alnah/go-chatmd/internal/pipeline"

// Format converts a chat message into an HTML fragment.
// It never fails: malformed markup degrades to escaped text, and an empty
// message yields an empty fragment.
func Format(text string) string {
	return pipeline.FormatMessage(text)
}
