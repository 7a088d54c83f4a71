// Package pipeline implements the chat message formatting pipeline and the
// page-rendering steps built on top of it.
//
// The message formatter is an ordered list of whole-buffer rewrite stages:
//   - Headings (emitted as real tags before escaping)
//   - HTML escaping of & < > " '
//   - Restoration of the twelve heading tags only
//   - Fenced code, then inline code
//   - Bold, then italic
//   - Unordered lists, then ordered lists
//   - Links
//   - Line feeds to <br>
//
// Known limitations, kept on purpose: overlapping emphasis markers such as
// "***" resolve first-match, and heading, list and emphasis stages also apply
// inside code spans.
//
// Page rendering turns a fragment into a standalone HTML document:
//   - Code block highlighting via chroma
//   - Title detection from the source message via goldmark
//   - CSS injection into the page template
//
// PDF generation is handled separately by internal/pdf using headless
// Chrome (go-rod).
package pipeline
