// Package chatmd converts chat messages written in a small Markdown subset
// into HTML fragments that are safe to embed in a page.
//
// # Quick Start
//
//	html := chatmd.Format("# Summary\n- **done**: 3\n- open: 1")
//	// <h1>Summary</h1><br><ul><li><strong>done</strong>: 3</li><li>open: 1</li></ul>
//
// # Supported Syntax
//
//   - Headings: # to ###### at line start (space after the markers optional)
//   - Fenced code: ```code``` (may span lines)
//   - Inline code: `code`
//   - Bold and italic: **bold**, *italic*
//   - Lists: "- item" and "1. item" lines; consecutive items form one list
//   - Links: [text](url), opened in a new tab
//   - Line feeds become <br>
//
// # Safety
//
// The characters & < > " ' are always escaped. The only markup that survives
// from the input are heading tags <h1> to <h6>; everything else the user
// typed is rendered as text. URLs in links are not validated.
//
// # Output Shape
//
// The result is a single-line fragment. Line feeds between list items are
// dropped when the list is built; every other line feed, including those
// inside code blocks, becomes <br>. Formatting the output again is not a
// no-op.
//
// Format is a pure function and safe for concurrent use.
//
// # Pages and PDFs
//
// A Converter wraps the formatted fragment in a standalone HTML5 page, with
// a style and optional syntax highlighting, and can print that page to PDF
// through headless Chrome:
//
//	conv, err := chatmd.NewConverter(chatmd.WithStyle("compact"))
//	if err != nil {
//		return err
//	}
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, chatmd.Input{Message: msg, Mode: chatmd.ModePDF})
//	// res.Fragment, res.HTML and res.PDF are filled according to the mode.
//
// A Converter is not safe for concurrent use. ConverterPool hands out
// converters to parallel workers, each with its own browser.
package chatmd
