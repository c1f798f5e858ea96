// Package render serializes dom.Node trees to HTML text with
// context-correct escaping.
//
// The escaping writer dispatches on node kind, handling all aspects of
// producing valid, secure output:
//
//   - Per-rune entity escaping of text and attribute values (XSS prevention)
//   - Lower-cased tag and attribute names
//   - Void element handling (input, br, img, etc.)
//   - Flag attributes (true renders k="k", false suppresses the attribute)
//   - Raw nodes as the single, explicit escaping bypass
//   - Opaque values printed then escaped via their default textual form
//   - The doctype preamble as a fixed literal
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.New(render.Config{})
//	html, err := renderer.RenderToString(node)
//
// or with the default configuration:
//
//	html, err := render.ToString(node)
//
// To stream to a writer without buffering the whole result:
//
//	err := render.ToWriter(w, nodes...)
//
// # Line breaks
//
// A newline follows every open tag, close tag, and the doctype for
// readable output. Config.Compact suppresses them; nothing else in the
// output changes.
//
// # Full pages
//
// Document bundles doctype, html, head, and body conveniences, and
// StreamingRenderer flushes the head early for faster first paint:
//
//	sr := render.NewStreamingRenderer(w, render.Config{})
//	err := sr.RenderDocument(render.Document{Title: "Home", Body: body})
//
// # Escaping primitive
//
// Escape is exported directly for callers who need to escape a raw
// attribute value or text fragment outside of a full tree.
package render
