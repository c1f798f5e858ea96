package render

import (
	"io"

	"github.com/vellum-dev/vellum/pkg/dom"
)

// Document describes a complete HTML page: the doctype preamble, an
// html element with a lang attribute, a head merged from the charset
// meta, the title, and any extra head nodes, and a body.
type Document struct {
	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Title is the page title. Empty omits the title element.
	Title string

	// Head contains extra head nodes (meta, link, style, script).
	Head []*dom.Node

	// Body contains the page content.
	Body []*dom.Node
}

// Tree returns the document as an ordinary node sequence, so callers
// can compose it further before rendering.
func (d Document) Tree() []*dom.Node {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	headArgs := []any{
		dom.NewElement("meta", dom.Attr{Key: "charset", Value: "utf-8"}),
	}
	if d.Title != "" {
		headArgs = append(headArgs, dom.NewElement("title", d.Title))
	}
	headArgs = append(headArgs, d.Head)

	return []*dom.Node{
		dom.Doctype(),
		dom.NewElement("html", dom.Attr{Key: "lang", Value: lang},
			dom.NewElement("head", headArgs...),
			dom.NewElement("body", d.Body),
		),
	}
}

// RenderDocument renders a complete HTML document to the given writer.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	return r.RenderToWriter(w, doc.Tree()...)
}

// DocumentToString renders a complete document with the default
// configuration.
func DocumentToString(doc Document) (string, error) {
	return defaultRenderer.RenderToString(doc.Tree()...)
}
