package render

import (
	"io"
	"net/http"

	"github.com/vellum-dev/vellum/pkg/dom"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to
// an http.ResponseWriter. If the writer implements http.Flusher,
// content will be flushed after each section for faster TTFB.
func NewStreamingRenderer(w http.ResponseWriter, config Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: New(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderDocument renders a complete HTML document with incremental
// flushing. The head section is flushed immediately for faster first
// paint, the body once its nodes have been written.
func (s *StreamingRenderer) RenderDocument(doc Document) error {
	tree := doc.Tree()

	// tree is [doctype, html]; html is [head, body].
	doctype, html := tree[0], tree[1]
	head, body := html.Children[0], html.Children[1]

	if err := s.renderNode(s.w, doctype); err != nil {
		return err
	}

	if _, err := io.WriteString(s.w, "<html"); err != nil {
		return err
	}
	if err := s.renderAttributes(s.w, html.Attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, ">"); err != nil {
		return err
	}
	if err := s.lineBreak(s.w); err != nil {
		return err
	}

	if err := s.renderNode(s.w, head); err != nil {
		return err
	}
	s.flush()

	if err := s.renderNode(s.w, body); err != nil {
		return err
	}
	s.flush()

	if _, err := io.WriteString(s.w, "</html>"); err != nil {
		return err
	}
	if err := s.lineBreak(s.w); err != nil {
		return err
	}
	s.flush()

	return nil
}

// RenderNodes streams a node sequence, flushing after each top-level
// node.
func (s *StreamingRenderer) RenderNodes(nodes ...*dom.Node) error {
	for _, node := range nodes {
		if err := s.renderNode(s.w, node); err != nil {
			return err
		}
		s.flush()
	}
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
