package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vellum-dev/vellum/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Compact suppresses the line breaks normally written after open
	// tags, close tags, and the doctype preamble.
	Compact bool
}

// Renderer serializes dom.Node trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use
// as long as each render targets its own writer.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	return &Renderer{config: config}
}

var defaultRenderer = New(Config{})

// RenderToString renders nodes to a complete HTML string.
func (r *Renderer) RenderToString(nodes ...*dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, nodes...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams nodes to the given writer in order, depth
// first, with no separators between siblings.
func (r *Renderer) RenderToWriter(w io.Writer, nodes ...*dom.Node) error {
	for _, node := range nodes {
		if err := r.renderNode(w, node); err != nil {
			return err
		}
	}
	return nil
}

// ToString renders nodes with the default configuration.
func ToString(nodes ...*dom.Node) (string, error) {
	return defaultRenderer.RenderToString(nodes...)
}

// ToWriter renders nodes to w with the default configuration.
func ToWriter(w io.Writer, nodes ...*dom.Node) error {
	return defaultRenderer.RenderToWriter(w, nodes...)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node)
	case dom.KindText:
		return writeEscaped(w, node.Text)
	case dom.KindRaw:
		// The sole escaping bypass; callers own the content's safety.
		_, err := io.WriteString(w, node.Text)
		return err
	case dom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case dom.KindValue:
		// Print the value, then re-enter escaping on the result.
		return writeEscaped(w, TextOf(node.Value))
	case dom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render())
		}
		return nil
	case dom.KindDoctype:
		if _, err := io.WriteString(w, "<!doctype html>"); err != nil {
			return err
		}
		return r.lineBreak(w)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node) error {
	tag := dom.LowerTag(node.Tag)

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node.Attrs); err != nil {
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := r.lineBreak(w); err != nil {
		return err
	}

	// Void elements take no children and emit no closing tag.
	if dom.IsVoidElement(tag) {
		return nil
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.lineBreak(w)
}

// renderAttributes renders attributes in order. Duplicate keys are
// emitted verbatim; no deduplication pass exists.
func (r *Renderer) renderAttributes(w io.Writer, attrs []dom.Attr) error {
	for _, attr := range attrs {
		if attr.IsEmpty() {
			continue
		}

		key := dom.LowerTag(attr.Key)

		switch v := attr.Value.(type) {
		case nil:
			// Absent value suppresses the attribute.
			continue
		case bool:
			// True renders the flag as key="key"; false suppresses it.
			if !v {
				continue
			}
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, Escape(key)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, Escape(TextOf(v))); err != nil {
				return err
			}
		}
	}
	return nil
}

// TextOf converts a value to its default textual form: the Renderable
// capability when implemented, otherwise the value's printed form.
func TextOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case dom.Renderable:
		return v.RenderText()
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeEscaped writes the escaped form of s to w.
func writeEscaped(w io.Writer, s string) error {
	_, err := io.WriteString(w, Escape(s))
	return err
}

// lineBreak writes the cosmetic newline unless Compact is set.
func (r *Renderer) lineBreak(w io.Writer) error {
	if r.config.Compact {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
