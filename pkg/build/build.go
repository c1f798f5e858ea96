package build

import (
	"github.com/vellum-dev/vellum/internal/errors"
	"github.com/vellum-dev/vellum/pkg/dom"
)

// Tag marks a name as a tag identifier inside a description. Only
// Tag-headed compound forms construct elements; every other compound
// form is ordinary data.
type Tag string

// T is shorthand for Tag, keeping literal descriptions compact.
func T(name string) Tag {
	return Tag(name)
}

// Build translates a nested description into a node sequence, one node
// per top-level item. A description may represent a fragment of
// multiple siblings; even a single item yields a one-element sequence.
//
// Each item is either an atom passed through as a leaf (string, bool,
// number, pre-built *dom.Node, node slice, Renderable, Component, or a
// registered sentinel such as Doctype) or a compound []any form. A
// compound form whose head is a Tag, or a []any of Tag followed by a
// flat ordered attribute pair list, constructs an element whose
// remaining items are built recursively as children. Any other
// compound form is passed through as a fragment, which lets callers
// splice pre-built sequences into a description.
//
// Atoms are not pre-escaped; escaping happens only at render time.
func Build(items ...any) ([]*dom.Node, error) {
	nodes := make([]*dom.Node, 0, len(items))
	for _, item := range items {
		node, err := buildItem(item)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// buildItem builds one description item into a node.
func buildItem(item any) (*dom.Node, error) {
	switch v := item.(type) {
	case nil:
		return nil, nil
	case *dom.Node:
		return v, nil
	case []*dom.Node:
		return dom.Fragment(v), nil
	case Tag:
		// A bare tag atom is an element with no attributes or children.
		return element(string(v), nil, nil), nil
	case string:
		return dom.Text(v), nil
	case dom.Component:
		return &dom.Node{Kind: dom.KindComponent, Comp: v}, nil
	case []any:
		return buildCompound(v)
	default:
		if node := lookupAtom(item); node != nil {
			return node, nil
		}
		return dom.Value(v), nil
	}
}

// buildCompound builds a []any form: a tag construction when the head
// position identifies a tag, otherwise a plain sequence passed through
// as a fragment.
func buildCompound(form []any) (*dom.Node, error) {
	if len(form) > 0 {
		switch head := form[0].(type) {
		case Tag:
			children, err := Build(form[1:]...)
			if err != nil {
				return nil, err
			}
			return element(string(head), nil, children), nil

		case []any:
			if len(head) > 0 {
				if tag, ok := head[0].(Tag); ok {
					attrs, err := attrPairs(string(tag), head[1:])
					if err != nil {
						return nil, err
					}
					children, err := Build(form[1:]...)
					if err != nil {
						return nil, err
					}
					return element(string(tag), attrs, children), nil
				}
			}
		}
	}

	children, err := Build(form...)
	if err != nil {
		return nil, err
	}
	return dom.Fragment(children), nil
}

// attrPairs parses a flat, ordered attribute list of name/value pairs.
// Order is preserved and duplicate names are kept verbatim.
func attrPairs(tag string, items []any) ([]dom.Attr, error) {
	if len(items)%2 != 0 {
		return nil, errors.Newf("B001", errors.CategoryBuild,
			"attribute list for <%s> has odd length %d", tag, len(items)).
			WithSuggestion("attributes are flat name/value pairs; every name needs a value")
	}

	attrs := make([]dom.Attr, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		key, err := attrName(tag, items[i])
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, dom.Attr{Key: key, Value: items[i+1]})
	}
	return attrs, nil
}

// attrName accepts Tag or string attribute names.
func attrName(tag string, v any) (string, error) {
	switch name := v.(type) {
	case Tag:
		return string(name), nil
	case string:
		return name, nil
	default:
		return "", errors.Newf("B002", errors.CategoryBuild,
			"attribute name for <%s> must be a tag identifier or string, got %T", tag, v)
	}
}

func element(tag string, attrs []dom.Attr, children []*dom.Node) *dom.Node {
	return &dom.Node{
		Kind:     dom.KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}
