package decode

import (
	"github.com/goccy/go-yaml"

	"github.com/vellum-dev/vellum/internal/errors"
	"github.com/vellum-dev/vellum/pkg/build"
	"github.com/vellum-dev/vellum/pkg/dom"
)

// Description converts a YAML (or JSON; YAML is a superset) document
// into a builder description.
//
// Scalars pass through as atoms and sequences nest recursively. A
// mapping is one of:
//
//	{tag: name, attrs: [[name, value], ...], children: [...]}
//	{doctype: true}
//	{raw: "<verbatim markup>"}
//
// Attributes are a sequence of two-element pairs so their order and
// any duplicate names survive decoding. A malformed shape fails the
// whole document; no partial description is returned.
func Description(data []byte) ([]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("D001", errors.CategoryDecode,
			"document is not valid YAML or JSON").Wrap(err)
	}

	// A top-level sequence is a fragment of siblings.
	if seq, ok := doc.([]any); ok {
		items := make([]any, 0, len(seq))
		for _, raw := range seq {
			item, err := convert(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	item, err := convert(doc)
	if err != nil {
		return nil, err
	}
	return []any{item}, nil
}

// Nodes decodes a document and builds its node sequence in one step.
func Nodes(data []byte) ([]*dom.Node, error) {
	desc, err := Description(data)
	if err != nil {
		return nil, err
	}
	return build.Build(desc...)
}

// convert maps one decoded YAML value to a description item.
func convert(v any) (any, error) {
	switch n := v.(type) {
	case map[string]any:
		return convertMapping(n)
	case []any:
		out := make([]any, 0, len(n))
		for _, item := range n {
			c, err := convert(item)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	default:
		// Scalars are atoms; escaping happens at render time.
		return v, nil
	}
}

// convertMapping maps a YAML mapping to a tag form or sentinel atom.
func convertMapping(m map[string]any) (any, error) {
	if _, ok := m["doctype"]; ok {
		return build.Doctype, nil
	}

	if raw, ok := m["raw"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, errors.Newf("D003", errors.CategoryDecode,
				"raw content must be a string, got %T", raw)
		}
		return dom.Raw(s), nil
	}

	tag, ok := m["tag"].(string)
	if !ok {
		return nil, errors.New("D002", errors.CategoryDecode,
			"mapping must carry a tag, doctype, or raw key").
			WithSuggestion(`elements look like {tag: div, attrs: [[class, card]], children: [...]}`)
	}

	head := []any{build.T(tag)}
	if attrs, present := m["attrs"]; present {
		pairs, err := attrPairs(tag, attrs)
		if err != nil {
			return nil, err
		}
		head = append(head, pairs...)
	}

	var form []any
	if len(head) == 1 {
		form = []any{build.T(tag)}
	} else {
		form = []any{head}
	}

	if children, present := m["children"]; present {
		seq, ok := children.([]any)
		if !ok {
			seq = []any{children}
		}
		for _, child := range seq {
			c, err := convert(child)
			if err != nil {
				return nil, err
			}
			form = append(form, c)
		}
	}

	return form, nil
}

// attrPairs flattens an attrs sequence of [name, value] pairs.
func attrPairs(tag string, attrs any) ([]any, error) {
	seq, ok := attrs.([]any)
	if !ok {
		return nil, errors.Newf("D004", errors.CategoryDecode,
			"attrs for <%s> must be a sequence of [name, value] pairs, got %T", tag, attrs)
	}

	flat := make([]any, 0, len(seq)*2)
	for _, raw := range seq {
		pair, ok := raw.([]any)
		if !ok || len(pair) != 2 {
			return nil, errors.Newf("D004", errors.CategoryDecode,
				"attrs for <%s> must be a sequence of [name, value] pairs", tag).
				WithSuggestion("write attrs as [[name, value], [name, value]]")
		}
		name, ok := pair[0].(string)
		if !ok {
			return nil, errors.Newf("D004", errors.CategoryDecode,
				"attribute name for <%s> must be a string, got %T", tag, pair[0])
		}
		flat = append(flat, name, pair[1])
	}
	return flat, nil
}
