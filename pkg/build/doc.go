// Package build translates nested, ordered descriptions into dom node
// trees.
//
// A description is ordinary Go data: atoms pass through as leaves, and
// []any forms headed by a Tag construct elements recursively:
//
//	nodes, err := build.Build(
//	    build.Doctype,
//	    []any{build.T("div"),
//	        []any{[]any{build.T("span"), "style", "color:blue"}, "text"},
//	    },
//	)
//
// Attribute lists are flat name/value pairs; order is preserved and
// duplicate names are kept verbatim. A []any form whose head is not a
// tag identifier is not an error: it is treated as plain data and
// spliced in as a fragment, so pre-built nodes and sequences mix
// freely with literal forms.
//
// Construction either succeeds for the whole description or fails with
// a structured error (odd attribute lists, non-string attribute
// names); no partial tree is produced.
package build
