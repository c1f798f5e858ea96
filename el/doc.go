// Package el is the flat constructor DSL for building markup trees.
//
// Elements are created with variadic factory functions that accept
// attributes, children, text, and plain values in any order:
//
//	el.Div(el.Class("card"), el.ID("main"),
//	    el.H1(el.Text("Title")),
//	    el.P("Content"),
//	    el.Input(el.Type_("text"), el.Required(true)),
//	)
//
// The package re-exports the dom leaf constructors and flow helpers
// (If, Switch, Range, Fragment) so most callers need only this import.
// For descriptions built as data rather than code, see the build
// package; for serialization, see render.
package el
