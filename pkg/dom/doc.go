// Package dom provides the markup node model for vellum.
//
// A Node is one member of an immutable markup tree: an element with
// ordered attributes and children, escaped text, verbatim raw text, a
// fragment of siblings, an opaque value rendered through its default
// textual form, a nested component, or the document-type preamble.
//
// Trees are plain data. They can be built directly with NewElement and
// the leaf constructors here, through the el constructor package, or
// from a nested description via the build package, then stored, passed
// around, and composed before ever being rendered to text.
//
// # Extension points
//
// Two capabilities open the closed node union to caller-defined types:
// Renderable supplies a value's textual form for opaque leaves (the
// text is escaped on output), and Component produces a whole subtree.
//
// Nodes never mutate after construction, so one tree may be rendered
// from multiple goroutines as long as each render has its own sink.
package dom
