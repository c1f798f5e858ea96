package el

import "github.com/vellum-dev/vellum/pkg/dom"

// Type aliases for the dom primitives used by the DSL.
type Node = dom.Node
type Kind = dom.Kind
type Attr = dom.Attr
type Component = dom.Component
type Renderable = dom.Renderable
type Case[T comparable] = dom.Case[T]
