package el

import "github.com/vellum-dev/vellum/pkg/dom"

func Text(content string) *Node {
	return dom.Text(content)
}
func Textf(format string, args ...any) *Node {
	return dom.Textf(format, args...)
}
func Raw(markup string) *Node {
	return dom.Raw(markup)
}
func ValueOf(v any) *Node {
	return dom.Value(v)
}
func Doctype() *Node {
	return dom.Doctype()
}
func Fragment(children ...any) *Node {
	return dom.Fragment(children...)
}
func Group(children ...any) *Node {
	return dom.Group(children...)
}
func If(condition bool, node *Node) *Node {
	return dom.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	return dom.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() *Node) *Node {
	return dom.When(condition, fn)
}
func Unless(condition bool, node *Node) *Node {
	return dom.Unless(condition, node)
}
func Case_[T comparable](value T, node *Node) Case[T] {
	return dom.Case_(value, node)
}
func Default[T comparable](node *Node) Case[T] {
	return dom.Default[T](node)
}
func Switch[T comparable](value T, cases ...Case[T]) *Node {
	return dom.Switch(value, cases...)
}
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	return dom.Range(items, fn)
}
func Repeat(n int, fn func(i int) *Node) []*Node {
	return dom.Repeat(n, fn)
}
func Nothing() *Node {
	return dom.Nothing()
}
func Func(render func() *Node) Component {
	return dom.Func(render)
}
