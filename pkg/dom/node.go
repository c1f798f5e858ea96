package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <span>, etc.
	KindText                  // Plain text, escaped on output
	KindRaw                   // Verbatim text (dangerous)
	KindFragment              // Grouping without wrapper
	KindValue                 // Opaque value, printed then escaped
	KindComponent             // Nested component
	KindDoctype               // Document-type preamble
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	case KindValue:
		return "Value"
	case KindComponent:
		return "Component"
	case KindDoctype:
		return "Doctype"
	default:
		return "Unknown"
	}
}

// Node is one member of a markup tree. Nodes are immutable after
// construction; a tree may be stored, composed into larger trees, and
// rendered concurrently as long as each render targets its own sink.
type Node struct {
	Kind     Kind
	Tag      string    // Element tag name (e.g., "div")
	Attrs    []Attr    // Ordered attributes; duplicate keys are preserved
	Children []*Node   // Child nodes
	Text     string    // For KindText and KindRaw
	Value    any       // For KindValue
	Comp     Component // For KindComponent
}

// Attr represents a single attribute. A value of true renders the
// attribute as key="key", false or nil suppresses it entirely, and any
// other value is escaped and quoted.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Renderable supplies a value's textual form when the value appears as
// an opaque leaf. The returned text is escaped like any other text.
type Renderable interface {
	RenderText() string
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}
