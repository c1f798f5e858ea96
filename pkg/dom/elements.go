package dom

// voidElements are elements that cannot have children and have no
// closing tag. These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
// The check is case-insensitive, matching output lowercasing.
func IsVoidElement(tag string) bool {
	return voidElements[lowerASCII(tag)]
}

// NewElement creates an element Node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, Component,
// Renderable, string, or any other value (kept as an opaque leaf).
func NewElement(tag string, args ...any) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      tag,
		Children: make([]*Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			if v.Key != "" {
				node.Attrs = append(node.Attrs, v)
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					node.Attrs = append(node.Attrs, attr)
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, &Node{
				Kind: KindText,
				Text: v,
			})

		default:
			// Any other value is an opaque leaf; its printed form is
			// escaped at render time.
			node.Children = append(node.Children, &Node{
				Kind:  KindValue,
				Value: v,
			})
		}
	}

	return node
}

// lowerASCII lowercases ASCII letters without allocating for strings
// that are already lowercase.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if 'A' <= b[i] && b[i] <= 'Z' {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// LowerTag returns the output form of a tag or attribute name.
func LowerTag(name string) string {
	return lowerASCII(name)
}
