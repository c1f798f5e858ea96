package dom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindRaw, "Raw"},
		{KindFragment, "Fragment"},
		{KindValue, "Value"},
		{KindComponent, "Component"},
		{KindDoctype, "Doctype"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	voids := []string{"input", "br", "img", "meta", "link", "hr", "INPUT", "Br"}
	for _, tag := range voids {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}

	nonVoids := []string{"div", "span", "p", "script", "textarea", ""}
	for _, tag := range nonVoids {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true, want false", tag)
		}
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if (Attr{Key: "id"}).IsEmpty() {
		t.Error("Attr with key should not be empty")
	}
}

func TestNewElement(t *testing.T) {
	node := NewElement("div",
		Attr{Key: "id", Value: "main"},
		[]Attr{{Key: "class", Value: "card"}, {Key: "class", Value: "wide"}},
		nil,
		"hello",
		NewElement("span"),
		[]*Node{NewElement("b"), nil, NewElement("i")},
		42,
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("unexpected node: kind=%v tag=%q", node.Kind, node.Tag)
	}

	wantAttrs := []Attr{
		{Key: "id", Value: "main"},
		{Key: "class", Value: "card"},
		{Key: "class", Value: "wide"},
	}
	if len(node.Attrs) != len(wantAttrs) {
		t.Fatalf("got %d attrs, want %d", len(node.Attrs), len(wantAttrs))
	}
	for i, want := range wantAttrs {
		if node.Attrs[i] != want {
			t.Errorf("attr[%d] = %+v, want %+v", i, node.Attrs[i], want)
		}
	}

	// hello, span, b, i, 42
	if len(node.Children) != 5 {
		t.Fatalf("got %d children, want 5", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("child 0 should be text %q, got %+v", "hello", node.Children[0])
	}
	if node.Children[1].Tag != "span" {
		t.Errorf("child 1 should be span, got %+v", node.Children[1])
	}
	if node.Children[4].Kind != KindValue || node.Children[4].Value != 42 {
		t.Errorf("child 4 should be opaque 42, got %+v", node.Children[4])
	}
}

func TestNewElementComponent(t *testing.T) {
	comp := Func(func() *Node { return Text("x") })
	node := NewElement("div", comp)

	if len(node.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindComponent || child.Comp == nil {
		t.Fatalf("child should wrap the component, got %+v", child)
	}
	if rendered := child.Comp.Render(); rendered.Text != "x" {
		t.Errorf("component rendered %+v, want text x", rendered)
	}
}

func TestLowerTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"div", "div"},
		{"DIV", "div"},
		{"dAtA-Id", "data-id"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LowerTag(tt.input); got != tt.expected {
			t.Errorf("LowerTag(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
