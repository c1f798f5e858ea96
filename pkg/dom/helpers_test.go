package dom

import "testing"

func TestTextHelpers(t *testing.T) {
	if n := Text("hi"); n.Kind != KindText || n.Text != "hi" {
		t.Errorf("Text = %+v", n)
	}
	if n := Textf("n=%d", 3); n.Text != "n=3" {
		t.Errorf("Textf = %+v", n)
	}
	if n := Raw("<b>"); n.Kind != KindRaw || n.Text != "<b>" {
		t.Errorf("Raw = %+v", n)
	}
	if n := Value(1.5); n.Kind != KindValue || n.Value != 1.5 {
		t.Errorf("Value = %+v", n)
	}
	if n := Doctype(); n.Kind != KindDoctype {
		t.Errorf("Doctype = %+v", n)
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(
		"a",
		nil,
		Text("b"),
		[]*Node{Text("c"), nil},
		7,
	)

	if frag.Kind != KindFragment {
		t.Fatalf("Fragment kind = %v", frag.Kind)
	}
	if len(frag.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(frag.Children))
	}
	if frag.Children[0].Text != "a" || frag.Children[1].Text != "b" || frag.Children[2].Text != "c" {
		t.Errorf("unexpected children order: %+v", frag.Children)
	}
	if frag.Children[3].Kind != KindValue {
		t.Errorf("trailing child should be opaque, got %+v", frag.Children[3])
	}
}

func TestConditionals(t *testing.T) {
	n := Text("x")

	if If(true, n) != n || If(false, n) != nil {
		t.Error("If misbehaved")
	}
	if IfElse(true, n, nil) != n || IfElse(false, nil, n) != n {
		t.Error("IfElse misbehaved")
	}
	if Unless(false, n) != n || Unless(true, n) != nil {
		t.Error("Unless misbehaved")
	}
	if When(true, func() *Node { return n }) != n {
		t.Error("When(true) should call fn")
	}
	called := false
	When(false, func() *Node { called = true; return n })
	if called {
		t.Error("When(false) must not call fn")
	}
	if Nothing() != nil {
		t.Error("Nothing should be nil")
	}
}

func TestSwitch(t *testing.T) {
	a, b, d := Text("a"), Text("b"), Text("d")

	got := Switch("b",
		Case_("a", a),
		Case_("b", b),
		Default[string](d),
	)
	if got != b {
		t.Errorf("Switch matched %+v, want b", got)
	}

	got = Switch("z",
		Case_("a", a),
		Default[string](d),
	)
	if got != d {
		t.Errorf("Switch default %+v, want d", got)
	}

	if Switch("z", Case_("a", a)) != nil {
		t.Error("Switch without default should be nil")
	}
}

func TestRangeRepeat(t *testing.T) {
	items := Range([]string{"x", "y"}, func(s string, i int) *Node {
		return Textf("%d:%s", i, s)
	})
	if len(items) != 2 || items[1].Text != "1:y" {
		t.Errorf("Range = %+v", items)
	}

	// nil results are dropped
	some := Range([]int{1, 2, 3}, func(v, _ int) *Node {
		if v == 2 {
			return nil
		}
		return Textf("%d", v)
	})
	if len(some) != 2 {
		t.Errorf("Range should drop nils, got %d items", len(some))
	}

	reps := Repeat(3, func(i int) *Node { return Textf("%d", i) })
	if len(reps) != 3 || reps[2].Text != "2" {
		t.Errorf("Repeat = %+v", reps)
	}
	if Repeat(0, func(int) *Node { return nil }) != nil {
		t.Error("Repeat(0) should be nil")
	}
}
