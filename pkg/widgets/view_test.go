package widgets

import "testing"

func TestViewDefaults(t *testing.T) {
	v := NewTextView("label", "hi")
	if x, y := v.Position(); x != 0 || y != 0 {
		t.Errorf("Position() = (%d, %d), want (0, 0)", x, y)
	}
	if w, h := v.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%d, %d), want (0, 0)", w, h)
	}
	if !v.Visible() {
		t.Error("Visible() = false, want true by default")
	}
	if !v.Enabled() {
		t.Error("Enabled() = false, want true by default")
	}
	if v.BackgroundColor() != "#FFFFFF" {
		t.Errorf("BackgroundColor() = %q, want #FFFFFF", v.BackgroundColor())
	}
}

func TestClickDispatchRequiresEnabled(t *testing.T) {
	clicks := 0
	b := NewButton("btn", "go")
	b.SetOnClickListener(func() { clicks++ })

	b.OnClick()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	b.SetEnabled(false)
	b.OnClick()
	if clicks != 1 {
		t.Fatalf("clicks = %d after disabled click, want 1 (silent no-op)", clicks)
	}

	b.SetEnabled(true)
	b.OnClick()
	if clicks != 2 {
		t.Fatalf("clicks = %d after re-enable, want 2", clicks)
	}
}

func TestClickWithoutListenerIsNoOp(t *testing.T) {
	v := NewTextView("label", "hi")
	// Must not panic.
	v.OnClick()
}

func TestVisibilityDoesNotGateClicks(t *testing.T) {
	clicks := 0
	b := NewButton("btn", "go")
	b.SetOnClickListener(func() { clicks++ })
	b.SetVisible(false)
	b.OnClick()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1: visibility is advisory only", clicks)
	}
}

func TestClickListenerMayMutateTree(t *testing.T) {
	layout := NewLinearLayout("root", OrientationVertical)
	b := NewButton("add", "add")
	b.SetOnClickListener(func() {
		layout.AddView(NewTextView("added", "new"))
	})
	layout.AddView(b)

	b.OnClick()
	node := layout.Render()
	if len(node.Children) != 2 {
		t.Fatalf("got %d children after mutating click, want 2", len(node.Children))
	}
	if node.Children[1].ID != "added" {
		t.Errorf("children[1].ID = %q, want added", node.Children[1].ID)
	}
}

func TestGeometrySetters(t *testing.T) {
	v := NewEditText("input", "hint")
	v.SetPosition(15, 25)
	v.SetSize(120, 40)
	if x, y := v.Position(); x != 15 || y != 25 {
		t.Errorf("Position() = (%d, %d), want (15, 25)", x, y)
	}
	if w, h := v.Size(); w != 120 || h != 40 {
		t.Errorf("Size() = (%d, %d), want (120, 40)", w, h)
	}
}
