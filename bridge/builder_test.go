package bridge

import (
	"testing"

	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/identity"
	"github.com/odvcencio/accessbridge/widget"
)

func TestBuildNode_Roles(t *testing.T) {
	reg := identity.NewRegistry[any]()

	tests := []struct {
		name string
		w    widget.Widget
		role accessibility.Role
	}{
		{"button", newButton(reg, "b"), accessibility.RoleButton},
		{"check", newToggle(reg, widget.KindCheckButton, "c"), accessibility.RoleCheckBox},
		{"radio", newToggle(reg, widget.KindRadioButton, "r"), accessibility.RoleRadioButton},
		{"toggle", newToggle(reg, widget.KindToggleButton, "t"), accessibility.RoleToggleButton},
		{"window", newWindow(reg, "w", 100, 50), accessibility.RoleWindow},
		{"group", newGroup(reg, "g"), accessibility.RoleGroup},
		{"input", newInput(reg, widget.KindInput, "i"), accessibility.RoleTextInput},
		{"multiline", newInput(reg, widget.KindMultilineInput, "m"), accessibility.RoleMultilineTextInput},
		{"editor", newInput(reg, widget.KindTextEditor, "e"), accessibility.RoleMultilineTextInput},
		{"slider", newSlider(reg, widget.KindSlider, 0, 10), accessibility.RoleSlider},
		{"dial", newSlider(reg, widget.KindDial, 0, 10), accessibility.RoleSlider},
		{"scrollbar", newSlider(reg, widget.KindScrollbar, 0, 10), accessibility.RoleScrollBar},
		{"progress", newSlider(reg, widget.KindProgress, 0, 10), accessibility.RoleProgressIndicator},
		{"choice", newChoice(reg, widget.KindChoice, "ch"), accessibility.RoleComboBox},
		{"menubutton", newChoice(reg, widget.KindMenuButton, "mb"), accessibility.RoleComboBox},
		{"scrollview", newScroll(reg), accessibility.RoleScrollView},
	}

	for _, tt := range tests {
		node, ok := BuildNode(tt.w, nil)
		if !ok {
			t.Fatalf("%s: expected a node, got none", tt.name)
		}
		if node.Role != tt.role {
			t.Errorf("%s: expected role %s, got %s", tt.name, tt.role, node.Role)
		}
		if node.ID != NodeIDFor(tt.w) {
			t.Errorf("%s: node id does not match widget identity", tt.name)
		}
	}
}

func TestBuildNode_UnrecognizedKindOmitted(t *testing.T) {
	reg := identity.NewRegistry[any]()
	w := &fakeWidget{kind: widget.KindUnknown}
	w.handle = reg.Register(w)

	if _, ok := BuildNode(w, nil); ok {
		t.Fatal("expected no node for an unrecognized kind")
	}
}

func TestBuildNode_ClickRequiresReleaseTrigger(t *testing.T) {
	reg := identity.NewRegistry[any]()

	b := newButton(reg, "ok")
	node, _ := BuildNode(b, nil)
	if !node.Actions.Has(accessibility.ActionClick) {
		t.Error("expected click action with a release trigger")
	}

	b2 := newButton(reg, "quiet")
	b2.triggers = widget.TriggerChanged
	node, _ = BuildNode(b2, nil)
	if node.Actions.Has(accessibility.ActionClick) {
		t.Error("expected no click action without a release trigger")
	}
}

func TestBuildNode_FocusRequiresEventsAndIndicator(t *testing.T) {
	reg := identity.NewRegistry[any]()

	b := newButton(reg, "ok")
	node, _ := BuildNode(b, nil)
	if !node.Actions.Has(accessibility.ActionFocus) {
		t.Error("expected focus action")
	}

	b.visibleFocus = false
	node, _ = BuildNode(b, nil)
	if node.Actions.Has(accessibility.ActionFocus) {
		t.Error("expected no focus action without a visible focus indicator")
	}

	b.visibleFocus = true
	b.takesEvents = false
	node, _ = BuildNode(b, nil)
	if node.Actions.Has(accessibility.ActionFocus) {
		t.Error("expected no focus action when events are not accepted")
	}
}

func TestBuildNode_BoundsParentRelative(t *testing.T) {
	reg := identity.NewRegistry[any]()
	win := newWindow(reg, "w", 400, 300)
	b := newButton(reg, "ok")
	b.bounds = widget.Rect{X: 10, Y: 20, Width: 80, Height: 25}
	win.add(b)

	node, _ := BuildNode(b, nil)
	want := accessibility.Rect{X0: 10, Y0: 20, X1: 90, Y1: 45}
	if node.Bounds != want {
		t.Fatalf("expected bounds %+v, got %+v", want, node.Bounds)
	}
}

func TestBuildNode_WindowBoundsAndTransform(t *testing.T) {
	reg := identity.NewRegistry[any]()
	win := newWindow(reg, "w", 400, 300)
	win.bounds = widget.Rect{X: 120, Y: 80, Width: 400, Height: 300}
	win.scale = 2

	node, _ := BuildNode(win, nil)
	want := accessibility.Rect{X0: 0, Y0: 0, X1: 400, Y1: 300}
	if node.Bounds != want {
		t.Fatalf("expected origin-anchored bounds %+v, got %+v", want, node.Bounds)
	}
	if node.Transform == nil {
		t.Fatal("expected a scale transform on the window node")
	}
	if node.Transform.ScaleX != 2 || node.Transform.ScaleY != 2 {
		t.Fatalf("expected scale 2, got %+v", *node.Transform)
	}
}

func TestBuildNode_ParentlessWidgetOriginAnchored(t *testing.T) {
	reg := identity.NewRegistry[any]()
	b := newButton(reg, "floating")
	b.bounds = widget.Rect{X: 5, Y: 6, Width: 30, Height: 10}

	node, _ := BuildNode(b, nil)
	want := accessibility.Rect{X0: 0, Y0: 0, X1: 30, Y1: 10}
	if node.Bounds != want {
		t.Fatalf("expected origin-anchored bounds %+v, got %+v", want, node.Bounds)
	}
}

func TestBuildNode_ToggleState(t *testing.T) {
	reg := identity.NewRegistry[any]()
	c := newToggle(reg, widget.KindCheckButton, "opt")

	node, _ := BuildNode(c, nil)
	if node.Toggled == nil || *node.Toggled != accessibility.TristateFalse {
		t.Fatalf("expected toggled false, got %v", node.Toggled)
	}

	c.checked = true
	node, _ = BuildNode(c, nil)
	if node.Toggled == nil || *node.Toggled != accessibility.TristateTrue {
		t.Fatalf("expected toggled true, got %v", node.Toggled)
	}
}

func TestBuildNode_ValuatorNumeric(t *testing.T) {
	reg := identity.NewRegistry[any]()
	s := newSlider(reg, widget.KindSlider, 0, 100)
	s.value = 40

	node, _ := BuildNode(s, nil)
	if node.Numeric == nil {
		t.Fatal("expected numeric state")
	}
	if node.Numeric.Value != 40 || node.Numeric.Min != 0 || node.Numeric.Max != 100 || node.Numeric.Step != 1 {
		t.Fatalf("unexpected numeric state %+v", *node.Numeric)
	}
	if !node.Actions.Has(accessibility.ActionSetValue) {
		t.Error("expected setvalue action on a slider")
	}

	sb := newSlider(reg, widget.KindScrollbar, 0, 100)
	node, _ = BuildNode(sb, nil)
	if node.Actions.Has(accessibility.ActionSetValue) {
		t.Error("expected no setvalue action on a scrollbar")
	}
}

func TestBuildNode_TextInputValueAndActions(t *testing.T) {
	reg := identity.NewRegistry[any]()
	in := newInput(reg, widget.KindInput, "name")
	in.SetText("bob")

	node, _ := BuildNode(in, nil)
	if node.Value != "bob" {
		t.Fatalf("expected value %q, got %q", "bob", node.Value)
	}
	if node.Multiline {
		t.Error("expected single-line input to not be multiline")
	}
	for _, a := range []accessibility.Action{
		accessibility.ActionFocus,
		accessibility.ActionSetValue,
		accessibility.ActionSetTextSelection,
		accessibility.ActionReplaceSelectedText,
		accessibility.ActionScrollIntoView,
	} {
		if !node.Actions.Has(a) {
			t.Errorf("expected %s action on an editable input", a)
		}
	}
}

func TestBuildNode_SelectionSpan(t *testing.T) {
	reg := identity.NewRegistry[any]()
	in := newInput(reg, widget.KindMultilineInput, "notes")
	in.SetText("hello world")
	in.Select(2, 7)

	node, _ := BuildNode(in, nil)
	if !node.Multiline {
		t.Error("expected multiline input to be marked multiline")
	}
	sel := node.Selection
	if sel == nil {
		t.Fatal("expected a selection span")
	}
	if sel.Anchor.Node != node.ID || sel.Focus.Node != node.ID {
		t.Error("expected both selection ends anchored to the widget's own id")
	}
	if sel.Anchor.Offset != 2 || sel.Focus.Offset != 7 {
		t.Fatalf("expected span anchor 2 focus 7, got %d and %d", sel.Anchor.Offset, sel.Focus.Offset)
	}

	in.SetCaret(4)
	node, _ = BuildNode(in, nil)
	if !node.Selection.IsCollapsed() || node.Selection.Focus.Offset != 4 {
		t.Fatalf("expected collapsed selection at 4, got %+v", *node.Selection)
	}
}

func TestBuildNode_ChildrenAppendedInOrder(t *testing.T) {
	reg := identity.NewRegistry[any]()
	win := newWindow(reg, "w", 100, 100)
	children := []accessibility.NodeID{7, 11, 13}

	node, _ := BuildNode(win, children)
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(node.Children))
	}
	for i, id := range children {
		if node.Children[i] != id {
			t.Fatalf("expected child %d to be %d, got %d", i, id, node.Children[i])
		}
	}
}
