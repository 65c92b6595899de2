// Package bridge keeps an external accessibility tree synchronized with
// a live widget hierarchy. It maps widgets to semantic nodes, collects
// full tree snapshots, publishes them through a platform adapter when a
// consumer is attached, and applies consumer-initiated actions back onto
// widget state on the UI thread.
package bridge

import (
	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/widget"
)

// NodeIDFor derives the accessibility node id for a widget. Identity is
// a pure function of the widget's runtime handle: the same live widget
// always maps to the same id, distinct live widgets never collide.
func NodeIDFor(w widget.Widget) accessibility.NodeID {
	return accessibility.NodeID(w.Handle())
}

// buildFunc fills in the role-specific fields of a node whose common
// fields are already set.
type buildFunc func(w widget.Widget, node *accessibility.Node)

// builders is the closed per-kind build table, registered once.
// Kinds absent from the table produce no node.
var builders = map[widget.Kind]buildFunc{
	widget.KindWindow: buildWindow,

	widget.KindGroup:      roleOnly(accessibility.RoleGroup),
	widget.KindFlex:       roleOnly(accessibility.RoleGroup),
	widget.KindTable:      roleOnly(accessibility.RoleTable),
	widget.KindTree:       roleOnly(accessibility.RoleTree),
	widget.KindScrollView: buildScrollView,

	widget.KindButton:       roleOnly(accessibility.RoleButton),
	widget.KindCheckButton:  toggled(accessibility.RoleCheckBox),
	widget.KindRadioButton:  toggled(accessibility.RoleRadioButton),
	widget.KindToggleButton: toggled(accessibility.RoleToggleButton),

	widget.KindLabel:           buildLabel,
	widget.KindOutput:          display(accessibility.RoleLabel, false),
	widget.KindMultilineOutput: display(accessibility.RoleParagraph, true),
	widget.KindTextDisplay:     display(accessibility.RoleParagraph, true),
	widget.KindTerminal:        display(accessibility.RoleTerminal, true),

	widget.KindInput:          textInput(accessibility.RoleTextInput, false),
	widget.KindIntInput:       textInput(accessibility.RoleTextInput, false),
	widget.KindFloatInput:     textInput(accessibility.RoleTextInput, false),
	widget.KindMultilineInput: textInput(accessibility.RoleMultilineTextInput, true),
	widget.KindTextEditor:     textInput(accessibility.RoleMultilineTextInput, true),

	widget.KindSlider:      valuator(accessibility.RoleSlider, true),
	widget.KindDial:        valuator(accessibility.RoleSlider, true),
	widget.KindCounter:     valuator(accessibility.RoleSlider, true),
	widget.KindRoller:      valuator(accessibility.RoleSlider, true),
	widget.KindValueInput:  valuator(accessibility.RoleSlider, true),
	widget.KindValueOutput: valuator(accessibility.RoleSlider, true),
	widget.KindScrollbar:   valuator(accessibility.RoleScrollBar, false),
	widget.KindProgress:    valuator(accessibility.RoleProgressIndicator, false),

	widget.KindMenuBar:    roleOnly(accessibility.RoleMenuBar),
	widget.KindChoice:     roleOnly(accessibility.RoleComboBox),
	widget.KindMenuButton: roleOnly(accessibility.RoleComboBox),
}

// BuildNode maps one widget plus a precomputed child-id list to its
// accessibility node. It reads widget state but never writes it.
// The second result is false for unrecognized kinds: the widget is
// simply invisible to the tree.
func BuildNode(w widget.Widget, children []accessibility.NodeID) (accessibility.Node, bool) {
	build, ok := builders[w.Kind()]
	if !ok {
		return accessibility.Node{}, false
	}
	node := accessibility.Node{ID: NodeIDFor(w)}
	applyCommon(w, &node, children)
	build(w, &node)
	return node, true
}

// Recognized reports whether the kind has a node mapping.
func Recognized(kind widget.Kind) bool {
	_, ok := builders[kind]
	return ok
}

func applyCommon(w widget.Widget, node *accessibility.Node, children []accessibility.NodeID) {
	b := w.Bounds()
	if w.Parent() != nil && w.Kind() != widget.KindWindow {
		node.Bounds = accessibility.Rect{
			X0: float64(b.X),
			Y0: float64(b.Y),
			X1: float64(b.X + b.Width),
			Y1: float64(b.Y + b.Height),
		}
	} else {
		node.Bounds = accessibility.Rect{X1: float64(b.Width), Y1: float64(b.Height)}
	}

	node.Label = w.Label()

	if w.Triggers().Has(widget.TriggerRelease) {
		node.Actions = node.Actions.With(accessibility.ActionClick)
	}
	if w.TakesEvents() && w.HasVisibleFocus() {
		node.Actions = node.Actions.With(accessibility.ActionFocus)
	}

	node.Children = append(node.Children, children...)
}

func roleOnly(role accessibility.Role) buildFunc {
	return func(_ widget.Widget, node *accessibility.Node) {
		node.Role = role
	}
}

func buildWindow(w widget.Widget, node *accessibility.Node) {
	node.Role = accessibility.RoleWindow
	scale := 1.0
	if win, ok := w.(widget.Window); ok {
		scale = win.Scale()
	}
	t := accessibility.Scale(scale)
	node.Transform = &t
}

func buildScrollView(_ widget.Widget, node *accessibility.Node) {
	node.Role = accessibility.RoleScrollView
	node.Actions = node.Actions.
		With(accessibility.ActionScrollUp).
		With(accessibility.ActionScrollDown)
}

func buildLabel(w widget.Widget, node *accessibility.Node) {
	node.Role = accessibility.RoleLabel
	if img, ok := w.(widget.ImageHolder); ok && img.HasImage() {
		node.Role = accessibility.RoleImage
	}
}

func toggled(role accessibility.Role) buildFunc {
	return func(w widget.Widget, node *accessibility.Node) {
		node.Role = role
		state := accessibility.TristateFalse
		if t, ok := w.(widget.Toggleable); ok && t.Checked() {
			state = accessibility.TristateTrue
		}
		node.Toggled = &state
	}
}

func display(role accessibility.Role, multiline bool) buildFunc {
	return func(w widget.Widget, node *accessibility.Node) {
		node.Role = role
		node.Multiline = multiline
		if t, ok := w.(widget.TextHolder); ok {
			node.Value = t.Text()
		}
	}
}

func textInput(role accessibility.Role, multiline bool) buildFunc {
	return func(w widget.Widget, node *accessibility.Node) {
		node.Role = role
		node.Multiline = multiline
		node.Actions = node.Actions.
			With(accessibility.ActionFocus).
			With(accessibility.ActionSetValue)
		if t, ok := w.(widget.TextHolder); ok {
			node.Value = t.Text()
		}
		ed, ok := w.(widget.TextEditor)
		if !ok {
			return
		}
		node.Actions = node.Actions.
			With(accessibility.ActionSetTextSelection).
			With(accessibility.ActionReplaceSelectedText).
			With(accessibility.ActionScrollIntoView)
		sel := selectionSpan(node.ID, ed)
		node.Selection = &sel
	}
}

func valuator(role accessibility.Role, settable bool) buildFunc {
	return func(w widget.Widget, node *accessibility.Node) {
		node.Role = role
		if v, ok := w.(widget.Valuator); ok {
			node.Numeric = &accessibility.NumericValue{
				Value: v.Value(),
				Min:   v.Minimum(),
				Max:   v.Maximum(),
				Step:  v.Step(),
			}
		}
		if settable {
			node.Actions = node.Actions.With(accessibility.ActionSetValue)
		}
	}
}

// selectionSpan expresses the editor's selection as a directed span
// anchored to the widget's own node id. The focus end is the caret.
func selectionSpan(id accessibility.NodeID, ed widget.TextEditor) accessibility.TextSelection {
	start, end := ed.Selection()
	caret := ed.Caret()
	if start == end {
		pos := accessibility.TextPosition{Node: id, Offset: caret}
		return accessibility.TextSelection{Anchor: pos, Focus: pos}
	}
	anchor, focus := start, end
	if caret == start {
		anchor, focus = end, start
	}
	return accessibility.TextSelection{
		Anchor: accessibility.TextPosition{Node: id, Offset: anchor},
		Focus:  accessibility.TextPosition{Node: id, Offset: focus},
	}
}
