package bridge

// Fake toolkit used across the bridge tests. Every fake registers
// itself in the shared identity registry at construction, like a real
// toolkit would.

import (
	"github.com/odvcencio/accessbridge/identity"
	"github.com/odvcencio/accessbridge/widget"
)

type fakeWidget struct {
	kind         widget.Kind
	handle       identity.Handle
	bounds       widget.Rect
	label        string
	parent       widget.Widget
	takesEvents  bool
	visibleFocus bool
	triggers     widget.Trigger
}

func (f *fakeWidget) Kind() widget.Kind        { return f.kind }
func (f *fakeWidget) Handle() identity.Handle  { return f.handle }
func (f *fakeWidget) Bounds() widget.Rect      { return f.bounds }
func (f *fakeWidget) Label() string            { return f.label }
func (f *fakeWidget) Parent() widget.Widget    { return f.parent }
func (f *fakeWidget) TakesEvents() bool        { return f.takesEvents }
func (f *fakeWidget) HasVisibleFocus() bool    { return f.visibleFocus }
func (f *fakeWidget) Triggers() widget.Trigger { return f.triggers }

type fakeContainer struct {
	fakeWidget
	children []widget.Widget
}

func (f *fakeContainer) Children() []widget.Widget { return f.children }

type parentSetter interface {
	setParent(widget.Widget)
}

func (f *fakeWidget) setParent(p widget.Widget) { f.parent = p }

func (f *fakeContainer) add(children ...widget.Widget) {
	for _, c := range children {
		if ps, ok := c.(parentSetter); ok {
			ps.setParent(f)
		}
	}
	f.children = append(f.children, children...)
}

type fakeWindow struct {
	fakeContainer
	scale float64
}

func (f *fakeWindow) Scale() float64 { return f.scale }

func newWindow(reg *identity.Registry[any], label string, w, h int) *fakeWindow {
	win := &fakeWindow{scale: 1}
	win.kind = widget.KindWindow
	win.label = label
	win.bounds = widget.Rect{Width: w, Height: h}
	win.handle = reg.Register(win)
	return win
}

func newGroup(reg *identity.Registry[any], label string) *fakeContainer {
	g := &fakeContainer{}
	g.kind = widget.KindGroup
	g.label = label
	g.handle = reg.Register(g)
	return g
}

type fakeButton struct {
	fakeWidget
	clicks int
}

func (f *fakeButton) Activate() { f.clicks++ }

func newButton(reg *identity.Registry[any], label string) *fakeButton {
	b := &fakeButton{}
	b.kind = widget.KindButton
	b.label = label
	b.takesEvents = true
	b.visibleFocus = true
	b.triggers = widget.TriggerRelease
	b.handle = reg.Register(b)
	return b
}

type fakeToggle struct {
	fakeWidget
	checked bool
}

func (f *fakeToggle) Checked() bool     { return f.checked }
func (f *fakeToggle) SetChecked(v bool) { f.checked = v }

func newToggle(reg *identity.Registry[any], kind widget.Kind, label string) *fakeToggle {
	t := &fakeToggle{}
	t.kind = kind
	t.label = label
	t.takesEvents = true
	t.visibleFocus = true
	t.triggers = widget.TriggerRelease
	t.handle = reg.Register(t)
	return t
}

type fakeSlider struct {
	fakeWidget
	value, min, max, step float64
}

func (f *fakeSlider) Value() float64   { return f.value }
func (f *fakeSlider) Minimum() float64 { return f.min }
func (f *fakeSlider) Maximum() float64 { return f.max }
func (f *fakeSlider) Step() float64    { return f.step }

// SetValue clamps to the range, like a real valuator.
func (f *fakeSlider) SetValue(v float64) {
	if v < f.min {
		v = f.min
	}
	if v > f.max {
		v = f.max
	}
	f.value = v
}

func newSlider(reg *identity.Registry[any], kind widget.Kind, min, max float64) *fakeSlider {
	s := &fakeSlider{min: min, max: max, step: 1}
	s.kind = kind
	s.takesEvents = true
	s.handle = reg.Register(s)
	return s
}

type fakeInput struct {
	fakeWidget
	text             []rune
	selStart, selEnd int
	caret            int
	focused          bool
	caretScrolls     int
}

func (f *fakeInput) Text() string { return string(f.text) }

func (f *fakeInput) SetText(s string) {
	f.text = []rune(s)
	f.caret = len(f.text)
	f.selStart, f.selEnd = f.caret, f.caret
}

func (f *fakeInput) Selection() (int, int) { return f.selStart, f.selEnd }

func (f *fakeInput) Select(start, end int) {
	f.selStart, f.selEnd = start, end
	f.caret = end
}

func (f *fakeInput) Caret() int { return f.caret }

func (f *fakeInput) SetCaret(offset int) {
	f.caret = offset
	f.selStart, f.selEnd = offset, offset
}

func (f *fakeInput) ReplaceRange(start, end int, text string) {
	replacement := []rune(text)
	updated := make([]rune, 0, len(f.text)-(end-start)+len(replacement))
	updated = append(updated, f.text[:start]...)
	updated = append(updated, replacement...)
	updated = append(updated, f.text[end:]...)
	f.text = updated
}

func (f *fakeInput) ScrollToCaret() { f.caretScrolls++ }

func (f *fakeInput) TakeFocus() bool {
	f.focused = true
	return true
}

func newInput(reg *identity.Registry[any], kind widget.Kind, label string) *fakeInput {
	in := &fakeInput{}
	in.kind = kind
	in.label = label
	in.takesEvents = true
	in.visibleFocus = true
	in.handle = reg.Register(in)
	return in
}

type fakeItem struct {
	handle  identity.Handle
	label   string
	kind    widget.ItemKind
	checked bool
}

func (f *fakeItem) Handle() identity.Handle { return f.handle }
func (f *fakeItem) Label() string           { return f.label }
func (f *fakeItem) Kind() widget.ItemKind   { return f.kind }
func (f *fakeItem) Checked() bool           { return f.checked }

func newItem(reg *identity.Registry[any], label string, kind widget.ItemKind, checked bool) *fakeItem {
	item := &fakeItem{label: label, kind: kind, checked: checked}
	item.handle = reg.Register(item)
	return item
}

type fakeChoice struct {
	fakeWidget
	items []widget.Item
}

func (f *fakeChoice) Items() []widget.Item { return f.items }

func newChoice(reg *identity.Registry[any], kind widget.Kind, label string, items ...widget.Item) *fakeChoice {
	c := &fakeChoice{items: items}
	c.kind = kind
	c.label = label
	c.takesEvents = true
	c.visibleFocus = true
	c.handle = reg.Register(c)
	return c
}

type fakeScroll struct {
	fakeContainer
	offset int
}

func (f *fakeScroll) ScrollBy(steps int) { f.offset += steps }

func newScroll(reg *identity.Registry[any]) *fakeScroll {
	s := &fakeScroll{}
	s.kind = widget.KindScrollView
	s.handle = reg.Register(s)
	return s
}
