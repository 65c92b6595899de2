package widget

import "github.com/odvcencio/accessbridge/identity"

// Rect is a widget rectangle in toolkit coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Trigger is the activation-trigger configuration of a widget,
// as a bitmask. A widget whose triggers include TriggerRelease
// responds to a primary activation gesture.
type Trigger uint8

const (
	TriggerChanged Trigger = 1 << iota
	TriggerRelease
	TriggerEnterKey
)

// Has reports whether t includes the given trigger bit.
func (t Trigger) Has(bit Trigger) bool { return t&bit != 0 }

// Widget is the minimal per-widget query surface the bridge reads.
// Implementations must only be touched from the UI thread.
type Widget interface {
	// Kind reports the widget's concrete kind.
	Kind() Kind

	// Handle returns the widget's runtime-identity handle, registered
	// at construction and valid exactly as long as the widget lives.
	Handle() identity.Handle

	// Bounds returns position and size in the parent's coordinate space.
	Bounds() Rect

	// Label returns the widget's textual label, or "".
	Label() string

	// Parent returns the enclosing widget, or nil for a top-level one.
	Parent() Widget

	// TakesEvents reports whether the widget accepts input events.
	TakesEvents() bool

	// HasVisibleFocus reports whether the widget shows a focus
	// indicator when focused.
	HasVisibleFocus() bool

	// Triggers returns the activation-trigger configuration.
	Triggers() Trigger
}

// Container is a widget holding an ordered list of children.
type Container interface {
	Widget
	Children() []Widget
}

// Window is a top-level container. Scale is the display scale factor
// for the screen the window sits on.
type Window interface {
	Container
	Scale() float64
}

// Activatable widgets carry a registered activation callback.
type Activatable interface {
	Activate()
}

// FocusTaker widgets can be asked to take input focus. TakeFocus
// reports whether focus was accepted; refusal is not an error.
type FocusTaker interface {
	TakeFocus() bool
}

// Toggleable widgets hold a boolean checked/toggled value.
type Toggleable interface {
	Checked() bool
	SetChecked(bool)
}

// Valuator widgets hold a numeric value within a stepped range.
// SetValue applies the widget's own clamping rules.
type Valuator interface {
	Value() float64
	Minimum() float64
	Maximum() float64
	Step() float64
	SetValue(float64)
}

// TextHolder widgets expose their full text content. Offsets used
// elsewhere in this contract are character (rune) offsets into Text.
type TextHolder interface {
	Text() string
	SetText(string)
}

// TextEditor widgets additionally expose selection and caret
// primitives over their buffer.
type TextEditor interface {
	TextHolder

	// Selection returns the selected character range with start <= end.
	// An empty selection returns the caret position twice.
	Selection() (start, end int)

	// Select replaces the selection with [start, end] and places the
	// caret at end.
	Select(start, end int)

	// Caret returns the caret's character offset.
	Caret() int

	// SetCaret moves the caret, collapsing any selection.
	SetCaret(offset int)

	// ReplaceRange substitutes text for the characters in [start, end).
	ReplaceRange(start, end int, text string)

	// ScrollToCaret scrolls the caret into visible view, best effort.
	ScrollToCaret()
}

// Scrollable containers can be scrolled by whole steps; positive is
// down, negative is up.
type Scrollable interface {
	ScrollBy(steps int)
}

// ImageHolder widgets may carry an attached image, which switches
// their reported role from text label to image.
type ImageHolder interface {
	HasImage() bool
}
