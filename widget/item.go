package widget

import "github.com/odvcencio/accessbridge/identity"

// ItemKind classifies one entry of a composite chooser.
type ItemKind uint8

const (
	ItemPlain ItemKind = iota
	ItemCheck
	ItemRadio
	ItemSubmenu
)

// Item is one entry of a menu bar, choice, or menu button. Items are
// not widgets and have no bounds or event handling of their own, but
// each carries its own runtime-identity handle so it can appear as a
// distinct node in the accessibility tree.
type Item interface {
	Handle() identity.Handle
	Label() string
	Kind() ItemKind

	// Checked reports the item's current radio/check value. Plain
	// items report false.
	Checked() bool
}

// ItemHolder widgets expand into one synthetic node per entry.
type ItemHolder interface {
	Items() []Item
}

// Event is a coarse UI event class forwarded to the bridge through the
// toolkit's event hook. Only key releases drive tree publication.
type Event uint8

const (
	EventNone Event = iota
	EventKeyPress
	EventKeyRelease
	EventFocusChange
)
