// Package platform normalizes the accessibility transport backends
// behind one construction and update interface. Two backend families
// exist: subclassing backends hook a native window handle and hand back
// an event set that must be raised after every update; bus backends run
// a session service and take pushed updates directly, plus explicit
// root-window bounds because they cannot read them from a native handle.
//
// The concrete backends live outside this module; this package only
// consumes their documented contracts.
package platform

import "github.com/odvcencio/accessbridge/accessibility"

// ActivationHandler supplies the initial tree. The transport calls it
// lazily, once, when a consumer first attaches.
type ActivationHandler interface {
	RequestInitialTree() *accessibility.TreeUpdate
}

// ActionHandler receives consumer-initiated actions. It may be called
// from the transport's own service thread; implementations must marshal
// onto the UI thread before touching widget state.
type ActionHandler interface {
	DoAction(req accessibility.ActionRequest)
}

// DeactivationHandler is notified when the consumer detaches.
type DeactivationHandler interface {
	Deactivate()
}

// Handlers bundles the construction-time callbacks every backend takes.
type Handlers struct {
	Activation   ActivationHandler
	Action       ActionHandler
	Deactivation DeactivationHandler
}

// QueuedEvents is the pending event set a subclassing backend produces
// for one update. Raise must be called exactly once, after the update
// that produced it has been fully applied.
type QueuedEvents interface {
	Raise()
}

// Backend is one concrete accessibility transport bound to a window.
//
// UpdateIfActive invokes build and delivers the resulting snapshot only
// if a consumer is attached; otherwise build is never called. Backends
// with a pull-then-signal delivery model return the event set to raise;
// push backends return nil.
type Backend interface {
	UpdateIfActive(build func() accessibility.TreeUpdate) QueuedEvents
}

// BoundsNotifier is implemented by backends that need the root window's
// outer (decorated) and inner (content) rectangles forwarded on resize.
// Subclassing backends infer bounds from the native handle and do not
// implement it.
type BoundsNotifier interface {
	SetRootWindowBounds(outer, inner accessibility.Rect)
}

// Factory constructs a backend bound to the window that owns the given
// handlers. Construction happens once per window.
type Factory func(Handlers) Backend
