package platform

import "github.com/odvcencio/accessbridge/accessibility"

// Adapter fronts one backend for one window. It is constructed once per
// window and must stay alive as long as the window does; the window's
// resize closure and the main update path share the same *Adapter, and
// all mutation through it happens on the UI thread.
type Adapter struct {
	backend Backend
}

// NewAdapter constructs the backend through factory and wraps it.
func NewAdapter(factory Factory, h Handlers) *Adapter {
	if factory == nil {
		return &Adapter{}
	}
	return &Adapter{backend: factory(h)}
}

// UpdateIfActive publishes a snapshot if a consumer is attached. The
// build callback runs only in that case, so an inactive transport costs
// no tree collection. When the backend queues events, they are raised
// immediately after the update lands.
func (a *Adapter) UpdateIfActive(build func() accessibility.TreeUpdate) {
	if a == nil || a.backend == nil || build == nil {
		return
	}
	if events := a.backend.UpdateIfActive(build); events != nil {
		events.Raise()
	}
}

// SetRootWindowBounds forwards the root window's outer and inner
// rectangles, in screen coordinates, to backends that need them.
// For subclassing backends this is a no-op.
func (a *Adapter) SetRootWindowBounds(outer, inner accessibility.Rect) {
	if a == nil {
		return
	}
	if n, ok := a.backend.(BoundsNotifier); ok {
		n.SetRootWindowBounds(outer, inner)
	}
}
