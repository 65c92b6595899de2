package bridge

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/identity"
	"github.com/odvcencio/accessbridge/platform"
	"github.com/odvcencio/accessbridge/widget"
)

// Config wires a Bridge to one window and its transport.
type Config struct {
	// Window is the root the bridge observes. Required.
	Window widget.Window

	// Registry is the identity registry the toolkit mints widget and
	// item handles from. Required; the bridge resolves inbound action
	// targets through it.
	Registry *identity.Registry[any]

	// Backend constructs the accessibility transport for this window.
	// Required.
	Backend platform.Factory

	// Exclusions prunes widgets from collection. Optional.
	Exclusions *ExclusionSet

	// Focus queries the widget currently holding input focus, or nil.
	// Optional; without it the focus id always falls back to the root.
	Focus func() widget.Widget

	// Wake wakes the UI thread so it will call ProcessActions.
	// Optional; without it the toolkit must poll ProcessActions itself.
	Wake Waker

	// Logger receives debug-level sync diagnostics. Optional.
	Logger *slog.Logger
}

// Bridge keeps one window's accessibility tree current and relays
// consumer actions back into it. Construct one per window with Attach;
// it must outlive the window's event closures that reference it.
//
// All methods except DoAction must be called on the UI thread.
type Bridge struct {
	window   widget.Window
	registry *identity.Registry[any]
	adapter  *platform.Adapter
	excl     *ExclusionSet
	focus    func() widget.Widget

	dispatcher *Dispatcher
	logger     *slog.Logger
	seq        atomic.Uint64
}

// Attach builds the bridge and constructs its transport backend.
func Attach(cfg Config) (*Bridge, error) {
	switch {
	case cfg.Window == nil:
		return nil, errors.New("bridge: config needs a window")
	case cfg.Registry == nil:
		return nil, errors.New("bridge: config needs an identity registry")
	case cfg.Backend == nil:
		return nil, errors.New("bridge: config needs a backend factory")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	logger = logger.With("bridge", ulid.Make().String())

	b := &Bridge{
		window:   cfg.Window,
		registry: cfg.Registry,
		excl:     cfg.Exclusions,
		focus:    cfg.Focus,
		logger:   logger,
	}
	b.dispatcher = NewDispatcher(b.resolveWidget, cfg.Wake, logger)
	b.adapter = platform.NewAdapter(cfg.Backend, platform.Handlers{
		Activation:   b,
		Action:       b,
		Deactivation: b,
	})
	return b, nil
}

// HandleEvent observes one toolkit event. A key release, meaning any
// keyboard interaction that might have moved focus or changed content,
// triggers a full republish. The event is never consumed.
func (b *Bridge) HandleEvent(ev widget.Event) bool {
	if b != nil && ev == widget.EventKeyRelease {
		b.Publish()
	}
	return false
}

// Publish recomputes the tree and hands it to the transport, if a
// consumer is attached. Publication is fire-and-forget: an inactive
// transport skips the rebuild entirely.
func (b *Bridge) Publish() {
	if b == nil {
		return
	}
	b.adapter.UpdateIfActive(func() accessibility.TreeUpdate {
		u := b.snapshot(false)
		b.logger.Debug("published tree update",
			"seq", b.seq.Add(1), "nodes", len(u.Nodes), "focus", uint64(u.Focus))
		return u
	})
}

// RequestInitialTree serves the transport's lazy one-time pull when a
// consumer first attaches. The returned update designates the root.
func (b *Bridge) RequestInitialTree() *accessibility.TreeUpdate {
	if b == nil {
		return nil
	}
	u := b.snapshot(true)
	b.logger.Debug("served initial tree", "nodes", len(u.Nodes), "root", uint64(u.Root))
	return &u
}

// DoAction receives one consumer action, possibly on the transport's
// service thread, and queues it for the UI thread.
func (b *Bridge) DoAction(req accessibility.ActionRequest) {
	if b == nil {
		return
	}
	b.dispatcher.Enqueue(req)
}

// Deactivate notes that the consumer detached. Publishing simply stays
// suppressed until the transport reports active again.
func (b *Bridge) Deactivate() {
	if b == nil {
		return
	}
	b.logger.Debug("consumer detached")
}

// ProcessActions drains queued consumer actions. The toolkit calls it
// on the UI thread when woken; one call applies everything pending.
func (b *Bridge) ProcessActions() int {
	if b == nil {
		return 0
	}
	n := b.dispatcher.Drain()
	if n > 0 {
		b.logger.Debug("applied consumer actions", "count", n)
	}
	return n
}

// NotifyResize forwards the window's new outer (decorated) and inner
// (content) rectangles, in screen coordinates, to transports that need
// them. On transports that read bounds natively this is a no-op.
func (b *Bridge) NotifyResize(outer, inner widget.Rect) {
	if b == nil {
		return
	}
	b.adapter.SetRootWindowBounds(screenRect(outer), screenRect(inner))
}

// snapshot builds a complete tree snapshot. The root's node is built
// last, after collection, because it needs the surviving top-level
// child ids as input.
func (b *Bridge) snapshot(includeRoot bool) accessibility.TreeUpdate {
	nodes, top := Collect(b.window, b.excl)
	root, _ := BuildNode(b.window, top)
	nodes[root.ID] = root

	focus := root.ID
	if b.focus != nil {
		if w := b.focus(); w != nil {
			if id := NodeIDFor(w); nodes[id].ID == id {
				focus = id
			}
		}
	}

	u := accessibility.TreeUpdate{Nodes: nodes, Focus: focus}
	if includeRoot {
		u.Root = root.ID
	}
	return u
}

func (b *Bridge) resolveWidget(id accessibility.NodeID) widget.Widget {
	v, ok := b.registry.Resolve(identity.Handle(id))
	if !ok {
		return nil
	}
	w, _ := v.(widget.Widget)
	return w
}

func screenRect(r widget.Rect) accessibility.Rect {
	return accessibility.RectFromOriginSize(
		float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
}
