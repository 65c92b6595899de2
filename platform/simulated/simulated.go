// Package simulated provides an in-memory accessibility transport for
// tests and examples. It records every delivered update, maintains the
// consumer's cumulative node state, and can imitate either transport
// family: push-style delivery, or pull-then-signal with an event set
// that must be raised after each update.
package simulated

import (
	"sync"

	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/platform"
)

// Backend is a recording transport. The zero value is not usable;
// create one with New and hand Factory to the bridge.
type Backend struct {
	mu       sync.Mutex
	handlers platform.Handlers
	active   bool
	deferred bool

	updates []accessibility.TreeUpdate
	state   map[accessibility.NodeID]accessibility.Node
	root    accessibility.NodeID
	raised  int
	bounds  []BoundsChange
	errs    []error
}

// BoundsChange is one recorded root-window bounds notification.
type BoundsChange struct {
	Outer, Inner accessibility.Rect
}

// New creates an inactive backend.
func New() *Backend {
	return &Backend{state: make(map[accessibility.NodeID]accessibility.Node)}
}

// Factory binds the backend to the bridge's handlers. Pass it as the
// bridge config's Backend.
func (b *Backend) Factory(h platform.Handlers) platform.Backend {
	b.mu.Lock()
	b.handlers = h
	b.mu.Unlock()
	return b
}

// DeferEvents switches the backend to the pull-then-signal delivery
// model: UpdateIfActive returns an event set the caller must raise.
func (b *Backend) DeferEvents(on bool) {
	b.mu.Lock()
	b.deferred = on
	b.mu.Unlock()
}

// Activate attaches the simulated consumer. Like a real transport, it
// lazily pulls the initial tree through the activation handler.
func (b *Backend) Activate() {
	b.mu.Lock()
	if b.active {
		b.mu.Unlock()
		return
	}
	b.active = true
	activation := b.handlers.Activation
	b.mu.Unlock()

	if activation == nil {
		return
	}
	if u := activation.RequestInitialTree(); u != nil {
		b.record(*u)
	}
}

// Deactivate detaches the consumer and fires the deactivation hook.
func (b *Backend) Deactivate() {
	b.mu.Lock()
	if !b.active {
		b.mu.Unlock()
		return
	}
	b.active = false
	deactivation := b.handlers.Deactivation
	b.mu.Unlock()

	if deactivation != nil {
		deactivation.Deactivate()
	}
}

// UpdateIfActive implements platform.Backend.
func (b *Backend) UpdateIfActive(build func() accessibility.TreeUpdate) platform.QueuedEvents {
	b.mu.Lock()
	active, deferred := b.active, b.deferred
	b.mu.Unlock()
	if !active {
		return nil
	}
	b.record(build())
	if deferred {
		return &queuedEvents{backend: b}
	}
	return nil
}

// SetRootWindowBounds implements platform.BoundsNotifier.
func (b *Backend) SetRootWindowBounds(outer, inner accessibility.Rect) {
	b.mu.Lock()
	b.bounds = append(b.bounds, BoundsChange{Outer: outer, Inner: inner})
	b.mu.Unlock()
}

// InjectAction delivers a consumer action through the action handler,
// from whatever goroutine the caller runs on, as a transport service
// thread would.
func (b *Backend) InjectAction(req accessibility.ActionRequest) {
	b.mu.Lock()
	action := b.handlers.Action
	b.mu.Unlock()
	if action != nil {
		action.DoAction(req)
	}
}

func (b *Backend) record(u accessibility.TreeUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := u.Validate(b.state); err != nil {
		b.errs = append(b.errs, err)
	}
	for id, node := range u.Nodes {
		b.state[id] = node
	}
	if u.Root != 0 {
		b.root = u.Root
	}
	b.updates = append(b.updates, u)
}

// Updates returns every recorded update in delivery order.
func (b *Backend) Updates() []accessibility.TreeUpdate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]accessibility.TreeUpdate(nil), b.updates...)
}

// LastUpdate returns the most recent update, if any.
func (b *Backend) LastUpdate() (accessibility.TreeUpdate, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.updates) == 0 {
		return accessibility.TreeUpdate{}, false
	}
	return b.updates[len(b.updates)-1], true
}

// Node returns the consumer's cumulative view of one node.
func (b *Backend) Node(id accessibility.NodeID) (accessibility.Node, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	node, ok := b.state[id]
	return node, ok
}

// Root returns the designated root id, or zero before the first
// structural update.
func (b *Backend) Root() accessibility.NodeID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.root
}

// Raised returns how many event sets were raised.
func (b *Backend) Raised() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.raised
}

// BoundsChanges returns recorded root-window bounds notifications.
func (b *Backend) BoundsChanges() []BoundsChange {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]BoundsChange(nil), b.bounds...)
}

// Errors returns invariant violations detected while recording.
func (b *Backend) Errors() []error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]error(nil), b.errs...)
}

type queuedEvents struct {
	backend *Backend
	once    sync.Once
}

// Raise implements platform.QueuedEvents.
func (q *queuedEvents) Raise() {
	q.once.Do(func() {
		q.backend.mu.Lock()
		q.backend.raised++
		q.backend.mu.Unlock()
	})
}
