// Package identity maps live widgets to stable opaque handles.
//
// A handle is a generational index: a slot number paired with the slot's
// generation at registration time. A slot is only recycled after release,
// and recycling bumps the generation, so a stale handle can never denote
// a different live widget. Resolving a dead handle is safe and yields
// nothing; handles are back-references, never owners.
package identity

import "sync"

// Handle is a stable opaque token for one registered value. The zero
// Handle is invalid. Two handles are equal iff they denote the same
// registration.
type Handle uint64

const (
	slotBits = 32
	genMask  = 1<<slotBits - 1
)

func makeHandle(slot, generation uint32) Handle {
	return Handle(uint64(slot)<<slotBits | uint64(generation))
}

func (h Handle) slot() uint32       { return uint32(h >> slotBits) }
func (h Handle) generation() uint32 { return uint32(h & genMask) }

// IsValid reports whether h could denote a registration.
func (h Handle) IsValid() bool { return h != 0 }

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Registry allocates handles for live values and resolves them back.
// It is safe for concurrent use; resolution from a transport thread
// must still hand the value to the UI thread before mutating it.
type Registry[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Register stores v and returns its handle. The same value registered
// twice receives two distinct handles; callers register once per widget
// at construction time and keep the handle for the widget's lifetime.
func (r *Registry[T]) Register(v T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.value = v
		s.live = true
		return makeHandle(idx+1, s.generation)
	}
	// Slot numbers are 1-based so the zero Handle stays invalid.
	r.slots = append(r.slots, slot[T]{value: v, generation: 1, live: true})
	return makeHandle(uint32(len(r.slots)), 1)
}

// Resolve returns the value registered under h, if it is still live.
func (r *Registry[T]) Resolve(h Handle) (T, bool) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := h.slot()
	if idx == 0 || int(idx) > len(r.slots) {
		return zero, false
	}
	s := &r.slots[idx-1]
	if !s.live || s.generation != h.generation() {
		return zero, false
	}
	return s.value, true
}

// Release frees the handle's slot for reuse. Releasing a dead or
// invalid handle is a no-op.
func (r *Registry[T]) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := h.slot()
	if idx == 0 || int(idx) > len(r.slots) {
		return
	}
	s := &r.slots[idx-1]
	if !s.live || s.generation != h.generation() {
		return
	}
	var zero T
	s.value = zero
	s.live = false
	s.generation++
	r.free = append(r.free, idx-1)
}

// Len returns the number of live registrations.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots) - len(r.free)
}
