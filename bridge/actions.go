package bridge

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/widget"
)

// Waker wakes the UI thread so it will drain pending actions. It must
// be callable from any thread and report whether the wake was posted.
type Waker func() bool

// Dispatcher carries action requests from the transport thread to the
// UI thread. Enqueue is safe from any thread; Drain must run on the UI
// thread, and is the only place widget state is mutated.
type Dispatcher struct {
	mu      sync.Mutex
	pending []accessibility.ActionRequest

	wake        Waker
	wakePending atomic.Bool

	resolve func(accessibility.NodeID) widget.Widget
	logger  *slog.Logger
}

// NewDispatcher wires a target resolver to a wake primitive.
func NewDispatcher(resolve func(accessibility.NodeID) widget.Widget, wake Waker, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Dispatcher{
		resolve: resolve,
		wake:    wake,
		logger:  logger,
	}
}

// Enqueue queues a request and wakes the UI thread. Wakes are
// coalesced: one wake covers any number of queued requests.
func (d *Dispatcher) Enqueue(req accessibility.ActionRequest) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.pending = append(d.pending, req)
	d.mu.Unlock()

	if d.wake == nil {
		return
	}
	if d.wakePending.CompareAndSwap(false, true) {
		if !d.wake() {
			d.wakePending.Store(false)
		}
	}
}

// Drain applies every queued request in arrival order and returns the
// count. It never blocks waiting for more work.
func (d *Dispatcher) Drain() int {
	if d == nil {
		return 0
	}
	d.wakePending.Store(false)
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, req := range pending {
		d.apply(req)
	}
	return len(pending)
}

// apply performs one request. Every failure mode (stale target,
// capability mismatch, malformed payload) degrades to a no-op; a
// broken action request must never disturb the UI.
func (d *Dispatcher) apply(req accessibility.ActionRequest) {
	w := d.resolve(req.Target)
	if w == nil {
		d.logger.Debug("action target no longer exists",
			"action", req.Action, "target", uint64(req.Target))
		return
	}

	switch req.Action {
	case accessibility.ActionClick:
		if a, ok := w.(widget.Activatable); ok {
			a.Activate()
		}
	case accessibility.ActionFocus:
		if f, ok := w.(widget.FocusTaker); ok {
			f.TakeFocus()
		}
	case accessibility.ActionSetValue:
		d.applySetValue(w, req.Data)
	case accessibility.ActionReplaceSelectedText:
		if req.Data != nil && req.Data.Value != nil {
			replaceSelectedText(w, *req.Data.Value)
		}
	case accessibility.ActionSetTextSelection:
		if req.Data != nil && req.Data.Selection != nil {
			setTextSelection(w, *req.Data.Selection)
		}
	case accessibility.ActionScrollIntoView:
		if ed, ok := w.(widget.TextEditor); ok {
			ed.ScrollToCaret()
		}
	case accessibility.ActionScrollUp:
		if s, ok := w.(widget.Scrollable); ok {
			s.ScrollBy(-1)
		}
	case accessibility.ActionScrollDown:
		if s, ok := w.(widget.Scrollable); ok {
			s.ScrollBy(1)
		}
	default:
		// ScrollToPoint and anything unrecognized: extension points.
		d.logger.Debug("unhandled action", "action", req.Action)
	}
}

func (d *Dispatcher) applySetValue(w widget.Widget, data *accessibility.ActionData) {
	if data == nil {
		return
	}
	switch {
	case data.Value != nil:
		applyStringValue(w, *data.Value)
	case data.NumericValue != nil:
		applyNumericValue(w, *data.NumericValue)
	}
}

func applyStringValue(w widget.Widget, value string) {
	kind := w.Kind()
	switch {
	case textKind(kind):
		if t, ok := w.(widget.TextHolder); ok {
			t.SetText(value)
		}
	case toggleKind(kind):
		if t, ok := w.(widget.Toggleable); ok {
			t.SetChecked(parseTruthy(value))
		}
	case valuatorKind(kind):
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return
		}
		if val, ok := w.(widget.Valuator); ok {
			val.SetValue(v)
		}
	}
}

func applyNumericValue(w widget.Widget, value float64) {
	kind := w.Kind()
	switch {
	case kind == widget.KindIntInput:
		if t, ok := w.(widget.TextHolder); ok {
			t.SetText(strconv.Itoa(int(math.Round(value))))
		}
	case textKind(kind):
		if t, ok := w.(widget.TextHolder); ok {
			t.SetText(strconv.FormatFloat(value, 'g', -1, 64))
		}
	case toggleKind(kind):
		if t, ok := w.(widget.Toggleable); ok {
			t.SetChecked(value != 0)
		}
	case valuatorKind(kind):
		if val, ok := w.(widget.Valuator); ok {
			val.SetValue(value)
		}
	}
}

// parseTruthy interprets the small fixed vocabulary of truthy tokens.
// Anything else is false.
func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// replaceSelectedText replaces a non-empty selection with text, or
// inserts at the caret, leaving the caret at the end of the insertion.
// Offsets are character offsets.
func replaceSelectedText(w widget.Widget, text string) {
	ed, ok := w.(widget.TextEditor)
	if !ok {
		return
	}
	inserted := utf8.RuneCountInString(text)
	start, end := ed.Selection()
	if start == end {
		start = ed.Caret()
		end = start
	}
	if start > end {
		start, end = end, start
	}
	ed.ReplaceRange(start, end, text)
	ed.SetCaret(start + inserted)
}

// setTextSelection applies a requested selection span. Both ends must
// target the addressed widget; offsets are clamped to the content
// length. A collapsed span is a caret move, otherwise the normalized
// range is selected with the caret at the high end.
func setTextSelection(w widget.Widget, sel accessibility.TextSelection) {
	ed, ok := w.(widget.TextEditor)
	if !ok {
		return
	}
	id := NodeIDFor(w)
	if sel.Anchor.Node != id || sel.Focus.Node != id {
		return
	}
	length := utf8.RuneCountInString(ed.Text())
	anchor := clamp(sel.Anchor.Offset, 0, length)
	focus := clamp(sel.Focus.Offset, 0, length)
	if anchor == focus {
		ed.SetCaret(anchor)
		return
	}
	lo, hi := anchor, focus
	if lo > hi {
		lo, hi = hi, lo
	}
	// Select leaves the caret at the high end.
	ed.Select(lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func textKind(k widget.Kind) bool {
	switch k {
	case widget.KindInput, widget.KindIntInput, widget.KindFloatInput,
		widget.KindMultilineInput, widget.KindTextEditor:
		return true
	}
	return false
}

func toggleKind(k widget.Kind) bool {
	switch k {
	case widget.KindCheckButton, widget.KindRadioButton, widget.KindToggleButton:
		return true
	}
	return false
}

func valuatorKind(k widget.Kind) bool {
	switch k {
	case widget.KindSlider, widget.KindDial, widget.KindCounter,
		widget.KindRoller, widget.KindValueInput, widget.KindValueOutput,
		widget.KindScrollbar:
		return true
	}
	return false
}
