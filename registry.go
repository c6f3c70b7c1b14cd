package sprig

import (
	"fmt"
	"time"
)

// EventSink is the interface for optional event forwarding. When set on a
// Registry, every widget state transition is reported to it.
type EventSink interface {
	EmitEvent(event WidgetEvent)
}

// WidgetEvent describes one widget state transition.
type WidgetEvent struct {
	Type   EventType
	Widget Widget
	Name   string // Widget's Base.Name
	Index  int    // registration index, -1 if unknown
	X, Y   float64
	Char   rune
	Key    Key
}

const defaultWidgetCap = 16

// Registry is the owning, ordered collection of widgets and the dispatch
// root for raw input. Registration order is paint order and focus-scan
// order.
//
// A Registry is not safe for concurrent use; the host must deliver input and
// paint requests from a single goroutine.
type Registry struct {
	// ClearColor fills the surface at the start of every paint cycle.
	ClearColor Color

	widgets []Widget
	sink    EventSink
	debug   bool
	closed  bool
}

// NewRegistry creates an empty registry that clears to white.
func NewRegistry() *Registry {
	return &Registry{
		ClearColor: ColorWhite,
		widgets:    make([]Widget, 0, defaultWidgetCap),
	}
}

// Register appends w to the registry, which takes ownership of it.
// Registering a widget twice, or registering into a torn-down registry,
// panics.
func (r *Registry) Register(w Widget) {
	if r.closed {
		panic("sprig: Register on torn-down registry")
	}
	b := w.widgetBase()
	if b.reg != nil || b.disposed {
		panic(fmt.Sprintf("sprig: widget %q already registered", b.Name))
	}
	b.reg = r
	b.self = w
	b.index = len(r.widgets)
	r.widgets = append(r.widgets, w)
}

// Widgets returns the registered widgets in registration order. The returned
// slice MUST NOT be mutated.
func (r *Registry) Widgets() []Widget {
	return r.widgets
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.widgets)
}

// Focused returns the first focused widget in registration order, or nil.
func (r *Registry) Focused() Widget {
	for _, w := range r.widgets {
		if w.IsFocused() {
			return w
		}
	}
	return nil
}

// SetEventSink sets the optional event bridge. Pass nil to detach.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-paint timing
// stats are logged to stderr.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// DispatchHover delivers a pointer move. Widgets the pointer entered get
// OnHover, hovered widgets the pointer left get LeaveHover. Repeated moves
// to the same position cause no further transitions.
//
// A hook or callback may tear the registry down; dispatch stops there.
func (r *Registry) DispatchHover(x, y float64) {
	p := Point{X: x, Y: y}
	for _, w := range r.widgets {
		if r.closed {
			return
		}
		if w.Area().Contains(p) {
			if !w.IsHover() {
				w.OnHover(p)
				r.emit(EventHoverEnter, w, p, 0, KeyUnknown)
			}
		} else if w.IsHover() {
			w.LeaveHover()
			r.emit(EventHoverLeave, w, p, 0, KeyUnknown)
		}
	}
}

// DispatchPress delivers a pointer press. Every widget containing the point
// gets OnClick then OnFocus; every other focused widget gets LeaveFocus, so
// at most the pressed widget stays focused.
func (r *Registry) DispatchPress(x, y float64) {
	p := Point{X: x, Y: y}
	for _, w := range r.widgets {
		if r.closed {
			return
		}
		if w.Area().Contains(p) {
			w.OnClick(p)
			r.emit(EventPress, w, p, 0, KeyUnknown)
			w.OnFocus()
			r.emit(EventFocus, w, p, 0, KeyUnknown)
		} else if w.IsFocused() {
			w.LeaveFocus()
			r.emit(EventBlur, w, p, 0, KeyUnknown)
		}
	}
}

// DispatchRelease delivers a pointer release to every clicked widget,
// regardless of where the pointer is. LeaveClick fires the click callbacks.
func (r *Registry) DispatchRelease() {
	for _, w := range r.widgets {
		if r.closed {
			return
		}
		if w.IsClicked() {
			w.LeaveClick()
			r.emit(EventClick, w, Point{}, 0, KeyUnknown)
		}
	}
}

// DispatchChar delivers ch to the first focused widget only.
func (r *Registry) DispatchChar(ch rune) {
	for _, w := range r.widgets {
		if w.IsFocused() {
			w.OnChar(ch)
			r.emit(EventChar, w, Point{}, ch, KeyUnknown)
			return
		}
	}
}

// DispatchKeyDown delivers k to the first focused widget only.
func (r *Registry) DispatchKeyDown(k Key) {
	for _, w := range r.widgets {
		if w.IsFocused() {
			w.OnKeyDown(k)
			r.emit(EventKeyDown, w, Point{}, 0, k)
			return
		}
	}
}

// PaintAll runs one paint cycle: begin the frame, clear it, paint every
// widget in registration order and present. A failure to begin or end the
// frame is returned as a *FrameError; the frame is dropped and the next
// call starts afresh.
func (r *Registry) PaintAll(s Surface) error {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	if err := s.BeginFrame(); err != nil {
		return &FrameError{Op: "begin frame", Kind: KindFrame, Err: err}
	}
	s.Clear(r.ClearColor)
	for _, w := range r.widgets {
		w.Paint(s)
	}
	if err := s.EndFrame(); err != nil {
		return &FrameError{Op: "end frame", Kind: KindFrame, Err: err}
	}

	if r.debug {
		r.debugLog(paintStats{
			paintTime:   time.Since(t0),
			widgetCount: len(r.widgets),
			focused:     r.Focused(),
		})
	}
	return nil
}

// Teardown releases every owned widget. Widgets implementing Disposer are
// disposed in registration order. Afterwards the registry is empty, dispatch
// does nothing and Register panics. Calling Teardown again is a no-op.
//
// Teardown may be called from a widget callback; the dispatch in progress
// stops after that callback returns.
func (r *Registry) Teardown() {
	if r.closed {
		return
	}
	r.closed = true
	owned := r.widgets
	r.widgets = nil
	for _, w := range owned {
		if d, ok := w.(Disposer); ok {
			d.Dispose()
		}
		b := w.widgetBase()
		b.reg = nil
		b.self = nil
		b.index = -1
		b.disposed = true
		b.onClick = nil
		b.onChange = nil
	}
}

// Closed reports whether Teardown has run.
func (r *Registry) Closed() bool {
	return r.closed
}

// emit reports a transition to the sink. Nothing is reported once the
// registry is torn down.
func (r *Registry) emit(t EventType, w Widget, p Point, ch rune, k Key) {
	if r.sink == nil || w == nil || r.closed {
		return
	}
	b := w.widgetBase()
	r.sink.EmitEvent(WidgetEvent{
		Type:   t,
		Widget: w,
		Name:   b.Name,
		Index:  b.index,
		X:      p.X,
		Y:      p.Y,
		Char:   ch,
		Key:    k,
	})
}
