package sprig

// Widget is an interactive, paintable element owned by a Registry.
//
// Every hook may be overridden by a concrete widget; Base supplies the
// default behavior. Widgets are sealed to types embedding Base so the
// registry can track ownership; custom widgets embed Base and override the
// hooks they need.
type Widget interface {
	// Paint draws the current visual state. It must not mutate state.
	Paint(s Surface)

	OnHover(p Point)
	LeaveHover()
	OnClick(p Point)
	LeaveClick()
	OnFocus()
	LeaveFocus()
	OnKeyDown(k Key)
	OnChar(ch rune)

	IsHover() bool
	IsClicked() bool
	IsFocused() bool
	Area() Rect

	WhenClick(fn func())
	WhenChange(fn func())

	widgetBase() *Base
}

// Disposer is implemented by widgets that hold resources to release when the
// owning registry is torn down.
type Disposer interface {
	Dispose()
}

// Base holds the state shared by all widgets: the hit-test area, the hover,
// clicked and focused flags, and the click and change callbacks.
type Base struct {
	// Name is an optional label used in debug output.
	Name string

	area     Rect
	hover    bool
	clicked  bool
	focused  bool
	onClick  func()
	onChange func()

	reg      *Registry
	self     Widget
	index    int // registration index, -1 when unowned
	disposed bool
}

// NewBase returns a Base covering area. Embed it in a custom widget and pass
// the widget to Registry.Register.
func NewBase(area Rect) Base {
	return Base{area: area, index: -1}
}

func (b *Base) widgetBase() *Base { return b }

// Paint is a no-op.
func (b *Base) Paint(Surface) {}

// OnHover marks the widget hovered.
func (b *Base) OnHover(Point) { b.hover = true }

// LeaveHover clears the hovered flag. No callback fires.
func (b *Base) LeaveHover() { b.hover = false }

// OnClick marks the widget clicked. The click callback is deferred until
// LeaveClick.
func (b *Base) OnClick(Point) { b.clicked = true }

// LeaveClick clears the clicked flag and fires the click callback. It runs
// on release wherever the pointer is.
func (b *Base) LeaveClick() {
	b.clicked = false
	if b.onClick != nil {
		b.onClick()
	}
}

// OnFocus marks the widget focused.
func (b *Base) OnFocus() { b.focused = true }

// LeaveFocus clears the focused flag. No callback fires.
func (b *Base) LeaveFocus() { b.focused = false }

// OnKeyDown is a no-op.
func (b *Base) OnKeyDown(Key) {}

// OnChar is a no-op.
func (b *Base) OnChar(rune) {}

// IsHover reports whether the pointer is inside the widget.
func (b *Base) IsHover() bool { return b.hover }

// IsClicked reports whether a press inside the widget awaits release.
func (b *Base) IsClicked() bool { return b.clicked }

// IsFocused reports whether the widget receives keyboard input.
func (b *Base) IsFocused() bool { return b.focused }

// Area returns the widget's hit-test rectangle.
func (b *Base) Area() Rect { return b.area }

// WhenClick replaces the click callback. Passing nil restores the no-op.
func (b *Base) WhenClick(fn func()) { b.onClick = fn }

// WhenChange replaces the change callback. Passing nil restores the no-op.
func (b *Base) WhenChange(fn func()) { b.onChange = fn }

// Registry returns the registry that owns the widget, or nil before
// registration and after teardown.
func (b *Base) Registry() *Registry { return b.reg }

// NotifyChange fires the change callback and reports EventChange to the
// owning registry's event sink.
func (b *Base) NotifyChange() {
	if b.onChange != nil {
		b.onChange()
	}
	if b.reg != nil {
		b.reg.emit(EventChange, b.self, Point{}, 0, KeyUnknown)
	}
}
