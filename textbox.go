package sprig

// TextBox is a single-line editable text field. Characters are appended as
// they are typed; the backspace key removes the last one. Each mutation
// fires the change callback once.
type TextBox struct {
	Base
	buf []rune
}

// NewTextBox creates an empty TextBox and registers it with reg.
func NewTextBox(reg *Registry, area Rect) *TextBox {
	t := &TextBox{Base: NewBase(area)}
	reg.Register(t)
	return t
}

// OnChar appends ch to the buffer. A backspace delivered as a character is
// ignored; deletion only happens on the key-down path.
func (t *TextBox) OnChar(ch rune) {
	if ch == CharBackspace {
		return
	}
	t.buf = append(t.buf, ch)
	t.NotifyChange()
}

// OnKeyDown removes the last character when k is KeyBackspace.
func (t *TextBox) OnKeyDown(k Key) {
	if k != KeyBackspace || len(t.buf) == 0 {
		return
	}
	t.buf = t.buf[:len(t.buf)-1]
	t.NotifyChange()
}

// Paint draws the border, then the buffer centered inside it.
func (t *TextBox) Paint(s Surface) {
	s.StrokeRect(t.area, TextBoxBorderStyle)
	s.DrawText(t.area, string(t.buf))
}

// Text returns the current buffer contents.
func (t *TextBox) Text() string {
	return string(t.buf)
}
