package sprig

// Label displays a line of static or programmatically set text.
type Label struct {
	Base
	text string
}

// NewLabel creates a Label showing text and registers it with reg.
func NewLabel(reg *Registry, area Rect, text string) *Label {
	l := &Label{Base: NewBase(area), text: text}
	reg.Register(l)
	return l
}

// Paint draws the text centered in the label's area.
func (l *Label) Paint(s Surface) {
	s.DrawText(l.area, l.text)
}

// SetText replaces the displayed text. The change shows on the next paint.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}
