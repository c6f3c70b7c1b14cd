package sprig

// Button is a clickable rectangle. Its fill depends only on hover state;
// pressed and focused buttons look the same as idle ones.
type Button struct {
	Base
	// Caption is drawn centered over the fill when non-empty.
	Caption string
}

// NewButton creates a Button and registers it with reg.
func NewButton(reg *Registry, area Rect, caption string) *Button {
	b := &Button{Base: NewBase(area), Caption: caption}
	reg.Register(b)
	return b
}

// Paint fills the button area with the hover or normal style.
func (b *Button) Paint(s Surface) {
	st := ButtonNormalStyle
	if b.hover {
		st = ButtonHoverStyle
	}
	s.FillRect(b.area, st)
	if b.Caption != "" {
		s.DrawText(b.area, b.Caption)
	}
}
