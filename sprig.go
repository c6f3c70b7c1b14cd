package sprig

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGray  = Color{0.5, 0.5, 0.5, 1}
)

// ColorHex builds an opaque Color from a 0xRRGGBB value.
func ColorHex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Style is the brush a widget paints with.
type Style struct {
	Color       Color
	StrokeWidth float64 // only used by StrokeRect; 0 means 1
}

// Default widget brushes.
var (
	ButtonNormalStyle  = Style{Color: ColorHex(0xF7F7F7)}
	ButtonHoverStyle   = Style{Color: ColorHex(0xEAEAEA)}
	TextBoxBorderStyle = Style{Color: ColorGray, StrokeWidth: 1}
)

// Point is a position in surface coordinates. The origin is the top-left of
// the client area with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// RectLTRB returns the rectangle with the given edges.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies strictly inside the rectangle.
// Points on the edge are considered outside.
func (r Rect) Contains(p Point) bool {
	return r.Top < p.Y && p.Y < r.Bottom &&
		r.Left < p.X && p.X < r.Right
}

// Key identifies a non-character key independent of the host's key codes.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
)

var keyNames = [...]string{
	KeyUnknown:    "unknown",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeyEscape:     "escape",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyHome:       "home",
	KeyEnd:        "end",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the Key with the given name, as produced by Key.String.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

// CharBackspace is the character code some hosts deliver for the backspace
// key alongside the key-down event.
const CharBackspace = '\b'

// EventType identifies a widget state transition reported to an EventSink.
type EventType uint8

const (
	EventHoverEnter EventType = iota // pointer moved inside the widget
	EventHoverLeave                  // pointer moved outside the widget
	EventPress                       // press landed inside the widget
	EventClick                       // release committed a pending click
	EventFocus                       // widget gained keyboard focus
	EventBlur                        // widget lost keyboard focus
	EventChange                      // widget content changed
	EventKeyDown                     // key delivered to the focused widget
	EventChar                        // character delivered to the focused widget
)

var eventNames = [...]string{
	EventHoverEnter: "hover-enter",
	EventHoverLeave: "hover-leave",
	EventPress:      "press",
	EventClick:      "click",
	EventFocus:      "focus",
	EventBlur:       "blur",
	EventChange:     "change",
	EventKeyDown:    "keydown",
	EventChar:       "char",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
