package sprig

import "fmt"

// InputKind identifies a normalized host input event.
type InputKind uint8

const (
	InputPointerMove    InputKind = iota // pointer moved to (X, Y)
	InputPointerPress                    // primary button pressed at (X, Y)
	InputPointerRelease                  // primary button released
	InputChar                            // character Char typed
	InputKeyDown                         // key Key pressed
	InputResize                          // client area resized to Width x Height
	InputPaint                           // host requests a repaint
	InputTeardown                        // host UI is going away
)

var inputNames = [...]string{
	InputPointerMove:    "move",
	InputPointerPress:   "press",
	InputPointerRelease: "release",
	InputChar:           "char",
	InputKeyDown:        "key",
	InputResize:         "resize",
	InputPaint:          "paint",
	InputTeardown:       "teardown",
}

func (k InputKind) String() string {
	if int(k) < len(inputNames) {
		return inputNames[k]
	}
	return "unknown"
}

// InputEvent is one event from the host, already translated into
// client-area pixel coordinates.
type InputEvent struct {
	Kind          InputKind
	X, Y          float64
	Char          rune
	Key           Key
	Width, Height int
}

// Convenience constructors.

func MoveEvent(x, y float64) InputEvent  { return InputEvent{Kind: InputPointerMove, X: x, Y: y} }
func PressEvent(x, y float64) InputEvent { return InputEvent{Kind: InputPointerPress, X: x, Y: y} }
func ReleaseEvent() InputEvent           { return InputEvent{Kind: InputPointerRelease} }
func CharEvent(ch rune) InputEvent       { return InputEvent{Kind: InputChar, Char: ch} }
func KeyEvent(k Key) InputEvent          { return InputEvent{Kind: InputKeyDown, Key: k} }
func PaintEvent() InputEvent             { return InputEvent{Kind: InputPaint} }
func TeardownEvent() InputEvent          { return InputEvent{Kind: InputTeardown} }

func ResizeEvent(w, h int) InputEvent {
	return InputEvent{Kind: InputResize, Width: w, Height: h}
}

func (e InputEvent) String() string {
	switch e.Kind {
	case InputPointerMove, InputPointerPress:
		return fmt.Sprintf("%s(%g,%g)", e.Kind, e.X, e.Y)
	case InputChar:
		return fmt.Sprintf("char(%q)", e.Char)
	case InputKeyDown:
		return fmt.Sprintf("key(%s)", e.Key)
	case InputResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}
