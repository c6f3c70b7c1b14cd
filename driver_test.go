package sprig

import (
	"errors"
	"testing"
)

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reverseUI builds the text box mirrored into a label.
func reverseUI() (*Registry, *TextBox, *Label) {
	reg := NewRegistry()
	input := NewTextBox(reg, RectLTRB(20, 20, 150, 50))
	output := NewLabel(reg, RectLTRB(20, 60, 150, 85), "")
	input.WhenChange(func() {
		output.SetText(reverse(input.Text()))
	})
	return reg, input, output
}

type errorLog struct {
	errs []error
}

func (l *errorLog) HandleError(err error) { l.errs = append(l.errs, err) }

func TestDriverReverseScenario(t *testing.T) {
	reg, input, output := reverseUI()
	s := NewRecordingSurface(600, 600)
	d := NewDriver(reg, s)

	err := d.Replay([]InputEvent{
		ResizeEvent(600, 600),
		MoveEvent(85, 35),
		PressEvent(85, 35),
		ReleaseEvent(),
		CharEvent('h'),
		CharEvent('i'),
		PaintEvent(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := s.TextIn(output.Area()); got != "ih" {
		t.Errorf("label painted %q, want ih", got)
	}
	if got, _ := s.TextIn(input.Area()); got != "hi" {
		t.Errorf("text box painted %q, want hi", got)
	}
	if d.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", d.Frames())
	}
}

func TestDriverScenarioWithoutFocus(t *testing.T) {
	reg, input, _ := reverseUI()
	d := NewDriver(reg, NewRecordingSurface(600, 600))
	_ = d.Handle(CharEvent('h'))
	if input.Text() != "" {
		t.Error("characters without focus should be dropped")
	}
}

func TestDriverFrameFailureIsDropped(t *testing.T) {
	reg, input, _ := reverseUI()
	s := NewRecordingSurface(600, 600)
	d := NewDriver(reg, s)
	log := &errorLog{}
	d.SetErrorHandler(log)

	_ = d.Handle(PressEvent(85, 35))
	_ = d.Handle(CharEvent('a'))

	s.FailEnd = errTest
	err := d.Handle(PaintEvent())
	if !errors.Is(err, errTest) {
		t.Fatalf("paint error = %v", err)
	}
	if len(log.errs) != 1 || d.Dropped() != 1 {
		t.Fatalf("reported %d, dropped %d", len(log.errs), d.Dropped())
	}

	if err := d.Handle(PaintEvent()); err != nil {
		t.Fatalf("next frame: %v", err)
	}
	if got, _ := s.TextIn(input.Area()); got != "a" {
		t.Errorf("recovered frame painted %q", got)
	}
}

func TestDriverReplayContinuesPastDroppedFrames(t *testing.T) {
	reg, input, _ := reverseUI()
	s := NewRecordingSurface(600, 600)
	s.FailBegin = errTest
	d := NewDriver(reg, s)
	d.SetErrorHandler(&errorLog{})

	err := d.Replay([]InputEvent{PressEvent(85, 35), PaintEvent(), CharEvent('z'), PaintEvent()})
	if err != nil {
		t.Fatal(err)
	}
	if input.Text() != "z" || d.Frames() != 1 || d.Dropped() != 1 {
		t.Errorf("text=%q frames=%d dropped=%d", input.Text(), d.Frames(), d.Dropped())
	}
}

func TestDriverResize(t *testing.T) {
	reg := NewRegistry()
	s := NewRecordingSurface(10, 10)
	d := NewDriver(reg, s)
	log := &errorLog{}
	d.SetErrorHandler(log)

	if err := d.Handle(ResizeEvent(800, 600)); err != nil {
		t.Fatal(err)
	}
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("surface size = %dx%d", s.Width, s.Height)
	}

	err := d.Handle(ResizeEvent(0, 600))
	var fe *FrameError
	if !errors.As(err, &fe) || fe.Kind != KindResize {
		t.Fatalf("bad resize = %v", err)
	}
	if len(log.errs) != 1 {
		t.Error("resize failure should be reported")
	}
}

func TestDriverTeardown(t *testing.T) {
	reg, _, _ := reverseUI()
	d := NewDriver(reg, NewRecordingSurface(600, 600))

	if err := d.Handle(TeardownEvent()); err != nil {
		t.Fatal(err)
	}
	if !d.Closed() || !reg.Closed() {
		t.Fatal("teardown should close driver and registry")
	}
	if err := d.Handle(PaintEvent()); !errors.Is(err, ErrClosed) {
		t.Errorf("paint after teardown = %v, want ErrClosed", err)
	}
	if err := d.Replay([]InputEvent{CharEvent('x')}); !errors.Is(err, ErrClosed) {
		t.Errorf("replay after teardown = %v, want ErrClosed", err)
	}
}

func TestInputEventString(t *testing.T) {
	tests := []struct {
		ev   InputEvent
		want string
	}{
		{MoveEvent(1, 2), "move(1,2)"},
		{PressEvent(3.5, 4), "press(3.5,4)"},
		{ReleaseEvent(), "release"},
		{CharEvent('a'), "char('a')"},
		{KeyEvent(KeyBackspace), "key(backspace)"},
		{ResizeEvent(640, 480), "resize(640x480)"},
		{PaintEvent(), "paint"},
		{TeardownEvent(), "teardown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
