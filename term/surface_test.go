package term

import (
	"errors"
	"strings"
	"testing"

	"github.com/phanxgames/sprig"
)

func paint(t *testing.T, s *Surface, draw func()) {
	t.Helper()
	if err := s.BeginFrame(); err != nil {
		t.Fatal(err)
	}
	s.Clear(sprig.ColorWhite)
	draw()
	if err := s.EndFrame(); err != nil {
		t.Fatal(err)
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		lo, hi     float64
		limit      int
		start, end int
	}{
		{1, 9, 10, 1, 9},
		{0, 2, 10, 0, 2},
		{0.6, 2, 10, 1, 2},
		{1, 1, 10, 0, 0},
		{-5, 3, 10, 0, 3},
		{8, 20, 10, 8, 10},
	}
	for _, tt := range tests {
		start, end := span(tt.lo, tt.hi, tt.limit)
		if start != tt.start || end != tt.end {
			t.Errorf("span(%v, %v) = [%d,%d), want [%d,%d)", tt.lo, tt.hi, start, end, tt.start, tt.end)
		}
	}
}

func TestSurfaceTextBox(t *testing.T) {
	s := NewSurface(10, 5)
	r := sprig.RectLTRB(1, 1, 9, 4)
	paint(t, s, func() {
		s.StrokeRect(r, sprig.TextBoxBorderStyle)
		s.DrawText(r, "hi")
	})

	want := strings.Join([]string{
		"          ",
		" ┌──────┐ ",
		" │  hi  │ ",
		" └──────┘ ",
		"          ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(s.Render(), "hi") {
		t.Error("Render should contain the text")
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := NewSurface(4, 2)
	paint(t, s, func() {
		s.FillRect(sprig.RectLTRB(0, 0, 2, 1), sprig.Style{Color: sprig.ColorHex(0xEAEAEA)})
	})
	for x := 0; x < 4; x++ {
		want := "#FFFFFF"
		if x < 2 {
			want = "#EAEAEA"
		}
		if got := s.front[x].bg; got != want {
			t.Errorf("cell %d bg = %s, want %s", x, got, want)
		}
	}
	if s.front[4].bg != "#FFFFFF" {
		t.Error("row 1 should keep the clear color")
	}
}

func TestSurfaceTextOnRowBoundary(t *testing.T) {
	s := NewSurface(10, 3)
	paint(t, s, func() {
		s.DrawText(sprig.RectLTRB(0, 0, 10, 2), "ok")
	})
	if got := strings.Split(s.String(), "\n")[0]; got != "    ok    " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestSurfaceDrawsOnlyInFrame(t *testing.T) {
	s := NewSurface(4, 1)
	s.DrawText(sprig.RectLTRB(0, 0, 4, 1), "xx")
	paint(t, s, func() {})
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("drawing outside a frame leaked: %q", s.String())
	}
	if err := s.EndFrame(); !errors.Is(err, sprig.ErrNoFrame) {
		t.Errorf("EndFrame = %v", err)
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(4, 1)
	if err := s.Resize(20, 6); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 20 || h != 6 {
		t.Errorf("Size = %dx%d", w, h)
	}
	if err := s.Resize(0, 6); err == nil {
		t.Error("zero width should be rejected")
	}

	_ = s.BeginFrame()
	if err := s.Resize(5, 5); !errors.Is(err, sprig.ErrFrameActive) {
		t.Errorf("resize during frame = %v", err)
	}
}
