package sprig

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-edit", "after-edit"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	g := headlessGame(NewRegistry())
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v", g.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 255, 255, 255, // opaque white
		64, 0, 0, 128, // half-alpha red, premultiplied
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if c := img.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("opaque = %+v", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 127 || c.A != 128 {
		t.Errorf("half alpha = %+v, want R=127 A=128", c)
	}
	if c := img.NRGBAAt(2, 0); c.A != 0 {
		t.Errorf("transparent = %+v", c)
	}
}
