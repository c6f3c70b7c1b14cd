package sprig

import "testing"

// headlessGame builds a Game on a RecordingSurface so input handling can be
// exercised without the Ebitengine loop.
func headlessGame(reg *Registry) *Game {
	return &Game{driver: NewDriver(reg, NewRecordingSurface(600, 600))}
}

func TestInjectClick(t *testing.T) {
	reg := NewRegistry()
	b := NewButton(reg, RectLTRB(0, 0, 100, 100), "ok")
	g := headlessGame(reg)

	var clicked bool
	b.WhenClick(func() { clicked = true })

	g.InjectClick(50, 50)
	if g.Pending() != 3 {
		t.Fatalf("expected 3 queued events, got %d", g.Pending())
	}

	// Frame 1: move, frame 2: press
	g.processInjectedInput()
	g.processInjectedInput()
	if !b.IsHover() || !b.IsClicked() || !b.IsFocused() {
		t.Fatal("press should hover, click and focus the button")
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 3: release fires the click
	g.processInjectedInput()
	if g.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", g.Pending())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectDrag(t *testing.T) {
	g := headlessGame(NewRegistry())
	g.InjectDrag(10, 10, 200, 200, 5)

	// move, press, 3 interpolated moves, final move, release
	q := g.injectQueue
	if len(q) != 7 {
		t.Fatalf("queued %d events, want 7: %v", len(q), q)
	}
	if q[1].Kind != InputPointerPress || q[6].Kind != InputPointerRelease {
		t.Errorf("queue = %v", q)
	}
	if q[2].X != 57.5 || q[3].X != 105 || q[4].X != 152.5 || q[5].X != 200 {
		t.Errorf("interpolated moves = %v", q[2:6])
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	g := headlessGame(NewRegistry())
	g.InjectDrag(0, 0, 10, 10, 0)
	if g.Pending() != 4 {
		t.Errorf("queued %d events, want move, press, move, release", g.Pending())
	}
}

func TestInjectText(t *testing.T) {
	reg := NewRegistry()
	tb := NewTextBox(reg, RectLTRB(0, 0, 100, 30))
	g := headlessGame(reg)

	g.InjectClick(50, 15)
	g.InjectText("héllo")
	g.InjectKey(KeyBackspace)
	for g.processInjectedInput() {
	}
	if tb.Text() != "héll" {
		t.Errorf("Text = %q, want héll", tb.Text())
	}
}

func TestProcessInjectedInput_TracksCursor(t *testing.T) {
	g := headlessGame(NewRegistry())
	g.InjectMove(42.7, 17.2)
	if !g.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if !g.cursorKnown || g.cursorX != 42 || g.cursorY != 17 {
		t.Errorf("cursor = (%d,%d) known=%v", g.cursorX, g.cursorY, g.cursorKnown)
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	g := headlessGame(NewRegistry())
	if g.processInjectedInput() {
		t.Error("empty queue should not consume")
	}
}
