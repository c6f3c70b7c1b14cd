package sprig

// InjectMove queues a pointer move to (x, y). Queued events are consumed one
// per frame, in place of real input for that frame.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, MoveEvent(x, y))
}

// InjectPress queues a pointer press at (x, y), preceded by a move there so
// hover state matches what a real pointer would produce.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, MoveEvent(x, y), PressEvent(x, y))
}

// InjectRelease queues a pointer release.
func (g *Game) InjectRelease() {
	g.injectQueue = append(g.injectQueue, ReleaseEvent())
}

// InjectClick queues a press at (x, y) followed by a release.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease()
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, a move to (toX, toY) and a release.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectMove(toX, toY)
	g.InjectRelease()
}

// InjectChar queues one typed character.
func (g *Game) InjectChar(ch rune) {
	g.injectQueue = append(g.injectQueue, CharEvent(ch))
}

// InjectText queues one character event per rune of s.
func (g *Game) InjectText(s string) {
	for _, ch := range s {
		g.InjectChar(ch)
	}
}

// InjectKey queues a key-down.
func (g *Game) InjectKey(k Key) {
	g.injectQueue = append(g.injectQueue, KeyEvent(k))
}

// Pending returns the number of queued synthetic events.
func (g *Game) Pending() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one event from the inject queue and hands it to
// the driver. Returns true if an event was consumed (real input should be
// skipped).
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	ev := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if ev.Kind == InputPointerMove {
		g.cursorKnown = true
		g.cursorX, g.cursorY = int(ev.X), int(ev.Y)
	}
	_ = g.driver.Handle(ev)
	return true
}
