package sprig

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/gofont/goregular"
)

// Ticker is implemented by widgets that need a per-frame update from the
// Ebitengine host, such as FPSLabel.
type Ticker interface {
	Tick(dt float64)
}

// Game adapts a Registry to ebiten.Game. Each Update translates one frame of
// mouse and keyboard input (or one injected event) into dispatch calls; each
// Draw runs a paint cycle onto the screen.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	driver  *Driver
	surface *ImageSurface

	injectQueue     []InputEvent
	runner          *ScriptRunner
	screenshotQueue []string

	cursorX, cursorY int
	cursorKnown      bool
	width, height    int
	quit             bool

	charBuf []rune
	keyBuf  []ebiten.Key
}

// NewGame prepares a Game for reg using cfg. It fails with an *InitError if
// the text shaper cannot be created.
func NewGame(reg *Registry, cfg RunConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("run config: %w", err)
	}
	shaper, err := NewTextShaper(goregular.TTF, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	bg, _ := ParseColor(cfg.ClearColor)
	reg.ClearColor = bg
	reg.SetDebugMode(cfg.Debug)

	if cfg.ShowFPS {
		w := float64(cfg.Width)
		NewFPSLabel(reg, RectLTRB(w-110, 4, w-4, 24))
	}

	surface := NewImageSurface(shaper)
	return &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		driver:        NewDriver(reg, surface),
		surface:       surface,
	}, nil
}

// Driver returns the driver fed by the game.
func (g *Game) Driver() *Driver { return g.driver }

// SetErrorHandler sets the handler receiving frame failures.
func (g *Game) SetErrorHandler(h ErrorHandler) { g.driver.SetErrorHandler(h) }

// Quit tears the UI down; the next Update ends the game loop.
func (g *Game) Quit() { g.quit = true }

// Update processes input for one tick.
func (g *Game) Update() error {
	if g.quit && !g.driver.Closed() {
		_ = g.driver.Handle(TeardownEvent())
	}
	if g.driver.Closed() {
		return ebiten.Termination
	}

	if g.runner != nil {
		g.runner.step(g)
	}
	if !g.processInjectedInput() {
		g.applyFrame(g.pollFrame())
	}

	dt := tickSeconds(ebiten.TPS(), ebiten.ActualTPS())
	for _, w := range g.driver.Registry().Widgets() {
		if t, ok := w.(Ticker); ok {
			t.Tick(dt)
		}
	}
	return nil
}

// defaultTPS is assumed when neither the configured nor the measured tick
// rate is usable.
const defaultTPS = 60

// tickSeconds returns the duration of one Update. tps is the configured
// rate, which is ebiten.SyncWithFPS (negative) when ticks follow frames;
// actual is the measured rate, zero until Ebitengine has sampled it.
func tickSeconds(tps int, actual float64) float64 {
	switch {
	case tps > 0:
		return 1 / float64(tps)
	case actual > 0:
		return 1 / actual
	}
	return 1.0 / defaultTPS
}

// Draw paints every widget onto screen. Frame failures are reported to the
// error handler and the frame is dropped.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.driver.Closed() {
		return
	}
	g.surface.SetTarget(screen)
	_ = g.driver.Paint()
	g.surface.SetTarget(nil)
	g.flushScreenshots(screen)
}

// Layout reports a resize to the driver when the outside size changes and
// uses a 1:1 logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		_ = g.driver.Handle(ResizeEvent(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// frameInput is one tick of polled input.
type frameInput struct {
	x, y     int
	pressed  bool
	released bool
	keys     []Key
	chars    []rune
}

// pollFrame reads the current Ebitengine input state.
func (g *Game) pollFrame() frameInput {
	var in frameInput
	in.x, in.y = ebiten.CursorPosition()
	in.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if key := translateKey(k); key != KeyUnknown {
			in.keys = append(in.keys, key)
		}
	}
	g.charBuf = ebiten.AppendInputChars(g.charBuf[:0])
	in.chars = g.charBuf
	return in
}

// applyFrame feeds one tick of input to the driver in host order: move,
// press, key-downs, characters, release.
func (g *Game) applyFrame(in frameInput) {
	if !g.cursorKnown || in.x != g.cursorX || in.y != g.cursorY {
		g.cursorKnown = true
		g.cursorX, g.cursorY = in.x, in.y
		_ = g.driver.Handle(MoveEvent(float64(in.x), float64(in.y)))
	}
	if in.pressed {
		_ = g.driver.Handle(PressEvent(float64(in.x), float64(in.y)))
	}
	for _, k := range in.keys {
		_ = g.driver.Handle(KeyEvent(k))
	}
	for _, ch := range in.chars {
		_ = g.driver.Handle(CharEvent(ch))
	}
	if in.released {
		_ = g.driver.Handle(ReleaseEvent())
	}
}

// translateKey maps an Ebitengine key to a Key.
func translateKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyBackspace:
		return KeyBackspace
	case ebiten.KeyDelete:
		return KeyDelete
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return KeyEnter
	case ebiten.KeyTab:
		return KeyTab
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyArrowLeft:
		return KeyArrowLeft
	case ebiten.KeyArrowRight:
		return KeyArrowRight
	case ebiten.KeyArrowUp:
		return KeyArrowUp
	case ebiten.KeyArrowDown:
		return KeyArrowDown
	case ebiten.KeyHome:
		return KeyHome
	case ebiten.KeyEnd:
		return KeyEnd
	}
	return KeyUnknown
}

// Run opens a window and runs reg until the window closes or the game quits.
// The registry is torn down before Run returns.
func Run(reg *Registry, cfg RunConfig) error {
	g, err := NewGame(reg, cfg)
	if err != nil {
		return err
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := LoadScript(data)
		if err != nil {
			return err
		}
		g.SetScriptRunner(NewScriptRunner(script))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	err = ebiten.RunGame(g)
	if !g.driver.Closed() {
		_ = g.driver.Handle(TeardownEvent())
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
