package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsInterval is how often, in seconds, an FPSLabel refreshes its text.
const fpsInterval = 0.5

// FPSLabel is a Label showing the host's actual frame and tick rates. The
// Ebitengine host ticks it every update.
type FPSLabel struct {
	Label

	elapsed float64
	sample  func() (fps, tps float64)
}

// NewFPSLabel creates an FPSLabel and registers it with reg.
func NewFPSLabel(reg *Registry, area Rect) *FPSLabel {
	f := &FPSLabel{
		Label:  Label{Base: NewBase(area), text: "FPS: -"},
		sample: func() (float64, float64) { return ebiten.ActualFPS(), ebiten.ActualTPS() },
	}
	f.Name = "fps"
	reg.Register(f)
	return f
}

// Tick accumulates dt and refreshes the text about twice a second.
func (f *FPSLabel) Tick(dt float64) {
	f.elapsed += dt
	if f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0
	fps, tps := f.sample()
	f.SetText(fmt.Sprintf("FPS: %.1f TPS: %.1f", fps, tps))
}
