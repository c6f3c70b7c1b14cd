package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface drawing onto an Ebitengine image, normally the
// screen passed to ebiten.Game.Draw.
type ImageSurface struct {
	// TextColor tints all text. Defaults to black.
	TextColor Color

	target  *ebiten.Image
	shaper  *TextShaper
	inFrame bool
	width   int
	height  int
}

// NewImageSurface creates a surface that renders text with shaper.
func NewImageSurface(shaper *TextShaper) *ImageSurface {
	return &ImageSurface{TextColor: ColorBlack, shaper: shaper}
}

// SetTarget sets the image drawn onto by subsequent frames.
func (s *ImageSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Size returns the size last passed to Resize.
func (s *ImageSurface) Size() (width, height int) {
	return s.width, s.height
}

// BeginFrame starts a paint cycle on the current target.
func (s *ImageSurface) BeginFrame() error {
	if s.target == nil {
		return ErrNoTarget
	}
	if s.inFrame {
		return ErrFrameActive
	}
	s.inFrame = true
	return nil
}

// EndFrame finishes the paint cycle. Ebitengine presents the screen itself
// once Draw returns.
func (s *ImageSurface) EndFrame() error {
	if !s.inFrame {
		return ErrNoFrame
	}
	s.inFrame = false
	return nil
}

// Clear fills the whole target with c.
func (s *ImageSurface) Clear(c Color) {
	if !s.inFrame {
		return
	}
	s.target.Fill(c.RGBA())
}

// FillRect fills r with the style color.
func (s *ImageSurface) FillRect(r Rect, st Style) {
	if !s.inFrame {
		return
	}
	vector.DrawFilledRect(s.target,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		st.Color.RGBA(), true)
}

// StrokeRect outlines r with the style color and width.
func (s *ImageSurface) StrokeRect(r Rect, st Style) {
	if !s.inFrame {
		return
	}
	w := st.StrokeWidth
	if w <= 0 {
		w = 1
	}
	vector.StrokeRect(s.target,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		float32(w), st.Color.RGBA(), true)
}

// DrawText renders text centered in r.
func (s *ImageSurface) DrawText(r Rect, text string) {
	if !s.inFrame || s.shaper == nil {
		return
	}
	s.shaper.Draw(s.target, r, text, s.TextColor)
}

// Resize records the client area size. Ebitengine reallocates the screen
// itself; the size is kept for Layout.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	s.width, s.height = width, height
	return nil
}
