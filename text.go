package sprig

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the text size, in pixels, used by DefaultTextShaper.
const DefaultFontSize = 14

// TextShaper renders text centered on both axes inside a rectangle using
// Ebitengine's text/v2. Text is neither wrapped nor clipped.
type TextShaper struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// NewTextShaper loads a TrueType font from raw TTF/OTF data at the given
// size. A font that cannot be parsed yields an *InitError.
func NewTextShaper(ttfData []byte, size float64) (*TextShaper, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, &InitError{Op: "text shaper", Err: err}
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TextShaper{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// DefaultTextShaper returns a shaper for Go Regular at DefaultFontSize.
func DefaultTextShaper() (*TextShaper, error) {
	return NewTextShaper(goregular.TTF, DefaultFontSize)
}

// Measure returns the width and height of the rendered text.
func (ts *TextShaper) Measure(s string) (width, height float64) {
	return text.Measure(s, ts.face, ts.lh)
}

// LineHeight returns the vertical distance between baselines.
func (ts *TextShaper) LineHeight() float64 {
	return ts.lh
}

// Size returns the font size in pixels.
func (ts *TextShaper) Size() float64 {
	return ts.size
}

// Draw renders s onto dst, centered in r, tinted with c.
func (ts *TextShaper) Draw(dst *ebiten.Image, r Rect, s string, c Color) {
	if s == "" {
		return
	}
	center := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = ts.lh
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, ts.face, op)
}
