package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/sprig"
)

// cell is one terminal character with its colors. Empty colors leave the
// terminal default in place.
type cell struct {
	ch rune
	fg string
	bg string
}

// Surface is a sprig.Surface backed by a grid of terminal cells. One surface
// unit is one cell; a cell at column x, row y covers [x, x+1) × [y, y+1) and
// is drawn when its center lies strictly inside a rectangle.
type Surface struct {
	// TextColor is the foreground for DrawText, "#RRGGBB".
	TextColor string

	width, height int
	back, front   []cell
	inFrame       bool
}

// NewSurface returns a surface of width × height cells.
func NewSurface(width, height int) *Surface {
	s := &Surface{TextColor: "#000000"}
	s.alloc(width, height)
	return s
}

func (s *Surface) alloc(width, height int) {
	s.width, s.height = width, height
	s.back = make([]cell, width*height)
	s.front = make([]cell, width*height)
}

// Size returns the grid size in cells.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// BeginFrame starts drawing into the back buffer.
func (s *Surface) BeginFrame() error {
	if s.inFrame {
		return sprig.ErrFrameActive
	}
	s.inFrame = true
	return nil
}

// EndFrame presents the back buffer.
func (s *Surface) EndFrame() error {
	if !s.inFrame {
		return sprig.ErrNoFrame
	}
	s.inFrame = false
	s.front, s.back = s.back, s.front
	return nil
}

// Clear blanks every cell with background c.
func (s *Surface) Clear(c sprig.Color) {
	if !s.inFrame {
		return
	}
	bg := hexColor(c)
	for i := range s.back {
		s.back[i] = cell{ch: ' ', bg: bg}
	}
}

// span returns the half-open cell range whose centers lie strictly between
// lo and hi, clamped to [0, limit).
func span(lo, hi float64, limit int) (int, int) {
	start, end := -1, -1
	for i := 0; i < limit; i++ {
		c := float64(i) + 0.5
		if lo < c && c < hi {
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	if start < 0 {
		return 0, 0
	}
	return start, end
}

// FillRect paints the background of every cell inside r.
func (s *Surface) FillRect(r sprig.Rect, st sprig.Style) {
	if !s.inFrame {
		return
	}
	bg := hexColor(st.Color)
	x0, x1 := span(r.Left, r.Right, s.width)
	y0, y1 := span(r.Top, r.Bottom, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := &s.back[y*s.width+x]
			c.bg = bg
		}
	}
}

// StrokeRect draws a box around the cells inside r.
func (s *Surface) StrokeRect(r sprig.Rect, st sprig.Style) {
	if !s.inFrame {
		return
	}
	fg := hexColor(st.Color)
	x0, x1 := span(r.Left, r.Right, s.width)
	y0, y1 := span(r.Top, r.Bottom, s.height)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	set := func(x, y int, ch rune) {
		c := &s.back[y*s.width+x]
		c.ch, c.fg = ch, fg
	}
	for x := x0 + 1; x < x1-1; x++ {
		set(x, y0, '─')
		set(x, y1-1, '─')
	}
	for y := y0 + 1; y < y1-1; y++ {
		set(x0, y, '│')
		set(x1-1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1-1, y0, '┐')
	set(x0, y1-1, '└')
	set(x1-1, y1-1, '┘')
}

// DrawText writes text centered in r on its middle row. Text running past
// the grid is cut at the grid edge.
func (s *Surface) DrawText(r sprig.Rect, text string) {
	if !s.inFrame || text == "" {
		return
	}
	runes := []rune(text)
	center := r.Center()
	y := int(center.Y)
	if float64(y) == center.Y && y > 0 {
		// Center on a cell boundary: take the row above.
		y--
	}
	if y < 0 || y >= s.height {
		return
	}
	x := int(center.X) - len(runes)/2
	for i, ch := range runes {
		cx := x + i
		if cx < 0 || cx >= s.width {
			continue
		}
		c := &s.back[y*s.width+cx]
		c.ch, c.fg = ch, s.TextColor
	}
}

// Resize reallocates the grid. Contents are blank until the next frame.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	if s.inFrame {
		return sprig.ErrFrameActive
	}
	s.alloc(width, height)
	return nil
}

// String returns the presented frame as plain text, one line per row.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			ch := s.front[y*s.width+x].ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the presented frame with colors applied through lipgloss.
// Runs of cells sharing colors are rendered with one style.
func (s *Surface) Render() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < s.height; y++ {
		row := s.front[y*s.width : (y+1)*s.width]
		for x := 0; x < len(row); {
			fg, bg := row[x].fg, row[x].bg
			run.Reset()
			for ; x < len(row) && row[x].fg == fg && row[x].bg == bg; x++ {
				ch := row[x].ch
				if ch == 0 {
					ch = ' '
				}
				run.WriteRune(ch)
			}
			b.WriteString(cellStyle(fg, bg).Render(run.String()))
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(fg, bg string) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	return st
}

func hexColor(c sprig.Color) string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
