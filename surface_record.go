package sprig

import (
	"fmt"
	"strings"
)

// DrawOpType identifies a recorded surface call.
type DrawOpType uint8

const (
	OpClear DrawOpType = iota
	OpFillRect
	OpStrokeRect
	OpDrawText
)

// DrawOp is one drawing call captured by a RecordingSurface.
type DrawOp struct {
	Type  DrawOpType
	Rect  Rect
	Style Style
	Color Color // OpClear only
	Text  string
}

func (op DrawOp) String() string {
	switch op.Type {
	case OpClear:
		return "clear"
	case OpFillRect:
		return fmt.Sprintf("fill(%g,%g,%g,%g)", op.Rect.Left, op.Rect.Top, op.Rect.Right, op.Rect.Bottom)
	case OpStrokeRect:
		return fmt.Sprintf("stroke(%g,%g,%g,%g)", op.Rect.Left, op.Rect.Top, op.Rect.Right, op.Rect.Bottom)
	case OpDrawText:
		return fmt.Sprintf("text(%q)", op.Text)
	}
	return "unknown"
}

// RecordingSurface is an in-memory Surface that records the drawing calls of
// the most recent completed frame. It is used for headless runs and tests.
type RecordingSurface struct {
	// FailBegin and FailEnd, when non-nil, are returned by the next
	// BeginFrame or EndFrame call and then cleared.
	FailBegin error
	FailEnd   error

	Width, Height int

	inFrame bool
	pending []DrawOp
	last    []DrawOp
	frames  int
}

// NewRecordingSurface returns a surface of the given size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{Width: width, Height: height}
}

// BeginFrame starts recording a new frame.
func (s *RecordingSurface) BeginFrame() error {
	if err := s.FailBegin; err != nil {
		s.FailBegin = nil
		return err
	}
	if s.inFrame {
		return ErrFrameActive
	}
	s.inFrame = true
	s.pending = s.pending[:0]
	return nil
}

// EndFrame presents the recorded frame. On failure the frame is discarded
// and the previously presented frame stays current.
func (s *RecordingSurface) EndFrame() error {
	if !s.inFrame {
		return ErrNoFrame
	}
	s.inFrame = false
	if err := s.FailEnd; err != nil {
		s.FailEnd = nil
		s.pending = s.pending[:0]
		return err
	}
	s.last = append(s.last[:0], s.pending...)
	s.frames++
	return nil
}

func (s *RecordingSurface) record(op DrawOp) {
	if s.inFrame {
		s.pending = append(s.pending, op)
	}
}

// Clear records a clear.
func (s *RecordingSurface) Clear(c Color) { s.record(DrawOp{Type: OpClear, Color: c}) }

// FillRect records a fill.
func (s *RecordingSurface) FillRect(r Rect, st Style) {
	s.record(DrawOp{Type: OpFillRect, Rect: r, Style: st})
}

// StrokeRect records a stroke.
func (s *RecordingSurface) StrokeRect(r Rect, st Style) {
	s.record(DrawOp{Type: OpStrokeRect, Rect: r, Style: st})
}

// DrawText records a text draw.
func (s *RecordingSurface) DrawText(r Rect, text string) {
	s.record(DrawOp{Type: OpDrawText, Rect: r, Text: text})
}

// Resize records the new size. Non-positive sizes are rejected.
func (s *RecordingSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	s.Width, s.Height = width, height
	return nil
}

// Ops returns the drawing calls of the last presented frame.
func (s *RecordingSurface) Ops() []DrawOp {
	return s.last
}

// Frames returns the number of presented frames.
func (s *RecordingSurface) Frames() int {
	return s.frames
}

// TextIn returns the text drawn inside r during the last presented frame,
// or "" and false if none was.
func (s *RecordingSurface) TextIn(r Rect) (string, bool) {
	for _, op := range s.last {
		if op.Type == OpDrawText && op.Rect == r {
			return op.Text, true
		}
	}
	return "", false
}

// String lists the last frame's calls, one per line.
func (s *RecordingSurface) String() string {
	var b strings.Builder
	for _, op := range s.last {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
