package sprig

// Surface is the drawing target widgets paint onto. BeginFrame and EndFrame
// bracket every drawing call of a paint cycle; drawing outside a frame is
// ignored by the surfaces in this package.
type Surface interface {
	BeginFrame() error
	EndFrame() error
	Clear(c Color)
	FillRect(r Rect, st Style)
	StrokeRect(r Rect, st Style)
	// DrawText renders s centered on both axes inside r. No wrapping or
	// clipping is applied.
	DrawText(r Rect, s string)
	Resize(width, height int) error
}
