package graphics

// Canvas is the drawing surface supplied by a rendering backend.
// Coordinates are absolute within the window.
type Canvas interface {
	FillRect(rect Rect, color Color)
	StrokeRect(rect Rect, color Color, width float64)
	DrawText(text string, at Point, color Color)
}
