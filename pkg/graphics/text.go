package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the size a string occupies when drawn.
type TextMeasurer interface {
	Measure(text string) Size
}

// FaceMeasurer measures text with a font.Face.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the bundled 7x13 bitmap face.
var DefaultMeasurer TextMeasurer = FaceMeasurer{Face: basicfont.Face7x13}

// Measure returns the advance width and line height of text.
func (m FaceMeasurer) Measure(text string) Size {
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	return Size{
		Width:  float64(font.MeasureString(face, text).Ceil()),
		Height: float64(metrics.Height.Ceil()),
	}
}
