package graphics

import "math"

// Point is a position in logical coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromOriginSize constructs a Rect from its top-left corner and size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + size.Width,
		Bottom: origin.Y + size.Height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Size returns the size of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) * 0.5, Y: (r.Top + r.Bottom) * 0.5}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns a new rect offset by p.
func (r Rect) Translate(p Point) Rect {
	return Rect{Left: r.Left + p.X, Top: r.Top + p.Y, Right: r.Right + p.X, Bottom: r.Bottom + p.Y}
}

// Insets describes padding on each edge.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// SymmetricInsets returns insets with x on the horizontal edges and y on the vertical ones.
func SymmetricInsets(x, y float64) Insets {
	return Insets{Left: x, Top: y, Right: x, Bottom: y}
}

// Size returns the total horizontal and vertical inset.
func (i Insets) Size() Size {
	return Size{Width: i.Left + i.Right, Height: i.Top + i.Bottom}
}

// IsZero reports whether every edge is zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Constraints bound the size a widget may choose during layout.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow size.
func Tight(size Size) Constraints {
	return Constraints{MinWidth: size.Width, MaxWidth: size.Width, MinHeight: size.Height, MaxHeight: size.Height}
}

// Loose returns constraints from zero up to size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper bound.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen returns the constraints with minimums dropped to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by insets, never below zero.
func (c Constraints) Deflate(i Insets) Constraints {
	d := i.Size()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-d.Width),
		MaxWidth:  math.Max(0, c.MaxWidth-d.Width),
		MinHeight: math.Max(0, c.MinHeight-d.Height),
		MaxHeight: math.Max(0, c.MaxHeight-d.Height),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
