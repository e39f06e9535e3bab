package graphics

import (
	"math"
	"testing"
)

func TestConstraintsConstrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 5, MaxHeight: 50}
	tests := []struct {
		in, want Size
	}{
		{Size{Width: 50, Height: 20}, Size{Width: 50, Height: 20}},
		{Size{Width: 1, Height: 1}, Size{Width: 10, Height: 5}},
		{Size{Width: 500, Height: 500}, Size{Width: 100, Height: 50}},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConstraintsDeflate(t *testing.T) {
	c := Tight(Size{Width: 20, Height: 10}).Deflate(SymmetricInsets(4, 2))
	want := Constraints{MinWidth: 12, MaxWidth: 12, MinHeight: 6, MaxHeight: 6}
	if c != want {
		t.Errorf("Deflate = %+v, want %+v", c, want)
	}

	small := Tight(Size{Width: 2, Height: 2}).Deflate(SymmetricInsets(4, 4))
	if small.MaxWidth != 0 || small.MaxHeight != 0 {
		t.Errorf("Deflate should not go negative, got %+v", small)
	}
}

func TestUnboundedConstrainKeepsSize(t *testing.T) {
	got := Unbounded().Constrain(Size{Width: 1e6, Height: 3})
	if got.Width != 1e6 || got.Height != 3 {
		t.Errorf("Constrain = %v", got)
	}
	if !math.IsInf(Unbounded().MaxWidth, 1) {
		t.Error("Unbounded should have infinite max width")
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromOriginSize(Point{X: 10, Y: 10}, Size{Width: 5, Height: 5})
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 10}, true},
		{Point{X: 14.9, Y: 14.9}, true},
		{Point{X: 15, Y: 12}, false},
		{Point{X: 9, Y: 12}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x12, 0xab, 0xff).Hex(); got != "#12abff" {
		t.Errorf("Hex = %q", got)
	}
	if got := RGBA(0, 0, 0, 0.5).Alpha(); math.Abs(got-128.0/255) > 1e-9 {
		t.Errorf("Alpha = %v", got)
	}
}

func TestDefaultMeasurer(t *testing.T) {
	size := DefaultMeasurer.Measure("+1")
	if size.Width != 14 {
		t.Errorf("width of two 7px glyphs = %v, want 14", size.Width)
	}
	if size.Height != 13 {
		t.Errorf("height = %v, want 13", size.Height)
	}
	if DefaultMeasurer.Measure("").Width != 0 {
		t.Error("empty string should measure zero width")
	}
}
