package widgets

import (
	"math"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// Axis is the direction children are laid out in.
type Axis int

const (
	// Vertical stacks children top to bottom.
	Vertical Axis = iota
	// Horizontal places children left to right.
	Horizontal
)

// Flex lays its children out in a line along Axis, each at its natural size.
type Flex struct {
	Axis Axis
	// Spacing is the gap between adjacent children.
	Spacing float64
	// Children are reconciled by position.
	Children []core.AnyView
}

// ColumnOf creates a vertical Flex. The children are copied into s, or to
// the heap when s is nil.
func ColumnOf(s *arena.Scope, children ...core.AnyView) Flex {
	return Flex{Axis: Vertical, Children: copyChildren(s, children)}
}

// RowOf creates a horizontal Flex. The children are copied into s, or to
// the heap when s is nil.
func RowOf(s *arena.Scope, children ...core.AnyView) Flex {
	return Flex{Axis: Horizontal, Children: copyChildren(s, children)}
}

// WithSpacing returns a copy of the flex with the given spacing.
func (f Flex) WithSpacing(spacing float64) Flex {
	f.Spacing = spacing
	return f
}

func copyChildren(s *arena.Scope, children []core.AnyView) []core.AnyView {
	var out []core.AnyView
	if s != nil {
		out = arena.MakeSlice[core.AnyView](s, len(children))
	} else {
		out = make([]core.AnyView, len(children))
	}
	copy(out, children)
	return out
}

// FlexWidget is the widget built from a Flex.
type FlexWidget struct {
	axis     Axis
	spacing  float64
	children []*core.Pod
}

// Build implements core.View.
func (f Flex) Build(ctx *core.BuildContext) core.Widget {
	return &FlexWidget{
		axis:     f.Axis,
		spacing:  f.Spacing,
		children: core.ReconcileChildren(ctx, nil, f.Children),
	}
}

// Update implements core.View.
func (f Flex) Update(ctx *core.BuildContext, w core.Widget) {
	fw := w.(*FlexWidget)
	fw.axis = f.Axis
	fw.spacing = f.Spacing
	fw.children = core.ReconcileChildren(ctx, fw.children, f.Children)
}

// Children returns the child pods in order.
func (f *FlexWidget) Children() []*core.Pod {
	return f.children
}

func (f *FlexWidget) Init(*core.EventContext) {}

func (f *FlexWidget) Layout(ctx *core.LayoutContext, c graphics.Constraints) graphics.Size {
	var main, cross float64
	for i, child := range f.children {
		if i > 0 {
			main += f.spacing
		}
		var cc graphics.Constraints
		if f.axis == Vertical {
			cc = graphics.Constraints{MaxWidth: c.MaxWidth, MaxHeight: math.Inf(1)}
		} else {
			cc = graphics.Constraints{MaxWidth: math.Inf(1), MaxHeight: c.MaxHeight}
		}
		size := child.Layout(ctx, cc)
		if f.axis == Vertical {
			child.SetOrigin(graphics.Point{Y: main})
			main += size.Height
			cross = math.Max(cross, size.Width)
		} else {
			child.SetOrigin(graphics.Point{X: main})
			main += size.Width
			cross = math.Max(cross, size.Height)
		}
	}
	if f.axis == Vertical {
		return c.Constrain(graphics.Size{Width: cross, Height: main})
	}
	return c.Constrain(graphics.Size{Width: main, Height: cross})
}

func (f *FlexWidget) Paint(ctx *core.PaintContext) {
	for _, child := range f.children {
		child.Paint(ctx)
	}
}

func (f *FlexWidget) MouseMove(ctx *core.EventContext, e core.MouseEvent) {
	for _, child := range f.children {
		child.MouseMove(ctx, e)
	}
}

func (f *FlexWidget) MouseDown(ctx *core.EventContext, e core.MouseEvent) {
	for _, child := range f.children {
		child.MouseDown(ctx, e)
	}
}

func (f *FlexWidget) MouseUp(ctx *core.EventContext, e core.MouseEvent) {
	for _, child := range f.children {
		child.MouseUp(ctx, e)
	}
}

func (f *FlexWidget) Wheel(ctx *core.EventContext, e core.MouseEvent) {
	for _, child := range f.children {
		child.Wheel(ctx, e)
	}
}

// KeyDown offers the key to each child in order until one handles it.
func (f *FlexWidget) KeyDown(ctx *core.EventContext, e core.KeyEvent) bool {
	for _, child := range f.children {
		if child.KeyDown(ctx, e) {
			return true
		}
	}
	return false
}

func (f *FlexWidget) KeyUp(ctx *core.EventContext, e core.KeyEvent) {
	for _, child := range f.children {
		child.KeyUp(ctx, e)
	}
}

func (f *FlexWidget) Timer(ctx *core.EventContext, t core.TimerToken) {
	for _, child := range f.children {
		child.Timer(ctx, t)
	}
}

func (f *FlexWidget) Idle(ctx *core.EventContext, t core.IdleToken) {
	for _, child := range f.children {
		child.Idle(ctx, t)
	}
}

// VisitChildren implements core.ChildVisitor.
func (f *FlexWidget) VisitChildren(fn func(*core.Pod)) {
	for _, child := range f.children {
		fn(child)
	}
}
