package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// SizedBox forces a size on its optional child. A zero Width or Height
// follows the child (or zero without a child) in that dimension.
type SizedBox struct {
	Width  float64
	Height float64
	Child  core.AnyView
}

// SizedBoxWidget is the widget built from a SizedBox.
type SizedBoxWidget struct {
	width, height float64
	child         *core.Pod
}

// Build implements core.View.
func (b SizedBox) Build(ctx *core.BuildContext) core.Widget {
	return &SizedBoxWidget{
		width:  b.Width,
		height: b.Height,
		child:  core.UpdateChild(ctx, nil, b.Child),
	}
}

// Update implements core.View.
func (b SizedBox) Update(ctx *core.BuildContext, w core.Widget) {
	sw := w.(*SizedBoxWidget)
	sw.width, sw.height = b.Width, b.Height
	sw.child = core.UpdateChild(ctx, sw.child, b.Child)
}

// Child returns the child pod, or nil.
func (b *SizedBoxWidget) Child() *core.Pod {
	return b.child
}

func (b *SizedBoxWidget) Init(*core.EventContext) {}

func (b *SizedBoxWidget) Layout(ctx *core.LayoutContext, c graphics.Constraints) graphics.Size {
	inner := c
	if b.width > 0 {
		w := c.Constrain(graphics.Size{Width: b.width}).Width
		inner.MinWidth, inner.MaxWidth = w, w
	}
	if b.height > 0 {
		h := c.Constrain(graphics.Size{Height: b.height}).Height
		inner.MinHeight, inner.MaxHeight = h, h
	}
	if b.child == nil {
		return inner.Constrain(graphics.Size{})
	}
	size := b.child.Layout(ctx, inner)
	b.child.SetOrigin(graphics.Point{})
	return size
}

func (b *SizedBoxWidget) Paint(ctx *core.PaintContext) {
	if b.child != nil {
		b.child.Paint(ctx)
	}
}

func (b *SizedBoxWidget) MouseMove(ctx *core.EventContext, e core.MouseEvent) {
	if b.child != nil {
		b.child.MouseMove(ctx, e)
	}
}

func (b *SizedBoxWidget) MouseDown(ctx *core.EventContext, e core.MouseEvent) {
	if b.child != nil {
		b.child.MouseDown(ctx, e)
	}
}

func (b *SizedBoxWidget) MouseUp(ctx *core.EventContext, e core.MouseEvent) {
	if b.child != nil {
		b.child.MouseUp(ctx, e)
	}
}

func (b *SizedBoxWidget) Wheel(ctx *core.EventContext, e core.MouseEvent) {
	if b.child != nil {
		b.child.Wheel(ctx, e)
	}
}

func (b *SizedBoxWidget) KeyDown(ctx *core.EventContext, e core.KeyEvent) bool {
	return b.child != nil && b.child.KeyDown(ctx, e)
}

func (b *SizedBoxWidget) KeyUp(ctx *core.EventContext, e core.KeyEvent) {
	if b.child != nil {
		b.child.KeyUp(ctx, e)
	}
}

func (b *SizedBoxWidget) Timer(ctx *core.EventContext, t core.TimerToken) {
	if b.child != nil {
		b.child.Timer(ctx, t)
	}
}

func (b *SizedBoxWidget) Idle(ctx *core.EventContext, t core.IdleToken) {
	if b.child != nil {
		b.child.Idle(ctx, t)
	}
}

// VisitChildren implements core.ChildVisitor.
func (b *SizedBoxWidget) VisitChildren(fn func(*core.Pod)) {
	if b.child != nil {
		fn(b.child)
	}
}
