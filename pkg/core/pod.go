package core

import (
	"reflect"

	"github.com/go-drift/loom/pkg/graphics"
)

// Pod owns the widget at one tree position.
type Pod struct {
	widget   Widget
	viewType reflect.Type
	state    podState
}

// NewPod builds a fresh widget from v.
func NewPod(ctx *BuildContext, v AnyView) *Pod {
	v.mustLive("core.NewPod")
	p := &Pod{}
	p.build(ctx, v)
	return p
}

func (p *Pod) build(ctx *BuildContext, v AnyView) {
	p.widget = v.view.Build(ctx)
	p.viewType = v.typ
	p.state = podState{}
	ctx.stats.Builds++
}

// Reconcile brings the pod in line with v. If v has the same concrete type
// as the view that built the current widget, the widget is updated in place
// and keeps its substate. Otherwise the widget is discarded and rebuilt from
// v with fresh substate, and Reconcile returns true.
func (p *Pod) Reconcile(ctx *BuildContext, v AnyView) (rebuilt bool) {
	v.mustLive("core.Pod.Reconcile")
	if p.widget != nil && p.viewType == v.typ {
		v.view.Update(ctx, p.widget)
		ctx.stats.Updates++
		return false
	}
	if p.widget != nil {
		ctx.logger.Debug("view type changed, rebuilding widget",
			"from", typeName(p.viewType), "to", typeName(v.typ))
		ctx.stats.Rebuilds++
	}
	p.build(ctx, v)
	return true
}

// UpdateChild reconciles an optional child. A zero v drops the child and
// returns nil; a nil p builds a new pod.
func UpdateChild(ctx *BuildContext, p *Pod, v AnyView) *Pod {
	if v.IsZero() {
		return nil
	}
	if p == nil {
		return NewPod(ctx, v)
	}
	p.Reconcile(ctx, v)
	return p
}

// ReconcileChildren reconciles a child list by position. Lists of equal
// length are updated index by index. A change in length rebuilds every
// child: positions carry no identity beyond their index.
func ReconcileChildren(ctx *BuildContext, pods []*Pod, views []AnyView) []*Pod {
	if len(pods) == len(views) {
		for i, v := range views {
			pods[i].Reconcile(ctx, v)
		}
		return pods
	}
	if len(pods) > 0 {
		ctx.logger.Debug("child list length changed, rebuilding children",
			"from", len(pods), "to", len(views))
		ctx.stats.Rebuilds += len(pods)
	}
	if len(views) == 0 {
		return nil
	}
	out := make([]*Pod, len(views))
	for i, v := range views {
		out[i] = NewPod(ctx, v)
	}
	return out
}

// Widget returns the current widget.
func (p *Pod) Widget() Widget { return p.widget }

// ViewType returns the type of the view that built the current widget.
func (p *Pod) ViewType() reflect.Type { return p.viewType }

// Hovered reports whether the pointer was over the widget at the last move.
func (p *Pod) Hovered() bool { return p.state.hovered }

// MouseFocused reports whether the widget holds pointer capture.
func (p *Pod) MouseFocused() bool { return p.state.mouseFocused }

// Focused reports whether the widget has keyboard focus.
func (p *Pod) Focused() bool { return p.state.focused }

// SetOrigin positions the widget within its parent.
func (p *Pod) SetOrigin(origin graphics.Point) { p.state.origin = origin }

// Origin returns the widget's position within its parent.
func (p *Pod) Origin() graphics.Point { return p.state.origin }

// Size returns the size chosen at the last layout.
func (p *Pod) Size() graphics.Size { return p.state.size }

// Frame returns the widget's rectangle in parent coordinates.
func (p *Pod) Frame() graphics.Rect {
	return graphics.RectFromOriginSize(p.state.origin, p.state.size)
}

// Init initializes the widget if it has not been initialized since it was built.
// Every other dispatch method calls it first, so explicit calls are optional.
func (p *Pod) Init(ctx *EventContext) {
	p.ensureInit(ctx.d)
}

func (p *Pod) ensureInit(d *Dispatch) {
	if p.state.inited {
		return
	}
	p.state.inited = true
	child := EventContext{d: d, state: &p.state}
	p.widget.Init(&child)
}

// Layout lays the widget out under c and records its size.
func (p *Pod) Layout(ctx *LayoutContext, c graphics.Constraints) graphics.Size {
	p.ensureInit(ctx.d)
	child := LayoutContext{d: ctx.d, state: &p.state}
	p.state.size = p.widget.Layout(&child, c)
	return p.state.size
}

// Paint paints the widget at its origin.
func (p *Pod) Paint(ctx *PaintContext) {
	p.ensureInit(ctx.d)
	child := PaintContext{
		d:      ctx.d,
		state:  &p.state,
		canvas: ctx.canvas,
		origin: ctx.origin.Add(p.state.origin),
	}
	p.widget.Paint(&child)
}

func (p *Pod) local(e MouseEvent) (MouseEvent, bool) {
	e.Pos = e.Pos.Sub(p.state.origin)
	inside := graphics.RectFromOriginSize(graphics.Point{}, p.state.size).Contains(e.Pos)
	return e, inside
}

// hoverAt updates hover from a pointer event that carries a position. A
// terminal may report a press or release with no motion before it.
func (p *Pod) hoverAt(d *Dispatch, inside bool) {
	if p.state.hovered != inside {
		p.state.hovered = inside
		d.RequestPaint()
	}
}

func (p *Pod) active() bool {
	return p.state.mouseFocused || p.state.childActive
}

// forward calls fn with a context for this pod and propagates pointer
// capture upwards. Pointer events recompute capture from scratch; other
// events may not reach every descendant, so they only add to it.
func (p *Pod) forward(ctx *EventContext, pointer bool, fn func(*EventContext)) {
	if pointer {
		p.state.childActive = false
	}
	child := EventContext{d: ctx.d, state: &p.state}
	fn(&child)
	if p.active() {
		ctx.state.childActive = true
	}
}

// MouseMove updates hover and forwards the move when the pointer is inside,
// has just left, or is captured.
func (p *Pod) MouseMove(ctx *EventContext, e MouseEvent) {
	p.ensureInit(ctx.d)
	local, inside := p.local(e)
	wasHovered := p.state.hovered
	p.state.hovered = inside
	if inside || wasHovered || p.active() {
		p.forward(ctx, true, func(c *EventContext) { p.widget.MouseMove(c, local) })
	}
}

// MouseDown forwards a press that lands inside the widget.
func (p *Pod) MouseDown(ctx *EventContext, e MouseEvent) {
	p.ensureInit(ctx.d)
	local, inside := p.local(e)
	p.hoverAt(ctx.d, inside)
	if inside || p.active() {
		p.forward(ctx, true, func(c *EventContext) { p.widget.MouseDown(c, local) })
	}
}

// MouseUp forwards a release inside the widget or while it is captured.
func (p *Pod) MouseUp(ctx *EventContext, e MouseEvent) {
	p.ensureInit(ctx.d)
	local, inside := p.local(e)
	p.hoverAt(ctx.d, inside)
	if inside || p.active() {
		p.forward(ctx, true, func(c *EventContext) { p.widget.MouseUp(c, local) })
	}
}

// Wheel forwards a scroll inside the widget. Pointer capture is left as it
// was, since a captured pod away from the pointer never sees the wheel.
func (p *Pod) Wheel(ctx *EventContext, e MouseEvent) {
	p.ensureInit(ctx.d)
	local, inside := p.local(e)
	p.hoverAt(ctx.d, inside)
	if inside {
		p.forward(ctx, false, func(c *EventContext) { p.widget.Wheel(c, local) })
	}
}

// KeyDown forwards a key press and reports whether it was handled.
func (p *Pod) KeyDown(ctx *EventContext, e KeyEvent) bool {
	p.ensureInit(ctx.d)
	var handled bool
	p.forward(ctx, false, func(c *EventContext) { handled = p.widget.KeyDown(c, e) })
	return handled
}

// KeyUp forwards a key release.
func (p *Pod) KeyUp(ctx *EventContext, e KeyEvent) {
	p.ensureInit(ctx.d)
	p.forward(ctx, false, func(c *EventContext) { p.widget.KeyUp(c, e) })
}

// Timer forwards a timer notification.
func (p *Pod) Timer(ctx *EventContext, t TimerToken) {
	p.ensureInit(ctx.d)
	p.forward(ctx, false, func(c *EventContext) { p.widget.Timer(c, t) })
}

// Idle forwards an idle notification.
func (p *Pod) Idle(ctx *EventContext, t IdleToken) {
	p.ensureInit(ctx.d)
	p.forward(ctx, false, func(c *EventContext) { p.widget.Idle(c, t) })
}
