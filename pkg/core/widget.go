package core

import "github.com/go-drift/loom/pkg/graphics"

// Widget is the capability set of a persistent tree node.
// Layout and Paint must not fail.
type Widget interface {
	Init(ctx *EventContext)
	Layout(ctx *LayoutContext, c graphics.Constraints) graphics.Size
	Paint(ctx *PaintContext)
	MouseMove(ctx *EventContext, e MouseEvent)
	MouseDown(ctx *EventContext, e MouseEvent)
	MouseUp(ctx *EventContext, e MouseEvent)
	Wheel(ctx *EventContext, e MouseEvent)
	// KeyDown reports whether the event was handled.
	KeyDown(ctx *EventContext, e KeyEvent) bool
	KeyUp(ctx *EventContext, e KeyEvent)
	Timer(ctx *EventContext, t TimerToken)
	Idle(ctx *EventContext, t IdleToken)
}

// WidgetBase provides no-op implementations of every Widget method
// except Layout and Paint. Embed it and override what you need.
type WidgetBase struct{}

func (WidgetBase) Init(*EventContext) {}
func (WidgetBase) MouseMove(*EventContext, MouseEvent) {}
func (WidgetBase) MouseDown(*EventContext, MouseEvent) {}
func (WidgetBase) MouseUp(*EventContext, MouseEvent) {}
func (WidgetBase) Wheel(*EventContext, MouseEvent) {}
func (WidgetBase) KeyDown(*EventContext, KeyEvent) bool { return false }
func (WidgetBase) KeyUp(*EventContext, KeyEvent) {}
func (WidgetBase) Timer(*EventContext, TimerToken) {}
func (WidgetBase) Idle(*EventContext, IdleToken) {}
