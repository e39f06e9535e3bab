package core

import (
	"time"

	"github.com/go-drift/loom/pkg/graphics"
)

// Dispatch holds what every context shares during host calls: the text
// measurer, emitted messages, timer requests and repaint/relayout flags.
type Dispatch struct {
	measurer  graphics.TextMeasurer
	messages  []any
	timers    []TimerRequest
	nextTimer TimerToken
	paint     bool
	layout    bool
	// focus is the substate of the one pod holding keyboard focus.
	focus *podState
}

// NewDispatch returns a Dispatch measuring text with m, or with
// graphics.DefaultMeasurer when m is nil.
func NewDispatch(m graphics.TextMeasurer) *Dispatch {
	if m == nil {
		m = graphics.DefaultMeasurer
	}
	return &Dispatch{measurer: m}
}

// TakeMessages returns and clears the messages submitted so far, oldest first.
func (d *Dispatch) TakeMessages() []any {
	msgs := d.messages
	d.messages = nil
	return msgs
}

// NextMessage dequeues the oldest submitted message.
func (d *Dispatch) NextMessage() (any, bool) {
	if len(d.messages) == 0 {
		return nil, false
	}
	msg := d.messages[0]
	d.messages[0] = nil
	d.messages = d.messages[1:]
	return msg, true
}

// PendingMessages returns the number of queued messages.
func (d *Dispatch) PendingMessages() int {
	return len(d.messages)
}

// TakeTimers returns and clears the timer requests made so far.
func (d *Dispatch) TakeTimers() []TimerRequest {
	timers := d.timers
	d.timers = nil
	return timers
}

// RequestPaint marks the tree as needing a repaint.
func (d *Dispatch) RequestPaint() { d.paint = true }

// RequestLayout marks the tree as needing layout and repaint.
func (d *Dispatch) RequestLayout() {
	d.layout = true
	d.paint = true
}

// NeedsPaint reports whether a repaint was requested.
func (d *Dispatch) NeedsPaint() bool { return d.paint }

// NeedsLayout reports whether a relayout was requested.
func (d *Dispatch) NeedsLayout() bool { return d.layout }

// ClearPaint resets the repaint flag.
func (d *Dispatch) ClearPaint() { d.paint = false }

// ClearLayout resets the relayout flag.
func (d *Dispatch) ClearLayout() { d.layout = false }

// podState is the substate a Pod keeps for its widget.
type podState struct {
	origin       graphics.Point
	size         graphics.Size
	hovered      bool
	mouseFocused bool
	focused      bool
	// childActive is set when a descendant holds mouse focus, so pointer
	// events keep flowing to it even outside this pod's bounds.
	childActive bool
	inited      bool
}

// EventContext is passed to Init and every input method.
type EventContext struct {
	d     *Dispatch
	state *podState
}

// NewEventContext returns a root context over d for calling into a root Pod.
func NewEventContext(d *Dispatch) *EventContext {
	return &EventContext{d: d, state: &podState{}}
}

// RequestPaint asks for a repaint after this event.
func (c *EventContext) RequestPaint() { c.d.RequestPaint() }

// RequestLayout asks for a relayout and repaint after this event.
func (c *EventContext) RequestLayout() { c.d.RequestLayout() }

// Hovered reports whether the pointer is over the widget.
func (c *EventContext) Hovered() bool { return c.state.hovered }

// MouseFocused reports whether the widget holds pointer capture.
func (c *EventContext) MouseFocused() bool { return c.state.mouseFocused }

// SetMouseFocus captures or releases the pointer. While captured the widget
// receives mouse moves and releases outside its bounds.
func (c *EventContext) SetMouseFocus(focused bool) { c.state.mouseFocused = focused }

// Focused reports whether the widget has keyboard focus.
func (c *EventContext) Focused() bool { return c.state.focused }

// SetFocus takes or gives up keyboard focus. At most one widget holds focus:
// taking it clears the previous holder and schedules a repaint.
func (c *EventContext) SetFocus(focused bool) {
	d := c.d
	if !focused {
		c.state.focused = false
		if d.focus == c.state {
			d.focus = nil
		}
		return
	}
	if d.focus != nil && d.focus != c.state && d.focus.focused {
		d.focus.focused = false
		d.RequestPaint()
	}
	d.focus = c.state
	c.state.focused = true
}

// Size returns the widget's size from the last layout.
func (c *EventContext) Size() graphics.Size { return c.state.size }

// SubmitMessage queues msg for delivery to the application.
func (c *EventContext) SubmitMessage(msg any) {
	c.d.messages = append(c.d.messages, msg)
}

// RequestTimer asks the platform to deliver a Timer call after d.
func (c *EventContext) RequestTimer(after time.Duration) TimerToken {
	c.d.nextTimer++
	token := c.d.nextTimer
	c.d.timers = append(c.d.timers, TimerRequest{Token: token, After: after})
	return token
}

// LayoutContext is passed to Layout.
type LayoutContext struct {
	d     *Dispatch
	state *podState
}

// NewLayoutContext returns a root layout context over d.
func NewLayoutContext(d *Dispatch) *LayoutContext {
	return &LayoutContext{d: d, state: &podState{}}
}

// Measure returns the size of text drawn with the host's measurer.
func (c *LayoutContext) Measure(text string) graphics.Size {
	return c.d.measurer.Measure(text)
}

// PaintContext is passed to Paint. Drawing calls take coordinates local to
// the widget and are translated to the canvas.
type PaintContext struct {
	d      *Dispatch
	state  *podState
	canvas graphics.Canvas
	origin graphics.Point
}

// NewPaintContext returns a root paint context drawing on canvas.
func NewPaintContext(d *Dispatch, canvas graphics.Canvas) *PaintContext {
	return &PaintContext{d: d, state: &podState{}, canvas: canvas}
}

// Hovered reports whether the pointer is over the widget.
func (c *PaintContext) Hovered() bool { return c.state.hovered }

// MouseFocused reports whether the widget holds pointer capture.
func (c *PaintContext) MouseFocused() bool { return c.state.mouseFocused }

// Focused reports whether the widget has keyboard focus.
func (c *PaintContext) Focused() bool { return c.state.focused }

// Size returns the widget's size from the last layout.
func (c *PaintContext) Size() graphics.Size { return c.state.size }

// Bounds returns the widget's local rectangle.
func (c *PaintContext) Bounds() graphics.Rect {
	return graphics.RectFromOriginSize(graphics.Point{}, c.state.size)
}

// FillRect fills a local rectangle.
func (c *PaintContext) FillRect(r graphics.Rect, color graphics.Color) {
	c.canvas.FillRect(r.Translate(c.origin), color)
}

// StrokeRect outlines a local rectangle.
func (c *PaintContext) StrokeRect(r graphics.Rect, color graphics.Color, width float64) {
	c.canvas.StrokeRect(r.Translate(c.origin), color, width)
}

// DrawText draws text with its top-left corner at a local point.
func (c *PaintContext) DrawText(text string, at graphics.Point, color graphics.Color) {
	c.canvas.DrawText(text, at.Add(c.origin), color)
}
