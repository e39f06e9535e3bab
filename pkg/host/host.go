// Package host owns the root widget of a window. It reconciles incoming
// views against the root and is the single entry point for platform events.
package host

import (
	stderrors "errors"
	"log/slog"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
)

// ErrReentrant is panicked with when a host call starts while another is
// still running.
var ErrReentrant = stderrors.New("host: reentrant call")

// Stats describes host activity.
type Stats struct {
	Reconcile core.ReconcileStats
	Layouts   int
	Paints    int
	Events    int
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMeasurer sets the text measurer handed to layout.
func WithMeasurer(m graphics.TextMeasurer) Option {
	return func(h *Host) {
		if m != nil {
			h.measurer = m
		}
	}
}

// WithSize sets the initial window size.
func WithSize(size graphics.Size) Option {
	return func(h *Host) {
		h.size = size
	}
}

// Host owns exactly one root Pod.
type Host struct {
	root     *core.Pod
	build    *core.BuildContext
	dispatch *core.Dispatch
	measurer graphics.TextMeasurer
	logger   *slog.Logger
	size     graphics.Size
	busy     string
	stats    Stats
}

// New returns a host with no root. The first Reconcile builds it.
func New(opts ...Option) *Host {
	h := &Host{
		logger:   slog.Default(),
		measurer: graphics.DefaultMeasurer,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.build = core.NewBuildContext(h.logger)
	h.dispatch = core.NewDispatch(h.measurer)
	return h
}

// enter marks the start of a host call. Exactly one call may be in flight.
func (h *Host) enter(op string) func() {
	if h.busy != "" {
		panic(&errors.LoomError{
			Op:         "host." + op,
			Kind:       errors.KindDispatch,
			Err:        stderrors.Join(ErrReentrant, stderrors.New("inside host."+h.busy)),
			StackTrace: errors.CaptureStack(),
		})
	}
	h.busy = op
	return func() { h.busy = "" }
}

// Reconcile brings the root in line with v: the first call builds the
// root, later calls update it in place or rebuild it when v's type differs
// from the root's. It reports whether the root widget was (re)built.
func (h *Host) Reconcile(v core.AnyView) bool {
	defer h.enter("Reconcile")()
	rebuilt := true
	if h.root == nil {
		h.root = core.NewPod(h.build, v)
	} else {
		rebuilt = h.root.Reconcile(h.build, v)
	}
	h.dispatch.RequestLayout()
	return rebuilt
}

// Root returns the root widget, or nil before the first Reconcile.
func (h *Host) Root() core.Widget {
	if h.root == nil {
		return nil
	}
	return h.root.Widget()
}

// RootPod returns the root pod, or nil before the first Reconcile.
func (h *Host) RootPod() *core.Pod {
	return h.root
}

// Size returns the window size.
func (h *Host) Size() graphics.Size {
	return h.size
}

// Resize sets the window size and schedules layout.
func (h *Host) Resize(size graphics.Size) {
	defer h.enter("Resize")()
	if size == h.size {
		return
	}
	h.size = size
	h.dispatch.RequestLayout()
}

// Layout lays the root out within the window size and returns its size.
// It is a no-op returning the last size when no layout is pending.
func (h *Host) Layout() graphics.Size {
	defer h.enter("Layout")()
	return h.layout()
}

func (h *Host) layout() graphics.Size {
	if h.root == nil {
		return graphics.Size{}
	}
	if !h.dispatch.NeedsLayout() {
		return h.root.Size()
	}
	h.dispatch.ClearLayout()
	h.stats.Layouts++
	size := h.root.Layout(core.NewLayoutContext(h.dispatch), graphics.Loose(h.size))
	h.root.SetOrigin(graphics.Point{})
	return size
}

// Paint lays out if needed and paints the tree on canvas.
func (h *Host) Paint(canvas graphics.Canvas) {
	defer h.enter("Paint")()
	if h.root == nil {
		return
	}
	h.layout()
	h.dispatch.ClearPaint()
	h.stats.Paints++
	h.root.Paint(core.NewPaintContext(h.dispatch, canvas))
}

func (h *Host) event(op string, fn func(root *core.Pod, ctx *core.EventContext)) {
	defer h.enter(op)()
	if h.root == nil {
		return
	}
	// Hit testing needs current frames.
	h.layout()
	h.stats.Events++
	fn(h.root, core.NewEventContext(h.dispatch))
}

// MouseMove dispatches a pointer move in window coordinates.
func (h *Host) MouseMove(e core.MouseEvent) {
	h.event("MouseMove", func(root *core.Pod, ctx *core.EventContext) { root.MouseMove(ctx, e) })
}

// MouseDown dispatches a button press.
func (h *Host) MouseDown(e core.MouseEvent) {
	h.event("MouseDown", func(root *core.Pod, ctx *core.EventContext) { root.MouseDown(ctx, e) })
}

// MouseUp dispatches a button release.
func (h *Host) MouseUp(e core.MouseEvent) {
	h.event("MouseUp", func(root *core.Pod, ctx *core.EventContext) { root.MouseUp(ctx, e) })
}

// Wheel dispatches a scroll.
func (h *Host) Wheel(e core.MouseEvent) {
	h.event("Wheel", func(root *core.Pod, ctx *core.EventContext) { root.Wheel(ctx, e) })
}

// KeyDown dispatches a key press and reports whether a widget handled it.
func (h *Host) KeyDown(e core.KeyEvent) bool {
	var handled bool
	h.event("KeyDown", func(root *core.Pod, ctx *core.EventContext) { handled = root.KeyDown(ctx, e) })
	return handled
}

// KeyUp dispatches a key release.
func (h *Host) KeyUp(e core.KeyEvent) {
	h.event("KeyUp", func(root *core.Pod, ctx *core.EventContext) { root.KeyUp(ctx, e) })
}

// Timer delivers a timer notification.
func (h *Host) Timer(t core.TimerToken) {
	h.event("Timer", func(root *core.Pod, ctx *core.EventContext) { root.Timer(ctx, t) })
}

// Idle delivers an idle notification.
func (h *Host) Idle(t core.IdleToken) {
	h.event("Idle", func(root *core.Pod, ctx *core.EventContext) { root.Idle(ctx, t) })
}

// TakeMessages returns and clears the messages widgets submitted.
func (h *Host) TakeMessages() []any {
	return h.dispatch.TakeMessages()
}

// NextMessage dequeues the oldest message widgets submitted.
func (h *Host) NextMessage() (any, bool) {
	return h.dispatch.NextMessage()
}

// PendingMessages returns the number of queued messages.
func (h *Host) PendingMessages() int {
	return h.dispatch.PendingMessages()
}

// TakeTimers returns and clears timer requests for the platform.
func (h *Host) TakeTimers() []core.TimerRequest {
	return h.dispatch.TakeTimers()
}

// NeedsPaint reports whether a repaint is pending.
func (h *Host) NeedsPaint() bool {
	return h.dispatch.NeedsPaint()
}

// NeedsLayout reports whether a relayout is pending.
func (h *Host) NeedsLayout() bool {
	return h.dispatch.NeedsLayout()
}

// Stats returns a snapshot of host activity.
func (h *Host) Stats() Stats {
	st := h.stats
	st.Reconcile = h.build.Stats()
	return st
}
