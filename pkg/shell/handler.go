package shell

import (
	"log/slog"
	"time"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/host"
)

// Window is the platform side of a connection.
type Window interface {
	// Invalidate asks the platform to call Paint soon.
	Invalidate()
	// RequestTimer asks the platform to call Timer with token after d.
	RequestTimer(token core.TimerToken, d time.Duration)
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. It defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Handler routes window events to a runner. It is not safe for concurrent
// use; platforms deliver events from a single UI goroutine.
type Handler struct {
	runner *app.Runner
	window Window
	state  State
	logger *slog.Logger
}

// NewHandler returns a handler waiting for a window.
func NewHandler(r *app.Runner, opts ...Option) *Handler {
	h := &Handler{runner: r, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// State returns the connection state.
func (h *Handler) State() State {
	return h.state
}

// Runner returns the driven runner.
func (h *Handler) Runner() *app.Runner {
	return h.runner
}

// Connect attaches w and requests the first paint.
func (h *Handler) Connect(w Window) error {
	next, err := Transition(h.state, EventConnect)
	if err != nil {
		return err
	}
	h.state = next
	h.window = w
	h.logger.Debug("window connected")
	w.Invalidate()
	return nil
}

// Destroy detaches the window. Later events return ErrNotConnected.
func (h *Handler) Destroy() {
	h.state, _ = Transition(h.state, EventDestroy)
	h.window = nil
	h.logger.Debug("window destroyed")
}

// with runs fn against the host when connected, then delivers what the
// event produced.
func (h *Handler) with(op string, fn func(*host.Host)) error {
	if h.state != StateConnected {
		h.logger.Warn("event without window", "op", op, "state", h.state)
		return ErrNotConnected
	}
	fn(h.runner.Host())
	h.afterEvent()
	return nil
}

func (h *Handler) afterEvent() {
	if n, err := h.runner.Flush(); err != nil {
		// Mismatched messages are reported by the bridge; keep going.
		h.logger.Debug("flush dropped messages", "delivered", n, "err", err)
	}
	hst := h.runner.Host()
	for _, req := range hst.TakeTimers() {
		h.window.RequestTimer(req.Token, req.After)
	}
	if hst.NeedsPaint() {
		h.window.Invalidate()
	}
}

// Size resizes the surface.
func (h *Handler) Size(size graphics.Size) error {
	return h.with("Size", func(hst *host.Host) { hst.Resize(size) })
}

// Paint lays out if needed and paints into canvas.
func (h *Handler) Paint(canvas graphics.Canvas) error {
	return h.with("Paint", func(hst *host.Host) { hst.Paint(canvas) })
}

func (h *Handler) MouseMove(e core.MouseEvent) error {
	return h.with("MouseMove", func(hst *host.Host) { hst.MouseMove(e) })
}

func (h *Handler) MouseDown(e core.MouseEvent) error {
	return h.with("MouseDown", func(hst *host.Host) { hst.MouseDown(e) })
}

func (h *Handler) MouseUp(e core.MouseEvent) error {
	return h.with("MouseUp", func(hst *host.Host) { hst.MouseUp(e) })
}

func (h *Handler) Wheel(e core.MouseEvent) error {
	return h.with("Wheel", func(hst *host.Host) { hst.Wheel(e) })
}

// KeyDown reports whether a widget handled the key.
func (h *Handler) KeyDown(e core.KeyEvent) (bool, error) {
	var handled bool
	err := h.with("KeyDown", func(hst *host.Host) { handled = hst.KeyDown(e) })
	return handled, err
}

func (h *Handler) KeyUp(e core.KeyEvent) error {
	return h.with("KeyUp", func(hst *host.Host) { hst.KeyUp(e) })
}

func (h *Handler) Timer(token core.TimerToken) error {
	return h.with("Timer", func(hst *host.Host) { hst.Timer(token) })
}

func (h *Handler) Idle(token core.IdleToken) error {
	return h.with("Idle", func(hst *host.Host) { hst.Idle(token) })
}
