package app

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/host"
)

// ErrCycleInFlight is panicked with when a cycle starts inside another.
var ErrCycleInFlight = stderrors.New("app: update cycle already in flight")

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger. It is also handed to the host
// unless WithHostOptions overrides it.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithArena uses a instead of a fresh arena.
func WithArena(a *arena.Arena) Option {
	return func(r *Runner) {
		if a != nil {
			r.arena = a
		}
	}
}

// WithHostOptions passes options to the host the runner creates.
func WithHostOptions(opts ...host.Option) Option {
	return func(r *Runner) {
		r.hostOpts = append(r.hostOpts, opts...)
	}
}

// Runner drives update cycles: deliver a message, rebuild the view inside
// an arena scope, reconcile it into the host.
type Runner struct {
	bridge   Bridge
	host     *host.Host
	arena    *arena.Arena
	logger   *slog.Logger
	hostOpts []host.Option
	cycles   uint64
	inCycle  bool
}

// NewRunner wraps b and seeds the widget tree with one view cycle.
func NewRunner(b Bridge, opts ...Option) *Runner {
	r := &Runner{
		bridge: b,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.arena == nil {
		r.arena = arena.New()
	}
	hostOpts := append([]host.Option{host.WithLogger(r.logger)}, r.hostOpts...)
	r.host = host.New(hostOpts...)
	r.seed()
	return r
}

func (r *Runner) seed() {
	r.begin()
	defer r.end()
	r.render()
}

// Dispatch runs one cycle for msg. A message of the wrong type is dropped
// without re-rendering and its *errors.MessageError is returned.
func (r *Runner) Dispatch(msg any) error {
	r.begin()
	defer r.end()
	if err := r.bridge.Update(msg); err != nil {
		return err
	}
	r.render()
	return nil
}

// Flush delivers every message the host collected, oldest first, one cycle
// each. It returns the number delivered and any mismatch errors joined.
// Messages are dequeued one at a time, so if a cycle panics the ones behind
// it stay queued for the next Flush.
func (r *Runner) Flush() (int, error) {
	var errs []error
	delivered := 0
	for {
		msg, ok := r.host.NextMessage()
		if !ok {
			break
		}
		if err := r.Dispatch(msg); err != nil {
			errs = append(errs, err)
			continue
		}
		delivered++
	}
	return delivered, stderrors.Join(errs...)
}

func (r *Runner) begin() {
	if r.inCycle {
		panic(&errors.LoomError{
			Op:         "app.Dispatch",
			Kind:       errors.KindDispatch,
			Err:        ErrCycleInFlight,
			StackTrace: errors.CaptureStack(),
		})
	}
	r.inCycle = true
}

func (r *Runner) end() {
	r.inCycle = false
}

// render opens the arena, asks for a view, reconciles it and closes the
// arena. The view must not escape this function.
func (r *Runner) render() {
	scope, err := r.arena.Open()
	if err != nil {
		panic(&errors.LoomError{Op: "app.render", Kind: errors.KindArena, Err: err})
	}
	defer func() {
		if err := scope.Close(); err != nil {
			panic(&errors.LoomError{Op: "app.render", Kind: errors.KindArena, Err: err})
		}
	}()

	view := r.bridge.View(scope)
	if view.IsZero() {
		panic(&errors.LoomError{
			Op:   "app.render",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("application (message type %s) returned no view: %w", r.bridge.MessageType(), core.ErrZeroView),
		})
	}
	r.host.Reconcile(view)
	r.cycles++
	r.logger.Debug("cycle complete", "cycle", r.cycles)
}

// WithHost runs fn with the host, for platform code that forwards events.
func (r *Runner) WithHost(fn func(h *host.Host)) {
	fn(r.host)
}

// Host returns the runner's host.
func (r *Runner) Host() *host.Host {
	return r.host
}

// Arena returns the runner's arena.
func (r *Runner) Arena() *arena.Arena {
	return r.arena
}

// Cycles returns the number of completed render cycles, including the seed.
func (r *Runner) Cycles() uint64 {
	return r.cycles
}
