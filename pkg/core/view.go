package core

import (
	stderrors "errors"
	"log/slog"
	"reflect"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/errors"
)

// ErrZeroView is panicked with when a zero AnyView reaches reconciliation.
var ErrZeroView = stderrors.New("core: zero AnyView")

// View describes the desired state of one widget for one cycle.
//
// Build consumes the view and returns a fresh widget. Update consumes a view
// of the same concrete type and mutates w, which is always a widget
// previously returned by Build on that type, in place.
type View interface {
	Build(ctx *BuildContext) Widget
	Update(ctx *BuildContext, w Widget)
}

// AnyView is a type-erased View together with its type identity.
// It is not persistent: an AnyView allocated in an arena scope must not be
// used after the scope closes.
type AnyView struct {
	view  View
	typ   reflect.Type
	lease arena.Lease
}

// Any erases a heap-owned view.
func Any(v View) AnyView {
	if v == nil {
		return AnyView{}
	}
	return AnyView{view: v, typ: viewType(reflect.TypeOf(v))}
}

// AnyIn copies v into the arena scope s and erases the copy. The result
// stays usable until s closes.
func AnyIn[V any, PV interface {
	*V
	View
}](s *arena.Scope, v V) AnyView {
	p := arena.Make(s, v)
	return AnyView{view: PV(p), typ: viewType(reflect.TypeFor[V]()), lease: s.Lease()}
}

// viewType strips one level of pointer so a view and a pointer to it share
// identity.
func viewType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// IsZero reports whether the AnyView holds no view.
func (v AnyView) IsZero() bool {
	return v.view == nil
}

// Type returns the concrete view type.
func (v AnyView) Type() reflect.Type {
	return v.typ
}

// Check returns arena.ErrLeaseExpired if the view's arena scope has closed.
func (v AnyView) Check() error {
	return v.lease.Check()
}

// View returns the concrete view. It panics if the view's scope has closed.
func (v AnyView) View() View {
	v.mustLive("core.AnyView.View")
	return v.view
}

func (v AnyView) mustLive(op string) {
	if v.view == nil {
		panic(&errors.LoomError{Op: op, Kind: errors.KindDispatch, Err: ErrZeroView})
	}
	if err := v.lease.Check(); err != nil {
		panic(&errors.LoomError{Op: op, Kind: errors.KindArena, Err: err})
	}
}

// ReconcileStats counts reconciliation outcomes.
type ReconcileStats struct {
	// Builds counts widgets built, including rebuilds.
	Builds int
	// Updates counts in-place updates.
	Updates int
	// Rebuilds counts widgets discarded because their view type changed.
	Rebuilds int
}

// BuildContext is passed to View.Build and View.Update.
type BuildContext struct {
	logger *slog.Logger
	stats  ReconcileStats
}

// NewBuildContext returns a BuildContext logging to logger, or to
// slog.Default() when logger is nil.
func NewBuildContext(logger *slog.Logger) *BuildContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildContext{logger: logger}
}

// Logger returns the context's logger.
func (c *BuildContext) Logger() *slog.Logger {
	return c.logger
}

// Stats returns the counters accumulated so far.
func (c *BuildContext) Stats() ReconcileStats {
	return c.stats
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
