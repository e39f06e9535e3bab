package testing

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/host"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrAppTester is returned by PumpView when the tester drives an application,
// whose views come from the application itself.
var ErrAppTester = errors.New("PumpView: tester drives an application")

// WidgetTester drives a host the way a platform handler would, with a fake
// clock and a recording canvas instead of a window.
type WidgetTester struct {
	host     *host.Host
	runner   *app.Runner
	clock    *FakeClock
	recorder *Recorder
	messages []any
	paints   int
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultOptions(opts []host.Option) []host.Option {
	base := []host.Option{
		host.WithSize(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		host.WithLogger(discard()),
	}
	return append(base, opts...)
}

// NewWidgetTester creates a tester around a bare host. Messages submitted by
// widgets are collected and returned by Messages.
func NewWidgetTester(t testing.TB, opts ...host.Option) *WidgetTester {
	t.Helper()
	return &WidgetTester{
		host:     host.New(defaultOptions(opts)...),
		clock:    NewFakeClock(),
		recorder: &Recorder{},
	}
}

// NewAppTester creates a tester that runs a. The first view is built and
// painted before NewAppTester returns.
func NewAppTester[M any](t testing.TB, a app.Application[M], opts ...host.Option) *WidgetTester {
	t.Helper()
	tester, err := NewBridgeTester(app.Erase(a), app.WithHostOptions(opts...))
	if err != nil {
		t.Fatalf("NewAppTester: %v", err)
	}
	return tester
}

// NewBridgeTester runs an already erased application. It needs no
// *testing.T, so headless tools can drive applications with it too.
func NewBridgeTester(b app.Bridge, opts ...app.Option) (*WidgetTester, error) {
	base := []app.Option{
		app.WithLogger(discard()),
		app.WithHostOptions(defaultOptions(nil)...),
	}
	runner := app.NewRunner(b, append(base, opts...)...)
	tester := &WidgetTester{
		host:     runner.Host(),
		runner:   runner,
		clock:    NewFakeClock(),
		recorder: &Recorder{},
	}
	return tester, tester.Pump()
}

// Host returns the driven host.
func (t *WidgetTester) Host() *host.Host {
	return t.host
}

// Runner returns the application runner, or nil for a bare host.
func (t *WidgetTester) Runner() *app.Runner {
	return t.runner
}

// Clock returns the fake clock used for widget timers.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// Recorder returns the canvas of the last paint.
func (t *WidgetTester) Recorder() *Recorder {
	return t.recorder
}

// Paints returns the number of paints performed so far.
func (t *WidgetTester) Paints() int {
	return t.paints
}

// Messages returns the messages collected from a bare host.
func (t *WidgetTester) Messages() []any {
	return t.messages
}

// Root returns the root pod, or nil before the first view.
func (t *WidgetTester) Root() *core.Pod {
	return t.host.RootPod()
}

// SetSize resizes the surface and pumps.
func (t *WidgetTester) SetSize(size graphics.Size) error {
	t.host.Resize(size)
	return t.Pump()
}

// PumpView reconciles v against the current root and pumps.
func (t *WidgetTester) PumpView(v core.AnyView) error {
	if t.runner != nil {
		return ErrAppTester
	}
	t.host.Reconcile(v)
	return t.Pump()
}

// Pump delivers pending messages, repaints if anything changed and arms
// requested timers.
func (t *WidgetTester) Pump() error {
	var err error
	if t.runner != nil {
		_, err = t.runner.Flush()
	} else {
		t.messages = append(t.messages, t.host.TakeMessages()...)
	}
	if t.host.RootPod() != nil && (t.host.NeedsPaint() || t.host.NeedsLayout()) {
		t.recorder.Reset()
		t.host.Paint(t.recorder)
		t.paints++
	}
	// Widgets request timers from Init, which runs during the first layout.
	for _, req := range t.host.TakeTimers() {
		t.clock.Schedule(req)
	}
	return err
}

// Advance moves the fake clock forward by d, delivers the timers that came
// due and pumps.
func (t *WidgetTester) Advance(d time.Duration) error {
	for _, token := range t.clock.Advance(d) {
		t.host.Timer(token)
	}
	return t.Pump()
}

// Find evaluates a finder against the current pod tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.host.RootPod()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		matches: finder.Evaluate(root),
		finder:  finder,
	}
}
