package shell_test

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/shell"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
	"github.com/google/go-cmp/cmp"
)

type Increment struct{}

type counter struct{ count int }

func (c *counter) Update(Increment) { c.count++ }

func (c *counter) View(s *arena.Scope) core.AnyView {
	return core.AnyIn(s, widgets.ColumnOf(s,
		core.AnyIn(s, widgets.TextOf(strconv.Itoa(c.count))),
		core.AnyIn(s, widgets.ButtonOf("+1", Increment{})),
	))
}

type timerReq struct {
	token core.TimerToken
	after time.Duration
}

type fakeWindow struct {
	invalidations int
	timers        []timerReq
}

func (w *fakeWindow) Invalidate() { w.invalidations++ }

func (w *fakeWindow) RequestTimer(token core.TimerToken, d time.Duration) {
	w.timers = append(w.timers, timerReq{token, d})
}

func newHandler(c *counter) *shell.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := app.NewRunner(app.Erase[Increment](c), app.WithLogger(logger))
	return shell.NewHandler(r, shell.WithLogger(logger))
}

func click(t *testing.T, h *shell.Handler, at graphics.Point) {
	t.Helper()
	e := core.MouseEvent{Pos: at, Button: core.ButtonLeft, Count: 1}
	for _, err := range []error{
		h.MouseMove(core.MouseEvent{Pos: at}),
		h.MouseDown(e),
		h.MouseUp(e),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestHandler_EventsBeforeConnect(t *testing.T) {
	h := newHandler(&counter{})

	if h.State() != shell.StateWaiting {
		t.Fatalf("expected Waiting, got %s", h.State())
	}
	if err := h.MouseMove(core.MouseEvent{}); !errors.Is(err, shell.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
	if _, err := h.KeyDown(core.KeyEvent{Key: "a"}); !errors.Is(err, shell.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}

func TestHandler_ConnectLifecycle(t *testing.T) {
	h := newHandler(&counter{})
	w := &fakeWindow{}

	if err := h.Connect(w); err != nil {
		t.Fatal(err)
	}
	if w.invalidations != 1 {
		t.Errorf("expected connect to request a paint, got %d", w.invalidations)
	}
	if err := h.Connect(w); !errors.Is(err, shell.ErrAlreadyConnected) {
		t.Errorf("expected ErrAlreadyConnected, got %v", err)
	}

	h.Destroy()
	if h.State() != shell.StateClosed {
		t.Errorf("expected Closed, got %s", h.State())
	}
	if err := h.Paint(&loomtest.Recorder{}); !errors.Is(err, shell.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected after destroy, got %v", err)
	}
	if err := h.Connect(w); !errors.Is(err, shell.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestHandler_ClickDeliversMessages(t *testing.T) {
	c := &counter{}
	h := newHandler(c)
	w := &fakeWindow{}
	h.Connect(w)

	var canvas loomtest.Recorder
	if err := h.Size(graphics.Size{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}
	if err := h.Paint(&canvas); err != nil {
		t.Fatal(err)
	}
	before := w.invalidations

	// The button sits below the 13px count text.
	button := graphics.Point{X: 11, Y: 21}
	for range 3 {
		click(t, h, button)
	}
	if c.count != 3 {
		t.Errorf("expected count 3, got %d", c.count)
	}
	if w.invalidations <= before {
		t.Error("expected clicks to invalidate the window")
	}

	canvas.Reset()
	h.Paint(&canvas)
	if diff := cmp.Diff([]string{"3", "+1"}, canvas.Texts()); diff != "" {
		t.Errorf("painted texts mismatch (-want +got):\n%s", diff)
	}
	if cycles := h.Runner().Cycles(); cycles != 4 {
		t.Errorf("expected 4 cycles, got %d", cycles)
	}
}

type blinker struct{}

type blinkerWidget struct {
	core.WidgetBase
	on bool
}

func (blinker) Build(*core.BuildContext) core.Widget { return &blinkerWidget{} }

func (blinker) Update(*core.BuildContext, core.Widget) {}

func (w *blinkerWidget) Init(ctx *core.EventContext) {
	ctx.RequestTimer(time.Second)
}

func (w *blinkerWidget) Timer(ctx *core.EventContext, _ core.TimerToken) {
	w.on = !w.on
	ctx.RequestPaint()
	ctx.RequestTimer(time.Second)
}

func (w *blinkerWidget) Layout(_ *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.Size{Width: 1, Height: 1})
}

func (w *blinkerWidget) Paint(*core.PaintContext) {}

type blinkApp struct{}

func (blinkApp) Update(struct{}) {}

func (blinkApp) View(s *arena.Scope) core.AnyView { return core.AnyIn(s, blinker{}) }

func TestHandler_ForwardsTimers(t *testing.T) {
	r := app.NewRunner(app.Erase[struct{}](blinkApp{}), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	h := shell.NewHandler(r)
	w := &fakeWindow{}
	h.Connect(w)

	h.Paint(&loomtest.Recorder{})
	if len(w.timers) != 1 || w.timers[0].after != time.Second {
		t.Fatalf("expected one 1s timer after first paint, got %v", w.timers)
	}

	invalidations := w.invalidations
	if err := h.Timer(w.timers[0].token); err != nil {
		t.Fatal(err)
	}
	if w.invalidations != invalidations+1 {
		t.Error("expected timer repaint request to invalidate")
	}
	if len(w.timers) != 2 {
		t.Errorf("expected the widget to re-arm, got %d timers", len(w.timers))
	}
	if !r.Host().Root().(*blinkerWidget).on {
		t.Error("expected timer to reach the widget")
	}
}

// scroller submits the wheel delta as its message and counts idles.
type scroller struct{}

type scrollerWidget struct{ core.WidgetBase }

func (scroller) Build(*core.BuildContext) core.Widget { return &scrollerWidget{} }

func (scroller) Update(*core.BuildContext, core.Widget) {}

func (w *scrollerWidget) Wheel(ctx *core.EventContext, e core.MouseEvent) {
	ctx.SubmitMessage(int(e.Delta.Y))
}

func (w *scrollerWidget) Idle(ctx *core.EventContext, _ core.IdleToken) {
	ctx.SubmitMessage(1000)
}

func (w *scrollerWidget) Layout(_ *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.Size{Width: 10, Height: 10})
}

func (w *scrollerWidget) Paint(*core.PaintContext) {}

type scrollApp struct{ total int }

func (a *scrollApp) Update(n int) { a.total += n }

func (a *scrollApp) View(s *arena.Scope) core.AnyView { return core.AnyIn(s, scroller{}) }

func TestHandler_WheelAndIdle(t *testing.T) {
	a := &scrollApp{}
	r := app.NewRunner(app.Erase[int](a), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	h := shell.NewHandler(r)

	if err := h.Wheel(core.MouseEvent{}); !errors.Is(err, shell.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
	if err := h.Idle(1); !errors.Is(err, shell.ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}

	h.Connect(&fakeWindow{})
	if err := h.Size(graphics.Size{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}
	for _, e := range []core.MouseEvent{
		{Pos: graphics.Point{X: 5, Y: 5}, Delta: graphics.Point{Y: 3}},
		{Pos: graphics.Point{X: 50, Y: 50}, Delta: graphics.Point{Y: 7}},
		{Pos: graphics.Point{X: 1, Y: 1}, Delta: graphics.Point{Y: -1}},
	} {
		if err := h.Wheel(e); err != nil {
			t.Fatal(err)
		}
	}
	if a.total != 2 {
		t.Errorf("expected only wheels over the widget to count, got total %d", a.total)
	}

	if err := h.Idle(1); err != nil {
		t.Fatal(err)
	}
	if a.total != 1002 {
		t.Errorf("expected idle to deliver its message, got total %d", a.total)
	}
}
