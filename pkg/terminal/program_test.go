package terminal

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/host"
	"github.com/go-drift/loom/pkg/shell"
	"github.com/go-drift/loom/pkg/widgets"
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

func newProgram[M any](t *testing.T, a app.Application[M]) *Program {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := app.NewRunner(app.Erase(a),
		app.WithLogger(logger),
		app.WithHostOptions(host.WithMeasurer(Measurer{})),
	)
	p, err := NewProgram(shell.NewHandler(r, shell.WithLogger(logger)), logger)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func press(p *Program, x, y int) {
	p.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	p.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func TestProgram_RendersCounter(t *testing.T) {
	p := newProgram[Increment](t, &counter{})
	p.Update(tea.WindowSizeMsg{Width: 12, Height: 7})

	want := strings.Join([]string{
		"0",
		"┌────────┐",
		"│        │",
		"│   +1   │",
		"│        │",
		"└────────┘",
		"",
	}, "\n")
	if diff := cmp.Diff(want, p.Canvas().Plain()); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
	if p.View() == "" {
		t.Error("expected a rendered frame")
	}
}

func TestProgram_MouseClicks(t *testing.T) {
	c := &counter{}
	p := newProgram[Increment](t, c)
	p.Update(tea.WindowSizeMsg{Width: 12, Height: 7})

	press(p, 5, 3)
	press(p, 5, 3)
	if c.count != 2 {
		t.Errorf("expected count 2, got %d", c.count)
	}
	if got := strings.Split(p.Canvas().Plain(), "\n")[0]; got != "2" {
		t.Errorf("expected repainted count, got %q", got)
	}

	// Outside the button.
	press(p, 11, 6)
	if c.count != 2 {
		t.Errorf("expected click outside to be ignored, got %d", c.count)
	}
}

func TestProgram_Keys(t *testing.T) {
	c := &counter{}
	p := newProgram[Increment](t, c)
	p.Update(tea.WindowSizeMsg{Width: 12, Height: 7})

	// Enter clicks the button once a press has focused it.
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if c.count != 0 {
		t.Fatal("expected enter to be ignored before focus")
	}
	press(p, 5, 3)
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p.Update(tea.KeyMsg{Type: tea.KeySpace})
	if c.count != 3 {
		t.Errorf("expected count 3, got %d", c.count)
	}

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEvent{Key: "enter"}},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeyEvent{Key: "space"}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.KeyEvent{Key: "x"}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, core.KeyEvent{Key: "x", Mods: core.ModAlt}},
	}
	for _, tt := range tests {
		if got := keyEvent(tt.msg); got != tt.want {
			t.Errorf("keyEvent(%v) = %+v, want %+v", tt.msg, got, tt.want)
		}
	}
}

type blinker struct{}

type blinkerWidget struct {
	core.WidgetBase
	fired int
}

func (blinker) Build(*core.BuildContext) core.Widget { return &blinkerWidget{} }

func (blinker) Update(*core.BuildContext, core.Widget) {}

func (w *blinkerWidget) Init(ctx *core.EventContext) {
	ctx.RequestTimer(time.Second)
}

func (w *blinkerWidget) Timer(ctx *core.EventContext, _ core.TimerToken) {
	w.fired++
	ctx.RequestPaint()
}

func (w *blinkerWidget) Layout(_ *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.Size{Width: 1, Height: 1})
}

func (w *blinkerWidget) Paint(*core.PaintContext) {}

type blinkApp struct{}

func (blinkApp) Update(struct{}) {}

func (blinkApp) View(s *arena.Scope) core.AnyView { return core.AnyIn(s, blinker{}) }

func TestProgram_Timers(t *testing.T) {
	p := newProgram[struct{}](t, blinkApp{})

	// The first paint initializes the widget, which arms its timer.
	if cmd := p.Init(); cmd == nil {
		t.Fatal("expected a tick command for the armed timer")
	}
	p.Update(timerMsg{token: 1})
	w := p.handler.Runner().Host().Root().(*blinkerWidget)
	if w.fired != 1 {
		t.Errorf("expected timer delivery, got %d", w.fired)
	}
}

type bomb struct{}

type bombWidget struct{ core.WidgetBase }

func (bomb) Build(*core.BuildContext) core.Widget { return &bombWidget{} }

func (bomb) Update(*core.BuildContext, core.Widget) {}

func (*bombWidget) KeyDown(*core.EventContext, core.KeyEvent) bool { panic("boom") }

func (*bombWidget) Layout(_ *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.Size{})
}

func (*bombWidget) Paint(*core.PaintContext) {}

type bombApp struct{}

func (bombApp) Update(struct{}) {}

func (bombApp) View(s *arena.Scope) core.AnyView { return core.AnyIn(s, bomb{}) }

func TestProgram_PanicQuits(t *testing.T) {
	var panics int
	errors.SetHandler(&countingHandler{panics: &panics})
	t.Cleanup(func() { errors.SetHandler(nil) })

	p := newProgram[struct{}](t, bombApp{})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected panic to quit")
	}
	if p.Err() == nil {
		t.Error("expected program error")
	}
	if panics != 1 {
		t.Errorf("expected panic to be reported once, got %d", panics)
	}
}

type countingHandler struct {
	panics *int
}

func (h *countingHandler) HandleError(*errors.LoomError) {}

func (h *countingHandler) HandlePanic(*errors.PanicError) { *h.panics++ }
