package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/shell"
)

// Options configures Run.
type Options struct {
	// Mouse enables mouse reporting, including motion for hover.
	Mouse bool
	// AltScreen runs in the alternate screen buffer.
	AltScreen bool
	// Title sets the terminal window title when non-empty.
	Title string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Input and Output override the terminal, for piping and tests.
	Input  io.Reader
	Output io.Writer
}

type timerMsg struct {
	token core.TimerToken
}

// Program is a tea.Model that forwards terminal input to a shell.Handler and
// renders its paints. It is also the handler's shell.Window.
type Program struct {
	handler *shell.Handler
	canvas  *Canvas
	frame   string
	dirty   bool
	pending []tea.Cmd
	pressed core.MouseButton
	title   string
	logger  *slog.Logger
	err     error
}

// NewProgram connects h to a new program.
func NewProgram(h *shell.Handler, logger *slog.Logger) (*Program, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Program{handler: h, canvas: NewCanvas(0, 0), logger: logger}
	if err := h.Connect(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Invalidate implements shell.Window.
func (p *Program) Invalidate() {
	p.dirty = true
}

// RequestTimer implements shell.Window.
func (p *Program) RequestTimer(token core.TimerToken, d time.Duration) {
	p.pending = append(p.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{token: token}
	}))
}

// Err returns the error that stopped the program, if any.
func (p *Program) Err() error {
	return p.err
}

// Canvas returns the cell grid of the last paint.
func (p *Program) Canvas() *Canvas {
	return p.canvas
}

func (p *Program) Init() tea.Cmd {
	if p.title != "" {
		return tea.Batch(tea.SetWindowTitle(p.title), p.settle())
	}
	return p.settle()
}

func (p *Program) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer errors.RecoverWithCallback("terminal.Update", func(r any) {
		p.err = fmt.Errorf("terminal: panic during update: %v", r)
		model, cmd = p, tea.Quit
	})

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.canvas.Resize(msg.Width, msg.Height)
		p.check(p.handler.Size(graphics.Size{Width: float64(msg.Width), Height: float64(msg.Height)}))
		p.dirty = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		}
		e := keyEvent(msg)
		_, err := p.handler.KeyDown(e)
		p.check(err)
		// Terminals do not report releases.
		p.check(p.handler.KeyUp(e))
	case tea.MouseMsg:
		p.mouse(msg)
	case timerMsg:
		p.check(p.handler.Timer(msg.token))
	}
	return p, p.settle()
}

func (p *Program) View() string {
	return p.frame
}

// settle repaints if the handler asked for it and returns the timers
// requested since the last call.
func (p *Program) settle() tea.Cmd {
	if p.dirty {
		p.dirty = false
		p.canvas.Clear()
		p.check(p.handler.Paint(p.canvas))
		p.frame = p.canvas.Render()
	}
	cmds := p.pending
	p.pending = nil
	return tea.Batch(cmds...)
}

func (p *Program) check(err error) {
	if err != nil {
		p.logger.Warn("terminal event dropped", "err", err)
	}
}

func (p *Program) mouse(msg tea.MouseMsg) {
	e := core.MouseEvent{
		Pos:  graphics.Point{X: float64(msg.X), Y: float64(msg.Y)},
		Mods: modifiers(msg.Shift, msg.Ctrl, msg.Alt),
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		p.check(p.handler.MouseMove(e))
	case tea.MouseActionPress:
		if delta, ok := wheelDelta(msg.Button); ok {
			e.Delta = delta
			p.check(p.handler.Wheel(e))
			return
		}
		p.check(p.handler.MouseMove(e))
		e.Button = mouseButton(msg.Button)
		e.Count = 1
		p.pressed = e.Button
		p.check(p.handler.MouseDown(e))
	case tea.MouseActionRelease:
		// Releases often arrive without a button.
		e.Button = p.pressed
		p.pressed = core.ButtonNone
		p.check(p.handler.MouseUp(e))
	}
}

func mouseButton(b tea.MouseButton) core.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft
	case tea.MouseButtonRight:
		return core.ButtonRight
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	default:
		return core.ButtonNone
	}
}

func wheelDelta(b tea.MouseButton) (graphics.Point, bool) {
	switch b {
	case tea.MouseButtonWheelUp:
		return graphics.Point{Y: -1}, true
	case tea.MouseButtonWheelDown:
		return graphics.Point{Y: 1}, true
	case tea.MouseButtonWheelLeft:
		return graphics.Point{X: -1}, true
	case tea.MouseButtonWheelRight:
		return graphics.Point{X: 1}, true
	default:
		return graphics.Point{}, false
	}
}

func modifiers(shift, ctrl, alt bool) core.Modifiers {
	var m core.Modifiers
	if shift {
		m |= core.ModShift
	}
	if ctrl {
		m |= core.ModCtrl
	}
	if alt {
		m |= core.ModAlt
	}
	return m
}

func keyEvent(msg tea.KeyMsg) core.KeyEvent {
	e := core.KeyEvent{}
	switch msg.Type {
	case tea.KeySpace:
		e.Key = "space"
	case tea.KeyRunes:
		e.Key = string(msg.Runes)
	default:
		e.Key = msg.Type.String()
	}
	if msg.Alt {
		e.Mods |= core.ModAlt
	}
	return e
}

// Run connects h to the terminal and blocks until the user quits or ctx is
// done. The handler is destroyed on return.
func Run(ctx context.Context, h *shell.Handler, opts Options) error {
	p, err := NewProgram(h, opts.Logger)
	if err != nil {
		return err
	}
	defer h.Destroy()
	p.title = opts.Title

	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		teaOpts = append(teaOpts, tea.WithMouseAllMotion())
	}
	if opts.Input != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(opts.Output))
	}
	if _, err := tea.NewProgram(p, teaOpts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return p.err
}
