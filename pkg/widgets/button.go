package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// DefaultButtonPadding is the space between a button's border and its label.
var DefaultButtonPadding = graphics.SymmetricInsets(4, 2)

// Button is a clickable text button.
//
// A click is a left press followed by a left release while the pointer is
// still over the button. A press also gives the button keyboard focus,
// after which enter and space click it. A click submits OnClick() if set,
// otherwise Message if non-nil.
//
//	Button{Label: "+1", Message: Increment{}}
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnClick produces the message to submit on click.
	OnClick func() any
	// Message is submitted on click when OnClick is nil.
	Message any
	// Padding defaults to DefaultButtonPadding if zero.
	Padding graphics.Insets
	// TextColor is the label color. Defaults to black if zero.
	TextColor graphics.Color
}

// ButtonOf creates a button that submits msg when clicked.
func ButtonOf(label string, msg any) Button {
	return Button{Label: label, Message: msg}
}

// WithPadding returns a copy of the button with the given padding.
func (b Button) WithPadding(p graphics.Insets) Button {
	b.Padding = p
	return b
}

// ButtonWidget is the widget built from a Button.
type ButtonWidget struct {
	core.WidgetBase
	label   *core.Pod
	onClick func() any
	message any
	padding graphics.Insets
	// hovered is the hover state seen at the last mouse move; a change
	// triggers a repaint.
	hovered bool
}

func (b Button) text() Text {
	return Text{Content: b.Label, Color: b.TextColor}
}

func (b Button) padding() graphics.Insets {
	if b.Padding.IsZero() {
		return DefaultButtonPadding
	}
	return b.Padding
}

// Build implements core.View.
func (b Button) Build(ctx *core.BuildContext) core.Widget {
	return &ButtonWidget{
		label:   core.NewPod(ctx, core.Any(b.text())),
		onClick: b.OnClick,
		message: b.Message,
		padding: b.padding(),
	}
}

// Update implements core.View.
func (b Button) Update(ctx *core.BuildContext, w core.Widget) {
	bw := w.(*ButtonWidget)
	bw.label.Reconcile(ctx, core.Any(b.text()))
	bw.onClick = b.OnClick
	bw.message = b.Message
	bw.padding = b.padding()
}

// Label returns the label text.
func (b *ButtonWidget) Label() string {
	return b.label.Widget().(*TextWidget).Content()
}

// VisitChildren implements core.ChildVisitor.
func (b *ButtonWidget) VisitChildren(fn func(*core.Pod)) {
	fn(b.label)
}

// Hovered returns the hover state seen at the last mouse move.
func (b *ButtonWidget) Hovered() bool {
	return b.hovered
}

func (b *ButtonWidget) click(ctx *core.EventContext) {
	switch {
	case b.onClick != nil:
		ctx.SubmitMessage(b.onClick())
	case b.message != nil:
		ctx.SubmitMessage(b.message)
	}
}

func (b *ButtonWidget) MouseMove(ctx *core.EventContext, _ core.MouseEvent) {
	if ctx.Hovered() != b.hovered {
		ctx.RequestPaint()
		b.hovered = ctx.Hovered()
	}
}

func (b *ButtonWidget) MouseDown(ctx *core.EventContext, e core.MouseEvent) {
	if e.Button.IsLeft() {
		ctx.SetMouseFocus(true)
		ctx.SetFocus(true)
		ctx.RequestPaint()
	}
}

func (b *ButtonWidget) MouseUp(ctx *core.EventContext, e core.MouseEvent) {
	if e.Button.IsLeft() && ctx.MouseFocused() {
		ctx.RequestPaint()
		ctx.SetMouseFocus(false)
		if ctx.Hovered() {
			b.click(ctx)
		}
	}
}

func (b *ButtonWidget) KeyDown(ctx *core.EventContext, e core.KeyEvent) bool {
	if !ctx.Focused() || (e.Key != "enter" && e.Key != "space") {
		return false
	}
	b.click(ctx)
	return true
}

func (b *ButtonWidget) Layout(ctx *core.LayoutContext, c graphics.Constraints) graphics.Size {
	text := b.label.Layout(ctx, c.Deflate(b.padding).Loosen())
	b.label.SetOrigin(graphics.Point{X: b.padding.Left, Y: b.padding.Top})
	inset := b.padding.Size()
	return c.Constrain(graphics.Size{Width: text.Width + inset.Width, Height: text.Height + inset.Height})
}

func (b *ButtonWidget) Paint(ctx *core.PaintContext) {
	rect := ctx.Bounds()
	if ctx.Hovered() || ctx.MouseFocused() {
		ctx.FillRect(rect, graphics.ColorGray)
	} else {
		ctx.FillRect(rect, graphics.ColorWhite)
	}
	if ctx.MouseFocused() {
		ctx.StrokeRect(rect, graphics.ColorBlack, 2)
	} else {
		ctx.StrokeRect(rect, graphics.ColorGray, 2)
	}
	b.label.Paint(ctx)
}
