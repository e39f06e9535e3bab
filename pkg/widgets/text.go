package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// Text displays a single line of text.
type Text struct {
	// Content is the text to display.
	Content string
	// Color is the text color. Defaults to black if zero.
	Color graphics.Color
}

// TextOf creates a black Text.
func TextOf(content string) Text {
	return Text{Content: content}
}

// TextWidget is the widget built from a Text.
type TextWidget struct {
	core.WidgetBase
	content string
	color   graphics.Color
}

func (t Text) color() graphics.Color {
	if t.Color == 0 {
		return graphics.ColorBlack
	}
	return t.Color
}

// Build implements core.View.
func (t Text) Build(*core.BuildContext) core.Widget {
	return &TextWidget{content: t.Content, color: t.color()}
}

// Update implements core.View.
func (t Text) Update(_ *core.BuildContext, w core.Widget) {
	tw := w.(*TextWidget)
	tw.content = t.Content
	tw.color = t.color()
}

// Content returns the displayed text.
func (t *TextWidget) Content() string {
	return t.content
}

// Layout sizes the widget to its measured text.
func (t *TextWidget) Layout(ctx *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(ctx.Measure(t.content))
}

// Paint draws the text at the widget's origin.
func (t *TextWidget) Paint(ctx *core.PaintContext) {
	ctx.DrawText(t.content, graphics.Point{}, t.color)
}
