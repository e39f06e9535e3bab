package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/loom/pkg/graphics"
)

// DisplayOp is one recorded canvas operation, in absolute coordinates.
type DisplayOp struct {
	Op    string
	Rect  graphics.Rect
	At    graphics.Point
	Color graphics.Color
	Width float64
	Text  string
}

func (op DisplayOp) String() string {
	switch op.Op {
	case "text":
		return fmt.Sprintf("text %q at (%g,%g) %s", op.Text, op.At.X, op.At.Y, op.Color.Hex())
	case "stroke":
		return fmt.Sprintf("stroke %s %s w=%g", rectString(op.Rect), op.Color.Hex(), op.Width)
	default:
		return fmt.Sprintf("%s %s %s", op.Op, rectString(op.Rect), op.Color.Hex())
	}
}

func rectString(r graphics.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left, r.Top, r.Width(), r.Height())
}

// Recorder is a graphics.Canvas that records every operation.
type Recorder struct {
	ops []DisplayOp
}

func (r *Recorder) FillRect(rect graphics.Rect, color graphics.Color) {
	r.ops = append(r.ops, DisplayOp{Op: "fill", Rect: rect, Color: color})
}

func (r *Recorder) StrokeRect(rect graphics.Rect, color graphics.Color, width float64) {
	r.ops = append(r.ops, DisplayOp{Op: "stroke", Rect: rect, Color: color, Width: width})
}

func (r *Recorder) DrawText(text string, at graphics.Point, color graphics.Color) {
	r.ops = append(r.ops, DisplayOp{Op: "text", At: at, Color: color, Text: text})
}

// Ops returns the operations recorded since the last Reset.
func (r *Recorder) Ops() []DisplayOp {
	return r.ops
}

// Texts returns the drawn strings in paint order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Op == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() {
	r.ops = nil
}

// String renders the operations one per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
