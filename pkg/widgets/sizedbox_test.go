package widgets_test

import (
	"fmt"
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
	"github.com/google/go-cmp/cmp"
)

func TestSizedBox_Sizes(t *testing.T) {
	tests := []struct {
		name string
		box  widgets.SizedBox
		want graphics.Size
	}{
		{"empty", widgets.SizedBox{}, graphics.Size{}},
		{"fixed without child", widgets.SizedBox{Width: 50, Height: 20}, graphics.Size{Width: 50, Height: 20}},
		{"fixed with child", widgets.SizedBox{Width: 50, Height: 20, Child: core.Any(widgets.TextOf("hi"))}, graphics.Size{Width: 50, Height: 20}},
		{"follows child", widgets.SizedBox{Child: core.Any(widgets.TextOf("hi"))}, graphics.Size{Width: 14, Height: 13}},
		{"width only", widgets.SizedBox{Width: 40, Child: core.Any(widgets.TextOf("hi"))}, graphics.Size{Width: 40, Height: 13}},
		{"clamped to surface", widgets.SizedBox{Width: 5000, Height: 10}, graphics.Size{Width: loomtest.DefaultTestWidth, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := loomtest.NewWidgetTester(t)
			tester.PumpView(core.Any(tt.box))
			if got := tester.Root().Size(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSizedBox_ChildAddedAndRemoved(t *testing.T) {
	tester := loomtest.NewWidgetTester(t)
	tester.PumpView(core.Any(widgets.SizedBox{Width: 10, Height: 10}))
	box := tester.Root().Widget().(*widgets.SizedBoxWidget)
	if box.Child() != nil {
		t.Fatal("expected no child")
	}

	tester.PumpView(core.Any(widgets.SizedBox{Width: 10, Height: 10, Child: core.Any(widgets.TextOf("x"))}))
	child := box.Child()
	if child == nil {
		t.Fatal("expected child to be built")
	}

	tester.PumpView(core.Any(widgets.SizedBox{Width: 10, Height: 10, Child: core.Any(widgets.TextOf("y"))}))
	if box.Child() != child {
		t.Error("expected child to be updated in place")
	}

	tester.PumpView(core.Any(widgets.SizedBox{Width: 10, Height: 10}))
	if box.Child() != nil {
		t.Error("expected child to be dropped")
	}
}

func TestSizedBox_ForwardsEvents(t *testing.T) {
	tester := loomtest.NewWidgetTester(t)
	tester.PumpView(core.Any(widgets.SizedBox{
		Width:  60,
		Height: 30,
		Child:  core.Any(widgets.ButtonOf("go", "went")),
	}))

	tester.TapAt(graphics.Point{X: 55, Y: 25})
	if len(tester.Messages()) != 1 {
		t.Errorf("expected tap inside the forced size to reach the button, got %v", tester.Messages())
	}
}

// wheelView records wheel deltas and idle tokens.
type wheelView struct{ log *[]string }

type wheelWidget struct {
	core.WidgetBase
	log *[]string
}

func (v wheelView) Build(*core.BuildContext) core.Widget { return &wheelWidget{log: v.log} }

func (v wheelView) Update(_ *core.BuildContext, w core.Widget) { w.(*wheelWidget).log = v.log }

func (w *wheelWidget) Layout(_ *core.LayoutContext, c graphics.Constraints) graphics.Size {
	return c.Constrain(graphics.Size{Width: 10, Height: 10})
}

func (w *wheelWidget) Paint(*core.PaintContext) {}

func (w *wheelWidget) Wheel(_ *core.EventContext, e core.MouseEvent) {
	*w.log = append(*w.log, fmt.Sprintf("wheel %v,%v", e.Delta.Y, e.Pos.Y))
}

func (w *wheelWidget) Idle(_ *core.EventContext, t core.IdleToken) {
	*w.log = append(*w.log, fmt.Sprintf("idle %d", t))
}

func TestSizedBox_ForwardsWheelAndIdle(t *testing.T) {
	var log []string
	tester := loomtest.NewWidgetTester(t)
	tester.PumpView(core.Any(widgets.ColumnOf(nil,
		core.Any(widgets.SizedBox{Height: 20}),
		core.Any(widgets.SizedBox{Width: 40, Height: 40, Child: core.Any(wheelView{log: &log})}),
	)))

	tester.ScrollAt(graphics.Point{X: 5, Y: 5}, graphics.Point{Y: 2})
	tester.ScrollAt(graphics.Point{X: 5, Y: 25}, graphics.Point{Y: -1})
	tester.Host().Idle(9)

	want := []string{"wheel -1,5", "idle 9"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("child events mismatch (-want +got):\n%s", diff)
	}
}
