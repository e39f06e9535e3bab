package widgets_test

import (
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
	"github.com/google/go-cmp/cmp"
)

func TestText_LayoutAndPaint(t *testing.T) {
	tester := loomtest.NewWidgetTester(t)
	tester.PumpView(core.Any(widgets.Text{Content: "hello", Color: graphics.ColorRed}))

	if got, want := tester.Root().Size(), (graphics.Size{Width: 35, Height: 13}); got != want {
		t.Errorf("expected size %v, got %v", want, got)
	}
	want := []loomtest.DisplayOp{{Op: "text", Text: "hello", Color: graphics.ColorRed}}
	if diff := cmp.Diff(want, tester.Recorder().Ops()); diff != "" {
		t.Errorf("display ops mismatch (-want +got):\n%s", diff)
	}
}

func TestText_UpdateInPlace(t *testing.T) {
	tester := loomtest.NewWidgetTester(t)
	tester.PumpView(core.Any(widgets.TextOf("first")))
	before := tester.Root().Widget()

	tester.PumpView(core.Any(widgets.TextOf("second")))
	if tester.Root().Widget() != before {
		t.Error("expected text widget to be updated in place")
	}
	if !tester.Find(loomtest.ByText("second")).Exists() {
		t.Error("expected updated content")
	}
	if got := tester.Recorder().Texts(); !cmp.Equal(got, []string{"second"}) {
		t.Errorf("expected repaint with new content, got %v", got)
	}
}
