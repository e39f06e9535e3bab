package showcase

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
)

func TestCounter(t *testing.T) {
	c := &Counter{}
	tester := loomtest.NewAppTester[Increment](t, c)
	button := tester.Find(loomtest.ByType[*widgets.ButtonWidget]()).First().Widget()

	for range 3 {
		if err := tester.Tap(loomtest.ByText("+1")); err != nil {
			t.Fatal(err)
		}
	}
	if c.Count != 3 {
		t.Errorf("expected count 3, got %d", c.Count)
	}
	if !tester.Find(loomtest.ByText("Count: 3")).Exists() {
		t.Errorf("expected updated label, painted %v", tester.Recorder().Texts())
	}
	if tester.Find(loomtest.ByType[*widgets.ButtonWidget]()).First().Widget() != button {
		t.Error("expected the button widget to be kept across updates")
	}
}

func TestSwap(t *testing.T) {
	s := &Swap{}
	tester := loomtest.NewAppTester[Toggle](t, s)

	if _, ok := tester.Root().Widget().(*widgets.ButtonWidget); !ok {
		t.Fatalf("expected button root, got %T", tester.Root().Widget())
	}
	tester.Tap(loomtest.ByText("swap"))
	if _, ok := tester.Root().Widget().(*widgets.FlexWidget); !ok {
		t.Fatalf("expected column root, got %T", tester.Root().Widget())
	}
	if !tester.Find(loomtest.ByText("swapped 1 times")).Exists() {
		t.Error("expected swapped text")
	}
	tester.Tap(loomtest.ByText("back"))
	if _, ok := tester.Root().Widget().(*widgets.ButtonWidget); !ok {
		t.Fatalf("expected button root again, got %T", tester.Root().Widget())
	}
	if got := tester.Host().Stats().Reconcile.Rebuilds; got != 2 {
		t.Errorf("expected a rebuild per swap, got %d", got)
	}
}

func TestTodo(t *testing.T) {
	todo := &Todo{}
	tester := loomtest.NewAppTester[TodoMsg](t, todo)

	tester.Tap(loomtest.ByText("add"))
	tester.Tap(loomtest.ByText("add"))
	tester.Tap(loomtest.ByText("add"))
	tester.Tap(loomtest.ByText("remove"))

	if diff := cmp.Diff([]string{"item 1", "item 2"}, todo.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	want := []string{"add", "remove", "2 items", "item 1", "item 2"}
	if diff := cmp.Diff(want, tester.Recorder().Texts()); diff != "" {
		t.Errorf("painted texts mismatch (-want +got):\n%s", diff)
	}
	flex := tester.Root().Widget().(*widgets.FlexWidget)
	if len(flex.Children()) != 4 {
		t.Errorf("expected 4 rows, got %d", len(flex.Children()))
	}

	// Removing from an empty list is a no-op.
	tester.Tap(loomtest.ByText("remove"))
	tester.Tap(loomtest.ByText("remove"))
	tester.Tap(loomtest.ByText("remove"))
	if len(todo.Items) != 0 {
		t.Errorf("expected empty list, got %v", todo.Items)
	}
	if !tester.Find(loomtest.ByText("0 items")).Exists() {
		t.Error("expected empty count")
	}
}

func TestLookup(t *testing.T) {
	for _, d := range Demos() {
		got, err := Lookup(d.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", d.Name, err)
		}
		if got.New() == nil {
			t.Errorf("%s: expected an application", d.Name)
		}
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected unknown app error")
	}
}
