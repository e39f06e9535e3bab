package testing

import (
	"fmt"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// Tap simulates a left click at the center of the first pod matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no pods: %s", finder.Description())
	}
	return t.TapAt(result.First().Bounds.Center())
}

// TapAt moves the pointer to pos, presses and releases the left button and
// pumps.
func (t *WidgetTester) TapAt(pos graphics.Point) error {
	e := core.MouseEvent{Pos: pos, Button: core.ButtonLeft, Count: 1}
	t.host.MouseMove(core.MouseEvent{Pos: pos})
	t.host.MouseDown(e)
	t.host.MouseUp(e)
	return t.Pump()
}

// Press moves the pointer to pos and presses the left button without
// releasing it.
func (t *WidgetTester) Press(pos graphics.Point) error {
	t.host.MouseMove(core.MouseEvent{Pos: pos})
	t.host.MouseDown(core.MouseEvent{Pos: pos, Button: core.ButtonLeft, Count: 1})
	return t.Pump()
}

// Release releases the left button at pos.
func (t *WidgetTester) Release(pos graphics.Point) error {
	t.host.MouseUp(core.MouseEvent{Pos: pos, Button: core.ButtonLeft})
	return t.Pump()
}

// HoverAt moves the pointer to pos and pumps.
func (t *WidgetTester) HoverAt(pos graphics.Point) error {
	t.host.MouseMove(core.MouseEvent{Pos: pos})
	return t.Pump()
}

// ScrollAt sends a wheel event at pos.
func (t *WidgetTester) ScrollAt(pos, delta graphics.Point) error {
	t.host.Wheel(core.MouseEvent{Pos: pos, Delta: delta})
	return t.Pump()
}

// PressKey sends a key down and up and reports whether the down was handled.
func (t *WidgetTester) PressKey(key string) (bool, error) {
	e := core.KeyEvent{Key: key}
	handled := t.host.KeyDown(e)
	t.host.KeyUp(e)
	return handled, t.Pump()
}
