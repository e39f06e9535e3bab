package showcase

import (
	"fmt"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/widgets"
)

// Increment bumps a Counter.
type Increment struct{}

// Counter shows a count and a button that increments it.
type Counter struct {
	Count int
}

func (c *Counter) Update(Increment) {
	c.Count++
}

func (c *Counter) View(s *arena.Scope) core.AnyView {
	return core.AnyIn(s, widgets.ColumnOf(s,
		core.AnyIn(s, widgets.TextOf(fmt.Sprintf("Count: %d", c.Count))),
		core.AnyIn(s, widgets.ButtonOf("+1", Increment{})),
	).WithSpacing(1))
}
