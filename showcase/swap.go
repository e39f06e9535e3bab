package showcase

import (
	"fmt"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/widgets"
)

// Toggle flips a Swap.
type Toggle struct{}

// Swap alternates its root between a lone button and a column holding a
// text and a button, so every toggle replaces the root widget.
type Swap struct {
	Swapped bool
	Swaps   int
}

func (s *Swap) Update(Toggle) {
	s.Swapped = !s.Swapped
	s.Swaps++
}

func (s *Swap) View(sc *arena.Scope) core.AnyView {
	if !s.Swapped {
		return core.AnyIn(sc, widgets.ButtonOf("swap", Toggle{}))
	}
	return core.AnyIn(sc, widgets.ColumnOf(sc,
		core.AnyIn(sc, widgets.ButtonOf("back", Toggle{})),
		core.AnyIn(sc, widgets.TextOf(fmt.Sprintf("swapped %d times", s.Swaps))),
	).WithSpacing(1))
}
