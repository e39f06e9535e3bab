package showcase

import (
	"fmt"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/widgets"
)

// TodoMsg is a message understood by Todo.
type TodoMsg interface{ isTodoMsg() }

// AddItem appends an item.
type AddItem struct{}

// RemoveItem drops the last item, if any.
type RemoveItem struct{}

func (AddItem) isTodoMsg()    {}
func (RemoveItem) isTodoMsg() {}

// Todo is a list of numbered items with add and remove buttons.
type Todo struct {
	Items []string
	next  int
}

func (t *Todo) Update(msg TodoMsg) {
	switch msg.(type) {
	case AddItem:
		t.next++
		t.Items = append(t.Items, fmt.Sprintf("item %d", t.next))
	case RemoveItem:
		if len(t.Items) > 0 {
			t.Items = t.Items[:len(t.Items)-1]
		}
	}
}

func (t *Todo) View(s *arena.Scope) core.AnyView {
	rows := arena.MakeSlice[core.AnyView](s, len(t.Items)+2)
	rows[0] = core.AnyIn(s, widgets.RowOf(s,
		core.AnyIn(s, widgets.ButtonOf("add", AddItem{})),
		core.AnyIn(s, widgets.ButtonOf("remove", RemoveItem{})),
	).WithSpacing(1))
	rows[1] = core.AnyIn(s, widgets.TextOf(fmt.Sprintf("%d items", len(t.Items))))
	for i, item := range t.Items {
		rows[i+2] = core.AnyIn(s, widgets.TextOf(item))
	}
	return core.AnyIn(s, widgets.ColumnOf(s, rows...))
}
