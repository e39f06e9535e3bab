// Package widgets provides reference views and widgets: Text, Button, Flex
// (Row and Column) and SizedBox.
//
// # Construction
//
// Views are plain structs. The struct literal is the canonical form:
//
//	btn := widgets.Button{
//	    Label:   "+1",
//	    Message: Increment{},
//	}
//
// Layout helpers copy their children into the cycle's arena scope:
//
//	col := widgets.ColumnOf(scope,
//	    core.AnyIn(scope, widgets.TextOf("Count: 3")),
//	    core.AnyIn(scope, btn),
//	)
//
// Passing a nil scope copies the children to the heap instead, which is
// what tests usually want.
//
// # Reconciliation
//
// Every view here updates its widget in place when reconciled with a view of
// the same type. Flex reconciles its children by position; changing the
// number of children rebuilds all of them.
package widgets
