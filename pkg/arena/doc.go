// Package arena provides the frame-scoped allocator that backs the view tree
// built during one update cycle.
//
// A cycle opens a Scope, allocates view nodes from it while the application
// produces its view, reconciles, and closes the Scope. Closing zeroes every
// slot served during the scope and hands the chunks to the next scope, so
// steady-state cycles allocate nothing from the Go heap.
//
//	scope, err := a.Open()
//	if err != nil {
//	    return err
//	}
//	defer scope.Close()
//	btn := arena.Make(scope, widgets.Button{Label: "+1"})
//
// Raw pointers returned by Make and MakeSlice must not outlive the scope.
// Values that do travel further, such as core.AnyView, carry a Lease and
// check it before every use: a lease taken in a closed scope fails with
// ErrLeaseExpired instead of exposing reused memory.
//
// Only one scope may be open at a time. Opening a second scope returns
// ErrScopeActive; closing a scope twice returns ErrScopeClosed.
package arena
