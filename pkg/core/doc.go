// Package core provides the view and widget interfaces and the reconciliation
// that keeps a persistent widget tree in step with a view tree rebuilt every
// update cycle.
//
// # Core Types
//
// View is an immutable description of one widget's desired configuration.
// Views are produced fresh every cycle, usually inside an arena scope, and
// are consumed by Build or Update.
//
// Widget is the persistent, stateful object built from a view. It survives
// across cycles for as long as the view type at its tree position stays the
// same, and is mutated in place by Update.
//
// AnyView erases the concrete view type so heterogeneous trees can be passed
// through one interface. Pod holds one tree position: the widget, the view
// type that built it, and the framework-side substate (hover, focus, origin,
// size) no view carries.
//
// # Reconciliation
//
// Pod.Reconcile compares the type of the incoming view with the type that
// built the current widget. When they match, the view updates the widget in
// place and the Pod keeps its substate. When they differ, the widget is
// discarded and a fresh one is built; the Pod's substate is reset.
//
//	type Label struct{ Text string }
//
//	func (l Label) Build(ctx *core.BuildContext) core.Widget {
//	    return &labelWidget{text: l.Text}
//	}
//
//	func (l Label) Update(ctx *core.BuildContext, w core.Widget) {
//	    w.(*labelWidget).text = l.Text
//	}
//
// Children of container views are reconciled by position with
// ReconcileChildren.
//
// # Dispatch
//
// Pods route layout, paint and input calls to their widgets, translating
// pointer positions into local coordinates and tracking hover. Widgets
// influence application state only through EventContext.SubmitMessage.
package core
