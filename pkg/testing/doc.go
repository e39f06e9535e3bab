// Package testing drives a widget tree without a platform window.
//
// # Quick Start
//
// Create a tester, pump a view, and make assertions:
//
//	func TestMyView(t *testing.T) {
//	    tester := loomtest.NewWidgetTester(t)
//	    tester.PumpView(core.Any(MyView{}))
//
//	    // Find pods
//	    button := tester.Find(loomtest.ByText("Submit")).First()
//
//	    // Simulate input
//	    tester.Tap(loomtest.ByText("Submit"))
//
//	    // Inspect what the widgets submitted
//	    if len(tester.Messages()) != 1 {
//	        t.Error("expected one message")
//	    }
//	}
//
// # Applications
//
// NewAppTester runs a full application: messages submitted by widgets are
// delivered to the application and the view is recomputed, exactly as a
// platform handler would do after each event.
//
//	tester := loomtest.NewAppTester(t, &Counter{})
//	tester.Tap(loomtest.ByText("+1"))
//	// tester.Find(loomtest.ByText("1")).Exists() == true
//
// # Paint Output
//
// Every pump that needs a repaint paints into a Recorder, whose DisplayOps
// can be compared with go-cmp.
//
// # Timers
//
// Timers requested by widgets are scheduled on a FakeClock. Advance moves
// the clock and delivers every timer that came due.
package testing
