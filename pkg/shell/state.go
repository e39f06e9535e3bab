// Package shell adapts a platform window to an application runner. A
// Handler receives raw window events, forwards them to the runner's host,
// delivers the messages widgets submitted and asks the window to repaint.
package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by event methods before Connect or after
	// Destroy.
	ErrNotConnected = errors.New("shell: window not connected")
	// ErrAlreadyConnected is returned when connecting a connected handler.
	ErrAlreadyConnected = errors.New("shell: window already connected")
	// ErrClosed is returned when connecting a destroyed handler.
	ErrClosed = errors.New("shell: window has been closed")
)

// State is the connection state of a Handler.
type State int

const (
	// StateWaiting indicates the handler holds a runner but no window yet.
	StateWaiting State = iota

	// StateConnected indicates events are being delivered.
	StateConnected

	// StateClosed indicates the window was destroyed. It is final.
	StateClosed
)

// String returns a human-readable label for the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StateConnected:
		return "Connected"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Event is a window lifecycle event.
type Event int

const (
	// EventConnect is the platform handing over a window.
	EventConnect Event = iota
	// EventDestroy is the window going away.
	EventDestroy
)

func (e Event) String() string {
	switch e {
	case EventConnect:
		return "Connect"
	case EventDestroy:
		return "Destroy"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Transition returns the state that follows s on e. It is defined for every
// pair: a rejected event returns s unchanged with an error.
func Transition(s State, e Event) (State, error) {
	switch e {
	case EventConnect:
		switch s {
		case StateWaiting:
			return StateConnected, nil
		case StateConnected:
			return s, ErrAlreadyConnected
		case StateClosed:
			return s, ErrClosed
		}
	case EventDestroy:
		return StateClosed, nil
	}
	return s, fmt.Errorf("shell: no transition from %s on %s", s, e)
}
