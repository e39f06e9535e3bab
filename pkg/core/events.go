package core

import (
	"time"

	"github.com/go-drift/loom/pkg/graphics"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// IsLeft reports whether b is the primary button.
func (b MouseButton) IsLeft() bool {
	return b == ButtonLeft
}

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseEvent is a pointer event. Pos is in the coordinate space of the
// widget receiving it.
type MouseEvent struct {
	Pos    graphics.Point
	Button MouseButton
	Mods   Modifiers
	// Count is the click count for down events.
	Count int
	// Delta is the scroll amount for wheel events.
	Delta graphics.Point
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	// Key is the logical key name, e.g. "a", "enter", "space", "left".
	Key    string
	Mods   Modifiers
	Repeat bool
}

// TimerToken identifies a timer requested through EventContext.RequestTimer.
type TimerToken uint64

// IdleToken identifies an idle callback.
type IdleToken uint64

// TimerRequest is a pending timer for the platform to schedule.
type TimerRequest struct {
	Token TimerToken
	After time.Duration
}
