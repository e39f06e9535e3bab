package shell

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    State
		event   Event
		want    State
		wantErr error
	}{
		{StateWaiting, EventConnect, StateConnected, nil},
		{StateConnected, EventConnect, StateConnected, ErrAlreadyConnected},
		{StateClosed, EventConnect, StateClosed, ErrClosed},
		{StateWaiting, EventDestroy, StateClosed, nil},
		{StateConnected, EventDestroy, StateClosed, nil},
		{StateClosed, EventDestroy, StateClosed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.event.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.event)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransition_UnknownEvent(t *testing.T) {
	got, err := Transition(StateWaiting, Event(99))
	if got != StateWaiting {
		t.Errorf("expected state to be kept, got %s", got)
	}
	if err == nil {
		t.Error("expected error for unknown event")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateWaiting:   "Waiting",
		StateConnected: "Connected",
		StateClosed:    "Closed",
		State(7):       "Unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
