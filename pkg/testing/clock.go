package testing

import (
	"slices"
	"sync"
	"time"

	"github.com/go-drift/loom/pkg/core"
)

// FakeClock is a controllable clock that fires widget timers.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []scheduled
}

type scheduled struct {
	token core.TimerToken
	at    time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Schedule arms a timer that comes due after d.
func (c *FakeClock) Schedule(req core.TimerRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers = append(c.timers, scheduled{token: req.Token, at: c.now.Add(req.After)})
}

// Pending returns the number of armed timers.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d and returns the tokens of the timers
// that came due, earliest first.
func (c *FakeClock) Advance(d time.Duration) []core.TimerToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	slices.SortStableFunc(c.timers, func(a, b scheduled) int { return a.at.Compare(b.at) })
	var due []core.TimerToken
	n := 0
	for _, s := range c.timers {
		if s.at.After(c.now) {
			c.timers[n] = s
			n++
			continue
		}
		due = append(due, s.token)
	}
	c.timers = c.timers[:n]
	return due
}
