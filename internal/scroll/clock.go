package scroll

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing millisecond ticks. Feed ids and
// post keys both come from here, so two registrations (or two posts)
// landing on the same wall-clock millisecond still get distinct keys.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt uses the given time source. Tests pass a fixed or stepped
// source to get deterministic ticks.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick returns the current millisecond timestamp, bumped past the
// previously issued tick if the wall clock has not advanced.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UnixMilli()
	if t <= c.last {
		t = c.last + 1
	}
	c.last = t
	return t
}

// AdvanceTo makes sure future ticks are strictly greater than t. Called
// after a thaw so restored keys are never reissued.
func (c *Clock) AdvanceTo(t int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t > c.last {
		c.last = t
	}
}
