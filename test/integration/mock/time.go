package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests. Until a time is set it follows the
// real clock; after Set it keeps ticking from the given instant.
type Clock struct {
	mu     sync.Mutex
	base   time.Time
	setAt  time.Time
	frozen bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Set pins the clock to the given instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = t
	c.setAt = time.Now()
	c.frozen = true
}

// Reset returns the clock to real time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = false
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.frozen {
		return time.Now()
	}
	return c.base.Add(time.Since(c.setAt))
}
