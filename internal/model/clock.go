package model

import (
	"sync"
	"time"
)

// Clock tracks one side's remaining time. It only counts down while
// running; MakeMove brackets each side's turns with Start and Stop.
type Clock struct {
	mu          sync.Mutex
	remaining   time.Duration
	lastStarted time.Time
	running     bool
}

func NewClock(initial time.Duration) *Clock {
	return &Clock{remaining: initial}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		c.lastStarted = time.Now()
		c.running = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.remaining -= time.Since(c.lastStarted)
		c.running = false
	}
}

func (c *Clock) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return c.remaining - time.Since(c.lastStarted)
	}
	return c.remaining
}
