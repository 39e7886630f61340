package core

import "time"

type Clock struct {
	startTime time.Time
	lastTime  time.Time
	elapsed   time.Duration
}

func NewClock() *Clock {
	return &Clock{}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = time.Now()
	c.lastTime = time.Time{}
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
	c.lastTime = time.Time{}
}

// Tick returns the wall-clock time since the previous Tick call.
// The first call after Start returns zero, so a loop never sees a
// spurious catch-up burst on its first iteration.
// Has no effect on non-started clocks.
func (c *Clock) Tick() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}

	now := time.Now()
	c.elapsed = now.Sub(c.startTime)

	if c.lastTime.IsZero() {
		c.lastTime = now
		return 0
	}

	delta := now.Sub(c.lastTime)
	c.lastTime = now
	return delta
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
