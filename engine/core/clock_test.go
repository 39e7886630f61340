package core

import (
	"testing"
	"time"
)

func TestClockFirstTickIsZero(t *testing.T) {
	c := NewClock()
	c.Start()

	if delta := c.Tick(); delta != 0 {
		t.Errorf("first Tick = %v, want 0", delta)
	}
}

func TestClockTickMeasuresDelta(t *testing.T) {
	c := NewClock()
	c.Start()
	c.Tick()

	time.Sleep(5 * time.Millisecond)

	delta := c.Tick()
	if delta < time.Millisecond {
		t.Errorf("Tick = %v, want at least 1ms after sleeping", delta)
	}
	if c.Elapsed() < delta {
		t.Errorf("Elapsed %v smaller than last delta %v", c.Elapsed(), delta)
	}
}

func TestClockIgnoresTickBeforeStart(t *testing.T) {
	c := NewClock()

	if delta := c.Tick(); delta != 0 {
		t.Errorf("Tick on non-started clock = %v, want 0", delta)
	}

	c.Start()
	c.Tick()
	c.Stop()

	if delta := c.Tick(); delta != 0 {
		t.Errorf("Tick on stopped clock = %v, want 0", delta)
	}
}
