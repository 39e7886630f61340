package core

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/cadence/engine/math"
)

// Timestep converts variable wall-clock frame deltas into a whole number of
// fixed-size simulation ticks plus an interpolation fraction for rendering.
// Based on https://gafferongames.com/post/fix_your_timestep.
type Timestep struct {
	step         time.Duration
	maxFrameTime time.Duration
	accumulator  time.Duration
	ticks        uint64
}

// NewTimestep creates a fixed-timestep accumulator targeting `tickRate`
// simulation ticks per second. A single frame never contributes more than
// `maxFrameTime` to the accumulator, which keeps the loop from spiralling
// after a stall such as a debugger pause or a window drag.
func NewTimestep(tickRate float64, maxFrameTime time.Duration) (*Timestep, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("tick rate %v: %w", tickRate, ErrInvalidTickRate)
	}
	if maxFrameTime <= 0 {
		return nil, fmt.Errorf("max frame time %v: %w", maxFrameTime, ErrInvalidMaxFrameTime)
	}
	return &Timestep{
		step:         time.Duration(float64(time.Second) / tickRate),
		maxFrameTime: maxFrameTime,
	}, nil
}

// Advance adds a frame delta to the accumulator, clamped to the max frame
// time, and returns the number of whole ticks the simulation should run.
// The leftover accumulator always ends up in [0, step).
func (t *Timestep) Advance(frameDelta time.Duration) int {
	frameDelta = math.Clamp(frameDelta, 0, t.maxFrameTime)
	t.accumulator += frameDelta

	n := int(t.accumulator / t.step)
	t.accumulator -= time.Duration(n) * t.step
	t.ticks += uint64(n)
	return n
}

// Alpha returns the fractional progress toward the next tick, in [0, 1).
// Renderers use it to blend between the last two simulated states.
func (t *Timestep) Alpha() float64 {
	return float64(t.accumulator) / float64(t.step)
}

// Delta returns the fixed tick duration.
func (t *Timestep) Delta() time.Duration {
	return t.step
}

// Ticks returns the total number of ticks produced so far.
func (t *Timestep) Ticks() uint64 {
	return t.ticks
}
