package core

import "time"

// StepClock governs how often the simulation advances. The rate is expressed
// in steps per second, adjustable in fractional increments and clamped to
// [0, max]; a rate of zero pauses the simulation.
type StepClock struct {
	rate float64
	max  float64
	last time.Time
}

// NewStepClock constructs a paused clock with the given rate ceiling.
func NewStepClock(max float64) *StepClock {
	if max <= 0 {
		max = 1
	}
	return &StepClock{max: max}
}

// Rate returns the current steps-per-second rate.
func (c *StepClock) Rate() float64 { return c.rate }

// AdjustRate shifts the rate by delta (typically a wheel tick), clamped to
// the [0, max] range.
func (c *StepClock) AdjustRate(delta float64) {
	c.rate += delta
	if c.rate < 0 {
		c.rate = 0
	}
	if c.rate > c.max {
		c.rate = c.max
	}
}

// ShouldStep reports whether one simulation step is due at the provided frame
// timestamp. At most one step fires per call; a late frame never triggers
// catch-up steps, the reference time simply resets to now.
func (c *StepClock) ShouldStep(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if c.rate <= 0 {
		return false
	}
	interval := time.Duration(float64(time.Second) / c.rate)
	if now.Sub(c.last) >= interval {
		c.last = now
		return true
	}
	return false
}
