package core

import "time"

// DeltaClock measures the wall-clock time elapsed between frames so that
// time-dependent model state (the clutch dwell timer) stays correct under
// variable frame rates.
type DeltaClock struct {
	last time.Time
	max  time.Duration
}

// NewDeltaClock constructs a DeltaClock. Deltas are clamped to maxStep so a
// stalled frame cannot fast-forward the simulation; maxStep <= 0 selects a
// 250ms cap.
func NewDeltaClock(maxStep time.Duration) *DeltaClock {
	if maxStep <= 0 {
		maxStep = 250 * time.Millisecond
	}
	return &DeltaClock{max: maxStep}
}

// Delta returns the time elapsed since the previous call. The first call
// returns zero.
func (c *DeltaClock) Delta() time.Duration {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if d > c.max {
		return c.max
	}
	return d
}
