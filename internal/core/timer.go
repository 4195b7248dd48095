package core

import "time"

// DeltaClock measures wall-clock time between ticks so per-second rates can
// be integrated independently of the frame rate.
type DeltaClock struct {
	last time.Time
}

// Tick returns the seconds elapsed since the previous call. The first call
// returns zero.
func (c *DeltaClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last).Seconds()
	c.last = now
	return delta
}
