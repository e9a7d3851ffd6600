package powerpong

import "time"

// FrameClock samples wall time once per frame.
//
// The simulation moves a fixed step per frame whatever the elapsed time;
// the clock only feeds the HUD's frame rate readout.
type FrameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	dt    time.Duration
}

// NewFrameClock creates a clock. A nil now uses time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &FrameClock{now: now, start: t, last: t}
}

// Tick samples the time and returns the duration since the previous tick.
func (c *FrameClock) Tick() time.Duration {
	t := c.now()
	c.dt = t.Sub(c.last)
	c.last = t
	return c.dt
}

// Delta returns the duration measured by the last Tick.
func (c *FrameClock) Delta() time.Duration {
	return c.dt
}

// Elapsed returns the time since the clock was created.
func (c *FrameClock) Elapsed() time.Duration {
	return c.last.Sub(c.start)
}

// FPS returns the instantaneous frame rate, or 0 before the first interval.
func (c *FrameClock) FPS() float64 {
	if c.dt <= 0 {
		return 0
	}
	return float64(time.Second) / float64(c.dt)
}
