package utils

import "time"

// MonotonicClock reports time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
