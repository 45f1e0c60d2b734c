package core

import "time"

// Clock supplies monotonic elapsed time in milliseconds.
// Platforms sample it once per tick and pass the value in TickContext.
type Clock interface {
	NowMillis() int64
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
// time.Since uses the monotonic reading, so wall clock jumps are ignored.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used for replays and tests.
type ManualClock struct {
	now int64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds and returns the new time.
func (c *ManualClock) Advance(ms int64) int64 {
	c.now += ms
	return c.now
}
