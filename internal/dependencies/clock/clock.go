package clock

import "time"

// Clock is the time source for stored timestamps
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NowMillis returns the clock's current time as Unix milliseconds
func NowMillis(c Clock) int64 {
	return c.Now().UnixMilli()
}
