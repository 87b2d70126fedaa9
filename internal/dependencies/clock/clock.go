package clock

import "time"

// Clock abstracts the wall clock so services can be tested with fixed times
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock via time.Now
type SystemClock struct{}

// New creates a SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current system time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
