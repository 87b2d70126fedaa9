package mocks

import (
	"time"

	"github.com/mcoot/puzzlesuite-go/internal/dependencies/clock"
)

// MockClock is a Clock frozen at CurrentTime until advanced explicitly
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the frozen time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set moves the clock to t
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
