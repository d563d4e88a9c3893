// Package clock abstracts wall-clock reads so expiry checks, sweep timing,
// and outbox scheduling stay deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads time.Now.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock serves a fixed instant that tests move explicitly.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Set pins the clock to an absolute instant.
func (c *MockClock) Set(t time.Time) {
	c.current = t
}

// Add advances the clock by d.
func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
