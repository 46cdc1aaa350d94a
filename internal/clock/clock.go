// Package clock supplies the current time to code that must be testable
// against a fixed "now".
package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Manual is a Clock that only moves when told to. When step is non-zero,
// every call to Now advances it by step after reading, so consecutive reads
// are strictly increasing.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManual returns a Manual clock stopped at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// NewTicking returns a Manual clock that advances by step on every read.
func NewTicking(now time.Time, step time.Duration) *Manual {
	return &Manual{now: now, step: step}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now
	m.now = m.now.Add(m.step)
	return now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
