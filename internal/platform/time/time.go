// Package time contains the clock seam used by expiring records and session timers
package time

import (
	"sync"
	"time"
)

// Clock returns the current instant
type Clock func() time.Time

// System is the wall clock in UTC
func System() time.Time { return time.Now().UTC() }

// OrSystem returns c, or System when c is nil
func OrSystem(c Clock) Clock {
	if c == nil {
		return System
	}
	return c
}

// Manual is a settable clock for tests
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual starts a manual clock at t
func NewManual(t time.Time) *Manual { return &Manual{now: t} }

// Now reports the current manual instant
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
