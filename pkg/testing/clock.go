// Package testing provides deterministic test support for animation timing.
// Import it aliased (conventionally ltesting) to avoid shadowing the
// standard testing package.
package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// InstallFakeClock installs a FakeClock as the animation time source and
// restores the previous clock when the test finishes.
func InstallFakeClock(tb testing.TB) *FakeClock {
	tb.Helper()
	c := NewFakeClock()
	prev := animation.SetClock(c)
	tb.Cleanup(func() { animation.SetClock(prev) })
	return c
}
