package testing

import (
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/animation"
)

func TestFakeClockAdvance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("advanced by %v, want 250ms", got)
	}

	exact := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(exact)
	if !c.Now().Equal(exact) {
		t.Errorf("Now() = %v, want %v", c.Now(), exact)
	}
}

func TestInstallFakeClock(t *testing.T) {
	c := InstallFakeClock(t)
	if !animation.Now().Equal(c.Now()) {
		t.Error("animation time source not driven by the fake clock")
	}
	c.Advance(time.Second)
	if !animation.Now().Equal(c.Now()) {
		t.Error("animation time source did not follow Advance")
	}
}
