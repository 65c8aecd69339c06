package animation

import (
	"math"
	"testing"
)

func TestLinearCurve(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := LinearCurve(v); got != v {
			t.Errorf("LinearCurve(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestCubicBezier_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"ease":      Ease,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			if got := curve(0); got != 0 {
				t.Errorf("curve(0) = %v, want 0", got)
			}
			if got := curve(1); got != 1 {
				t.Errorf("curve(1) = %v, want 1", got)
			}
			if got := curve(-0.5); got != 0 {
				t.Errorf("curve(-0.5) = %v, want clamped 0", got)
			}
			if got := curve(1.5); got != 1 {
				t.Errorf("curve(1.5) = %v, want clamped 1", got)
			}
		})
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v < prev-1e-6 {
			t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestCubicBezier_Midpoint(t *testing.T) {
	// A symmetric curve must pass through (0.5, 0.5).
	curve := CubicBezier(0.4, 0.0, 0.6, 1.0)
	if got := curve(0.5); math.Abs(got-0.5) > 1e-4 {
		t.Errorf("symmetric curve(0.5) = %v, want 0.5", got)
	}
}
