package animation

import (
	"testing"

	"github.com/go-drift/loading/pkg/graphics"
)

func TestTweenEvaluate(t *testing.T) {
	tw := TweenFloat64(10, 20)
	if got := tw.Evaluate(0); got != 10 {
		t.Errorf("Evaluate(0) = %v, want 10", got)
	}
	if got := tw.Evaluate(1); got != 20 {
		t.Errorf("Evaluate(1) = %v, want 20", got)
	}
	if got := tw.Evaluate(0.5); got != 15 {
		t.Errorf("Evaluate(0.5) = %v, want 15", got)
	}
}

func TestTweenColorEndpoints(t *testing.T) {
	a := graphics.RGB(0xFF, 0x00, 0x00)
	b := graphics.RGB(0x00, 0x00, 0xFF)
	tw := TweenColor(a, b)
	if got := tw.Evaluate(0); got != a {
		t.Errorf("Evaluate(0) = %v, want %v", got, a)
	}
	if got := tw.Evaluate(1); got != b {
		t.Errorf("Evaluate(1) = %v, want %v", got, b)
	}
}

func TestLerpStops(t *testing.T) {
	got := LerpStops([]float64{0, 0.4, 0.6, 1}, []float64{0.2, 0.6, 0.8, 1.2}, 0.5)
	want := []float64{0.1, 0.5, 0.7, 1.1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("stop %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLerpStopsLengthMismatch(t *testing.T) {
	got := LerpStops([]float64{0, 1}, []float64{1}, 0.5)
	if len(got) != 1 {
		t.Errorf("len = %d, want the shorter length", len(got))
	}
}
