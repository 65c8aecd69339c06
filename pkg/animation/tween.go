package animation

import "github.com/go-drift/loading/pkg/graphics"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 progress of a [Description] to any value range or type;
// the property animations ([FloatAnimation], [ColorAnimation],
// [StopsAnimation]) evaluate through the helper constructors ([TweenFloat64],
// [TweenColor], [TweenStops]). Create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates between two colors in HCL space.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return a.BlendHCL(b, t)
}

// LerpStops interpolates two gradient stop-position slices element-wise.
// The result has the length of the shorter slice.
func LerpStops(a, b []float64, t float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenStops creates a tween for gradient stop positions.
func TweenStops(begin, end []float64) *Tween[[]float64] {
	return &Tween[[]float64]{Begin: begin, End: end, Lerp: LerpStops}
}
