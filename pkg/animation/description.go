// Package animation provides the timing and interpolation primitives used by
// the loading-indicator layer tree.
//
// The central type is [Description]: a declarative, immutable value describing
// how a set of layer properties change over one animation cycle. A description
// is produced once, attached to a layer under a named key, and sampled by the
// renderer; nothing in this package runs timers or owns per-frame state.
package animation

import (
	"math"
	"time"

	"github.com/go-drift/loading/pkg/graphics"
)

// Property names a layer property targeted by a [PropertyAnimation].
type Property string

const (
	// PropertyOpacity animates the layer's opacity (0-1).
	PropertyOpacity Property = "opacity"
	// PropertyScale animates a uniform scale about the layer's center.
	PropertyScale Property = "transform.scale"
	// PropertyRotation animates rotation (radians) about the layer's center.
	PropertyRotation Property = "transform.rotation"
	// PropertyPositionY animates a vertical offset from the layer's laid-out position.
	PropertyPositionY Property = "position.y"
	// PropertyFillColor animates a shape layer's fill color.
	PropertyFillColor Property = "fillColor"
	// PropertyGradientStops animates a gradient layer's stop positions.
	PropertyGradientStops Property = "gradient.stops"
)

// PropertyAnimation is one animated property within a [Description].
// Implementations form a closed set: [FloatAnimation], [ColorAnimation],
// and [StopsAnimation].
type PropertyAnimation interface {
	// Target returns the property this animation drives.
	Target() Property

	sealedPropertyAnimation()
}

// FloatAnimation interpolates a scalar property between From and To.
type FloatAnimation struct {
	Property Property
	From     float64
	To       float64
}

// Target returns the animated property.
func (a FloatAnimation) Target() Property { return a.Property }

// ValueAt returns the interpolated value at progress t.
func (a FloatAnimation) ValueAt(t float64) float64 {
	return TweenFloat64(a.From, a.To).Evaluate(t)
}

func (FloatAnimation) sealedPropertyAnimation() {}

// ColorAnimation cross-fades a color property between From and To.
type ColorAnimation struct {
	Property Property
	From     graphics.Color
	To       graphics.Color
}

// Target returns the animated property.
func (a ColorAnimation) Target() Property { return a.Property }

// ValueAt returns the blended color at progress t.
func (a ColorAnimation) ValueAt(t float64) graphics.Color {
	return TweenColor(a.From, a.To).Evaluate(t)
}

func (ColorAnimation) sealedPropertyAnimation() {}

// StopsAnimation interpolates gradient stop positions between From and To.
// Positions outside [0, 1] are legal; the renderer clamps the gradient axis.
type StopsAnimation struct {
	Property Property
	From     []float64
	To       []float64
}

// Target returns the animated property.
func (a StopsAnimation) Target() Property { return a.Property }

// ValueAt returns the interpolated stop positions at progress t.
func (a StopsAnimation) ValueAt(t float64) []float64 {
	return TweenStops(a.From, a.To).Evaluate(t)
}

func (StopsAnimation) sealedPropertyAnimation() {}

// Description declaratively describes an animation attached to a layer.
//
// A description never mutates: the same value can be attached, detached, and
// sampled any number of times. Sampling maps elapsed wall-clock time to a
// progress value t in [0, 1] (see [Description.Progress]) which each child
// property animation interpolates independently.
type Description struct {
	// Duration is the length of one cycle. Non-positive durations degrade
	// to a completed animation (progress 1).
	Duration time.Duration

	// Repeats loops the animation indefinitely.
	Repeats bool

	// AutoReverse plays each cycle forward then backward, so one full
	// period spans 2·Duration.
	AutoReverse bool

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	// Children are the property animations that run as a group.
	Children []PropertyAnimation
}

// Progress maps elapsed time since attachment to eased progress in [0, 1],
// honoring Repeats and AutoReverse. Negative elapsed time (an animation that
// has not started yet, e.g. a delayed replicator instance) reports 0.
func (d Description) Progress(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return d.eased(0)
	}
	if d.Duration <= 0 {
		return d.eased(1)
	}

	cycles := float64(elapsed) / float64(d.Duration)
	var t float64
	switch {
	case d.AutoReverse:
		phase := math.Mod(cycles, 2)
		if !d.Repeats && cycles >= 2 {
			phase = 0
		}
		if phase > 1 {
			t = 2 - phase
		} else {
			t = phase
		}
	case d.Repeats:
		t = math.Mod(cycles, 1)
	default:
		t = math.Min(cycles, 1)
	}
	return d.eased(t)
}

func (d Description) eased(t float64) float64 {
	if d.Curve != nil {
		return d.Curve(t)
	}
	return t
}
