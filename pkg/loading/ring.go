package loading

import (
	"math"
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// ringIntrinsicSize is the fixed natural edge length of the ring indicator,
// independent of style.
const ringIntrinsicSize = 36.0

// maxRingGapRatio caps the unstroked fraction of the circle so a visible
// rotation cue always remains.
const maxRingGapRatio = 0.95

// RingStyle configures the rotating-arc indicator.
type RingStyle struct {
	// Color is the arc stroke color.
	Color graphics.Color `yaml:"color"`
	// LineWidth is the arc stroke thickness.
	LineWidth float64 `yaml:"lineWidth"`
	// GapRatio is the fraction of the circle left unstroked,
	// clamped to [0, 0.95].
	GapRatio float64 `yaml:"gapRatio"`
	// Duration is the time of one full rotation.
	Duration time.Duration `yaml:"duration"`
}

// DefaultRingStyle returns the default ring configuration: a 3pt blue arc
// with a quarter gap, rotating once per second.
func DefaultRingStyle() RingStyle {
	return RingStyle{
		Color:     graphics.RGB(0x00, 0x7A, 0xFF),
		LineWidth: 3,
		GapRatio:  0.25,
		Duration:  time.Second,
	}
}

// RingStrategy renders a partial circular arc inside a carrier layer that
// rotates continuously about its center at linear timing.
type RingStrategy struct {
	color     graphics.Color
	lineWidth float64
	gapRatio  float64
	duration  time.Duration

	built   bool
	carrier *layer.Layer
	arc     *layer.ShapeLayer
}

// NewRingStrategy creates an unbuilt ring strategy.
func NewRingStrategy() *RingStrategy {
	return &RingStrategy{
		carrier: layer.New(),
		arc:     layer.NewShape(),
	}
}

// HostLayer returns the rotation carrier animations attach to.
func (s *RingStrategy) HostLayer() *layer.Layer {
	return s.carrier
}

// Build inserts the carrier and arc layers exactly once.
func (s *RingStrategy) Build(into *layer.Layer) {
	if s.built {
		return
	}
	s.built = true
	s.carrier.AddChild(s.arc)
	into.AddChild(s.carrier)
}

// Layout recomputes the arc path: radius (min(w,h)−lineWidth)/2, start angle
// fixed at 12 o'clock, sweep 2π·(1−gapRatio).
func (s *RingStrategy) Layout(bounds graphics.Rect) {
	if !s.built {
		return
	}
	s.carrier.Frame = bounds
	s.arc.Frame = graphics.RectFromSize(bounds.Size())

	radius := (math.Min(bounds.Width(), bounds.Height()) - s.lineWidth) / 2
	if radius < 0 {
		radius = 0
	}
	center := graphics.Offset{X: bounds.Width() / 2, Y: bounds.Height() / 2}
	s.arc.Path = graphics.Arc(center, radius, -math.Pi/2, s.Sweep())
	s.arc.FillColor = graphics.ColorTransparent
	s.arc.StrokeColor = s.color
	s.arc.LineWidth = s.lineWidth
}

// Sweep returns the stroked arc angle in radians after gap clamping.
func (s *RingStrategy) Sweep() float64 {
	gap := clamp(s.gapRatio, 0, maxRingGapRatio)
	return 2 * math.Pi * (1 - gap)
}

// AnimationDescription returns the indefinite linear rotation 0→2π.
func (s *RingStrategy) AnimationDescription() animation.Description {
	return animation.Description{
		Duration: s.duration,
		Repeats:  true,
		Curve:    animation.LinearCurve,
		Children: []animation.PropertyAnimation{
			animation.FloatAnimation{Property: animation.PropertyRotation, From: 0, To: 2 * math.Pi},
		},
	}
}

// ApplyStyle mirrors every style field into the strategy.
func (s *RingStrategy) ApplyStyle(style RingStyle) {
	s.color = style.Color
	s.lineWidth = style.LineWidth
	s.gapRatio = style.GapRatio
	s.duration = style.Duration
}

// RingMode binds [RingStrategy] to [RingStyle].
type RingMode struct{}

// NewStrategy returns a fresh ring strategy.
func (RingMode) NewStrategy() Strategy[RingStyle] { return NewRingStrategy() }

// DefaultStyle returns the default ring style.
func (RingMode) DefaultStyle() RingStyle { return DefaultRingStyle() }

// IntrinsicSize returns a fixed square, independent of style.
func (RingMode) IntrinsicSize(RingStyle) graphics.Size {
	return graphics.Size{Width: ringIntrinsicSize, Height: ringIntrinsicSize}
}
