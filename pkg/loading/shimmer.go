package loading

import (
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// Shimmer band width bounds, as fractions of the element width.
const (
	minShimmerWidthRatio = 0.05
	maxShimmerWidthRatio = 0.9
)

// ShimmerStyle configures the shimmer (skeleton) indicator.
type ShimmerStyle struct {
	// BaseColor is the resting placeholder color.
	BaseColor graphics.Color `yaml:"baseColor"`
	// HighlightColor is the color of the moving band.
	HighlightColor graphics.Color `yaml:"highlightColor"`
	// WidthRatio is the band width as a fraction of the element width,
	// clamped to [0.05, 0.9].
	WidthRatio float64 `yaml:"widthRatio"`
	// CornerRadius rounds the placeholder's corners.
	CornerRadius float64 `yaml:"cornerRadius"`
	// Duration is the time of one full left-to-right sweep.
	Duration time.Duration `yaml:"duration"`
}

// DefaultShimmerStyle returns the default shimmer configuration: a light
// gray pill with a brighter band sweeping every 1.2s.
func DefaultShimmerStyle() ShimmerStyle {
	return ShimmerStyle{
		BaseColor:      graphics.RGB(0xE4, 0xE6, 0xEB),
		HighlightColor: graphics.RGB(0xF5, 0xF6, 0xF8),
		WidthRatio:     0.3,
		CornerRadius:   8,
		Duration:       1200 * time.Millisecond,
	}
}

// ShimmerStrategy renders a rounded base-colored rectangle overlaid by a
// moving highlight band: a masked linear gradient whose four stop positions
// (base, highlight, highlight, base) slide from left of the visible range to
// right of it each cycle.
type ShimmerStrategy struct {
	baseColor      graphics.Color
	highlightColor graphics.Color
	widthRatio     float64
	cornerRadius   float64
	duration       time.Duration

	built     bool
	container *layer.Layer
	gradient  *layer.GradientLayer
	mask      *layer.ShapeLayer
}

// NewShimmerStrategy creates an unbuilt shimmer strategy.
func NewShimmerStrategy() *ShimmerStrategy {
	return &ShimmerStrategy{
		container: layer.New(),
		gradient:  layer.NewGradient(),
		mask:      layer.NewShape(),
	}
}

// HostLayer returns the gradient layer animations attach to.
func (s *ShimmerStrategy) HostLayer() *layer.Layer {
	return s.gradient.Base()
}

// Build inserts the masked container and its gradient exactly once.
func (s *ShimmerStrategy) Build(into *layer.Layer) {
	if s.built {
		return
	}
	s.built = true
	s.container.Mask = s.mask
	s.container.AddChild(s.gradient)
	into.AddChild(s.container)
}

// Layout recomputes the base fill, the rounded mask, and the resting
// gradient stops from bounds and the mirrored style fields.
func (s *ShimmerStrategy) Layout(bounds graphics.Rect) {
	if !s.built {
		return
	}
	local := graphics.RectFromSize(bounds.Size())

	s.container.Frame = bounds
	s.container.BackgroundColor = s.baseColor

	s.mask.Frame = local
	s.mask.Path = graphics.RoundedRect(local, s.cornerRadius)
	s.mask.FillColor = graphics.ColorBlack

	s.gradient.Frame = local
	s.gradient.StartPoint = graphics.Offset{X: 0, Y: 0.5}
	s.gradient.EndPoint = graphics.Offset{X: 1, Y: 0.5}
	s.gradient.Colors = []graphics.Color{
		s.baseColor, s.highlightColor, s.highlightColor, s.baseColor,
	}
	s.gradient.Locations = s.RestStops()
}

// RestStops returns the gradient stop positions with the band at rest,
// centered in the element: [0, 0.5−w/2, 0.5+w/2, 1] for band width w.
func (s *ShimmerStrategy) RestStops() []float64 {
	w := clamp(s.widthRatio, minShimmerWidthRatio, maxShimmerWidthRatio)
	return []float64{0, 0.5 - w/2, 0.5 + w/2, 1}
}

// AnimationDescription returns the looping linear sweep: every stop position
// interpolates from rest−widthRatio to rest+widthRatio, carrying the band
// across the element once per cycle.
func (s *ShimmerStrategy) AnimationDescription() animation.Description {
	w := clamp(s.widthRatio, minShimmerWidthRatio, maxShimmerWidthRatio)
	rest := s.RestStops()
	from := make([]float64, len(rest))
	to := make([]float64, len(rest))
	for i, stop := range rest {
		from[i] = stop - w
		to[i] = stop + w
	}
	return animation.Description{
		Duration: s.duration,
		Repeats:  true,
		Curve:    animation.LinearCurve,
		Children: []animation.PropertyAnimation{
			animation.StopsAnimation{Property: animation.PropertyGradientStops, From: from, To: to},
		},
	}
}

// ApplyStyle mirrors every style field into the strategy.
func (s *ShimmerStrategy) ApplyStyle(style ShimmerStyle) {
	s.baseColor = style.BaseColor
	s.highlightColor = style.HighlightColor
	s.widthRatio = style.WidthRatio
	s.cornerRadius = style.CornerRadius
	s.duration = style.Duration
}

// ShimmerMode binds [ShimmerStrategy] to [ShimmerStyle].
type ShimmerMode struct{}

// NewStrategy returns a fresh shimmer strategy.
func (ShimmerMode) NewStrategy() Strategy[ShimmerStyle] { return NewShimmerStrategy() }

// DefaultStyle returns the default shimmer style.
func (ShimmerMode) DefaultStyle() ShimmerStyle { return DefaultShimmerStyle() }

// IntrinsicSize returns a wide placeholder bar; shimmer elements usually
// stretch to whatever bounds the host assigns, so this is only a fallback.
func (ShimmerMode) IntrinsicSize(ShimmerStyle) graphics.Size {
	return atLeastOne(graphics.Size{Width: 120, Height: 16})
}
