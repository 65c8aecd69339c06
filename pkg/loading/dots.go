package loading

import (
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// DotsStyle configures the pulsing-dots indicator.
type DotsStyle struct {
	// Color is the dot fill color.
	Color graphics.Color `yaml:"color"`
	// Count is the number of dots. Values below 1 are treated as 1.
	Count int `yaml:"count"`
	// DotSize is the diameter of each dot.
	DotSize float64 `yaml:"dotSize"`
	// Spacing is the horizontal gap between adjacent dots.
	Spacing float64 `yaml:"spacing"`
	// Duration is the length of one pulse cycle.
	Duration time.Duration `yaml:"duration"`
}

// DefaultDotsStyle returns the default dots configuration: three 10pt gray
// dots, 8pt apart, pulsing over 600ms.
func DefaultDotsStyle() DotsStyle {
	return DotsStyle{
		Color:    graphics.RGB(0x8E, 0x8E, 0x93),
		Count:    3,
		DotSize:  10,
		Spacing:  8,
		Duration: 600 * time.Millisecond,
	}
}

// DotsStrategy renders a horizontal row of equally sized dots pulsing in a
// staggered cascade. One prototype dot is replicated Count times; each
// successive instance starts its cycle Duration/Count later.
type DotsStrategy struct {
	color    graphics.Color
	count    int
	dotSize  float64
	spacing  float64
	duration time.Duration

	built      bool
	replicator *layer.ReplicatorLayer
	dot        *layer.ShapeLayer
}

// NewDotsStrategy creates an unbuilt dots strategy.
func NewDotsStrategy() *DotsStrategy {
	return &DotsStrategy{
		replicator: layer.NewReplicator(),
		dot:        layer.NewShape(),
	}
}

// HostLayer returns the replicator layer animations attach to.
func (s *DotsStrategy) HostLayer() *layer.Layer {
	return s.replicator.Base()
}

// Build inserts the replicator and its prototype dot exactly once.
func (s *DotsStrategy) Build(into *layer.Layer) {
	if s.built {
		return
	}
	s.built = true
	s.replicator.AddChild(s.dot)
	into.AddChild(s.replicator)
}

// Layout recomputes the row geometry and replication parameters from bounds
// and the mirrored style fields.
func (s *DotsStrategy) Layout(bounds graphics.Rect) {
	if !s.built {
		return
	}
	count := max(s.count, 1)
	totalWidth := float64(count)*s.dotSize + float64(count-1)*s.spacing

	s.replicator.Frame = bounds
	s.replicator.InstanceCount = count
	s.replicator.InstanceTranslation = graphics.Offset{X: s.dotSize + s.spacing}
	s.replicator.InstanceDelay = s.duration / time.Duration(count)

	x := (bounds.Width() - totalWidth) / 2
	y := (bounds.Height() - s.dotSize) / 2
	s.dot.Frame = graphics.RectFromLTWH(x, y, s.dotSize, s.dotSize)
	s.dot.Path = graphics.Circle(graphics.Offset{X: s.dotSize / 2, Y: s.dotSize / 2}, s.dotSize/2)
	s.dot.FillColor = s.color
}

// AnimationDescription returns the looping, auto-reversing pulse: scale
// 0.6→1.0 combined with opacity 0.3→1.0 over the style duration.
func (s *DotsStrategy) AnimationDescription() animation.Description {
	return animation.Description{
		Duration:    s.duration,
		Repeats:     true,
		AutoReverse: true,
		Curve:       animation.EaseInOut,
		Children: []animation.PropertyAnimation{
			animation.FloatAnimation{Property: animation.PropertyScale, From: 0.6, To: 1.0},
			animation.FloatAnimation{Property: animation.PropertyOpacity, From: 0.3, To: 1.0},
		},
	}
}

// ApplyStyle mirrors every style field into the strategy.
func (s *DotsStrategy) ApplyStyle(style DotsStyle) {
	s.color = style.Color
	s.count = style.Count
	s.dotSize = style.DotSize
	s.spacing = style.Spacing
	s.duration = style.Duration
}

// DotsMode binds [DotsStrategy] to [DotsStyle].
type DotsMode struct{}

// NewStrategy returns a fresh dots strategy.
func (DotsMode) NewStrategy() Strategy[DotsStyle] { return NewDotsStrategy() }

// DefaultStyle returns the default dots style.
func (DotsMode) DefaultStyle() DotsStyle { return DefaultDotsStyle() }

// IntrinsicSize returns the natural size of the dot row:
// count·size + (count−1)·spacing wide and one dot tall.
func (DotsMode) IntrinsicSize(style DotsStyle) graphics.Size {
	count := max(style.Count, 1)
	size := max(style.DotSize, 0)
	spacing := max(style.Spacing, 0)
	return atLeastOne(graphics.Size{
		Width:  float64(count)*size + float64(count-1)*spacing,
		Height: size,
	})
}
