package loading

import (
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// WaveDotsStyle configures the bouncing-dots indicator.
type WaveDotsStyle struct {
	// PrimaryColor is the dot color at the top of the bounce.
	PrimaryColor graphics.Color `yaml:"primaryColor"`
	// SecondaryColor is the dot color cross-faded to at the bottom.
	SecondaryColor graphics.Color `yaml:"secondaryColor"`
	// Count is the number of dots. Values below 1 are treated as 1.
	Count int `yaml:"count"`
	// DotSize is the diameter of each dot.
	DotSize float64 `yaml:"dotSize"`
	// Spacing is the horizontal gap between adjacent dots.
	Spacing float64 `yaml:"spacing"`
	// Amplitude is the vertical travel above and below the resting position.
	Amplitude float64 `yaml:"amplitude"`
	// Duration is the length of one bounce cycle.
	Duration time.Duration `yaml:"duration"`
}

// DefaultWaveDotsStyle returns the default wave configuration: three 10pt
// dots bouncing 6pt while fading between blue and teal.
func DefaultWaveDotsStyle() WaveDotsStyle {
	return WaveDotsStyle{
		PrimaryColor:   graphics.RGB(0x00, 0x7A, 0xFF),
		SecondaryColor: graphics.RGB(0x30, 0xB0, 0xC7),
		Count:          3,
		DotSize:        10,
		Spacing:        8,
		Amplitude:      6,
		Duration:       700 * time.Millisecond,
	}
}

// WaveDotsStrategy renders the same replicated dot row as [DotsStrategy],
// but animates a vertical oscillation of ±amplitude combined with a color
// cross-fade. The per-instance stagger produces the sequential wave.
type WaveDotsStrategy struct {
	primaryColor   graphics.Color
	secondaryColor graphics.Color
	count          int
	dotSize        float64
	spacing        float64
	amplitude      float64
	duration       time.Duration

	built      bool
	replicator *layer.ReplicatorLayer
	dot        *layer.ShapeLayer
}

// NewWaveDotsStrategy creates an unbuilt wave strategy.
func NewWaveDotsStrategy() *WaveDotsStrategy {
	return &WaveDotsStrategy{
		replicator: layer.NewReplicator(),
		dot:        layer.NewShape(),
	}
}

// HostLayer returns the replicator layer animations attach to.
func (s *WaveDotsStrategy) HostLayer() *layer.Layer {
	return s.replicator.Base()
}

// Build inserts the replicator and its prototype dot exactly once.
func (s *WaveDotsStrategy) Build(into *layer.Layer) {
	if s.built {
		return
	}
	s.built = true
	s.replicator.AddChild(s.dot)
	into.AddChild(s.replicator)
}

// Layout recomputes the row geometry and replication parameters. The
// horizontal placement mirrors the dots strategy exactly.
func (s *WaveDotsStrategy) Layout(bounds graphics.Rect) {
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
	s.dot.FillColor = s.primaryColor
}

// AnimationDescription returns the looping, auto-reversing wave motion:
// a vertical oscillation between −amplitude and +amplitude grouped with a
// cross-fade from the primary to the secondary color.
func (s *WaveDotsStrategy) AnimationDescription() animation.Description {
	return animation.Description{
		Duration:    s.duration,
		Repeats:     true,
		AutoReverse: true,
		Curve:       animation.EaseInOut,
		Children: []animation.PropertyAnimation{
			animation.FloatAnimation{Property: animation.PropertyPositionY, From: -s.amplitude, To: s.amplitude},
			animation.ColorAnimation{Property: animation.PropertyFillColor, From: s.primaryColor, To: s.secondaryColor},
		},
	}
}

// ApplyStyle mirrors every style field into the strategy.
func (s *WaveDotsStrategy) ApplyStyle(style WaveDotsStyle) {
	s.primaryColor = style.PrimaryColor
	s.secondaryColor = style.SecondaryColor
	s.count = style.Count
	s.dotSize = style.DotSize
	s.spacing = style.Spacing
	s.amplitude = style.Amplitude
	s.duration = style.Duration
}

// WaveDotsMode binds [WaveDotsStrategy] to [WaveDotsStyle].
type WaveDotsMode struct{}

// NewStrategy returns a fresh wave strategy.
func (WaveDotsMode) NewStrategy() Strategy[WaveDotsStyle] { return NewWaveDotsStrategy() }

// DefaultStyle returns the default wave style.
func (WaveDotsMode) DefaultStyle() WaveDotsStyle { return DefaultWaveDotsStyle() }

// IntrinsicSize returns the natural size of the bouncing row. Height adds
// 2·amplitude to the dot size because the dot travels both above and below
// its resting position.
func (WaveDotsMode) IntrinsicSize(style WaveDotsStyle) graphics.Size {
	count := max(style.Count, 1)
	size := max(style.DotSize, 0)
	spacing := max(style.Spacing, 0)
	amplitude := max(style.Amplitude, 0)
	return atLeastOne(graphics.Size{
		Width:  float64(count)*size + float64(count-1)*spacing,
		Height: size + 2*amplitude,
	})
}
