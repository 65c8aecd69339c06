package layer

import (
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
)

// Presentation holds the effective animated values of a layer at one point
// in time. Fields not driven by any attached animation carry the layer's
// model values; FillColor and GradientStops are nil unless animated.
type Presentation struct {
	Opacity       float64
	Scale         float64
	Rotation      float64
	Translation   graphics.Offset
	FillColor     *graphics.Color
	GradientStops []float64
}

// PresentationAt samples every attached animation at the given time and
// returns the resulting property values. The layer itself is not mutated.
// Animations attached in the future (negative elapsed time) sample at
// progress zero.
func (l *Layer) PresentationAt(now time.Time) Presentation {
	p := Presentation{
		Opacity:  l.Opacity,
		Scale:    l.Scale,
		Rotation: l.Rotation,
	}
	if len(l.animations) == 0 {
		return p
	}

	// Sorted keys keep sampling deterministic when two descriptions
	// target the same property.
	for _, key := range l.AnimationKeys() {
		attached := l.animations[key]
		t := attached.description.Progress(now.Sub(attached.attachedAt))
		for _, child := range attached.description.Children {
			p.apply(child, t)
		}
	}
	return p
}

func (p *Presentation) apply(a animation.PropertyAnimation, t float64) {
	switch anim := a.(type) {
	case animation.FloatAnimation:
		value := anim.ValueAt(t)
		switch anim.Property {
		case animation.PropertyOpacity:
			p.Opacity = value
		case animation.PropertyScale:
			p.Scale = value
		case animation.PropertyRotation:
			p.Rotation = value
		case animation.PropertyPositionY:
			p.Translation.Y = value
		}
	case animation.ColorAnimation:
		if anim.Property == animation.PropertyFillColor {
			color := anim.ValueAt(t)
			p.FillColor = &color
		}
	case animation.StopsAnimation:
		if anim.Property == animation.PropertyGradientStops {
			p.GradientStops = anim.ValueAt(t)
		}
	}
}
