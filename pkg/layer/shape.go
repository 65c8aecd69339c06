package layer

import "github.com/go-drift/loading/pkg/graphics"

// ShapeLayer renders a vector path, filled and/or stroked. Path coordinates
// are relative to the layer's frame origin.
type ShapeLayer struct {
	Layer

	// Path is the shape to render. A nil path renders nothing.
	Path *graphics.Path

	// FillColor fills the path interior. Transparent disables filling.
	FillColor graphics.Color

	// StrokeColor strokes the path outline. Transparent disables stroking.
	StrokeColor graphics.Color

	// LineWidth is the stroke thickness.
	LineWidth float64
}

// NewShape creates an empty shape layer.
func NewShape() *ShapeLayer {
	return &ShapeLayer{Layer: Layer{Opacity: 1, Scale: 1}}
}
