package layer

import "github.com/go-drift/loading/pkg/graphics"

// GradientLayer renders a linear gradient across its frame.
//
// StartPoint and EndPoint are in the unit coordinate space of the frame:
// (0,0) is the top-left corner and (1,1) the bottom-right. Locations may lie
// outside [0, 1]; the renderer clamps the gradient axis so positions beyond
// the ends extend the edge colors.
type GradientLayer struct {
	Layer

	// StartPoint is the unit-space point where Locations value 0 falls.
	StartPoint graphics.Offset

	// EndPoint is the unit-space point where Locations value 1 falls.
	EndPoint graphics.Offset

	// Colors are the gradient stop colors, parallel to Locations.
	Colors []graphics.Color

	// Locations are the gradient stop positions, parallel to Colors,
	// in non-decreasing order.
	Locations []float64
}

// NewGradient creates a gradient layer with a left-to-right axis.
func NewGradient() *GradientLayer {
	return &GradientLayer{
		Layer:      Layer{Opacity: 1, Scale: 1},
		StartPoint: graphics.Offset{X: 0, Y: 0.5},
		EndPoint:   graphics.Offset{X: 1, Y: 0.5},
	}
}
