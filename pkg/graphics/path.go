package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or use the
// shape constructors [Circle], [Arc], and [RoundedRect].
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo draws a quadratic curve to (x2, y2) via control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo draws a cubic curve to (x3, y3) via control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath with a line back to its start point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty reports whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Arc appends a circular arc around center, starting at startAngle (radians,
// measured from the positive x axis) and sweeping by sweep. The arc is
// approximated with cubic bezier segments of at most 90 degrees each, using
// the control-point factor k = (4/3)·tan(θ/4).
func (p *Path) Arc(center Offset, radius, startAngle, sweep float64) {
	if radius <= 0 || sweep == 0 {
		return
	}
	startX := center.X + radius*math.Cos(startAngle)
	startY := center.Y + radius*math.Sin(startAngle)
	p.MoveTo(startX, startY)

	maxSegmentAngle := math.Pi / 2
	remaining := sweep
	currentAngle := startAngle

	for math.Abs(remaining) > 0.0001 {
		segmentAngle := remaining
		if math.Abs(segmentAngle) > maxSegmentAngle {
			if segmentAngle > 0 {
				segmentAngle = maxSegmentAngle
			} else {
				segmentAngle = -maxSegmentAngle
			}
		}

		k := (4.0 / 3.0) * math.Tan(segmentAngle/4)
		endAngle := currentAngle + segmentAngle

		currX := center.X + radius*math.Cos(currentAngle)
		currY := center.Y + radius*math.Sin(currentAngle)
		endX := center.X + radius*math.Cos(endAngle)
		endY := center.Y + radius*math.Sin(endAngle)

		// Tangent directions at segment start and end.
		tx1 := -math.Sin(currentAngle)
		ty1 := math.Cos(currentAngle)
		tx2 := -math.Sin(endAngle)
		ty2 := math.Cos(endAngle)

		p.CubicTo(
			currX+k*radius*tx1, currY+k*radius*ty1,
			endX-k*radius*tx2, endY-k*radius*ty2,
			endX, endY,
		)

		currentAngle = endAngle
		remaining -= segmentAngle
	}
}

// Circle constructs a closed circular path around center.
func Circle(center Offset, radius float64) *Path {
	p := NewPath()
	p.Arc(center, radius, 0, 2*math.Pi)
	p.Close()
	return p
}

// Arc constructs an open arc path around center from startAngle sweeping by sweep.
func Arc(center Offset, radius, startAngle, sweep float64) *Path {
	p := NewPath()
	p.Arc(center, radius, startAngle, sweep)
	return p
}

// RoundedRect constructs a closed rounded-rectangle path. The corner radius
// is clamped so adjacent corners never overlap.
func RoundedRect(rect Rect, radius float64) *Path {
	w := rect.Width()
	h := rect.Height()
	if radius < 0 {
		radius = 0
	}
	if limit := math.Min(w, h) / 2; radius > limit {
		radius = limit
	}

	p := NewPath()
	if w <= 0 || h <= 0 {
		return p
	}

	// Control-point factor for a quarter circle.
	k := radius * (4.0 / 3.0) * math.Tan(math.Pi/8)
	left, top, right, bottom := rect.Left, rect.Top, rect.Right, rect.Bottom

	p.MoveTo(left+radius, top)
	p.LineTo(right-radius, top)
	p.CubicTo(right-radius+k, top, right, top+radius-k, right, top+radius)
	p.LineTo(right, bottom-radius)
	p.CubicTo(right, bottom-radius+k, right-radius+k, bottom, right-radius, bottom)
	p.LineTo(left+radius, bottom)
	p.CubicTo(left+radius-k, bottom, left, bottom-radius+k, left, bottom-radius)
	p.LineTo(left, top+radius)
	p.CubicTo(left, top+radius-k, left+radius-k, top, left+radius, top)
	p.Close()
	return p
}
