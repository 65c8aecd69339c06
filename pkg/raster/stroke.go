package raster

import (
	"image"
	stddraw "image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/loading/pkg/graphics"
)

// cubicFlattenSteps is the number of line segments a cubic bezier is
// flattened into before stroking. Arcs built from quarter-circle segments
// stay well under a pixel of error at indicator sizes.
const cubicFlattenSteps = 16

type point struct {
	x, y float64
}

// strokePath strokes a path, transformed by m, by flattening it to polylines
// and filling quad segments with circular joins at interior vertices.
func strokePath(dst stddraw.Image, path *graphics.Path, m affine, c graphics.Color, width float64, alpha float64) {
	if path.IsEmpty() || width <= 0 || alpha <= 0 {
		return
	}
	// Transform control points first; width scales with the matrix's
	// uniform scale factor.
	scale := math.Hypot(m.a, m.b)
	half := width * scale / 2
	if half <= 0 {
		return
	}

	bounds := dst.Bounds()
	vr := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	for _, line := range flatten(path, m) {
		strokePolyline(vr, line, half)
	}
	vr.Draw(dst, bounds, image.NewUniform(premultiply(c, alpha)), image.Point{})
}

// flatten converts the transformed path into one polyline per subpath.
func flatten(path *graphics.Path, m affine) [][]point {
	var lines [][]point
	var current []point
	var start point

	flush := func() {
		if len(current) > 1 {
			lines = append(lines, current)
		}
		current = nil
	}

	last := point{}
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			last = point{x, y}
			start = last
			current = []point{last}
		case graphics.PathOpLineTo:
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			last = point{x, y}
			current = append(current, last)
		case graphics.PathOpQuadTo:
			c1x, c1y := m.apply(cmd.Args[0], cmd.Args[1])
			ex, ey := m.apply(cmd.Args[2], cmd.Args[3])
			// Elevate the quadratic to a cubic.
			cp1 := point{last.x + 2.0/3.0*(c1x-last.x), last.y + 2.0/3.0*(c1y-last.y)}
			cp2 := point{ex + 2.0/3.0*(c1x-ex), ey + 2.0/3.0*(c1y-ey)}
			current = appendCubic(current, last, cp1, cp2, point{ex, ey})
			last = point{ex, ey}
		case graphics.PathOpCubicTo:
			c1x, c1y := m.apply(cmd.Args[0], cmd.Args[1])
			c2x, c2y := m.apply(cmd.Args[2], cmd.Args[3])
			ex, ey := m.apply(cmd.Args[4], cmd.Args[5])
			current = appendCubic(current, last, point{c1x, c1y}, point{c2x, c2y}, point{ex, ey})
			last = point{ex, ey}
		case graphics.PathOpClose:
			if len(current) > 0 {
				current = append(current, start)
				last = start
			}
			flush()
		}
	}
	flush()
	return lines
}

func appendCubic(dst []point, p0, p1, p2, p3 point) []point {
	for i := 1; i <= cubicFlattenSteps; i++ {
		t := float64(i) / cubicFlattenSteps
		inv := 1 - t
		x := inv*inv*inv*p0.x + 3*inv*inv*t*p1.x + 3*inv*t*t*p2.x + t*t*t*p3.x
		y := inv*inv*inv*p0.y + 3*inv*inv*t*p1.y + 3*inv*t*t*p2.y + t*t*t*p3.y
		dst = append(dst, point{x, y})
	}
	return dst
}

// strokePolyline emits filled geometry for one polyline: a quad per segment
// plus a join disc at each interior vertex.
func strokePolyline(vr *vector.Rasterizer, line []point, half float64) {
	for i := 0; i < len(line)-1; i++ {
		a, b := line[i], line[i+1]
		dx := b.x - a.x
		dy := b.y - a.y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal.
		nx := -dy / length * half
		ny := dx / length * half

		vr.MoveTo(float32(a.x+nx), float32(a.y+ny))
		vr.LineTo(float32(b.x+nx), float32(b.y+ny))
		vr.LineTo(float32(b.x-nx), float32(b.y-ny))
		vr.LineTo(float32(a.x-nx), float32(a.y-ny))
		vr.ClosePath()
	}
	for i := 1; i < len(line)-1; i++ {
		joinDisc(vr, line[i], half)
	}
}

func joinDisc(vr *vector.Rasterizer, center point, radius float64) {
	k := radius * (4.0 / 3.0) * math.Tan(math.Pi/8)
	x, y := center.x, center.y
	vr.MoveTo(float32(x+radius), float32(y))
	vr.CubeTo(float32(x+radius), float32(y+k), float32(x+k), float32(y+radius), float32(x), float32(y+radius))
	vr.CubeTo(float32(x-k), float32(y+radius), float32(x-radius), float32(y+k), float32(x-radius), float32(y))
	vr.CubeTo(float32(x-radius), float32(y-k), float32(x-k), float32(y-radius), float32(x), float32(y-radius))
	vr.CubeTo(float32(x+k), float32(y-radius), float32(x+radius), float32(y-k), float32(x+radius), float32(y))
	vr.ClosePath()
}
