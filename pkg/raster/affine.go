package raster

import (
	"image/color"
	"math"

	"github.com/go-drift/loading/pkg/graphics"
)

// affine is a 2D affine transform:
//
//	x' = a·x + c·y + tx
//	y' = b·x + d·y + ty
type affine struct {
	a, b, c, d, tx, ty float64
}

func identity() affine {
	return affine{a: 1, d: 1}
}

// apply transforms the point (x, y).
func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.tx, m.b*x + m.d*y + m.ty
}

// mul returns m·o, applying o first.
func (m affine) mul(o affine) affine {
	return affine{
		a:  m.a*o.a + m.c*o.b,
		b:  m.b*o.a + m.d*o.b,
		c:  m.a*o.c + m.c*o.d,
		d:  m.b*o.c + m.d*o.d,
		tx: m.a*o.tx + m.c*o.ty + m.tx,
		ty: m.b*o.tx + m.d*o.ty + m.ty,
	}
}

// translated returns the transform followed by a translation in local space.
func (m affine) translated(dx, dy float64) affine {
	return m.mul(affine{a: 1, d: 1, tx: dx, ty: dy})
}

// aboutCenter composes a uniform scale and rotation about (cx, cy).
func (m affine) aboutCenter(cx, cy, scale, rotation float64) affine {
	if scale == 1 && rotation == 0 {
		return m
	}
	sin, cos := math.Sincos(rotation)
	rs := affine{
		a: cos * scale, b: sin * scale,
		c: -sin * scale, d: cos * scale,
	}
	return m.translated(cx, cy).mul(rs).translated(-cx, -cy)
}

// premultiply converts a Color with an extra alpha factor to a premultiplied
// RGBA color suitable for image composition.
func premultiply(c graphics.Color, alpha float64) color.RGBA {
	r, g, b, a := c.RGBAF()
	a *= clamp01(alpha)
	return color.RGBA{
		R: uint8(math.Round(r * a * 255)),
		G: uint8(math.Round(g * a * 255)),
		B: uint8(math.Round(b * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
