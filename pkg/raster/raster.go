// Package raster renders a layer tree to an image with a software
// rasterizer. It is the module's render target for snapshot tooling and
// tests; a GPU-backed host can substitute its own compositor, since layers
// expose everything needed through their model state and
// [layer.Layer.PresentationAt].
package raster

import (
	"image"
	stddraw "image/draw"
	"math"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// Render rasterizes the layer tree rooted at root into a new RGBA image of
// the given size, sampling all attached animations at the given time.
func Render(root layer.Node, size graphics.Size, at time.Time) *image.RGBA {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := &renderer{dst: dst, at: at}
	r.renderNode(root, identity(), 1, 0, neutralPresentation())
	return dst
}

type renderer struct {
	dst *image.RGBA
	at  time.Time
}

func neutralPresentation() layer.Presentation {
	return layer.Presentation{Opacity: 1, Scale: 1}
}

// combine folds a replicator instance's presentation into a child's own.
func combine(own, inherited layer.Presentation) layer.Presentation {
	own.Opacity *= inherited.Opacity
	own.Scale *= inherited.Scale
	own.Rotation += inherited.Rotation
	own.Translation = own.Translation.Add(inherited.Translation)
	if own.FillColor == nil {
		own.FillColor = inherited.FillColor
	}
	if own.GradientStops == nil {
		own.GradientStops = inherited.GradientStops
	}
	return own
}

func (r *renderer) renderNode(n layer.Node, parent affine, alpha float64, delay time.Duration, inherited layer.Presentation) {
	base := n.Base()
	own := base.PresentationAt(r.at.Add(-delay))
	if _, ok := n.(*layer.ReplicatorLayer); ok {
		// replicate samples this layer per instance, each with its own
		// delay; applying the sampled values here as well would count
		// them twice.
		own = neutralPresentation()
	}
	p := combine(own, inherited)

	alpha *= clamp01(p.Opacity)
	if alpha <= 0 {
		return
	}

	frame := base.Frame
	m := parent.
		translated(frame.Left+p.Translation.X, frame.Top+p.Translation.Y).
		aboutCenter(frame.Width()/2, frame.Height()/2, p.Scale, p.Rotation)

	target := r.dst
	if base.Mask != nil {
		// Render the masked subtree offscreen, then composite through the
		// mask's path coverage.
		target = image.NewRGBA(r.dst.Bounds())
	}

	sub := &renderer{dst: target, at: r.at}
	sub.renderContent(n, m, alpha, delay, p)

	if base.Mask != nil {
		maskLayer := base.Mask
		maskMatrix := m.translated(maskLayer.Frame.Left, maskLayer.Frame.Top)
		coverage := image.NewAlpha(r.dst.Bounds())
		rasterizePath(coverage, maskLayer.Path, maskMatrix, graphics.ColorWhite, maskLayer.FillColor.Alpha())
		stddraw.DrawMask(r.dst, r.dst.Bounds(), target, image.Point{}, coverage, image.Point{}, stddraw.Over)
	}
}

// renderContent draws a node's own content and recurses into children.
func (r *renderer) renderContent(n layer.Node, m affine, alpha float64, delay time.Duration, p layer.Presentation) {
	base := n.Base()

	if base.BackgroundColor.Alpha() > 0 {
		rect := graphics.RectFromSize(base.Frame.Size())
		rasterizePath(r.dst, rectPath(rect), m, base.BackgroundColor, alpha)
	}

	switch node := n.(type) {
	case *layer.ShapeLayer:
		r.shape(node, m, alpha, p)
	case *layer.GradientLayer:
		r.gradient(node, m, alpha, p)
	case *layer.ReplicatorLayer:
		r.replicate(node, m, alpha, delay)
		return // replicate renders the children itself
	}

	for _, child := range base.Children() {
		r.renderNode(child, m, alpha, delay, neutralPresentation())
	}
}

func (r *renderer) shape(s *layer.ShapeLayer, m affine, alpha float64, p layer.Presentation) {
	if s.Path.IsEmpty() {
		return
	}
	fill := s.FillColor
	if p.FillColor != nil {
		fill = *p.FillColor
	}
	if fill.Alpha() > 0 {
		rasterizePath(r.dst, s.Path, m, fill, alpha)
	}
	if s.StrokeColor.Alpha() > 0 && s.LineWidth > 0 {
		strokePath(r.dst, s.Path, m, s.StrokeColor, s.LineWidth, alpha)
	}
}

func (r *renderer) replicate(rep *layer.ReplicatorLayer, m affine, alpha float64, delay time.Duration) {
	for k := 0; k < max(rep.InstanceCount, 0); k++ {
		instanceDelay := delay + time.Duration(k)*rep.InstanceDelay
		inherited := rep.PresentationAt(r.at.Add(-instanceDelay))
		inherited.Translation = inherited.Translation.Add(rep.InstanceTranslation.Scale(float64(k)))
		for _, child := range rep.Children() {
			r.renderNode(child, m, alpha, instanceDelay, inherited)
		}
	}
}

func (r *renderer) gradient(g *layer.GradientLayer, m affine, alpha float64, p layer.Presentation) {
	w := int(math.Ceil(g.Frame.Width()))
	h := int(math.Ceil(g.Frame.Height()))
	if w < 1 || h < 1 || len(g.Colors) == 0 {
		return
	}
	locations := g.Locations
	if p.GradientStops != nil {
		locations = p.GradientStops
	}
	stops := len(locations)
	if len(g.Colors) < stops {
		stops = len(g.Colors)
	}
	if stops == 0 {
		return
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	sx := g.StartPoint.X * float64(w)
	sy := g.StartPoint.Y * float64(h)
	dx := g.EndPoint.X*float64(w) - sx
	dy := g.EndPoint.Y*float64(h) - sy
	axisLenSq := dx*dx + dy*dy

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := 0.0
			if axisLenSq > 0 {
				t = ((float64(x)+0.5-sx)*dx + (float64(y)+0.5-sy)*dy) / axisLenSq
			}
			src.SetRGBA(x, y, premultiply(gradientColorAt(g.Colors[:stops], locations[:stops], t), alpha))
		}
	}

	draw.BiLinear.Transform(r.dst, f64.Aff3{m.a, m.c, m.tx, m.b, m.d, m.ty}, src, src.Bounds(), draw.Over, nil)
}

// gradientColorAt evaluates the stop ramp at position t. Positions outside
// the stop range clamp to the edge colors, so out-of-range animated stops
// extend rather than wrap.
func gradientColorAt(colors []graphics.Color, locations []float64, t float64) graphics.Color {
	if t <= locations[0] {
		return colors[0]
	}
	last := len(locations) - 1
	if t >= locations[last] {
		return colors[last]
	}
	for i := 1; i <= last; i++ {
		if t <= locations[i] {
			span := locations[i] - locations[i-1]
			if span <= 0 {
				return colors[i]
			}
			return colors[i-1].Lerp(colors[i], (t-locations[i-1])/span)
		}
	}
	return colors[last]
}

func rectPath(rect graphics.Rect) *graphics.Path {
	p := graphics.NewPath()
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
	return p
}

// rasterizePath fills a path, transformed by m, into dst. The destination is
// either an RGBA frame or an alpha coverage mask; the vector rasterizer has
// fast paths for both.
func rasterizePath(dst stddraw.Image, path *graphics.Path, m affine, c graphics.Color, alpha float64) {
	if path.IsEmpty() || alpha <= 0 {
		return
	}
	bounds := dst.Bounds()

	vr := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	open := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			if open {
				vr.ClosePath()
			}
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			vr.MoveTo(float32(x), float32(y))
			open = true
		case graphics.PathOpLineTo:
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			vr.LineTo(float32(x), float32(y))
		case graphics.PathOpQuadTo:
			x1, y1 := m.apply(cmd.Args[0], cmd.Args[1])
			x2, y2 := m.apply(cmd.Args[2], cmd.Args[3])
			vr.QuadTo(float32(x1), float32(y1), float32(x2), float32(y2))
		case graphics.PathOpCubicTo:
			x1, y1 := m.apply(cmd.Args[0], cmd.Args[1])
			x2, y2 := m.apply(cmd.Args[2], cmd.Args[3])
			x3, y3 := m.apply(cmd.Args[4], cmd.Args[5])
			vr.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case graphics.PathOpClose:
			vr.ClosePath()
			open = false
		}
	}
	if open {
		vr.ClosePath()
	}

	vr.Draw(dst, bounds, image.NewUniform(premultiply(c, alpha)), image.Point{})
}
