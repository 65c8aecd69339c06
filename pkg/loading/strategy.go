// Package loading provides animated loading indicators built on a pluggable
// strategy abstraction.
//
// Each [Strategy] owns a small layer subtree, lays it out against a bounding
// rectangle, and produces a declarative [animation.Description] played back by
// the renderer. A [Mode] binds a strategy type to its default style and an
// intrinsic-size function, and [View] composes one strategy with type-safe
// style access:
//
//	view := loading.NewView(loading.DotsMode{})
//	view.SetBounds(graphics.RectFromLTWH(0, 0, 120, 40))
//	view.StartAnimating()
//
// The style property exposed by a view has exactly the shape its mode's
// strategy expects; a view created for one mode cannot be assigned another
// mode's style.
package loading

import (
	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

// Strategy is the capability contract every indicator animation implements.
// S is the strategy's style type.
//
// A strategy moves through a fixed lifecycle: constructed (layers exist but
// are not in any tree), built (layers inserted, exactly once), laid out, and
// animating. None of the methods block, and all must be called from the
// thread that owns the render tree.
type Strategy[S any] interface {
	// HostLayer returns the node animations are attached to and detached
	// from. The result is stable across the strategy's lifetime.
	HostLayer() *layer.Layer

	// Build inserts the strategy's owned layers into the given parent.
	// Build is idempotent: calls after the first are no-ops.
	Build(into *layer.Layer)

	// Layout recomputes all geometry from bounds and the mirrored style
	// fields. Calling Layout before Build is a safe no-op.
	Layout(bounds graphics.Rect)

	// AnimationDescription derives the strategy's animation from the
	// mirrored style fields. It is pure: repeated calls with unchanged
	// fields return equivalent descriptions.
	AnimationDescription() animation.Description

	// ApplyStyle copies every field of style into the strategy's mirrored
	// fields. It does not rebuild or relayout; the caller is responsible
	// for requesting a layout pass.
	ApplyStyle(style S)
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// atLeastOne floors each dimension at 1 so degenerate styles never produce
// an invisible or zero-area render target.
func atLeastOne(size graphics.Size) graphics.Size {
	if size.Width < 1 {
		size.Width = 1
	}
	if size.Height < 1 {
		size.Height = 1
	}
	return size
}
