package loading

import (
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
	"github.com/go-drift/loading/pkg/semantics"
)

// View is the generic loading-indicator container. It owns exactly one
// strategy instance (created at construction, never shared) and the current
// style value, and forwards layout and animation lifecycle calls to the
// strategy.
//
// The style property has exactly the shape the mode's strategy expects;
// style and the strategy's mirrored fields are in sync immediately after
// every SetStyle call.
type View[S any] struct {
	Animatable

	mode        Mode[S]
	strategy    Strategy[S]
	style       S
	root        *layer.Layer
	bounds      graphics.Rect
	needsLayout bool
}

// NewView creates a view for the given mode. The strategy eagerly receives
// the mode's default style; its layer tree is built lazily on the first
// animation start (or an explicit BuildLayers call).
func NewView[S any](mode Mode[S]) *View[S] {
	v := &View[S]{
		mode:     mode,
		strategy: mode.NewStrategy(),
		style:    mode.DefaultStyle(),
		root:     layer.New(),
	}
	v.strategy.ApplyStyle(v.style)
	v.Animatable = Animatable{
		Prepare:  v.prepareForAnimation,
		Host:     v.strategy.HostLayer,
		Describe: v.strategy.AnimationDescription,
	}
	return v
}

// Style returns the current style value.
func (v *View[S]) Style() S {
	return v.style
}

// SetStyle replaces the style wholesale, mirrors it into the strategy
// synchronously, and schedules a layout pass.
func (v *View[S]) SetStyle(style S) {
	v.style = style
	v.strategy.ApplyStyle(style)
	v.needsLayout = true
}

// SetBounds is the layout-pass hook: the host calls it whenever the view's
// bounding rectangle changes. Geometry is recomputed immediately.
func (v *View[S]) SetBounds(bounds graphics.Rect) {
	v.bounds = bounds
	v.strategy.Layout(bounds)
	v.needsLayout = false
}

// Bounds returns the last bounds assigned by the host.
func (v *View[S]) Bounds() graphics.Rect {
	return v.bounds
}

// LayoutIfNeeded flushes a layout pass scheduled by SetStyle.
func (v *View[S]) LayoutIfNeeded() {
	if v.needsLayout {
		v.strategy.Layout(v.bounds)
		v.needsLayout = false
	}
}

// BuildLayers builds the strategy's layer tree into the view's root layer.
// It is idempotent and is also invoked implicitly by StartAnimating.
func (v *View[S]) BuildLayers() {
	v.strategy.Build(v.root)
}

// IntrinsicSize returns the preferred natural size for the current style.
func (v *View[S]) IntrinsicSize() graphics.Size {
	return v.mode.IntrinsicSize(v.style)
}

// Layer returns the view's root layer for embedding in a host render tree.
func (v *View[S]) Layer() *layer.Layer {
	return v.root
}

// DescribeSemantics reports the view as a progress indicator. Once the view
// has animated at least once it is additionally flagged as a live region so
// assistive technology treats it as a periodically updating status element.
func (v *View[S]) DescribeSemantics(config *semantics.Configuration) {
	config.Role = semantics.RoleProgressIndicator
	config.Label = "Loading"
	config.Value = "In progress"
	if v.started {
		config.Flags = config.Flags.Set(semantics.FlagLiveRegion)
	}
}

func (v *View[S]) prepareForAnimation() {
	v.BuildLayers()
	// A style change before the first build leaves geometry stale; bounds
	// assigned before build were a no-op in the strategy.
	v.strategy.Layout(v.bounds)
	v.needsLayout = false
}
