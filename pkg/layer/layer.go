// Package layer implements the small retained-mode layer tree the
// loading-indicator strategies build into.
//
// Layers hold model state only: geometry, colors, and a set of attached
// [animation.Description] values keyed by name. Playback is attach-and-forget;
// the renderer derives animated values on demand via [Layer.PresentationAt]
// without the layers owning timers or per-frame state.
package layer

import (
	"slices"
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
)

// Node is satisfied by every layer kind. Base returns the embedded [Layer]
// carrying the shared geometry, tree, and animation state.
type Node interface {
	Base() *Layer
}

// Layer is the base render-tree node. Specialized layers ([ShapeLayer],
// [GradientLayer], [ReplicatorLayer]) embed it.
type Layer struct {
	// Frame is the layer's rectangle in its parent's coordinate space.
	Frame graphics.Rect

	// BackgroundColor fills the frame before children are drawn.
	BackgroundColor graphics.Color

	// Opacity multiplies the alpha of the layer and its subtree (0-1).
	Opacity float64

	// Scale is a uniform scale about the frame center.
	Scale float64

	// Rotation is a rotation in radians about the frame center.
	Rotation float64

	// Mask clips the layer and its subtree to the mask's path alpha.
	Mask *ShapeLayer

	parent     *Layer
	children   []Node
	animations map[string]attachedAnimation
}

type attachedAnimation struct {
	description animation.Description
	attachedAt  time.Time
}

// New creates an empty layer with identity transform and full opacity.
func New() *Layer {
	return &Layer{Opacity: 1, Scale: 1}
}

// Base returns the layer itself.
func (l *Layer) Base() *Layer { return l }

// AddChild appends child to the layer's children. A child already attached
// elsewhere is removed from its previous parent first.
func (l *Layer) AddChild(child Node) {
	base := child.Base()
	if base.parent != nil {
		base.RemoveFromParent()
	}
	base.parent = l
	l.children = append(l.children, child)
}

// RemoveFromParent detaches the layer from its parent, if any.
func (l *Layer) RemoveFromParent() {
	parent := l.parent
	if parent == nil {
		return
	}
	l.parent = nil
	parent.children = slices.DeleteFunc(parent.children, func(n Node) bool {
		return n.Base() == l
	})
}

// Children returns the layer's children in insertion order.
func (l *Layer) Children() []Node {
	return l.children
}

// Parent returns the layer's parent, or nil for a detached or root layer.
func (l *Layer) Parent() *Layer {
	return l.parent
}

// AddAnimation attaches a description under the given key, recording the
// attach time from the animation clock. An existing description under the
// same key is replaced.
func (l *Layer) AddAnimation(key string, d animation.Description) {
	if l.animations == nil {
		l.animations = make(map[string]attachedAnimation)
	}
	l.animations[key] = attachedAnimation{description: d, attachedAt: animation.Now()}
}

// RemoveAnimation detaches the description under key. Removing an absent
// key is a no-op.
func (l *Layer) RemoveAnimation(key string) {
	delete(l.animations, key)
}

// HasAnimation reports whether a description is attached under key.
func (l *Layer) HasAnimation(key string) bool {
	_, ok := l.animations[key]
	return ok
}

// AnimationForKey returns the description attached under key.
func (l *Layer) AnimationForKey(key string) (animation.Description, bool) {
	a, ok := l.animations[key]
	return a.description, ok
}

// AnimationKeys returns the attached animation keys in sorted order.
func (l *Layer) AnimationKeys() []string {
	keys := make([]string, 0, len(l.animations))
	for key := range l.animations {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
