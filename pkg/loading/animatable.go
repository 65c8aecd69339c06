package loading

import (
	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/layer"
)

// AnimationKey is the reserved slot under which the loading lifecycle
// attaches its animation to the host layer. At most one animation of this
// kind is attached at a time.
const AnimationKey = "loading.indicator"

// Animatable provides the shared start/stop lifecycle over a strategy's host
// layer and animation description. [View] embeds it; any type that can supply
// the three hooks can reuse it.
//
// The state machine has two states, idle and animating, defined entirely by
// whether a description is attached under [AnimationKey]. IsAnimating is a
// derived query, so it stays correct even if something external detaches the
// animation.
type Animatable struct {
	// Prepare is called before attaching; it performs the idempotent build
	// and flushes any pending layout. Optional.
	Prepare func()

	// Host returns the layer to attach to. Required.
	Host func() *layer.Layer

	// Describe produces the animation description. Required.
	Describe func() animation.Description

	// OnFirstStart runs once, on the first transition to animating.
	// Used to mark the element as a live status indicator. Optional.
	OnFirstStart func()

	started bool
}

// StartAnimating builds the layer tree if needed, produces an animation
// description, and attaches it under the reserved key. It is a no-op while
// already animating.
func (a *Animatable) StartAnimating() {
	if a.IsAnimating() {
		return
	}
	if a.Prepare != nil {
		a.Prepare()
	}
	host := a.Host()
	if host == nil {
		return
	}
	host.AddAnimation(AnimationKey, a.Describe())
	if !a.started {
		a.started = true
		if a.OnFirstStart != nil {
			a.OnFirstStart()
		}
	}
}

// StopAnimating detaches the animation from the reserved key. It is a no-op
// while idle.
func (a *Animatable) StopAnimating() {
	if host := a.Host(); host != nil {
		host.RemoveAnimation(AnimationKey)
	}
}

// IsAnimating reports whether a description is currently attached under the
// reserved key.
func (a *Animatable) IsAnimating() bool {
	host := a.Host()
	return host != nil && host.HasAnimation(AnimationKey)
}
