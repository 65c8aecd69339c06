package layer

import (
	"time"

	"github.com/go-drift/loading/pkg/graphics"
)

// ReplicatorLayer renders its subtree InstanceCount times. Instance k is
// translated by k·InstanceTranslation and its animations start k·InstanceDelay
// later than instance zero, which is what produces staggered cascades from a
// single prototype child.
type ReplicatorLayer struct {
	Layer

	// InstanceCount is the number of copies to render. Values below 1
	// render nothing.
	InstanceCount int

	// InstanceDelay shifts each successive instance's animation start.
	InstanceDelay time.Duration

	// InstanceTranslation offsets each successive instance.
	InstanceTranslation graphics.Offset
}

// NewReplicator creates a replicator layer rendering a single instance.
func NewReplicator() *ReplicatorLayer {
	return &ReplicatorLayer{
		Layer:         Layer{Opacity: 1, Scale: 1},
		InstanceCount: 1,
	}
}
