package loading

import (
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/semantics"
	ltesting "github.com/go-drift/loading/pkg/testing"
)

func TestView_DefaultStyleApplied(t *testing.T) {
	v := NewView[DotsStyle](DotsMode{})

	if v.Style() != DefaultDotsStyle() {
		t.Errorf("style = %+v, want mode default", v.Style())
	}
	// The strategy mirror is populated eagerly, before any build or layout.
	s := v.strategy.(*DotsStrategy)
	if s.count != 3 || s.dotSize != 10 {
		t.Errorf("strategy mirror = count %d size %v, want 3 and 10", s.count, s.dotSize)
	}
}

func TestView_SetStyleMirrorsSynchronously(t *testing.T) {
	v := NewView[DotsStyle](DotsMode{})

	style := v.Style()
	style.Count = 7
	style.Duration = 900 * time.Millisecond
	v.SetStyle(style)

	s := v.strategy.(*DotsStrategy)
	if s.count != 7 || s.duration != 900*time.Millisecond {
		t.Errorf("strategy mirror = count %d duration %v, want 7 and 900ms", s.count, s.duration)
	}
}

func TestView_SetStyleSchedulesLayout(t *testing.T) {
	v := NewView[DotsStyle](DotsMode{})
	v.BuildLayers()
	v.SetBounds(graphics.RectFromLTWH(0, 0, 200, 40))

	style := v.Style()
	style.Count = 5
	style.Duration = time.Second
	v.SetStyle(style)

	s := v.strategy.(*DotsStrategy)
	if s.replicator.InstanceCount != 3 {
		t.Fatalf("layout ran before LayoutIfNeeded: count %d", s.replicator.InstanceCount)
	}
	v.LayoutIfNeeded()
	if s.replicator.InstanceCount != 5 {
		t.Errorf("instance count = %d, want 5 after layout flush", s.replicator.InstanceCount)
	}
	if s.replicator.InstanceDelay != 200*time.Millisecond {
		t.Errorf("stagger = %v, want 1s/5", s.replicator.InstanceDelay)
	}
}

func TestView_StartStopLifecycle(t *testing.T) {
	ltesting.InstallFakeClock(t)

	style := DefaultDotsStyle()
	style.Count = 4
	style.DotSize = 10
	style.Spacing = 8

	v := NewView[DotsStyle](DotsMode{})
	v.SetStyle(style)

	if size := v.IntrinsicSize(); size.Width != 64 || size.Height != 10 {
		t.Errorf("intrinsic size = %v, want 64x10", size)
	}

	v.SetBounds(graphics.RectFromSize(v.IntrinsicSize()))
	if v.IsAnimating() {
		t.Fatal("idle view reports animating")
	}

	v.StartAnimating()
	if !v.IsAnimating() {
		t.Fatal("started view not animating")
	}
	host := v.strategy.HostLayer()
	if got := len(host.AnimationKeys()); got != 1 {
		t.Fatalf("attached animations = %d, want 1", got)
	}

	// Starting again is a no-op: still exactly one attachment.
	v.StartAnimating()
	if got := len(host.AnimationKeys()); got != 1 {
		t.Errorf("second start attached another animation: %d keys", got)
	}

	v.StopAnimating()
	if v.IsAnimating() {
		t.Error("stopped view still animating")
	}
	// Stopping while idle is also a no-op.
	v.StopAnimating()
	if v.IsAnimating() {
		t.Error("double stop left view animating")
	}
}

func TestView_StartBuildsLazily(t *testing.T) {
	ltesting.InstallFakeClock(t)

	v := NewView[RingStyle](RingMode{})
	v.SetBounds(graphics.RectFromLTWH(0, 0, 36, 36))
	if got := len(v.Layer().Children()); got != 0 {
		t.Fatalf("layers built before start: %d children", got)
	}

	v.StartAnimating()
	if got := len(v.Layer().Children()); got != 1 {
		t.Errorf("root children after start = %d, want 1", got)
	}
	// Bounds assigned before the build must be applied by the start.
	s := v.strategy.(*RingStrategy)
	if s.arc.Path.IsEmpty() {
		t.Error("start did not lay out the arc from the stored bounds")
	}
}

func TestView_IsAnimatingDerived(t *testing.T) {
	ltesting.InstallFakeClock(t)

	v := NewView[ShimmerStyle](ShimmerMode{})
	v.SetBounds(graphics.RectFromLTWH(0, 0, 120, 16))
	v.StartAnimating()
	if !v.IsAnimating() {
		t.Fatal("started view not animating")
	}

	// Something external detaches the animation: the derived query follows.
	v.strategy.HostLayer().RemoveAnimation(AnimationKey)
	if v.IsAnimating() {
		t.Error("IsAnimating must track the attached state, not a cached flag")
	}

	// And a restart works from that state.
	v.StartAnimating()
	if !v.IsAnimating() {
		t.Error("restart after external detach failed")
	}
}

func TestView_DescribeSemantics(t *testing.T) {
	ltesting.InstallFakeClock(t)

	v := NewView[WaveDotsStyle](WaveDotsMode{})

	var config semantics.Configuration
	v.DescribeSemantics(&config)
	if config.Role != semantics.RoleProgressIndicator {
		t.Errorf("role = %v, want progress indicator", config.Role)
	}
	if config.Flags.Has(semantics.FlagLiveRegion) {
		t.Error("live region set before first start")
	}

	v.SetBounds(graphics.RectFromSize(v.IntrinsicSize()))
	v.StartAnimating()
	v.StopAnimating()

	config = semantics.Configuration{}
	v.DescribeSemantics(&config)
	if !config.Flags.Has(semantics.FlagLiveRegion) {
		t.Error("live region not set after the view has animated once")
	}
}
