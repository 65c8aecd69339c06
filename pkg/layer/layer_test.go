package layer

import (
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/animation"
	ltesting "github.com/go-drift/loading/pkg/testing"
)

func TestLayer_AddChild(t *testing.T) {
	parent := New()
	child := NewShape()

	parent.AddChild(child)
	if got := len(parent.Children()); got != 1 {
		t.Fatalf("child count = %d, want 1", got)
	}
	if child.Parent() != parent {
		t.Error("child parent not set")
	}
}

func TestLayer_AddChildReparents(t *testing.T) {
	first := New()
	second := New()
	child := NewShape()

	first.AddChild(child)
	second.AddChild(child)

	if got := len(first.Children()); got != 0 {
		t.Errorf("old parent child count = %d, want 0", got)
	}
	if got := len(second.Children()); got != 1 {
		t.Errorf("new parent child count = %d, want 1", got)
	}
	if child.Parent() != second {
		t.Error("child parent not updated")
	}
}

func TestLayer_RemoveFromParent(t *testing.T) {
	parent := New()
	child := New()
	parent.AddChild(child)

	child.RemoveFromParent()
	if got := len(parent.Children()); got != 0 {
		t.Errorf("child count after removal = %d, want 0", got)
	}
	// Removing again is a no-op.
	child.RemoveFromParent()
}

func TestLayer_AnimationSlots(t *testing.T) {
	ltesting.InstallFakeClock(t)
	l := New()
	d := animation.Description{Duration: time.Second}

	if l.HasAnimation("spin") {
		t.Fatal("new layer reports an attached animation")
	}

	l.AddAnimation("spin", d)
	if !l.HasAnimation("spin") {
		t.Fatal("animation not attached")
	}
	if got, ok := l.AnimationForKey("spin"); !ok || got.Duration != time.Second {
		t.Errorf("AnimationForKey = (%v, %v), want attached description", got, ok)
	}

	l.RemoveAnimation("spin")
	if l.HasAnimation("spin") {
		t.Error("animation still attached after removal")
	}
	// Removing an absent key is a no-op.
	l.RemoveAnimation("spin")
}

func TestLayer_PresentationAtSamplesAnimations(t *testing.T) {
	clock := ltesting.InstallFakeClock(t)
	l := New()
	l.AddAnimation("pulse", animation.Description{
		Duration: time.Second,
		Children: []animation.PropertyAnimation{
			animation.FloatAnimation{Property: animation.PropertyScale, From: 0.5, To: 1.0},
			animation.FloatAnimation{Property: animation.PropertyOpacity, From: 0, To: 1},
		},
	})

	p := l.PresentationAt(clock.Now())
	if p.Scale != 0.5 || p.Opacity != 0 {
		t.Errorf("presentation at start = scale %v opacity %v, want 0.5 and 0", p.Scale, p.Opacity)
	}

	p = l.PresentationAt(clock.Now().Add(500 * time.Millisecond))
	if p.Scale != 0.75 || p.Opacity != 0.5 {
		t.Errorf("presentation at midpoint = scale %v opacity %v, want 0.75 and 0.5", p.Scale, p.Opacity)
	}
}

func TestLayer_PresentationAtWithoutAnimations(t *testing.T) {
	l := New()
	l.Opacity = 0.8
	l.Scale = 2

	p := l.PresentationAt(time.Now())
	if p.Opacity != 0.8 || p.Scale != 2 {
		t.Errorf("presentation = opacity %v scale %v, want model values", p.Opacity, p.Scale)
	}
	if p.FillColor != nil || p.GradientStops != nil {
		t.Error("unanimated presentation carries overrides")
	}
}

func TestLayer_PresentationBeforeAttachTime(t *testing.T) {
	clock := ltesting.InstallFakeClock(t)
	l := New()
	l.AddAnimation("rise", animation.Description{
		Duration: time.Second,
		Children: []animation.PropertyAnimation{
			animation.FloatAnimation{Property: animation.PropertyPositionY, From: -6, To: 6},
		},
	})

	// A delayed replicator instance samples before its start time.
	p := l.PresentationAt(clock.Now().Add(-300 * time.Millisecond))
	if p.Translation.Y != -6 {
		t.Errorf("pre-start translation = %v, want -6 (progress zero)", p.Translation.Y)
	}
}

func TestLayer_GradientStopsPresentation(t *testing.T) {
	clock := ltesting.InstallFakeClock(t)
	g := NewGradient()
	g.Locations = []float64{0, 0.4, 0.6, 1}
	g.AddAnimation("sweep", animation.Description{
		Duration: time.Second,
		Children: []animation.PropertyAnimation{
			animation.StopsAnimation{
				Property: animation.PropertyGradientStops,
				From:     []float64{-0.2, 0.2, 0.4, 0.8},
				To:       []float64{0.2, 0.6, 0.8, 1.2},
			},
		},
	})

	p := g.PresentationAt(clock.Now().Add(500 * time.Millisecond))
	want := []float64{0, 0.4, 0.6, 1}
	for i, stop := range p.GradientStops {
		if !almostEqual(stop, want[i]) {
			t.Errorf("stop %d = %v, want %v", i, stop, want[i])
		}
	}
}

func TestReplicator_Defaults(t *testing.T) {
	r := NewReplicator()
	if r.InstanceCount != 1 {
		t.Errorf("InstanceCount = %d, want 1", r.InstanceCount)
	}
	if r.Opacity != 1 || r.Scale != 1 {
		t.Error("replicator base layer not initialized to identity")
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}
