package loading

import (
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
)

func TestWaveDotsMode_IntrinsicSize(t *testing.T) {
	style := DefaultWaveDotsStyle()
	style.Count = 3
	style.DotSize = 10
	style.Spacing = 8
	style.Amplitude = 6

	size := WaveDotsMode{}.IntrinsicSize(style)
	if size.Width != 46 {
		t.Errorf("width = %v, want 46 (3·10 + 2·8)", size.Width)
	}
	if size.Height != 22 {
		t.Errorf("height = %v, want 22 (10 + 2·6)", size.Height)
	}
}

func TestWaveDotsMode_IntrinsicSizeFloor(t *testing.T) {
	size := WaveDotsMode{}.IntrinsicSize(WaveDotsStyle{})
	if size.Width < 1 || size.Height < 1 {
		t.Errorf("zero style produced %v, want dimensions >= 1", size)
	}
}

func TestWaveDotsStrategy_Stagger(t *testing.T) {
	duration := 700 * time.Millisecond
	for _, count := range []int{0, 1, 5, 100} {
		style := DefaultWaveDotsStyle()
		style.Count = count
		style.Duration = duration

		s := NewWaveDotsStrategy()
		s.ApplyStyle(style)
		s.Build(layer.New())
		s.Layout(graphics.RectFromLTWH(0, 0, 400, 40))

		want := duration / time.Duration(max(count, 1))
		if got := s.replicator.InstanceDelay; got != want {
			t.Errorf("count %d: stagger = %v, want %v", count, got, want)
		}
	}
}

func TestWaveDotsStrategy_LayoutMirrorsDots(t *testing.T) {
	style := DefaultWaveDotsStyle()
	style.Count = 3
	style.DotSize = 10
	style.Spacing = 8

	wave := NewWaveDotsStrategy()
	wave.ApplyStyle(style)
	wave.Build(layer.New())

	dotsStyle := DefaultDotsStyle()
	dotsStyle.Count = 3
	dotsStyle.DotSize = 10
	dotsStyle.Spacing = 8
	dots := NewDotsStrategy()
	dots.ApplyStyle(dotsStyle)
	dots.Build(layer.New())

	bounds := graphics.RectFromLTWH(0, 0, 120, 40)
	wave.Layout(bounds)
	dots.Layout(bounds)

	if wave.dot.Frame != dots.dot.Frame {
		t.Errorf("wave dot frame %+v differs from dots frame %+v", wave.dot.Frame, dots.dot.Frame)
	}
	if wave.replicator.InstanceTranslation != dots.replicator.InstanceTranslation {
		t.Error("wave instance translation differs from dots")
	}
}

func TestWaveDotsStrategy_AnimationDescription(t *testing.T) {
	style := DefaultWaveDotsStyle()
	style.Amplitude = 6

	s := NewWaveDotsStrategy()
	s.ApplyStyle(style)
	d := s.AnimationDescription()

	if !d.Repeats || !d.AutoReverse {
		t.Error("wave must repeat and auto-reverse")
	}
	if len(d.Children) != 2 {
		t.Fatalf("child animations = %d, want bounce + cross-fade", len(d.Children))
	}

	bounce := d.Children[0].(animation.FloatAnimation)
	if bounce.Property != animation.PropertyPositionY || bounce.From != -6 || bounce.To != 6 {
		t.Errorf("bounce animation = %+v, want -6 -> 6", bounce)
	}
	fade := d.Children[1].(animation.ColorAnimation)
	if fade.Property != animation.PropertyFillColor {
		t.Errorf("fade target = %q, want fill color", fade.Property)
	}
	if fade.From != style.PrimaryColor || fade.To != style.SecondaryColor {
		t.Error("fade must run primary -> secondary")
	}
}
