package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/loading"
)

func TestParse_MergesOverDefaults(t *testing.T) {
	sheet, err := Parse([]byte(`
dots:
  color: "#FF3B30"
  count: 5
ring:
  duration: 800ms
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dots, err := sheet.DotsStyle()
	if err != nil {
		t.Fatalf("DotsStyle: %v", err)
	}
	if dots.Color != graphics.RGB(0xFF, 0x3B, 0x30) {
		t.Errorf("dots color = %v, want #FF3B30", dots.Color)
	}
	if dots.Count != 5 {
		t.Errorf("dots count = %d, want 5", dots.Count)
	}
	// Unnamed fields keep the mode defaults.
	if dots.DotSize != loading.DefaultDotsStyle().DotSize {
		t.Errorf("dots size = %v, want default", dots.DotSize)
	}

	ring, err := sheet.RingStyle()
	if err != nil {
		t.Fatalf("RingStyle: %v", err)
	}
	if ring.Duration != 800*time.Millisecond {
		t.Errorf("ring duration = %v, want 800ms", ring.Duration)
	}
	if ring.GapRatio != loading.DefaultRingStyle().GapRatio {
		t.Errorf("ring gap = %v, want default", ring.GapRatio)
	}
}

func TestParse_EmptySheetYieldsDefaults(t *testing.T) {
	sheet, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	shimmer, err := sheet.ShimmerStyle()
	if err != nil {
		t.Fatalf("ShimmerStyle: %v", err)
	}
	if shimmer != loading.DefaultShimmerStyle() {
		t.Errorf("shimmer = %+v, want defaults", shimmer)
	}

	wave, err := sheet.WaveDotsStyle()
	if err != nil {
		t.Fatalf("WaveDotsStyle: %v", err)
	}
	if wave != loading.DefaultWaveDotsStyle() {
		t.Errorf("wave = %+v, want defaults", wave)
	}
}

func TestParse_ZeroOverrideIsApplied(t *testing.T) {
	// An explicit zero differs from an absent field.
	sheet, err := Parse([]byte("ring:\n  gapRatio: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ring, err := sheet.RingStyle()
	if err != nil {
		t.Fatalf("RingStyle: %v", err)
	}
	if ring.GapRatio != 0 {
		t.Errorf("gap ratio = %v, want explicit 0", ring.GapRatio)
	}
}

func TestStylesheet_InvalidColor(t *testing.T) {
	sheet, err := Parse([]byte("dots:\n  color: \"not-a-color\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := sheet.DotsStyle(); err == nil {
		t.Error("DotsStyle accepted an invalid color")
	}
}

func TestStylesheet_InvalidDuration(t *testing.T) {
	sheet, err := Parse([]byte("wave:\n  duration: \"fast\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := sheet.WaveDotsStyle(); err == nil {
		t.Error("WaveDotsStyle accepted an invalid duration")
	}
}

func TestLoad_MissingFileIsEmptySheet(t *testing.T) {
	sheet, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dots, err := sheet.DotsStyle()
	if err != nil {
		t.Fatalf("DotsStyle: %v", err)
	}
	if dots != loading.DefaultDotsStyle() {
		t.Errorf("dots = %+v, want defaults for a missing file", dots)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("shimmer:\n  widthRatio: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sheet, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	shimmer, err := sheet.ShimmerStyle()
	if err != nil {
		t.Fatalf("ShimmerStyle: %v", err)
	}
	if shimmer.WidthRatio != 0.5 {
		t.Errorf("width ratio = %v, want 0.5", shimmer.WidthRatio)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("dots: [not a mapping")); err == nil {
		t.Error("Parse accepted malformed YAML")
	}
}
