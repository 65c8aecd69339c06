// Package main renders loading-indicator animation frames to PNG files.
// It drives the animation clock manually, so the output is deterministic:
//
//	loadingsnap -mode wave -frames 12 -out frames/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/loading/pkg/animation"
	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/layer"
	"github.com/go-drift/loading/pkg/loading"
	"github.com/go-drift/loading/pkg/raster"
	"github.com/go-drift/loading/pkg/theme"
)

// view is the mode-independent slice of loading.View used by the renderer.
type view interface {
	SetBounds(graphics.Rect)
	StartAnimating()
	Layer() *layer.Layer
}

// steppedClock advances by a fixed amount per frame.
type steppedClock struct {
	now time.Time
}

func (c *steppedClock) Now() time.Time { return c.now }

func main() {
	mode := flag.String("mode", "dots", "indicator mode: dots, ring, shimmer, wave")
	width := flag.Float64("width", 120, "frame width in pixels")
	height := flag.Float64("height", 40, "frame height in pixels")
	frames := flag.Int("frames", 10, "number of frames to render")
	interval := flag.Duration("interval", 100*time.Millisecond, "time between frames")
	stylesheet := flag.String("theme", "", "optional YAML stylesheet path")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	if err := run(*mode, *width, *height, *frames, *interval, *stylesheet, *out); err != nil {
		fmt.Fprintf(os.Stderr, "loadingsnap: %v\n", err)
		os.Exit(1)
	}
}

func run(mode string, width, height float64, frames int, interval time.Duration, stylesheetPath, out string) error {
	sheet, err := theme.Load(stylesheetPath)
	if err != nil {
		return err
	}

	v, err := buildView(mode, sheet)
	if err != nil {
		return err
	}

	clock := &steppedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	size := graphics.Size{Width: width, Height: height}
	v.SetBounds(graphics.RectFromSize(size))
	v.StartAnimating()

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i := 0; i < frames; i++ {
		frame := raster.Render(v.Layer(), size, clock.now)
		path := filepath.Join(out, fmt.Sprintf("%s_%03d.png", mode, i))
		if err := writePNG(path, frame); err != nil {
			return err
		}
		clock.now = clock.now.Add(interval)
	}
	return nil
}

func buildView(mode string, sheet *theme.Stylesheet) (view, error) {
	switch mode {
	case "dots":
		style, err := sheet.DotsStyle()
		if err != nil {
			return nil, err
		}
		v := loading.NewView(loading.DotsMode{})
		v.SetStyle(style)
		return v, nil
	case "ring":
		style, err := sheet.RingStyle()
		if err != nil {
			return nil, err
		}
		v := loading.NewView(loading.RingMode{})
		v.SetStyle(style)
		return v, nil
	case "shimmer":
		style, err := sheet.ShimmerStyle()
		if err != nil {
			return nil, err
		}
		v := loading.NewView(loading.ShimmerMode{})
		v.SetStyle(style)
		return v, nil
	case "wave":
		style, err := sheet.WaveDotsStyle()
		if err != nil {
			return nil, err
		}
		v := loading.NewView(loading.WaveDotsMode{})
		v.SetStyle(style)
		return v, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want dots, ring, shimmer, or wave)", mode)
	}
}

func writePNG(path string, frame image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, frame); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
