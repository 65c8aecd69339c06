// Package theme loads loading-indicator styles from an optional YAML
// stylesheet. Unspecified fields fall back to each mode's defaults, so a
// stylesheet only names what it changes:
//
//	dots:
//	  color: "#FF8E8E93"
//	  count: 4
//	ring:
//	  gapRatio: 0.2
//	  duration: 800ms
package theme

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/loading/pkg/graphics"
	"github.com/go-drift/loading/pkg/loading"
)

// Stylesheet holds per-mode style overrides parsed from YAML.
type Stylesheet struct {
	Dots    *DotsConfig     `yaml:"dots"`
	Ring    *RingConfig     `yaml:"ring"`
	Shimmer *ShimmerConfig  `yaml:"shimmer"`
	Wave    *WaveDotsConfig `yaml:"wave"`
}

// DotsConfig overrides fields of [loading.DotsStyle].
type DotsConfig struct {
	Color    string   `yaml:"color"`
	Count    *int     `yaml:"count"`
	DotSize  *float64 `yaml:"dotSize"`
	Spacing  *float64 `yaml:"spacing"`
	Duration string   `yaml:"duration"`
}

// RingConfig overrides fields of [loading.RingStyle].
type RingConfig struct {
	Color     string   `yaml:"color"`
	LineWidth *float64 `yaml:"lineWidth"`
	GapRatio  *float64 `yaml:"gapRatio"`
	Duration  string   `yaml:"duration"`
}

// ShimmerConfig overrides fields of [loading.ShimmerStyle].
type ShimmerConfig struct {
	BaseColor      string   `yaml:"baseColor"`
	HighlightColor string   `yaml:"highlightColor"`
	WidthRatio     *float64 `yaml:"widthRatio"`
	CornerRadius   *float64 `yaml:"cornerRadius"`
	Duration       string   `yaml:"duration"`
}

// WaveDotsConfig overrides fields of [loading.WaveDotsStyle].
type WaveDotsConfig struct {
	PrimaryColor   string   `yaml:"primaryColor"`
	SecondaryColor string   `yaml:"secondaryColor"`
	Count          *int     `yaml:"count"`
	DotSize        *float64 `yaml:"dotSize"`
	Spacing        *float64 `yaml:"spacing"`
	Amplitude      *float64 `yaml:"amplitude"`
	Duration       string   `yaml:"duration"`
}

// Load reads a stylesheet file. A missing file yields an empty stylesheet,
// so callers can treat the file as optional.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Stylesheet{}, nil
		}
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML stylesheet.
func Parse(data []byte) (*Stylesheet, error) {
	var sheet Stylesheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}
	return &sheet, nil
}

// DotsStyle merges the dots overrides over the mode defaults.
func (s *Stylesheet) DotsStyle() (loading.DotsStyle, error) {
	style := loading.DefaultDotsStyle()
	c := s.Dots
	if c == nil {
		return style, nil
	}
	if err := overrideColor(&style.Color, c.Color); err != nil {
		return style, fmt.Errorf("dots: %w", err)
	}
	overrideInt(&style.Count, c.Count)
	overrideFloat(&style.DotSize, c.DotSize)
	overrideFloat(&style.Spacing, c.Spacing)
	if err := overrideDuration(&style.Duration, c.Duration); err != nil {
		return style, fmt.Errorf("dots: %w", err)
	}
	return style, nil
}

// RingStyle merges the ring overrides over the mode defaults.
func (s *Stylesheet) RingStyle() (loading.RingStyle, error) {
	style := loading.DefaultRingStyle()
	c := s.Ring
	if c == nil {
		return style, nil
	}
	if err := overrideColor(&style.Color, c.Color); err != nil {
		return style, fmt.Errorf("ring: %w", err)
	}
	overrideFloat(&style.LineWidth, c.LineWidth)
	overrideFloat(&style.GapRatio, c.GapRatio)
	if err := overrideDuration(&style.Duration, c.Duration); err != nil {
		return style, fmt.Errorf("ring: %w", err)
	}
	return style, nil
}

// ShimmerStyle merges the shimmer overrides over the mode defaults.
func (s *Stylesheet) ShimmerStyle() (loading.ShimmerStyle, error) {
	style := loading.DefaultShimmerStyle()
	c := s.Shimmer
	if c == nil {
		return style, nil
	}
	if err := overrideColor(&style.BaseColor, c.BaseColor); err != nil {
		return style, fmt.Errorf("shimmer: %w", err)
	}
	if err := overrideColor(&style.HighlightColor, c.HighlightColor); err != nil {
		return style, fmt.Errorf("shimmer: %w", err)
	}
	overrideFloat(&style.WidthRatio, c.WidthRatio)
	overrideFloat(&style.CornerRadius, c.CornerRadius)
	if err := overrideDuration(&style.Duration, c.Duration); err != nil {
		return style, fmt.Errorf("shimmer: %w", err)
	}
	return style, nil
}

// WaveDotsStyle merges the wave overrides over the mode defaults.
func (s *Stylesheet) WaveDotsStyle() (loading.WaveDotsStyle, error) {
	style := loading.DefaultWaveDotsStyle()
	c := s.Wave
	if c == nil {
		return style, nil
	}
	if err := overrideColor(&style.PrimaryColor, c.PrimaryColor); err != nil {
		return style, fmt.Errorf("wave: %w", err)
	}
	if err := overrideColor(&style.SecondaryColor, c.SecondaryColor); err != nil {
		return style, fmt.Errorf("wave: %w", err)
	}
	overrideInt(&style.Count, c.Count)
	overrideFloat(&style.DotSize, c.DotSize)
	overrideFloat(&style.Spacing, c.Spacing)
	overrideFloat(&style.Amplitude, c.Amplitude)
	if err := overrideDuration(&style.Duration, c.Duration); err != nil {
		return style, fmt.Errorf("wave: %w", err)
	}
	return style, nil
}

func overrideColor(dst *graphics.Color, value string) error {
	if value == "" {
		return nil
	}
	color, err := graphics.ParseHex(value)
	if err != nil {
		return err
	}
	*dst = color
	return nil
}

func overrideDuration(dst *time.Duration, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	*dst = d
	return nil
}

func overrideFloat(dst *float64, value *float64) {
	if value != nil {
		*dst = *value
	}
}

func overrideInt(dst *int, value *int) {
	if value != nil {
		*dst = *value
	}
}
