package graphics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Lerp linearly interpolates each ARGB channel toward other at t (0.0 to 1.0).
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	lerpByte := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return RGBA8(
		lerpByte(uint8(c>>16), uint8(other>>16)),
		lerpByte(uint8(c>>8), uint8(other>>8)),
		lerpByte(uint8(c), uint8(other)),
		lerpByte(uint8(c>>24), uint8(other>>24)),
	)
}

// BlendHCL interpolates toward other at t in HCL space, which keeps
// intermediate hues from washing out the way channel-wise blending does.
// Alpha is interpolated linearly.
func (c Color) BlendHCL(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{
		R: float64(uint8(c>>16)) / maxByte,
		G: float64(uint8(c>>8)) / maxByte,
		B: float64(uint8(c)) / maxByte,
	}
	b := colorful.Color{
		R: float64(uint8(other>>16)) / maxByte,
		G: float64(uint8(other>>8)) / maxByte,
		B: float64(uint8(other)) / maxByte,
	}
	blended := a.BlendHcl(b, t).Clamped()
	alpha := c.Alpha() + (other.Alpha()-c.Alpha())*t
	return RGBA(
		uint8(math.Round(blended.R*maxByte)),
		uint8(math.Round(blended.G*maxByte)),
		uint8(math.Round(blended.B*maxByte)),
		alpha,
	)
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" (leading '#' optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var value uint32
	if _, err := fmt.Sscanf(s, "%x", &value); err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(s) {
	case 6:
		return Color(value | 0xFF000000), nil
	case 8:
		return Color(value), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
