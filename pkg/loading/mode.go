package loading

import "github.com/go-drift/loading/pkg/graphics"

// Mode statically binds a strategy type to its default style and an
// intrinsic-size function. Modes are stateless marker values ([DotsMode],
// [RingMode], [ShimmerMode], [WaveDotsMode]); the strategy/style pairing is
// fixed at the type level, so a [View] created for one mode only accepts
// that mode's style.
type Mode[S any] interface {
	// NewStrategy produces a fresh strategy instance.
	NewStrategy() Strategy[S]

	// DefaultStyle returns the style a new view starts with.
	DefaultStyle() S

	// IntrinsicSize maps a style to the indicator's preferred natural size.
	// It is pure and never returns a dimension below 1.
	IntrinsicSize(style S) graphics.Size
}

// Compile-time checks that every mode satisfies its binding.
var (
	_ Mode[DotsStyle]     = DotsMode{}
	_ Mode[RingStyle]     = RingMode{}
	_ Mode[ShimmerStyle]  = ShimmerMode{}
	_ Mode[WaveDotsStyle] = WaveDotsMode{}
)
