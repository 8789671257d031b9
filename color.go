package rt

import (
	"fmt"
	"math"
)

// Color is a linear RGB value with floating-point channels, stored as a
// 3-slot tuple. Channels are nominally in [0,1] but no range invariant
// is enforced: additive and multiplicative blending may push a channel
// past 1 transiently, and only quantization to 8 bits clamps.
//
// The zero value is black.
type Color[T Float] Tuple3[T]

// RGB creates a Color from red, green, and blue channels.
func RGB[T Float](r, g, b T) Color[T] {
	return Color[T]{r, g, b}
}

// Tuple returns the underlying 3-slot tuple.
func (c Color[T]) Tuple() Tuple3[T] { return Tuple3[T](c) }

// R returns the red channel.
func (c Color[T]) R() T { return c[0] }

// G returns the green channel.
func (c Color[T]) G() T { return c[1] }

// B returns the blue channel.
func (c Color[T]) B() T { return c[2] }

// SetR writes the red channel.
func (c *Color[T]) SetR(v T) { c[0] = v }

// SetG writes the green channel.
func (c *Color[T]) SetG(v T) { c[1] = v }

// SetB writes the blue channel.
func (c *Color[T]) SetB(v T) { c[2] = v }

// Add returns the channel-wise sum of two colors.
func (c Color[T]) Add(o Color[T]) Color[T] {
	return Color[T](Tuple3[T](c).Add(Tuple3[T](o)))
}

// Sub returns the channel-wise difference of two colors.
func (c Color[T]) Sub(o Color[T]) Color[T] {
	return Color[T](Tuple3[T](c).Sub(Tuple3[T](o)))
}

// Scale returns the color with every channel multiplied by s.
func (c Color[T]) Scale(s T) Color[T] {
	return Color[T](Tuple3[T](c).Scale(s))
}

// Div returns the color with every channel divided by s.
func (c Color[T]) Div(s T) Color[T] {
	return Color[T](Tuple3[T](c).Div(s))
}

// Mul returns the Hadamard product: each channel of c multiplied by the
// matching channel of o. This is how a surface color filters a light
// color.
func (c Color[T]) Mul(o Color[T]) Color[T] {
	return Color[T]{c[0] * o[0], c[1] * o[1], c[2] * o[2]}
}

// ApproxEq reports whether every channel of c is within eps of the
// matching channel of o, using absolute difference.
func (c Color[T]) ApproxEq(o Color[T], eps T) bool {
	return ApproxEq(float64(c[0]), float64(o[0]), float64(eps)) &&
		ApproxEq(float64(c[1]), float64(o[1]), float64(eps)) &&
		ApproxEq(float64(c[2]), float64(o[2]), float64(eps))
}

// RGB8 is a quantized 8-bit color, the form the PPM encoder consumes.
type RGB8 struct {
	R, G, B uint8
}

// String formats the color as the "R G B" pixel token used by the P3
// format.
func (c RGB8) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// RGB8 quantizes the color to 8-bit channels. Each channel is clamped
// to at most 1.0, scaled by 255, and rounded to the nearest integer,
// so 0.6 maps to 153 rather than to the truncation of 152.999….
//
// Clamping is one-sided: channels are assumed to be non-negative and a
// negative input is not clamped to 0, so its converted value follows
// Go's out-of-range float-to-uint8 conversion behavior.
func (c Color[T]) RGB8() RGB8 {
	return RGB8{quantize(c[0]), quantize(c[1]), quantize(c[2])}
}

// quantize maps a single channel to 8 bits with the upper-bound clamp.
func quantize[T Float](v T) uint8 {
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(float64(v) * 255))
}
