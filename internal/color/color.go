// Package color provides the 8-bit straight-alpha and normalized
// premultiplied color types used by the blend and paint stages, along with
// the conversions between them.
//
// All conversions follow a fixed rounding contract:
//   - 8-bit premultiply is (channel*alpha + 127) / 255 in integers
//   - float to byte clamps first, then rounds half away from zero
package color

import (
	"math"

	"github.com/chewxy/math32"
)

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 returns a straight-alpha color.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 returns an opaque color.
func RGB8(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB8(0, 0, 0)
	White       = RGB8(255, 255, 255)
)

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool {
	return c.A == 255
}

// RGBA implements image/color.Color. The result is alpha-premultiplied
// 16-bit, as the image/color package expects.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Premultiplied is a premultiplied color with channels in [0, 1].
type Premultiplied struct {
	R, G, B, A float64
}

// Premultiply converts c to premultiplied form. The color channels are
// premultiplied in 8-bit integers with round-to-nearest before being
// normalized, so the result is exactly representable as bytes.
func Premultiply(c Color) Premultiplied {
	return Premultiplied{
		R: float64(MulDiv255(c.R, c.A)) / 255,
		G: float64(MulDiv255(c.G, c.A)) / 255,
		B: float64(MulDiv255(c.B, c.A)) / 255,
		A: float64(c.A) / 255,
	}
}

// ToColor converts p to bytes without un-premultiplying. Channels are
// clamped to [0, 1], scaled by 255 and rounded half away from zero.
func ToColor(p Premultiplied) Color {
	return Color{
		R: unitToByte(p.R),
		G: unitToByte(p.G),
		B: unitToByte(p.B),
		A: unitToByte(p.A),
	}
}

// Straight converts p back to an 8-bit straight-alpha color. Fully
// transparent results become zero. For opaque colors the result equals
// ToColor(p).
func (p Premultiplied) Straight() Color {
	a := clamp01(p.A)
	if a == 0 {
		return Color{}
	}
	inv := 1 / a
	return Color{
		R: unitToByte(p.R * inv),
		G: unitToByte(p.G * inv),
		B: unitToByte(p.B * inv),
		A: unitToByte(a),
	}
}

// MulDiv255 returns (a*b + 127) / 255.
func MulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255) // #nosec G115 -- result <= 255
}

// ClampToByte clamps v to [0, 255] and rounds half away from zero.
func ClampToByte(v float32) uint8 {
	return uint8(math32.Round(min(max(v, 0), 255)))
}

// MultiplyColor scales every channel of c, alpha included, by scale
// clamped to [0, 1].
func MultiplyColor(c Color, scale float32) Color {
	s := min(max(scale, 0), 1)
	return Color{
		R: ClampToByte(s * float32(c.R)),
		G: ClampToByte(s * float32(c.G)),
		B: ClampToByte(s * float32(c.B)),
		A: ClampToByte(s * float32(c.A)),
	}
}

// Lerp interpolates between two straight colors in float32 with t clamped
// to [0, 1]. Each product is rounded to float32 before the sum.
func Lerp(left, right Color, t float32) Color {
	t = min(max(t, 0), 1)
	inv := 1 - t
	return Color{
		R: ClampToByte(float32(float32(left.R)*inv) + float32(float32(right.R)*t)),
		G: ClampToByte(float32(float32(left.G)*inv) + float32(float32(right.G)*t)),
		B: ClampToByte(float32(float32(left.B)*inv) + float32(float32(right.B)*t)),
		A: ClampToByte(float32(float32(left.A)*inv) + float32(float32(right.A)*t)),
	}
}

// Average returns the channel-wise mean of colors. It returns Transparent
// for an empty slice.
func Average(colors []Color) Color {
	if len(colors) == 0 {
		return Transparent
	}
	var r, g, b, a float32
	for _, c := range colors {
		r += float32(c.R)
		g += float32(c.G)
		b += float32(c.B)
		a += float32(c.A)
	}
	inv := 1 / float32(len(colors))
	return Color{
		R: ClampToByte(r * inv),
		G: ClampToByte(g * inv),
		B: ClampToByte(b * inv),
		A: ClampToByte(a * inv),
	}
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
