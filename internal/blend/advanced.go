package blend

import (
	"math"

	"github.com/gogpu/tinyskia/internal/color"
)

// epsilon guards divisions by alpha and by 1-S in color dodge.
const epsilon = 1e-9

// rgb is an un-premultiplied color triple.
type rgb [3]float64

// unpremultiply divides the color channels by alpha. Near-transparent
// colors become black.
func unpremultiply(c color.Premultiplied) rgb {
	if c.A < epsilon {
		return rgb{}
	}
	inv := 1 / c.A
	return rgb{c.R * inv, c.G * inv, c.B * inv}
}

// composite recombines the blend function result b with the premultiplied
// inputs: b·Sa·Da + S·(1−Da) + D·(1−Sa).
func composite(src, dst color.Premultiplied, b rgb) color.Premultiplied {
	sa, da := src.A, dst.A
	ch := func(i int, s, d float64) float64 {
		return b[i]*sa*da + s*(1-da) + d*(1-sa)
	}
	return color.Premultiplied{
		R: ch(0, src.R, dst.R),
		G: ch(1, src.G, dst.G),
		B: ch(2, src.B, dst.B),
		A: sa + da - sa*da,
	}
}

// blendFunction evaluates B(Cs, Cb) for the separable and non-separable
// modes on un-premultiplied inputs.
func blendFunction(mode Mode, s, d rgb) rgb {
	switch mode {
	case ModeHue:
		return SetLum(SetSat(s, Sat(d)), Lum(d))
	case ModeSaturation:
		return SetLum(SetSat(d, Sat(s)), Lum(d))
	case ModeColor:
		return SetLum(s, Lum(d))
	case ModeLuminosity:
		return SetLum(d, Lum(s))
	}

	f := channelFunc(mode)
	if f == nil {
		return rgb{}
	}
	return rgb{f(s[0], d[0]), f(s[1], d[1]), f(s[2], d[2])}
}

// channelFunc returns the per-channel function of a separable mode.
func channelFunc(mode Mode) func(s, d float64) float64 {
	switch mode {
	case ModeMultiply:
		return multiply
	case ModeScreen:
		return screen
	case ModeOverlay:
		return overlay
	case ModeDarken:
		return math.Min
	case ModeLighten:
		return math.Max
	case ModeColorDodge:
		return colorDodge
	case ModeColorBurn:
		return colorBurn
	case ModeHardLight:
		return hardLight
	case ModeSoftLight:
		return softLight
	case ModeDifference:
		return difference
	case ModeExclusion:
		return exclusion
	default:
		return nil
	}
}

// multiply: S * D
func multiply(s, d float64) float64 {
	return s * d
}

// screen: S + D - S*D
func screen(s, d float64) float64 {
	return s + d - s*d
}

// overlay is hard light with the layers swapped.
func overlay(s, d float64) float64 {
	return hardLight(d, s)
}

// hardLight: multiply when S <= 0.5, screen otherwise.
func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

// colorDodge: D / (1 - S), capped at 1.
func colorDodge(s, d float64) float64 {
	if s >= 1 {
		return 1
	}
	return math.Min(1, d/math.Max(1-s, epsilon))
}

// colorBurn: 1 - (1 - D) / S, floored at 0.
func colorBurn(s, d float64) float64 {
	if s <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

// softLight follows the W3C formula.
func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var g float64
	if d <= 0.25 {
		g = ((16*d-12)*d + 4) * d
	} else {
		g = math.Sqrt(d)
	}
	return d + (2*s-1)*(g-d)
}

// difference: |D - S|
func difference(s, d float64) float64 {
	return math.Abs(d - s)
}

// exclusion: S + D - 2*S*D
func exclusion(s, d float64) float64 {
	return d + s - 2*d*s
}
