package tinyskia

import (
	"math"

	icolor "github.com/gogpu/tinyskia/internal/color"
)

// Pattern paints a pixmap. Transform maps pixmap space to device space.
// The pixmap is referenced, not copied; it must not change while a shader
// context built from the pattern is in use.
type Pattern struct {
	Pixmap    *Pixmap
	Spread    SpreadMode
	Quality   FilterQuality
	Opacity   float32
	Transform Matrix
}

// NewPattern builds a pattern shader. Opacity is clamped to [0, 1].
func NewPattern(pm *Pixmap, spread SpreadMode, quality FilterQuality, opacity float32, m Matrix) (Shader, error) {
	if !pm.IsValid() {
		return Shader{}, ErrMissingPixmap
	}
	if !isTransformInvertible(m) {
		return Shader{}, ErrSingularTransform
	}
	return Shader{
		kind: ShaderPattern,
		pattern: &Pattern{
			Pixmap:    pm,
			Spread:    spread,
			Quality:   quality,
			Opacity:   min(max(opacity, 0), 1),
			Transform: m,
		},
	}, nil
}

func (c *ShaderContext) samplePattern(pos Point) Color {
	if !c.pixmap.IsValid() {
		return Transparent
	}

	// Source pixel centers sit at half-integer coordinates, like device
	// pixel centers.
	local := c.inv.TransformPoint(pos)
	var sampled Color
	switch c.quality {
	case FilterBilinear:
		sampled = c.sampleBilinear(local.Sub(Pt(0.5, 0.5)))
	case FilterBicubic:
		sampled = c.sampleBicubic(local.Sub(Pt(0.5, 0.5)))
	default:
		sampled = c.sampleWithSpread(math.Floor(local.X), math.Floor(local.Y))
	}
	return icolor.MultiplyColor(sampled, c.shader.pattern.Opacity)
}

func (c *ShaderContext) sampleBilinear(local Point) Color {
	fx, fy := math.Floor(local.X), math.Floor(local.Y)
	dx, dy := local.X-fx, local.Y-fy

	c00 := c.sampleWithSpread(fx, fy)
	c10 := c.sampleWithSpread(fx+1, fy)
	c01 := c.sampleWithSpread(fx, fy+1)
	c11 := c.sampleWithSpread(fx+1, fy+1)

	mix := func(a, b, cc, d uint8) uint8 {
		top := lerp64(float64(a), float64(b), dx)
		bottom := lerp64(float64(cc), float64(d), dx)
		return icolor.ClampToByte(float32(lerp64(top, bottom, dy)))
	}
	return Color{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

func (c *ShaderContext) sampleBicubic(local Point) Color {
	fx, fy := math.Floor(local.X), math.Floor(local.Y)

	var r, g, b, a, sum float64
	for y := -1; y <= 2; y++ {
		wy := cubicWeight(local.Y - (fy + float64(y)))
		for x := -1; x <= 2; x++ {
			w := cubicWeight(local.X-(fx+float64(x))) * wy
			if nearZero64(w) {
				continue
			}
			s := c.sampleWithSpread(fx+float64(x), fy+float64(y))
			r += w * float64(s.R)
			g += w * float64(s.G)
			b += w * float64(s.B)
			a += w * float64(s.A)
			sum += w
		}
	}
	if nearZero64(sum) {
		return Transparent
	}

	inv := 1 / sum
	return Color{
		R: icolor.ClampToByte(float32(r * inv)),
		G: icolor.ClampToByte(float32(g * inv)),
		B: icolor.ClampToByte(float32(b * inv)),
		A: icolor.ClampToByte(float32(a * inv)),
	}
}

// cubicWeight is the Catmull-Rom kernel.
func cubicWeight(t float64) float64 {
	a := math.Abs(t)
	switch {
	case a <= 1:
		return (1.5*a-2.5)*a*a + 1
	case a < 2:
		return ((-0.5*a+2.5)*a-4)*a + 2
	default:
		return 0
	}
}

// sampleWithSpread reads the pixel at (x, y) after applying the spread
// mode on each axis.
func (c *ShaderContext) sampleWithSpread(x, y float64) Color {
	pm := c.pixmap
	spread := c.shader.pattern.Spread
	ix := spreadIndex(x, pm.width, spread)
	iy := spreadIndex(y, pm.height, spread)
	return loadPixel(pm.data[iy*pm.stride+ix*4:])
}

// spreadIndex maps the pixel containing v to an index in [0, extent-1].
// Reflect mirrors whole pixels, so both edge pixels repeat once per fold.
func spreadIndex(v float64, extent int, mode SpreadMode) int {
	if extent <= 0 {
		return 0
	}
	v = math.Floor(v)
	n := float64(extent)
	switch mode {
	case SpreadRepeat:
		v = math.Mod(v, n)
		if v < 0 {
			v += n
		}
	case SpreadReflect:
		period := 2 * n
		v = math.Mod(v, period)
		if v < 0 {
			v += period
		}
		if v >= n {
			v = period - 1 - v
		}
	}
	return clampIndex(v, extent-1)
}

// clampIndex converts v to an index in [0, limit]. NaN maps to 0.
func clampIndex(v float64, limit int) int {
	switch {
	case !(v >= 0):
		return 0
	case v >= float64(limit):
		return limit
	default:
		return int(v)
	}
}

func lerp64(a, b, t float64) float64 {
	return a + (b-a)*t
}
