package tinyskia

import "github.com/gogpu/tinyskia/internal/wide"

// LinearGradient interpolates stops along the line from Start to End in
// gradient space. Transform maps gradient space to device space.
type LinearGradient struct {
	Start     Point
	End       Point
	Spread    SpreadMode
	Transform Matrix
	Gradient  GradientData
}

// NewLinearGradient builds a linear gradient shader.
//
// A single stop yields a solid shader. When Start equals End the gradient
// collapses to a solid color: the last stop for SpreadPad, the average of
// the stops for SpreadRepeat and SpreadReflect.
func NewLinearGradient(start, end Point, stops []GradientStop, spread SpreadMode, m Matrix) (Shader, error) {
	switch len(stops) {
	case 0:
		return Shader{}, ErrNoGradientStops
	case 1:
		return NewSolidShader(stops[0].Color), nil
	}
	if !isTransformInvertible(m) {
		return Shader{}, ErrSingularTransform
	}

	if start == end {
		if spread == SpreadPad {
			return NewSolidShader(stops[len(stops)-1].Color), nil
		}
		return NewSolidShader(averageColor(stops)), nil
	}

	data, err := NormalizeStops(stops)
	if err != nil {
		return Shader{}, err
	}
	return Shader{
		kind: ShaderLinearGradient,
		linear: &LinearGradient{
			Start:     start,
			End:       end,
			Spread:    spread,
			Transform: m,
			Gradient:  data,
		},
	}, nil
}

func (c *ShaderContext) sampleLinear(pos Point) Color {
	g := c.shader.linear
	if nearZero64(c.linearLenSq) {
		return g.Gradient.Stops[len(g.Gradient.Stops)-1].Color
	}
	return sampleGradient(&g.Gradient, applySpread(c.linearT(pos), g.Spread))
}

// linearT projects the device point pos onto the gradient vector.
func (c *ShaderContext) linearT(pos Point) float32 {
	local := c.inv.TransformPoint(pos)
	return float32(local.Sub(c.shader.linear.Start).Dot(c.linearDelta) / c.linearLenSq)
}

// SampleLinearSpan shades len(dst) pixels of row y starting at column x.
// It only handles linear gradients with SpreadPad and reports false for
// anything else, in which case the caller samples per pixel. The result
// equals Sample at every pixel center. Blocks of pixels that share a stop
// interval are interpolated in 4 or 8 lanes when the CPU allows.
func (c *ShaderContext) SampleLinearSpan(x, y int, dst []Color) bool {
	return c.sampleLinearSpan(x, y, dst, detectCPU().blockMode())
}

func (c *ShaderContext) sampleLinearSpan(x, y int, dst []Color, mode blockMode) bool {
	if c.shader.kind != ShaderLinearGradient || len(dst) == 0 {
		return false
	}
	g := c.shader.linear
	if g.Spread != SpreadPad {
		return false
	}

	data := &g.Gradient
	if nearZero64(c.linearLenSq) {
		last := data.Stops[len(data.Stops)-1].Color
		for i := range dst {
			dst[i] = last
		}
		return true
	}

	fy := float64(y) + 0.5
	tAt := func(i int) float32 {
		return clampUnit32(c.linearT(Pt(float64(x+i)+0.5, fy)))
	}

	index := findInitialStopIndex(data, tAt(0))
	i := 0
	if mode == blockX8 {
		for ; len(dst)-i >= 8; i += 8 {
			var lo, hi wide.F32x4
			for j := range 4 {
				lo[j] = tAt(i + j)
				hi[j] = tAt(i + 4 + j)
			}
			t := wide.Join(lo, hi)
			if lerpBlock8(data, t, dst[i:i+8], &index) {
				continue
			}
			for half, ts := range [2]wide.F32x4{t.Lo(), t.Hi()} {
				out := dst[i+4*half : i+4*half+4]
				if !lerpBlock4(data, ts, out, &index) {
					sampleLanes(data, ts[:], out, &index)
				}
			}
		}
	}
	if mode >= blockX4 {
		for ; len(dst)-i >= 4; i += 4 {
			var t wide.F32x4
			for j := range t {
				t[j] = tAt(i + j)
			}
			if !lerpBlock4(data, t, dst[i:i+4], &index) {
				sampleLanes(data, t[:], dst[i:i+4], &index)
			}
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = sampleGradientAt(data, tAt(i), &index)
	}
	return true
}

// sampleLanes shades each t one at a time.
func sampleLanes(g *GradientData, ts []float32, dst []Color, index *int) {
	for j, t := range ts {
		dst[j] = sampleGradientAt(g, t, index)
	}
}

// blockInterval returns the stop interval shared by every t, or false when
// the ts straddle a stop or the interval has zero width.
func blockInterval(g *GradientData, ts []float32, index *int) (int, bool) {
	i := findStopInterval(g, ts[0], *index)
	*index = i
	for _, t := range ts[1:] {
		if !inStopInterval(g, i, t) {
			return 0, false
		}
	}
	return i, !nearZero32(g.Stops[i+1].Position - g.Stops[i].Position)
}

// lerpBlock4 interpolates 4 pixels in lanes. The arithmetic follows
// icolor.Lerp step by step, so each lane matches sampleGradient.
func lerpBlock4(g *GradientData, t wide.F32x4, dst []Color, index *int) bool {
	i, ok := blockInterval(g, t[:], index)
	if !ok {
		return false
	}
	left, right := g.Stops[i], g.Stops[i+1]
	frac := t.Sub(wide.SplatF32x4(left.Position)).
		Div(wide.SplatF32x4(right.Position - left.Position)).
		Clamp(0, 1)
	channel := func(l, r uint8) wide.F32x4 {
		return wide.SplatF32x4(float32(l)).Lerp(wide.SplatF32x4(float32(r)), frac).Clamp(0, 255).Round()
	}
	rs := channel(left.Color.R, right.Color.R)
	gs := channel(left.Color.G, right.Color.G)
	bs := channel(left.Color.B, right.Color.B)
	as := channel(left.Color.A, right.Color.A)
	for j := range dst[:4] {
		dst[j] = Color{R: uint8(rs[j]), G: uint8(gs[j]), B: uint8(bs[j]), A: uint8(as[j])}
	}
	return true
}

// lerpBlock8 is lerpBlock4 over 8 lanes.
func lerpBlock8(g *GradientData, t wide.F32x8, dst []Color, index *int) bool {
	i, ok := blockInterval(g, t[:], index)
	if !ok {
		return false
	}
	left, right := g.Stops[i], g.Stops[i+1]
	frac := t.Sub(wide.SplatF32x8(left.Position)).
		Div(wide.SplatF32x8(right.Position - left.Position)).
		Clamp(0, 1)
	channel := func(l, r uint8) wide.F32x8 {
		return wide.SplatF32x8(float32(l)).Lerp(wide.SplatF32x8(float32(r)), frac).Clamp(0, 255).Round()
	}
	rs := channel(left.Color.R, right.Color.R)
	gs := channel(left.Color.G, right.Color.G)
	bs := channel(left.Color.B, right.Color.B)
	as := channel(left.Color.A, right.Color.A)
	for j := range dst[:8] {
		dst[j] = Color{R: uint8(rs[j]), G: uint8(gs[j]), B: uint8(bs[j]), A: uint8(as[j])}
	}
	return true
}
