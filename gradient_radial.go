package tinyskia

import (
	"math"

	"github.com/chewxy/math32"
)

// RadialGradient is a two-point conical gradient: t = 0 at Start and t = 1
// on the circle of the given Radius around End. Transform maps gradient
// space to device space.
type RadialGradient struct {
	Start     Point
	End       Point
	Radius    float32
	Spread    SpreadMode
	Transform Matrix
	Gradient  GradientData
}

// NewRadialGradient builds a radial gradient shader.
//
// The radius must be positive. A single stop yields a solid shader.
// Coincident points combined with a radius below 1/32768 are rejected as
// degenerate.
func NewRadialGradient(start, end Point, radius float32, stops []GradientStop, spread SpreadMode, m Matrix) (Shader, error) {
	if radius < 0 || nearZero32(radius) || math32.IsNaN(radius) {
		return Shader{}, ErrInvalidRadius
	}
	switch len(stops) {
	case 0:
		return Shader{}, ErrNoGradientStops
	case 1:
		return NewSolidShader(stops[0].Color), nil
	}
	if !isTransformInvertible(m) {
		return Shader{}, ErrSingularTransform
	}

	length := end.Sub(start).Length()
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return Shader{}, ErrNonFiniteGradient
	}
	if length <= float64(degenerateThreshold) && radius <= degenerateThreshold {
		return Shader{}, ErrDegenerateGradient
	}

	data, err := NormalizeStops(stops)
	if err != nil {
		return Shader{}, err
	}
	return Shader{
		kind: ShaderRadialGradient,
		radial: &RadialGradient{
			Start:     start,
			End:       end,
			Radius:    radius,
			Spread:    spread,
			Transform: m,
			Gradient:  data,
		},
	}, nil
}

// sampleRadial solves a*t^2 + b*t + c = 0 for the gradient parameter,
// preferring the smaller non-negative root. Points with no valid root get
// the last stop color.
func (c *ShaderContext) sampleRadial(pos Point) Color {
	g := c.shader.radial
	last := g.Gradient.Stops[len(g.Gradient.Stops)-1].Color
	if nearZero64(c.radialRadius) {
		return last
	}

	toPoint := c.inv.TransformPoint(pos).Sub(g.Start)
	b := -2 * toPoint.Dot(c.radialDelta)
	cc := toPoint.LengthSquared()

	var t float64
	found := false
	if nearZero64(c.radialA) {
		if !nearZero64(b) {
			t, found = -cc/b, true
		}
	} else if disc := b*b - 4*c.radialA*cc; disc >= 0 {
		sq := math.Sqrt(disc)
		t0 := (-b - sq) / (2 * c.radialA)
		t1 := (-b + sq) / (2 * c.radialA)

		root := t1
		if t0 >= 0 && isFinite(t0) {
			root = t0
		}
		if root >= 0 && isFinite(root) {
			t, found = root, true
		}
	}
	if !found {
		return last
	}
	return sampleGradient(&g.Gradient, applySpread(float32(t), g.Spread))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
