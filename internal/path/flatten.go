package path

import "math"

// Flattening tolerances. The value is the largest allowed difference between
// the control polygon length and the chord length of a cubic piece.
const (
	// FillTolerance is used when building edges for filling.
	FillTolerance = 0.25
	// StrokeTolerance is used when flattening for stroking and dashing.
	StrokeTolerance = 0.001
	// MaxFlattenDepth bounds the recursive subdivision.
	MaxFlattenDepth = 10
)

// FlattenCubic subdivides the cubic p0..p3 at t=0.5 until each piece is flat
// within tolerance, appending the end point of every piece to dst.
// p0 itself is not appended.
func FlattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	if depth > MaxFlattenDepth || isFlatEnough(p0, p1, p2, p3, tolerance) {
		return append(dst, p3)
	}

	// de Casteljau split
	q0 := p0.Midpoint(p1)
	q1 := p1.Midpoint(p2)
	q2 := p2.Midpoint(p3)
	r0 := q0.Midpoint(q1)
	r1 := q1.Midpoint(q2)
	s := r0.Midpoint(r1)

	dst = flattenCubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

func isFlatEnough(p0, p1, p2, p3 Point, tolerance float64) bool {
	chord := p3.Distance(p0)
	net := p1.Distance(p0) + p2.Distance(p1) + p3.Distance(p2)
	return net-chord <= tolerance
}

// evalCubic evaluates one coordinate of a cubic Bezier at t.
func evalCubic(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return p0*mt*mt*mt + 3*p1*mt*mt*t + 3*p2*mt*t*t + p3*t*t*t
}

// cubicExtrema calls fn with every parameter in (0,1) where the derivative
// of one cubic coordinate vanishes.
func cubicExtrema(p0, p1, p2, p3 float64, fn func(t float64)) {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	if math.Abs(a) <= singularEpsilon {
		if math.Abs(b) <= singularEpsilon {
			return
		}
		if t := -c / b; t > 0 && t < 1 {
			fn(t)
		}
		return
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return
	}
	sq := math.Sqrt(disc)
	if t := (-b + sq) / (2 * a); t > 0 && t < 1 {
		fn(t)
	}
	if t := (-b - sq) / (2 * a); t > 0 && t < 1 {
		fn(t)
	}
}
