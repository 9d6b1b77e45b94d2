package tinyskia

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	icolor "github.com/gogpu/tinyskia/internal/color"
)

// GradientStop is a color at a position in [0, 1] along a gradient.
type GradientStop struct {
	Position float32
	Color    Color
}

// GradientData is a normalized stop list: the first stop is at 0, the last
// at 1, and positions never decrease.
type GradientData struct {
	Stops []GradientStop

	// ColorsAreOpaque is true when every stop has alpha 255.
	ColorsAreOpaque bool

	// HasUniformStops is true when the stops are evenly spaced.
	HasUniformStops bool
}

// NormalizeStops prepares user stops for sampling. Missing endpoints are
// synthesized from the nearest stop's color, endpoints within epsilon of 0
// or 1 are snapped, and out-of-order positions are clamped forward so they
// never precede an earlier stop. The input slice is not modified.
func NormalizeStops(stops []GradientStop) (GradientData, error) {
	if len(stops) < 2 {
		return GradientData{}, fmt.Errorf("tinyskia: gradient requires at least two stops: %w", ErrNoGradientStops)
	}

	stops = slices.Clone(stops)
	dummyFirst := !nearZero32(stops[0].Position)
	dummyLast := !nearEqual32(stops[len(stops)-1].Position, 1)

	if dummyFirst {
		stops = slices.Insert(stops, 0, GradientStop{Position: 0, Color: stops[0].Color})
	} else {
		stops[0].Position = 0
	}
	if dummyLast {
		stops = append(stops, GradientStop{Position: 1, Color: stops[len(stops)-1].Color})
	} else {
		stops[len(stops)-1].Position = 1
	}

	opaque := true
	for _, s := range stops {
		opaque = opaque && s.Color.A == 0xFF
	}

	start := 1
	if dummyFirst {
		start = 0
	}
	var prev float32
	uniform := true
	step := stops[start].Position - prev

	for i := start; i < len(stops); i++ {
		clamped := float32(1)
		if i+1 < len(stops) {
			clamped = min(max(stops[i].Position, prev), 1)
		}
		uniform = uniform && nearEqual32(clamped-prev, step)
		stops[i].Position = clamped
		prev = clamped
	}

	return GradientData{
		Stops:           stops,
		ColorsAreOpaque: opaque,
		HasUniformStops: uniform,
	}, nil
}

// averageColor returns the mean of the stop colors.
func averageColor(stops []GradientStop) Color {
	colors := make([]Color, len(stops))
	for i, s := range stops {
		colors[i] = s.Color
	}
	return icolor.Average(colors)
}

// applySpread maps t into [0, 1] according to the spread mode.
func applySpread(t float32, mode SpreadMode) float32 {
	switch mode {
	case SpreadRepeat:
		return clampUnit32(t - math32.Floor(t))
	case SpreadReflect:
		m := math32.Abs(math32.Mod(t, 2))
		if m > 1 {
			m = 2 - m
		}
		return clampUnit32(m)
	default:
		return clampUnit32(t)
	}
}

// sampleGradient finds the first stop at or after t and interpolates from
// its predecessor. A zero-width interval yields the right stop's color.
func sampleGradient(g *GradientData, t float32) Color {
	t = clampUnit32(t)
	i := findInitialStopIndex(g, t)
	return sampleGradientAt(g, t, &i)
}

// atOrBefore reports whether t lies at or before the stop position p.
func atOrBefore(t, p float32) bool {
	return t < p || nearEqual32(t, p)
}

// inStopInterval reports whether t belongs to the interval whose left stop
// is i, the same interval sampleGradient picks for t.
func inStopInterval(g *GradientData, i int, t float32) bool {
	return atOrBefore(t, g.Stops[i+1].Position) && (i == 0 || !atOrBefore(t, g.Stops[i].Position))
}

// findInitialStopIndex returns a starting interval for sampleGradientAt.
// Uniform stops give the interval directly, up to rounding.
func findInitialStopIndex(g *GradientData, t float32) int {
	last := len(g.Stops) - 2
	if !g.HasUniformStops || last <= 0 {
		return 0
	}
	return min(max(int(clampUnit32(t)*float32(last+1)), 0), last)
}

// sampleGradientAt is sampleGradient with a cached interval index. The
// index may start anywhere; it is moved to the interval containing t.
func sampleGradientAt(g *GradientData, t float32, index *int) Color {
	t = clampUnit32(t)
	*index = findStopInterval(g, t, *index)
	return lerpStops(g, *index, t)
}

// findStopInterval walks from interval i to the one containing t, which
// must already be clamped to [0, 1].
func findStopInterval(g *GradientData, t float32, i int) int {
	n := len(g.Stops)
	i = min(max(i, 0), n-2)
	for i > 0 && atOrBefore(t, g.Stops[i].Position) {
		i--
	}
	for i+2 < n && !atOrBefore(t, g.Stops[i+1].Position) {
		i++
	}
	return i
}

// lerpStops interpolates within the interval whose left stop is i.
func lerpStops(g *GradientData, i int, t float32) Color {
	left, right := g.Stops[i], g.Stops[i+1]
	span := right.Position - left.Position
	if nearZero32(span) {
		return right.Color
	}
	return icolor.Lerp(left.Color, right.Color, (t-left.Position)/span)
}
