package tinyskia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func assertPointNear(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"skew", Skew(0.5, 0), Pt(0, 2), Pt(1, 2)},
		// Scale is applied first.
		{"multiply", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPointNear(t, tt.want, tt.m.TransformPoint(tt.in))
		})
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	require.True(t, ok)

	p := Pt(-3, 11)
	assertPointNear(t, p, inv.TransformPoint(m.TransformPoint(p)))

	_, ok = Scale(0, 1).Invert()
	assert.False(t, ok)
}

func TestMatrixFromAff3(t *testing.T) {
	a := f64.Aff3{1, 2, 3, 4, 5, 6}
	m := MatrixFromAff3(a)
	assert.Equal(t, Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}, m)
	assert.Equal(t, a, m.Aff3())
}

func TestComputeBounds(t *testing.T) {
	b, ok := ComputeBounds(rectPath(1, 2, 3, 4))
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(1, 2), Max: Pt(4, 6)}, b)

	// The curve's extremum lies inside its control polygon.
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)
	b, ok = ComputeBounds(p)
	require.True(t, ok)
	assert.InDelta(t, 7.5, b.Max.Y, 1e-9)
	assert.InDelta(t, 10.0, b.Width(), 1e-9)

	_, ok = ComputeBounds(nil)
	assert.False(t, ok)
	_, ok = ComputeBounds(NewPath())
	assert.False(t, ok)
}
