package tinyskia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func radialContext(t *testing.T, start, end Point, radius float32, stops []GradientStop) *ShaderContext {
	t.Helper()
	s, err := NewRadialGradient(start, end, radius, stops, SpreadPad, Identity())
	return shaderContext(t, s, err)
}

func TestShaderKindString(t *testing.T) {
	assert.Equal(t, "solid", ShaderSolid.String())
	assert.Equal(t, "linear-gradient", ShaderLinearGradient.String())
	assert.Equal(t, "radial-gradient", ShaderRadialGradient.String())
	assert.Equal(t, "pattern", ShaderPattern.String())
	assert.Equal(t, "ShaderKind(9)", ShaderKind(9).String())

	assert.Equal(t, "pad", SpreadPad.String())
	assert.Equal(t, "repeat", SpreadRepeat.String())
	assert.Equal(t, "reflect", SpreadReflect.String())

	assert.Equal(t, "nearest", FilterNearest.String())
	assert.Equal(t, "bilinear", FilterBilinear.String())
	assert.Equal(t, "bicubic", FilterBicubic.String())
}

func TestSolidShader(t *testing.T) {
	ctx, err := NewShaderContext(NewSolidShader(RGB8(1, 2, 3)))
	require.NoError(t, err)
	assert.Equal(t, ShaderSolid, ctx.Kind())
	assert.Equal(t, RGB8(1, 2, 3), ctx.Sample(0, 0))
	assert.Equal(t, RGB8(1, 2, 3), ctx.Sample(10, 5))
}

func TestZeroShaderIsTransparent(t *testing.T) {
	var s Shader
	ctx, err := NewShaderContext(s)
	require.NoError(t, err)
	assert.Equal(t, Transparent, ctx.Sample(3, 4))
}

func TestNewShaderContextErrors(t *testing.T) {
	_, err := NewShaderContext(Shader{kind: ShaderPattern})
	assert.ErrorIs(t, err, ErrMissingPixmap)

	_, err = NewShaderContext(Shader{kind: ShaderKind(42)})
	assert.Error(t, err)
}

func TestNewRadialGradient(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: RGB8(0, 0, 0)},
		{Position: 1, Color: RGB8(10, 10, 10)},
	}

	t.Run("valid", func(t *testing.T) {
		s, err := NewRadialGradient(Pt(0, 0), Pt(1, 1), 10, stops, SpreadPad, Identity())
		require.NoError(t, err)
		require.Equal(t, ShaderRadialGradient, s.Kind())
		assert.Equal(t, float32(10), s.RadialGradient().Radius)
		assert.Nil(t, s.LinearGradient())
	})

	t.Run("single stop is solid", func(t *testing.T) {
		s, err := NewRadialGradient(Pt(0, 0), Pt(1, 1), 10, stops[:1], SpreadPad, Identity())
		require.NoError(t, err)
		assert.Equal(t, ShaderSolid, s.Kind())
		assert.Equal(t, RGB8(0, 0, 0), s.SolidColor())
	})

	tests := []struct {
		name   string
		start  Point
		end    Point
		radius float32
		stops  []GradientStop
		m      Matrix
		want   error
	}{
		{"zero radius", Pt(0, 0), Pt(1, 1), 0, stops, Identity(), ErrInvalidRadius},
		{"negative radius", Pt(0, 0), Pt(1, 1), -1, stops, Identity(), ErrInvalidRadius},
		{"nan radius", Pt(0, 0), Pt(1, 1), float32(math.NaN()), stops, Identity(), ErrInvalidRadius},
		{"no stops", Pt(0, 0), Pt(1, 1), 5, nil, Identity(), ErrNoGradientStops},
		{"singular transform", Pt(0, 0), Pt(1, 1), 5, stops, Scale(1, 0), ErrSingularTransform},
		{"infinite end", Pt(0, 0), Pt(math.Inf(1), 0), 5, stops, Identity(), ErrNonFiniteGradient},
		{"fully degenerate", Pt(0, 0), Pt(0, 0), 1e-5, stops, Identity(), ErrDegenerateGradient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRadialGradient(tt.start, tt.end, tt.radius, tt.stops, SpreadPad, tt.m)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRadialGradientSampling(t *testing.T) {
	t.Run("concentric", func(t *testing.T) {
		stops := []GradientStop{
			{Position: 0, Color: RGB8(0, 0, 0)},
			{Position: 1, Color: RGB8(0, 0, 255)},
		}
		ctx := radialContext(t, Pt(0, 0), Pt(0, 0), 10, stops)
		assert.Equal(t, ShaderRadialGradient, ctx.Kind())
		assert.Equal(t, RGB8(0, 0, 128), ctx.Sample(5, 0))
		assert.Equal(t, RGB8(0, 0, 255), ctx.Sample(20, 0))
		assert.Equal(t, RGB8(0, 0, 0), ctx.Sample(0, 0))
	})

	t.Run("concentric off origin", func(t *testing.T) {
		ctx := radialContext(t, Pt(50, 50), Pt(50, 50), 50, redBlueStops())
		assert.Equal(t, RGB8(255, 0, 0), ctx.Sample(50, 50))
		assertColorNear(t, ctx.Sample(75, 50), RGBA8(128, 0, 128, 255), 1)
		assert.Equal(t, RGB8(0, 0, 255), ctx.Sample(150, 50))
	})

	t.Run("two point", func(t *testing.T) {
		stops := []GradientStop{
			{Position: 0, Color: RGB8(0, 0, 0)},
			{Position: 1, Color: RGB8(255, 255, 255)},
		}
		ctx := radialContext(t, Pt(0, 0), Pt(10, 0), 10, stops)
		assert.Equal(t, RGB8(64, 64, 64), ctx.Sample(5, 0))
		assert.Equal(t, RGB8(128, 128, 128), ctx.Sample(10, 0))
	})

	t.Run("no valid root uses last stop", func(t *testing.T) {
		ctx := radialContext(t, Pt(0, 0), Pt(100, 0), 10, redBlueStops())
		// Both roots negative.
		assert.Equal(t, RGB8(0, 0, 255), ctx.Sample(-50, 0))
		// Negative discriminant.
		assert.Equal(t, RGB8(0, 0, 255), ctx.Sample(0, 50))
	})
}

func TestShaderContextConcurrentSample(t *testing.T) {
	ctx := radialContext(t, Pt(32, 32), Pt(32, 32), 32, redBlueStops())
	want := make([]Color, 64)
	for i := range want {
		want[i] = ctx.Sample(float64(i)+0.5, 32.5)
	}

	done := make(chan []Color, 4)
	for range 4 {
		go func() {
			got := make([]Color, 64)
			for i := range got {
				got[i] = ctx.Sample(float64(i)+0.5, 32.5)
			}
			done <- got
		}()
	}
	for range 4 {
		assert.Equal(t, want, <-done)
	}
}
