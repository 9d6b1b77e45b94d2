package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tinyskia/internal/color"
)

func blendBytes(src, dst color.Color, mode Mode) color.Color {
	return color.ToColor(Blend(color.Premultiply(src), color.Premultiply(dst), mode))
}

func assertNear(t *testing.T, got, want color.Color, tol int, msg string) {
	t.Helper()
	ch := [4][2]uint8{{got.R, want.R}, {got.G, want.G}, {got.B, want.B}, {got.A, want.A}}
	for i, c := range ch {
		d := int(c[0]) - int(c[1])
		assert.LessOrEqualf(t, max(d, -d), tol, "%s: channel %d = %d, want %d", msg, i, c[0], c[1])
	}
}

func TestBlendModeVectors(t *testing.T) {
	src := color.RGBA8(220, 140, 75, 180)
	dst := color.RGBA8(50, 127, 150, 200)

	tests := []struct {
		mode Mode
		want color.Color
	}{
		{ModeClear, color.RGBA8(0, 0, 0, 0)},
		{ModeDestination, color.RGBA8(39, 100, 118, 200)},
		{ModeSourceOver, color.RGBA8(167, 128, 88, 239)},
		{ModeDestinationOver, color.RGBA8(72, 121, 129, 239)},
		{ModeSourceIn, color.RGBA8(122, 78, 42, 141)},
		{ModeDestinationIn, color.RGBA8(28, 71, 83, 141)},
		{ModeSourceOut, color.RGBA8(33, 21, 11, 39)},
		{ModeDestinationOut, color.RGBA8(11, 29, 35, 59)},
		{ModeSourceAtop, color.RGBA8(133, 107, 76, 200)},
		{ModeDestinationAtop, color.RGBA8(61, 92, 95, 180)},
		{ModeXor, color.RGBA8(45, 51, 46, 98)},
		{ModePlus, color.RGBA8(194, 199, 171, 255)},
		{ModeModulate, color.RGBA8(24, 39, 24, 141)},
		{ModeScreen, color.RGBA8(171, 160, 146, 239)},
		{ModeOverlay, color.RGBA8(92, 128, 106, 239)},
		{ModeDarken, color.RGBA8(72, 121, 88, 239)},
		{ModeLighten, color.RGBA8(167, 128, 129, 239)},
		{ModeColorDodge, color.RGBA8(186, 192, 164, 239)},
		{ModeColorBurn, color.RGBA8(54, 63, 46, 239)},
		{ModeHardLight, color.RGBA8(155, 128, 95, 239)},
		{ModeSoftLight, color.RGBA8(98, 124, 115, 239)},
		{ModeDifference, color.RGBA8(139, 58, 88, 239)},
		{ModeExclusion, color.RGBA8(147, 121, 122, 239)},
		{ModeMultiply, color.RGBA8(69, 89, 71, 239)},
		{ModeHue, color.RGBA8(128, 103, 74, 239)},
		{ModeSaturation, color.RGBA8(59, 126, 140, 239)},
		{ModeColor, color.RGBA8(139, 100, 60, 239)},
		{ModeLuminosity, color.RGBA8(100, 149, 157, 239)},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assertNear(t, blendBytes(src, dst, tt.mode), tt.want, 1, tt.mode.String())
		})
	}
}

func TestBlendIdentities(t *testing.T) {
	src := color.Premultiply(color.RGBA8(10, 200, 30, 90))
	dst := color.Premultiply(color.RGBA8(250, 5, 60, 170))

	assert.Equal(t, color.Premultiplied{}, Blend(src, dst, ModeClear))
	assert.Equal(t, src, Blend(src, dst, ModeSource))
	assert.Equal(t, dst, Blend(src, dst, ModeDestination))

	opaque := color.Premultiply(color.RGB8(12, 34, 56))
	for _, d := range []color.Color{color.Transparent, color.RGBA8(1, 2, 3, 4), color.White} {
		got := Blend(opaque, color.Premultiply(d), ModeSourceOver)
		assert.Equal(t, color.RGB8(12, 34, 56), color.ToColor(got), "opaque source over %v", d)
	}
}

func TestBlendTransparentInputs(t *testing.T) {
	dst := color.Premultiply(color.RGBA8(40, 80, 120, 200))
	for m := ModeScreen; m <= ModeLuminosity; m++ {
		got := color.ToColor(Blend(color.Premultiplied{}, dst, m))
		assert.Equal(t, color.ToColor(dst), got, "%v with transparent source", m)
	}
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, 29, ModeCount)
	assert.Equal(t, "source-over", ModeSourceOver.String())
	assert.Equal(t, "color-dodge", ModeColorDodge.String())
	assert.Equal(t, "luminosity", ModeLuminosity.String())
	assert.Equal(t, "Mode(99)", Mode(99).String())

	for i := 0; i < ModeCount; i++ {
		m, err := ParseMode(Mode(i).String())
		require.NoError(t, err)
		assert.Equal(t, Mode(i), m)
	}

	_, err := ParseMode("overlayish")
	assert.Error(t, err)
}

func TestModeClasses(t *testing.T) {
	assert.True(t, ModeModulate.IsPorterDuff())
	assert.False(t, ModeScreen.IsPorterDuff())
	assert.True(t, ModeMultiply.IsSeparable())
	assert.False(t, ModeHue.IsSeparable())
}

func TestGetBlendFuncMatchesBlend(t *testing.T) {
	src := color.Premultiply(color.RGBA8(220, 140, 75, 180))
	dst := color.Premultiply(color.RGBA8(50, 127, 150, 200))
	for i := 0; i < ModeCount; i++ {
		m := Mode(i)
		assert.Equal(t, Blend(src, dst, m), GetBlendFunc(m)(src, dst), m.String())
	}
}

func TestHSLHelpers(t *testing.T) {
	assert.InDelta(t, 0.3, Lum(rgb{1, 0, 0}), 1e-12)
	assert.InDelta(t, 1.0, Lum(rgb{1, 1, 1}), 1e-12)
	assert.InDelta(t, 0.5, Sat(rgb{0.2, 0.7, 0.4}), 1e-12)

	assert.Equal(t, rgb{}, SetSat(rgb{0.5, 0.5, 0.5}, 0.8))

	got := SetSat(rgb{0.2, 0.6, 0.4}, 0.5)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.25}, got[:], 1e-12)

	for _, c := range []rgb{{0.9, 0.1, 0.5}, {0, 1, 0}, {0.3, 0.3, 0.9}} {
		for _, l := range []float64{0, 0.2, 0.5, 0.8, 1} {
			out := SetLum(c, l)
			for i, v := range out {
				assert.GreaterOrEqualf(t, v, -1e-9, "SetLum(%v, %v)[%d]", c, l, i)
				assert.LessOrEqualf(t, v, 1+1e-9, "SetLum(%v, %v)[%d]", c, l, i)
			}
			assert.InDeltaf(t, l, Lum(out), 1e-9, "SetLum(%v, %v) luminance", c, l)
		}
	}
}
