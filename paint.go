package tinyskia

import (
	icolor "github.com/gogpu/tinyskia/internal/color"
)

// Paint describes how covered pixels are colored.
type Paint struct {
	// Color is used when Shader is nil.
	Color Color

	// Opacity scales every shaded color, alpha included. Clamped to [0, 1].
	Opacity float32

	// BlendMode combines the shaded color with the destination.
	BlendMode BlendMode

	// Shader, when set, replaces Color.
	Shader *Shader

	// AntiAlias enables fractional edge coverage.
	AntiAlias bool
}

// NewPaint returns opaque black, source-over, anti-aliased paint.
func NewPaint() Paint {
	return Paint{
		Color:     Black,
		Opacity:   1,
		BlendMode: BlendModeSourceOver,
		AntiAlias: true,
	}
}

// PixmapPaint controls DrawPixmap.
type PixmapPaint struct {
	Opacity   float32
	BlendMode BlendMode
	Quality   FilterQuality
}

// NewPixmapPaint returns fully opaque, source-over, nearest-neighbor
// pixmap paint.
func NewPixmapPaint() PixmapPaint {
	return PixmapPaint{
		Opacity:   1,
		BlendMode: BlendModeSourceOver,
		Quality:   FilterNearest,
	}
}

// PaintContext is a Paint prepared for compositing: its shader context is
// built and its opacity clamped. A PaintContext keeps a scratch span buffer
// and is not safe for concurrent use.
type PaintContext struct {
	paint   Paint
	shader  *ShaderContext
	opacity float32
	span    []Color
}

// NewPaintContext builds the shader context of p, if any.
func NewPaintContext(p Paint) (*PaintContext, error) {
	ctx := &PaintContext{
		paint:   p,
		opacity: min(max(p.Opacity, 0), 1),
	}
	if p.Shader != nil {
		sc, err := NewShaderContext(*p.Shader)
		if err != nil {
			return nil, err
		}
		ctx.shader = sc
	}
	return ctx, nil
}

// BlendMode returns the paint's blend mode.
func (c *PaintContext) BlendMode() BlendMode { return c.paint.BlendMode }

// HasShader reports whether the paint uses a shader instead of its color.
func (c *PaintContext) HasShader() bool { return c.shader != nil }

// Color returns the paint's color, ignoring any shader and opacity.
func (c *PaintContext) Color() Color { return c.paint.Color }

// Opacity returns the clamped opacity.
func (c *PaintContext) Opacity() float32 { return c.opacity }

// IsOpaque reports whether every shaded color has alpha 255.
func (c *PaintContext) IsOpaque() bool {
	if c.opacity < 1 {
		return false
	}
	if c.shader != nil {
		return c.shader.IsOpaque()
	}
	return c.paint.Color.A == 0xFF
}

// ApplyOpacity scales every channel of col by the opacity, rounding half
// away from zero.
func (c *PaintContext) ApplyOpacity(col Color) Color {
	return icolor.MultiplyColor(col, c.opacity)
}

// Shade returns the opacity-scaled color at device position (x, y).
func (c *PaintContext) Shade(x, y float64) Color {
	col := c.paint.Color
	if c.shader != nil {
		col = c.shader.Sample(x, y)
	}
	return c.ApplyOpacity(col)
}

// ShadeLinearSpan fills dst with opacity-scaled colors for row y starting
// at column x using the linear gradient fast path. It reports false when
// the shader has no such path.
func (c *PaintContext) ShadeLinearSpan(x, y int, dst []Color) bool {
	if c.shader == nil || !c.shader.SampleLinearSpan(x, y, dst) {
		return false
	}
	for i, col := range dst {
		dst[i] = c.ApplyOpacity(col)
	}
	return true
}

// shadeSpan shades width pixels of row y starting at column x into the
// scratch buffer.
func (c *PaintContext) shadeSpan(x, y, width int) []Color {
	span := c.scratch(width)
	if c.ShadeLinearSpan(x, y, span) {
		return span
	}
	fy := float64(y) + 0.5
	for i := range span {
		span[i] = c.Shade(float64(x+i)+0.5, fy)
	}
	return span
}

// solidSpan fills width entries of the scratch buffer with the
// opacity-scaled paint color.
func (c *PaintContext) solidSpan(width int) []Color {
	span := c.scratch(width)
	col := c.ApplyOpacity(c.paint.Color)
	for i := range span {
		span[i] = col
	}
	return span
}

func (c *PaintContext) scratch(n int) []Color {
	if cap(c.span) < n {
		c.span = make([]Color, n)
	}
	return c.span[:n]
}
