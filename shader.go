package tinyskia

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Tolerances for shader geometry and gradient math.
const (
	float32Epsilon = 1.1920929e-07
	float64Epsilon = 2.220446049250313e-16

	// degenerateThreshold is the distance below which gradient points and
	// radii are treated as coincident.
	degenerateThreshold float32 = 1.0 / (1 << 15)
)

// ShaderKind identifies the active variant of a Shader.
type ShaderKind uint8

const (
	// ShaderSolid paints a single color.
	ShaderSolid ShaderKind = iota
	// ShaderLinearGradient interpolates stops along a line.
	ShaderLinearGradient
	// ShaderRadialGradient interpolates stops between two circles.
	ShaderRadialGradient
	// ShaderPattern samples a pixmap.
	ShaderPattern
)

// String returns the shader kind name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderSolid:
		return "solid"
	case ShaderLinearGradient:
		return "linear-gradient"
	case ShaderRadialGradient:
		return "radial-gradient"
	case ShaderPattern:
		return "pattern"
	default:
		return fmt.Sprintf("ShaderKind(%d)", uint8(k))
	}
}

// SpreadMode defines how gradients and patterns extend beyond their
// defined bounds.
type SpreadMode uint8

const (
	// SpreadPad extends edge colors beyond bounds.
	SpreadPad SpreadMode = iota
	// SpreadRepeat repeats the gradient or pattern.
	SpreadRepeat
	// SpreadReflect mirrors every other repetition.
	SpreadReflect
)

// String returns the SVG spreadMethod name.
func (m SpreadMode) String() string {
	switch m {
	case SpreadPad:
		return "pad"
	case SpreadRepeat:
		return "repeat"
	case SpreadReflect:
		return "reflect"
	default:
		return fmt.Sprintf("SpreadMode(%d)", uint8(m))
	}
}

// FilterQuality selects the pattern resampling filter.
type FilterQuality uint8

const (
	// FilterNearest picks the closest pixel.
	FilterNearest FilterQuality = iota
	// FilterBilinear blends the four surrounding pixels.
	FilterBilinear
	// FilterBicubic applies a 4x4 Catmull-Rom kernel.
	FilterBicubic
)

// String returns the filter name.
func (q FilterQuality) String() string {
	switch q {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	case FilterBicubic:
		return "bicubic"
	default:
		return fmt.Sprintf("FilterQuality(%d)", uint8(q))
	}
}

// Shader is a tagged union of the supported paint sources. Build one with
// NewSolidShader, NewLinearGradient, NewRadialGradient or NewPattern; the
// zero value is a transparent solid shader.
type Shader struct {
	kind    ShaderKind
	solid   Color
	linear  *LinearGradient
	radial  *RadialGradient
	pattern *Pattern
}

// NewSolidShader returns a shader that paints c everywhere.
func NewSolidShader(c Color) Shader {
	return Shader{kind: ShaderSolid, solid: c}
}

// Kind returns the active variant.
func (s Shader) Kind() ShaderKind {
	return s.kind
}

// SolidColor returns the color of a solid shader.
func (s Shader) SolidColor() Color {
	return s.solid
}

// LinearGradient returns the gradient of a linear shader, or nil.
func (s Shader) LinearGradient() *LinearGradient {
	return s.linear
}

// RadialGradient returns the gradient of a radial shader, or nil.
func (s Shader) RadialGradient() *RadialGradient {
	return s.radial
}

// Pattern returns the pattern of a pattern shader, or nil.
func (s Shader) Pattern() *Pattern {
	return s.pattern
}

// ShaderContext holds per-draw state derived from a Shader: the inverse
// transform and constants for the active variant. It is read-only after
// construction and safe for concurrent use.
type ShaderContext struct {
	shader Shader
	inv    Matrix

	linearDelta Point
	linearLenSq float64

	radialDelta  Point
	radialRadius float64
	radialA      float64

	quality FilterQuality
	pixmap  *Pixmap
}

// NewShaderContext precomputes the inverse transform and per-variant
// constants. Patterns with a translate-only transform always sample
// nearest.
func NewShaderContext(s Shader) (*ShaderContext, error) {
	ctx := &ShaderContext{shader: s, inv: Identity()}

	var m Matrix
	switch s.kind {
	case ShaderSolid:
		return ctx, nil
	case ShaderLinearGradient:
		m = s.linear.Transform
		ctx.linearDelta = s.linear.End.Sub(s.linear.Start)
		ctx.linearLenSq = ctx.linearDelta.LengthSquared()
	case ShaderRadialGradient:
		m = s.radial.Transform
		ctx.radialDelta = s.radial.End.Sub(s.radial.Start)
		ctx.radialRadius = float64(s.radial.Radius)
		ctx.radialA = ctx.radialDelta.LengthSquared() - ctx.radialRadius*ctx.radialRadius
	case ShaderPattern:
		if s.pattern == nil || !s.pattern.Pixmap.IsValid() {
			return nil, ErrMissingPixmap
		}
		m = s.pattern.Transform
		ctx.pixmap = s.pattern.Pixmap
		ctx.quality = s.pattern.Quality
		if m.IsTranslation() {
			ctx.quality = FilterNearest
		}
	default:
		return nil, fmt.Errorf("tinyskia: unknown shader kind %v", s.kind)
	}

	inv, ok := m.Invert()
	if !ok {
		return nil, ErrSingularTransform
	}
	ctx.inv = inv
	return ctx, nil
}

// Kind returns the kind of the underlying shader.
func (c *ShaderContext) Kind() ShaderKind {
	return c.shader.kind
}

// IsOpaque reports whether every sampled color has alpha 255.
func (c *ShaderContext) IsOpaque() bool {
	switch c.shader.kind {
	case ShaderSolid:
		return c.shader.solid.A == 0xFF
	case ShaderLinearGradient:
		return c.shader.linear.Gradient.ColorsAreOpaque
	case ShaderRadialGradient:
		return c.shader.radial.Gradient.ColorsAreOpaque
	default:
		return false
	}
}

// Sample returns the straight-alpha color at device position (x, y).
// Pixel centers are at half-integer coordinates.
func (c *ShaderContext) Sample(x, y float64) Color {
	pos := Pt(x, y)
	switch c.shader.kind {
	case ShaderLinearGradient:
		return c.sampleLinear(pos)
	case ShaderRadialGradient:
		return c.sampleRadial(pos)
	case ShaderPattern:
		return c.samplePattern(pos)
	default:
		return c.shader.solid
	}
}

// isTransformInvertible reports whether m has a determinant larger than
// machine epsilon.
func isTransformInvertible(m Matrix) bool {
	return !nearZero64(m.Determinant())
}

func nearZero32(v float32) bool {
	return math32.Abs(v) <= float32Epsilon
}

func nearEqual32(a, b float32) bool {
	return b <= a+float32Epsilon && a <= b+float32Epsilon
}

func nearZero64(v float64) bool {
	return math.Abs(v) <= float64Epsilon
}

func clampUnit32(v float32) float32 {
	return min(max(v, 0), 1)
}
