package tinyskia

import "github.com/gogpu/tinyskia/internal/raster"

// Mask is an 8-bit coverage buffer with stride equal to its width. Masks are
// produced by rasterization and used as clip masks by the painter.
type Mask = raster.Mask

// FillRule specifies how to determine which areas are inside a path.
type FillRule = raster.FillRule

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero = raster.FillRuleNonZero
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd = raster.FillRuleEvenOdd
)

// NewMask allocates a zeroed mask.
func NewMask(width, height int) (*Mask, error) {
	return raster.NewMask(width, height)
}

// RasterizePath fills p, transformed by m, into a new width x height
// coverage mask. The result can be used as a clip mask.
func RasterizePath(p *Path, width, height int, rule FillRule, antiAlias bool, m Matrix) (*Mask, error) {
	return raster.Fill(p, width, height, rule, antiAlias, m)
}
