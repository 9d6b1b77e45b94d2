package tinyskia

import (
	"github.com/gogpu/tinyskia/internal/blend"
	icolor "github.com/gogpu/tinyskia/internal/color"
)

// BlendSpan composites width fully covered pixels of row y, starting at
// column x, with the paint in ctx. The span is clipped to the pixmap; spans
// entirely outside it are ignored.
func BlendSpan(pm *Pixmap, x, y, width int, ctx *PaintContext) {
	blendSpan(pm, x, y, width, ctx, detectCPU().blockMode())
}

// BlendMaskSpan composites len(coverage) pixels of row y, starting at
// column x, scaling each shaded color by its coverage/255. Pixels with zero
// coverage are left untouched.
func BlendMaskSpan(pm *Pixmap, x, y int, coverage []byte, ctx *PaintContext) {
	blendMaskSpan(pm, x, y, coverage, ctx, detectCPU().blockMode())
}

func blendSpan(pm *Pixmap, x, y, width int, ctx *PaintContext, mode blockMode) {
	start, end, ok := clipSpan(pm, x, y, width)
	if !ok || ctx == nil {
		return
	}
	row := pm.Row(y)[start*4 : end*4]
	src := ctx.source(start, y, end-start)
	if ctx.BlendMode() == BlendModeSourceOver && ctx.IsOpaque() {
		// Opaque source-over replaces the destination.
		for i, s := range src {
			storePixel(row[i*4:], s)
		}
		return
	}
	compositeRow(row, src, nil, ctx.BlendMode(), mode)
}

func blendMaskSpan(pm *Pixmap, x, y int, coverage []byte, ctx *PaintContext, mode blockMode) {
	start, end, ok := clipSpan(pm, x, y, len(coverage))
	if !ok || ctx == nil {
		return
	}
	n := end - start
	cov := coverage[start-x : start-x+n]
	row := pm.Row(y)[start*4 : end*4]
	compositeRow(row, ctx.source(start, y, n), cov, ctx.BlendMode(), mode)
}

// clipSpan intersects [x, x+width) on row y with the pixmap.
func clipSpan(pm *Pixmap, x, y, width int) (start, end int, ok bool) {
	if !pm.IsValid() || width <= 0 || y < 0 || y >= pm.height {
		return 0, 0, false
	}
	start = max(0, x)
	end = pm.width
	if x < pm.width && width < pm.width-x {
		end = x + width
	}
	return start, end, start < end
}

// source returns the colors to composite for n pixels of row y starting at
// column x. Solid source-over paint skips shading.
func (c *PaintContext) source(x, y, n int) []Color {
	if !c.HasShader() && c.BlendMode() == BlendModeSourceOver {
		return c.solidSpan(n)
	}
	return c.shadeSpan(x, y, n)
}

// compositeRow blends src into row. coverage is nil for full coverage.
func compositeRow(row []byte, src []Color, coverage []byte, bm BlendMode, mode blockMode) {
	if bm == BlendModeSourceOver {
		blendSourceOverRow(row, src, coverage, mode)
		return
	}

	fn := blend.GetBlendFunc(bm)
	for i, s := range src {
		if coverage != nil {
			if coverage[i] == 0 {
				continue
			}
			s = icolor.MultiplyColor(s, float32(coverage[i])/255)
		}
		px := row[i*4:]
		out := fn(icolor.Premultiply(s), icolor.Premultiply(loadPixel(px)))
		storePixel(px, out.Straight())
	}
}
