package tinyskia

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/tinyskia/internal/raster"
)

// FillPath fills p, transformed by m, into pm using paint and the given
// fill rule. When clip is non-nil it must match the pixmap size; its
// coverage multiplies the path coverage. A mismatched clip fails before any
// pixel is touched.
func FillPath(pm *Pixmap, p *Path, paint Paint, rule FillRule, m Matrix, clip *Mask) error {
	return fillPath(raster.NewRasterizer(), pm, p, paint, rule, m, clip)
}

// StrokePath strokes p with st, then fills the outline transformed by m.
// The stroke is expanded in path space, so a scaling m scales the stroke
// width too. A zero Stroke is treated as DefaultStroke.
func StrokePath(pm *Pixmap, p *Path, st Stroke, paint Paint, m Matrix, clip *Mask) error {
	return strokePath(raster.NewRasterizer(), pm, p, st, paint, m, clip)
}

// DrawPixmap draws src with its top-left corner at (x, y), transformed by
// m. The source is sampled as a padded pattern without anti-aliasing.
func DrawPixmap(pm *Pixmap, x, y int, src *Pixmap, paint PixmapPaint, m Matrix, clip *Mask) error {
	return drawPixmap(raster.NewRasterizer(), pm, x, y, src, paint, m, clip)
}

func fillPath(r *raster.Rasterizer, pm *Pixmap, p *Path, paint Paint, rule FillRule, m Matrix, clip *Mask) error {
	if err := checkTarget(pm, clip); err != nil {
		return err
	}
	ctx, err := NewPaintContext(paint)
	if err != nil {
		return err
	}

	mask, err := r.Fill(p, pm.width, pm.height, rule, paint.AntiAlias, m)
	if err != nil {
		return fmt.Errorf("tinyskia: rasterize path: %w", err)
	}
	return blendMask(pm, mask, clip, ctx)
}

func strokePath(r *raster.Rasterizer, pm *Pixmap, p *Path, st Stroke, paint Paint, m Matrix, clip *Mask) error {
	if err := checkTarget(pm, clip); err != nil {
		return err
	}
	outline, err := StrokeOutline(p, st)
	if err != nil {
		return err
	}
	return fillPath(r, pm, outline, paint, FillRuleNonZero, m, clip)
}

func drawPixmap(r *raster.Rasterizer, pm *Pixmap, x, y int, src *Pixmap, paint PixmapPaint, m Matrix, clip *Mask) error {
	if err := checkTarget(pm, clip); err != nil {
		return err
	}
	if !src.IsValid() {
		return fmt.Errorf("tinyskia: draw pixmap source: %w", ErrMissingPixmap)
	}

	fx, fy := float64(x), float64(y)
	pattern, err := NewPattern(src, SpreadPad, paint.Quality, paint.Opacity, m.Multiply(Translate(fx, fy)))
	if err != nil {
		return err
	}

	fill := Paint{
		Opacity:   1,
		BlendMode: paint.BlendMode,
		Shader:    &pattern,
		AntiAlias: false,
	}
	rect := NewPath()
	rect.Rect(fx, fy, float64(src.width), float64(src.height))
	return fillPath(r, pm, rect, fill, FillRuleNonZero, m, clip)
}

// checkTarget validates the destination and clip before any work is done.
func checkTarget(pm *Pixmap, clip *Mask) error {
	if !pm.IsValid() {
		return ErrInvalidPixmap
	}
	if clip != nil && (!clip.IsValid() || clip.Width != pm.width || clip.Height != pm.height) {
		return ErrMaskMismatch
	}
	return nil
}

// blendMask applies the optional clip to mask and composites every row.
func blendMask(pm *Pixmap, mask, clip *Mask, ctx *PaintContext) error {
	if clip != nil {
		if err := mask.Multiply(clip); err != nil {
			return err
		}
	}

	mode := detectCPU().blockMode()
	Logger().Debug("tinyskia: blend mask",
		slog.Int("width", mask.Width),
		slog.Int("height", mask.Height),
		slog.String("blend", ctx.BlendMode().String()),
		slog.Bool("clip", clip != nil),
		slog.String("blocks", mode.String()))

	for y := 0; y < mask.Height; y++ {
		row := mask.Row(y)
		if allZero(row) {
			continue
		}
		blendMaskSpan(pm, 0, y, row, ctx, mode)
	}
	return nil
}
