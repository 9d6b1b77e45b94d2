package tinyskia

import (
	"github.com/gogpu/tinyskia/internal/raster"
)

// Canvas wraps a Pixmap with a reusable rasterizer and an optional clip
// mask. A Canvas is not safe for concurrent use.
type Canvas struct {
	pixmap     *Pixmap
	antiAlias  bool
	clip       *Mask
	rasterizer *raster.Rasterizer
}

// NewCanvas creates a canvas of the given size. Without WithPixmap it
// allocates a transparent pixmap.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		var err error
		if pm, err = NewPixmap(width, height); err != nil {
			return nil, err
		}
	} else if !pm.IsValid() || pm.width != width || pm.height != height {
		return nil, ErrInvalidDimensions
	}
	if err := checkTarget(pm, o.clip); err != nil {
		return nil, err
	}

	return &Canvas{
		pixmap:     pm,
		antiAlias:  o.antiAlias,
		clip:       o.clip,
		rasterizer: raster.NewRasterizer(),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pixmap.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pixmap.height }

// Pixmap returns the pixmap the canvas draws into.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// ClipMask returns the current clip mask, or nil.
func (c *Canvas) ClipMask() *Mask { return c.clip }

// SetClipMask replaces the clip mask. Pass nil to remove clipping.
func (c *Canvas) SetClipMask(m *Mask) error {
	if err := checkTarget(c.pixmap, m); err != nil {
		return err
	}
	c.clip = m
	return nil
}

// Clear fills the whole canvas with col, ignoring the clip mask.
func (c *Canvas) Clear(col Color) {
	c.pixmap.Fill(col)
}

// FillPath fills p transformed by m.
func (c *Canvas) FillPath(p *Path, paint Paint, rule FillRule, m Matrix) error {
	return fillPath(c.rasterizer, c.pixmap, p, c.resolve(paint), rule, m, c.clip)
}

// StrokePath strokes p with st and fills the outline transformed by m.
func (c *Canvas) StrokePath(p *Path, st Stroke, paint Paint, m Matrix) error {
	return strokePath(c.rasterizer, c.pixmap, p, st, c.resolve(paint), m, c.clip)
}

// DrawPixmap draws src with its top-left corner at (x, y) transformed by m.
func (c *Canvas) DrawPixmap(x, y int, src *Pixmap, paint PixmapPaint, m Matrix) error {
	return drawPixmap(c.rasterizer, c.pixmap, x, y, src, paint, m, c.clip)
}

// FillRect fills the rectangle at (x, y) of size w x h transformed by m.
func (c *Canvas) FillRect(x, y, w, h float64, paint Paint, m Matrix) error {
	p := NewPath()
	p.Rect(x, y, w, h)
	return c.FillPath(p, paint, FillRuleNonZero, m)
}

func (c *Canvas) resolve(paint Paint) Paint {
	if !c.antiAlias {
		paint.AntiAlias = false
	}
	return paint
}
