package tinyskia

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default canvas with its own transparent pixmap
//	c, _ := tinyskia.NewCanvas(800, 600)
//
//	// Render into an existing pixmap, aliased, through a clip mask
//	c, _ := tinyskia.NewCanvas(800, 600,
//	    tinyskia.WithPixmap(pm),
//	    tinyskia.WithAntiAlias(false),
//	    tinyskia.WithClipMask(clip))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pixmap    *Pixmap
	antiAlias bool
	clip      *Mask
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		pixmap:    nil, // Will be created if nil
		antiAlias: true,
	}
}

// WithPixmap makes the Canvas draw into pm instead of allocating its own
// pixmap. The pixmap dimensions must match the Canvas dimensions.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithAntiAlias sets whether the Canvas anti-aliases. When false, every
// draw is aliased regardless of Paint.AntiAlias.
func WithAntiAlias(enabled bool) CanvasOption {
	return func(o *canvasOptions) {
		o.antiAlias = enabled
	}
}

// WithClipMask sets the initial clip mask. Its dimensions must match the
// Canvas dimensions.
func WithClipMask(m *Mask) CanvasOption {
	return func(o *canvasOptions) {
		o.clip = m
	}
}
