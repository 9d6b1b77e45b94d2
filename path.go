package tinyskia

import "github.com/gogpu/tinyskia/internal/path"

// Path is a sequence of MoveTo, LineTo, CubicTo and Close commands.
// Quadratic segments are stored as equivalent cubics.
type Path = path.Path

// Rect is an axis-aligned box given by its min and max corners.
type Rect = path.Rect

// NewPath creates an empty path.
func NewPath() *Path { return path.New() }

// ComputeBounds returns the tight bounds of p, including the extrema of its
// curves. It returns false for an empty path.
func ComputeBounds(p *Path) (Rect, bool) {
	if p == nil {
		return Rect{}, false
	}
	return p.Bounds()
}
