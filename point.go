package tinyskia

import "github.com/gogpu/tinyskia/internal/path"

// Point represents a 2D point or vector in float64 user space.
type Point = path.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return path.Pt(x, y)
}
