// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/tinyskia/internal/path"
)

// Edge is a straight, non-horizontal segment in device space.
// The endpoints keep their original order; Winding records the direction.
type Edge struct {
	X0, Y0 float64 // start point
	X1, Y1 float64 // end point
	Slope  float64 // dx/dy
	// Winding is +1 when the edge runs towards larger y, -1 otherwise.
	Winding int8
	// FirstY and LastY are the inclusive scanline range the edge covers.
	FirstY, LastY int
}

// NewEdge builds an edge from p0 to p1. The caller must not pass a
// horizontal pair.
func NewEdge(p0, p1 path.Point) Edge {
	e := Edge{
		X0: p0.X, Y0: p0.Y,
		X1: p1.X, Y1: p1.Y,
		Winding: -1,
	}
	if p1.Y != p0.Y {
		e.Slope = (p1.X - p0.X) / (p1.Y - p0.Y)
	}
	if p0.Y < p1.Y {
		e.Winding = 1
	}
	top := math.Min(p0.Y, p1.Y)
	bottom := math.Max(p0.Y, p1.Y)
	e.FirstY = int(math.Floor(top))
	e.LastY = int(math.Ceil(bottom)) - 1
	return e
}

// CoversScanline reports whether scanline y lies in [FirstY, LastY].
func (e *Edge) CoversScanline(y int) bool {
	return y >= e.FirstY && y <= e.LastY
}

// XAtScanline returns the edge's x coordinate at the center of scanline y.
func (e *Edge) XAtScanline(y int) float64 {
	return e.X0 + (float64(y)+0.5-e.Y0)*e.Slope
}

// BuildEdges transforms the path by m and converts it into line edges.
// Cubics are flattened at path.FillTolerance. Horizontal chords are skipped,
// and only an explicit Close adds the closing edge of a contour.
// Edge order follows the path.
func BuildEdges(p *path.Path, m path.Matrix) []Edge {
	return appendEdges(nil, p, m)
}

func appendEdges(edges []Edge, p *path.Path, m path.Matrix) []Edge {
	if p.IsEmpty() {
		return edges
	}

	var (
		current, start path.Point
		flat           []path.Point
	)
	addLine := func(a, b path.Point) {
		if a.Y != b.Y {
			edges = append(edges, NewEdge(a, b))
		}
	}

	p.Segments(func(s path.Segment) bool {
		switch s.Verb {
		case path.MoveTo:
			start = m.TransformPoint(s.Pts[0])
			current = start
		case path.LineTo:
			next := m.TransformPoint(s.Pts[0])
			addLine(current, next)
			current = next
		case path.CubicTo:
			flat = path.FlattenCubic(flat[:0], current,
				m.TransformPoint(s.Pts[0]),
				m.TransformPoint(s.Pts[1]),
				m.TransformPoint(s.Pts[2]),
				path.FillTolerance)
			for _, pt := range flat {
				addLine(current, pt)
				current = pt
			}
		case path.Close:
			if current != start {
				addLine(current, start)
			}
			current = start
		}
		return true
	})

	// Drop edges that cover no scanline center.
	n := 0
	for _, e := range edges {
		if e.LastY >= e.FirstY {
			edges[n] = e
			n++
		}
	}
	return edges[:n]
}
