package path

import "math"

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	Min, Max Point
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r *Rect) include(p Point) {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
}

// Bounds returns the tight bounding box of the path geometry, including
// the extrema of cubic segments. It returns false for a path with no commands.
func (p *Path) Bounds() (Rect, bool) {
	if p.IsEmpty() {
		return Rect{}, false
	}

	var (
		r       Rect
		current Point
		started bool
	)
	begin := func() {
		if !started {
			r = Rect{Min: current, Max: current}
			started = true
		}
	}

	p.Segments(func(s Segment) bool {
		switch s.Verb {
		case MoveTo:
			current = s.Pts[0]
			begin()
			r.include(current)
		case LineTo, Close:
			begin()
			r.include(s.Pts[0])
			current = s.Pts[0]
		case CubicTo:
			begin()
			p0, c1, c2, end := current, s.Pts[0], s.Pts[1], s.Pts[2]
			r.include(end)
			at := func(t float64) {
				r.include(Point{
					X: evalCubic(p0.X, c1.X, c2.X, end.X, t),
					Y: evalCubic(p0.Y, c1.Y, c2.Y, end.Y, t),
				})
			}
			cubicExtrema(p0.X, c1.X, c2.X, end.X, at)
			cubicExtrema(p0.Y, c1.Y, c2.Y, end.Y, at)
			current = end
		}
		return true
	})
	return r, true
}
