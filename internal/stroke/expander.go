package stroke

import (
	"log/slog"
	"math"

	"github.com/gogpu/tinyskia/internal/path"
)

// roundSegments is the number of line segments used for round joins and
// each half circle of a round cap.
const roundSegments = 8

// StrokeExpander converts stroked paths to filled outlines.
type StrokeExpander struct {
	style     Stroke
	tolerance float64

	// Logger receives debug records about expanded subpaths. Nil disables it.
	Logger *slog.Logger
}

// NewStrokeExpander creates a new stroke expander with the given style.
func NewStrokeExpander(style Stroke) *StrokeExpander {
	return &StrokeExpander{
		style:     style,
		tolerance: path.StrokeTolerance,
	}
}

// SetTolerance sets the curve flattening tolerance.
// Non-positive values are ignored.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Style returns the stroke parameters.
func (e *StrokeExpander) Style() Stroke {
	return e.style
}

// Expand returns the outline of p under the expander's style. The dash
// pattern, if any, is applied first. The outline is meant to be filled with
// the non-zero rule.
func (e *StrokeExpander) Expand(p *path.Path) *path.Path {
	out := path.New()
	if p.IsEmpty() {
		return out
	}

	src := p
	if e.style.Dash != nil {
		src = ApplyDash(p, e.style.Dash)
	}

	subpaths := flattenSubpaths(src, e.tolerance)
	for i := range subpaths {
		e.expandSubpath(out, &subpaths[i])
	}

	if e.Logger != nil {
		e.Logger.Debug("stroke: expand",
			slog.Int("subpaths", len(subpaths)),
			slog.Int("points", len(out.Points)),
			slog.Float64("width", e.style.Width),
			slog.String("cap", e.style.Cap.String()),
			slog.String("join", e.style.Join.String()))
	}
	return out
}

// subpath is one flattened contour.
type subpath struct {
	points []path.Point
	closed bool
}

// flattenSubpaths splits p into polylines. Close appends the start point.
// Consecutive points closer than distanceEpsilon are merged, so every
// polyline segment has a direction.
func flattenSubpaths(p *path.Path, tolerance float64) []subpath {
	var (
		result  []subpath
		current subpath
	)
	flush := func() {
		current.points = dropRepeated(current.points)
		if len(current.points) > 0 {
			result = append(result, current)
		}
		current = subpath{}
	}

	p.Segments(func(s path.Segment) bool {
		switch s.Verb {
		case path.MoveTo:
			flush()
			current.points = append(current.points, s.Pts[0])
		case path.LineTo:
			current.points = append(current.points, s.Pts[0])
		case path.CubicTo:
			if len(current.points) == 0 {
				break
			}
			last := current.points[len(current.points)-1]
			current.points = path.FlattenCubic(current.points, last, s.Pts[0], s.Pts[1], s.Pts[2], tolerance)
		case path.Close:
			current.points = append(current.points, s.Pts[0])
			current.closed = true
			flush()
		}
		return true
	})
	flush()
	return result
}

// dropRepeated removes points within distanceEpsilon of the point kept
// before them. It filters in place.
func dropRepeated(pts []path.Point) []path.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) > distanceEpsilon {
			out = append(out, p)
		}
	}
	return out
}

func (e *StrokeExpander) expandSubpath(out *path.Path, sp *subpath) {
	pts := sp.points
	if sp.closed && len(pts) >= 2 && pts[0].Distance(pts[len(pts)-1]) <= distanceEpsilon {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 {
		return
	}

	hw := e.style.Width * 0.5
	var left, right []path.Point

	dirAt := func(i int) path.Point {
		return pts[(i+1)%n].Sub(pts[i])
	}

	if !sp.closed {
		left, right = e.appendCap(left, right, pts[0], dirAt(0), true)
	}

	for i := 0; i < n; i++ {
		if !sp.closed && (i == 0 || i == n-1) {
			continue
		}
		prev := i - 1
		if i == 0 {
			prev = n - 1
		}
		dirIn := normalize(pts[i].Sub(pts[prev]))
		dirOut := normalize(pts[(i+1)%n].Sub(pts[i]))
		if dirIn.Length() <= distanceEpsilon || dirOut.Length() <= distanceEpsilon {
			continue
		}
		left = e.appendJoin(left, pts[i], dirIn, dirOut, hw, true)
		right = e.appendJoin(right, pts[i], dirIn, dirOut, hw, false)
	}

	if !sp.closed {
		left, right = e.appendCap(left, right, pts[n-1], dirAt(n-2), false)
	}
	if len(left) == 0 || len(right) == 0 {
		return
	}

	if sp.closed {
		emitContour(out, left, false)
		emitContour(out, right, true)
		return
	}

	outline := make([]path.Point, 0, len(left)+len(right)+2*roundSegments)
	outline = append(outline, left...)
	if e.style.Cap == LineCapRound {
		c := pts[n-1]
		outline = appendArc(outline, c, left[len(left)-1].Sub(c), right[len(right)-1].Sub(c), true, false)
	}
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	if e.style.Cap == LineCapRound {
		c := pts[0]
		outline = appendArc(outline, c, right[0].Sub(c), left[0].Sub(c), true, false)
	}
	emitContour(out, outline, false)
}

// emitContour writes pts as one closed contour, optionally in reverse.
func emitContour(out *path.Path, pts []path.Point, reverse bool) {
	at := func(i int) path.Point {
		if reverse {
			return pts[len(pts)-1-i]
		}
		return pts[i]
	}
	first := at(0)
	out.MoveTo(first.X, first.Y)
	for i := 1; i < len(pts); i++ {
		p := at(i)
		out.LineTo(p.X, p.Y)
	}
	out.Close()
}

func (e *StrokeExpander) appendJoin(dst []path.Point, p, dirIn, dirOut path.Point, hw float64, leftSide bool) []path.Point {
	var nIn, nOut path.Point
	if leftSide {
		nIn, nOut = leftNormal(dirIn, hw), leftNormal(dirOut, hw)
	} else {
		nIn, nOut = rightNormal(dirIn, hw), rightNormal(dirOut, hw)
	}
	clockwise := dirIn.Cross(dirOut) < 0

	switch e.style.Join {
	case LineJoinRound:
		cw := clockwise
		if !leftSide {
			cw = !clockwise
		}
		return appendArc(dst, p, nIn, nOut, cw, true)

	case LineJoinMiterClip:
		miter, ok := intersectLines(p.Add(nIn), dirIn, p.Add(nOut), dirOut)
		if !ok {
			return append(dst, p.Add(nIn), p.Add(nOut))
		}
		limit := math.Max(1, e.style.MiterLimit)
		if miter.Distance(p)/hw <= limit {
			return append(dst, miter)
		}
		return append(dst, p.Add(normalize(miter.Sub(p)).Mul(hw*limit)))

	case LineJoinMiter:
		miter, ok := intersectLines(p.Add(nIn), dirIn, p.Add(nOut), dirOut)
		if ok && miter.Distance(p)/hw <= e.style.MiterLimit {
			return append(dst, miter)
		}
		return append(dst, p.Add(nIn), p.Add(nOut))

	default:
		return append(dst, p.Add(nIn), p.Add(nOut))
	}
}

// appendCap adds the cap points at p to both chains. Round caps only add
// the offset points here; their arcs are inserted when the chains are joined.
func (e *StrokeExpander) appendCap(left, right []path.Point, p, dir path.Point, start bool) ([]path.Point, []path.Point) {
	hw := e.style.Width * 0.5
	nl := leftNormal(dir, hw)
	nr := rightNormal(dir, hw)

	base := p
	if e.style.Cap == LineCapSquare {
		ext := normalize(dir).Mul(hw)
		if start {
			base = p.Sub(ext)
		} else {
			base = p.Add(ext)
		}
	}
	return append(left, base.Add(nl)), append(right, base.Add(nr))
}

func normalize(v path.Point) path.Point {
	l := v.Length()
	if l <= distanceEpsilon {
		return path.Point{}
	}
	return v.Div(l)
}

func leftNormal(dir path.Point, hw float64) path.Point {
	n := normalize(dir)
	return path.Pt(-n.Y, n.X).Mul(hw)
}

func rightNormal(dir path.Point, hw float64) path.Point {
	n := normalize(dir)
	return path.Pt(n.Y, -n.X).Mul(hw)
}

// intersectLines intersects p1 + t*d1 with p2 + s*d2.
func intersectLines(p1, d1, p2, d2 path.Point) (path.Point, bool) {
	denom := d1.Cross(d2)
	if math.Abs(denom) <= distanceEpsilon {
		return path.Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t)), true
}

// appendArc adds points on the circle around center from the direction of
// from to the direction of to, with radius |from|. Clockwise means
// decreasing angle.
func appendArc(dst []path.Point, center, from, to path.Point, clockwise, includeStart bool) []path.Point {
	f := normalize(from)
	t := normalize(to)
	a0 := math.Atan2(f.Y, f.X)
	a1 := math.Atan2(t.Y, t.X)
	if clockwise && a1 > a0 {
		a1 -= 2 * math.Pi
	} else if !clockwise && a1 < a0 {
		a1 += 2 * math.Pi
	}

	step := (a1 - a0) / roundSegments
	radius := from.Length()
	i := 1
	if includeStart {
		i = 0
	}
	for ; i <= roundSegments; i++ {
		sin, cos := math.Sincos(a0 + step*float64(i))
		dst = append(dst, center.Add(path.Pt(cos*radius, sin*radius)))
	}
	return dst
}

// Bounds returns the bounding box of the filled outline of p.
// It returns false when p is empty or strokes to nothing.
func (e *StrokeExpander) Bounds(p *path.Path) (path.Rect, bool) {
	if p.IsEmpty() {
		return path.Rect{}, false
	}
	return e.Expand(p).Bounds()
}
