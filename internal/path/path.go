package path

// Verb identifies a path command.
type Verb uint8

const (
	// MoveTo starts a new subpath at one point.
	MoveTo Verb = iota
	// LineTo adds a straight segment to one point.
	LineTo
	// CubicTo adds a cubic Bezier segment with two control points and an end point.
	CubicTo
	// Close ends the subpath. It stores the subpath start point.
	Close
)

// PointCount returns how many points the verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case CubicTo:
		return 3
	default:
		return 1
	}
}

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// Path is a sequence of commands over a flat point list.
// Every verb consumes PointCount points from Points in order.
type Path struct {
	Verbs  []Verb
	Points []Point

	start   Point
	current Point
	open    bool
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.Verbs = append(p.Verbs, MoveTo)
	p.Points = append(p.Points, pt)
	p.start = pt
	p.current = pt
	p.open = true
}

// LineTo adds a line segment. Without a current subpath it behaves as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(p.current.X, p.current.Y)
	}
	pt := Pt(x, y)
	p.Verbs = append(p.Verbs, LineTo)
	p.Points = append(p.Points, pt)
	p.current = pt
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(p.current.X, p.current.Y)
	}
	end := Pt(x, y)
	p.Verbs = append(p.Verbs, CubicTo)
	p.Points = append(p.Points, Pt(c1x, c1y), Pt(c2x, c2y), end)
	p.current = end
}

// QuadTo adds a quadratic Bezier segment, stored as the equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	c := Pt(cx, cy)
	end := Pt(x, y)
	c1 := p.current.Add(c.Sub(p.current).Mul(2.0 / 3.0))
	c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Close closes the current subpath. A second Close is a no-op.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.Verbs = append(p.Verbs, Close)
	p.Points = append(p.Points, p.start)
	p.current = p.start
	p.open = false
}

// Rect appends a closed axis-aligned rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Verbs) == 0
}

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	c := *p
	c.Verbs = append([]Verb(nil), p.Verbs...)
	c.Points = append([]Point(nil), p.Points...)
	return &c
}

// Transform returns a copy with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := p.Clone()
	for i, pt := range out.Points {
		out.Points[i] = m.TransformPoint(pt)
	}
	out.start = m.TransformPoint(p.start)
	out.current = m.TransformPoint(p.current)
	return out
}

// Segment is one decoded path command. Pts holds the points the verb
// consumed; unused entries are zero.
type Segment struct {
	Verb Verb
	Pts  [3]Point
}

// End returns the segment's final point.
func (s Segment) End() Point {
	return s.Pts[s.Verb.PointCount()-1]
}

// Segments calls fn for each command in order until fn returns false.
func (p *Path) Segments(fn func(Segment) bool) {
	if p == nil {
		return
	}
	idx := 0
	for _, v := range p.Verbs {
		n := v.PointCount()
		if idx+n > len(p.Points) {
			return
		}
		seg := Segment{Verb: v}
		copy(seg.Pts[:n], p.Points[idx:idx+n])
		idx += n
		if !fn(seg) {
			return
		}
	}
}
