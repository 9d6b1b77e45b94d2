package stroke

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tinyskia/internal/path"
)

const eps = 1e-9

func line(x0, y0, x1, y1 float64) *path.Path {
	p := path.New()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

func near(a, b path.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// contours splits an outline into point lists, dropping the point Close
// appends.
func contours(p *path.Path) [][]path.Point {
	var out [][]path.Point
	var cur []path.Point
	p.Segments(func(s path.Segment) bool {
		switch s.Verb {
		case path.MoveTo:
			cur = []path.Point{s.Pts[0]}
		case path.LineTo:
			cur = append(cur, s.Pts[0])
		case path.Close:
			out = append(out, cur)
			cur = nil
		}
		return true
	})
	return out
}

func TestNewStrokeExpander(t *testing.T) {
	expander := NewStrokeExpander(DefaultStroke())
	if expander == nil {
		t.Fatal("NewStrokeExpander returned nil")
	}
	if expander.Style().Width != 1.0 {
		t.Errorf("style.Width = %v, want 1.0", expander.Style().Width)
	}
	if expander.tolerance != path.StrokeTolerance {
		t.Errorf("tolerance = %v, want %v", expander.tolerance, path.StrokeTolerance)
	}
}

func TestStrokeExpander_SetTolerance(t *testing.T) {
	expander := NewStrokeExpander(DefaultStroke())

	expander.SetTolerance(0.1)
	if expander.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", expander.tolerance)
	}

	// Non-positive values are ignored
	expander.SetTolerance(-1.0)
	expander.SetTolerance(0)
	if expander.tolerance != 0.1 {
		t.Error("non-positive tolerance should be ignored")
	}
}

func TestStrokeValidate(t *testing.T) {
	tests := []struct {
		name  string
		style Stroke
		ok    bool
	}{
		{"default", DefaultStroke(), true},
		{"zero width", Stroke{Width: 0, MiterLimit: 4}, false},
		{"negative width", Stroke{Width: -1, MiterLimit: 4}, false},
		{"nan width", Stroke{Width: math.NaN(), MiterLimit: 4}, false},
		{"inf width", Stroke{Width: math.Inf(1), MiterLimit: 4}, false},
		{"negative miter", Stroke{Width: 1, MiterLimit: -1}, false},
		{"zero miter", Stroke{Width: 1, MiterLimit: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidStroke) {
				t.Errorf("Validate() = %v, want ErrInvalidStroke", err)
			}
		})
	}
}

func TestCapAndJoinNames(t *testing.T) {
	if LineCapSquare.String() != "square" || LineCap(9).String() != "unknown" {
		t.Error("unexpected LineCap names")
	}
	if LineJoinMiterClip.String() != "miter-clip" || LineJoinBevel.String() != "bevel" {
		t.Error("unexpected LineJoin names")
	}
}

func TestExpandButtLine(t *testing.T) {
	style := DefaultStroke()
	style.Width = 2
	out := NewStrokeExpander(style).Expand(line(0, 0, 10, 0))

	wantVerbs := []path.Verb{path.MoveTo, path.LineTo, path.LineTo, path.LineTo, path.Close}
	if len(out.Verbs) != len(wantVerbs) {
		t.Fatalf("verbs = %v, want %v", out.Verbs, wantVerbs)
	}
	for i, v := range wantVerbs {
		if out.Verbs[i] != v {
			t.Errorf("verb %d = %v, want %v", i, out.Verbs[i], v)
		}
	}

	want := []path.Point{{X: 0, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: -1}, {X: 0, Y: -1}}
	for i, w := range want {
		if !near(out.Points[i], w, eps) {
			t.Errorf("point %d = %v, want %v", i, out.Points[i], w)
		}
	}
}

func TestExpandSquareCap(t *testing.T) {
	style := DefaultStroke()
	style.Width = 2
	style.Cap = LineCapSquare
	c := contours(NewStrokeExpander(style).Expand(line(0, 0, 10, 0)))
	if len(c) != 1 {
		t.Fatalf("got %d contours, want 1", len(c))
	}

	want := []path.Point{{X: -1, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: -1}, {X: -1, Y: -1}}
	if len(c[0]) != len(want) {
		t.Fatalf("points = %v, want %v", c[0], want)
	}
	for i, w := range want {
		if !near(c[0][i], w, eps) {
			t.Errorf("point %d = %v, want %v", i, c[0][i], w)
		}
	}
}

func TestExpandRoundCap(t *testing.T) {
	style := DefaultStroke()
	style.Width = 2
	style.Cap = LineCapRound
	out := NewStrokeExpander(style).Expand(line(0, 0, 10, 0))

	c := contours(out)
	if len(c) != 1 {
		t.Fatalf("got %d contours, want 1", len(c))
	}
	// 4 offset points plus two arcs without their start points
	if got, want := len(c[0]), 4+2*roundSegments; got != want {
		t.Errorf("outline has %d points, want %d", got, want)
	}
	for i, p := range c[0] {
		if d := p.Distance(path.Pt(0, 0)); p.X < 0 && math.Abs(d-1) > 1e-9 {
			t.Errorf("start cap point %d at distance %v, want 1", i, d)
		}
		if d := p.Distance(path.Pt(10, 0)); p.X > 10 && math.Abs(d-1) > 1e-9 {
			t.Errorf("end cap point %d at distance %v, want 1", i, d)
		}
	}

	b, ok := out.Bounds()
	if !ok {
		t.Fatal("Bounds reported empty outline")
	}
	if !near(b.Min, path.Pt(-1, -1), 1e-9) || !near(b.Max, path.Pt(11, 1), 1e-9) {
		t.Errorf("bounds = %v, want (-1,-1)-(11,1)", b)
	}
}

func TestExpandMiterBevelFallback(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	style := Stroke{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 1}
	out := NewStrokeExpander(style).Expand(p)

	if !near(out.Points[1], path.Pt(10, 1), eps) {
		t.Errorf("point 1 = %v, want (10,1)", out.Points[1])
	}
	if !near(out.Points[2], path.Pt(9, 0), eps) {
		t.Errorf("point 2 = %v, want (9,0)", out.Points[2])
	}

	// With a generous limit the same corner is a single miter point.
	style.MiterLimit = 4
	out = NewStrokeExpander(style).Expand(p)
	if !near(out.Points[1], path.Pt(9, 1), eps) {
		t.Errorf("miter point = %v, want (9,1)", out.Points[1])
	}
}

func TestExpandMiterClip(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	style := Stroke{Width: 2, Join: LineJoinMiterClip, MiterLimit: 1}
	out := NewStrokeExpander(style).Expand(p)

	want := path.Pt(10-math.Sqrt2/2, math.Sqrt2/2)
	if !near(out.Points[1], want, 1e-9) {
		t.Errorf("clipped miter = %v, want %v", out.Points[1], want)
	}
	if !near(out.Points[2], path.Pt(9, 10), eps) {
		t.Errorf("point 2 = %v, want (9,10)", out.Points[2])
	}
}

func TestExpandRoundJoin(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	style := Stroke{Width: 2, Join: LineJoinRound, MiterLimit: 4}
	c := contours(NewStrokeExpander(style).Expand(p))
	if len(c) != 1 {
		t.Fatalf("got %d contours, want 1", len(c))
	}
	// Two caps on each side plus a full arc on each side of the corner.
	if got, want := len(c[0]), 4+2*(roundSegments+1); got != want {
		t.Errorf("outline has %d points, want %d", got, want)
	}
	corner := path.Pt(10, 0)
	for i := 1; i <= roundSegments+1; i++ {
		if d := c[0][i].Distance(corner); math.Abs(d-1) > 1e-9 {
			t.Errorf("join point %d at distance %v, want 1", i, d)
		}
	}
}

func TestExpandClosedSquare(t *testing.T) {
	p := path.New()
	p.Rect(0, 0, 10, 10)

	style := Stroke{Width: 2, Join: LineJoinMiter, MiterLimit: 4}
	c := contours(NewStrokeExpander(style).Expand(p))
	if len(c) != 2 {
		t.Fatalf("got %d contours, want 2", len(c))
	}

	inner := []path.Point{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}}
	outer := []path.Point{{X: -1, Y: 11}, {X: 11, Y: 11}, {X: 11, Y: -1}, {X: -1, Y: -1}}
	for i := range inner {
		if !near(c[0][i], inner[i], eps) {
			t.Errorf("inner %d = %v, want %v", i, c[0][i], inner[i])
		}
		if !near(c[1][i], outer[i], eps) {
			t.Errorf("outer %d = %v, want %v", i, c[1][i], outer[i])
		}
	}
}

func TestExpandDegenerate(t *testing.T) {
	e := NewStrokeExpander(DefaultStroke())

	if out := e.Expand(path.New()); !out.IsEmpty() {
		t.Error("empty path should stroke to nothing")
	}
	single := path.New()
	single.MoveTo(3, 3)
	if out := e.Expand(single); !out.IsEmpty() {
		t.Error("lone MoveTo should stroke to nothing")
	}
	if _, ok := e.Bounds(nil); ok {
		t.Error("nil path should have no bounds")
	}
}

func TestExpandCurve(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)

	style := Stroke{Width: 2, Join: LineJoinRound, MiterLimit: 4}
	b, ok := NewStrokeExpander(style).Bounds(p)
	if !ok {
		t.Fatal("curve has no stroke bounds")
	}
	// The curve peaks at y = 7.5.
	if math.Abs(b.Max.Y-8.5) > 0.01 {
		t.Errorf("max y = %v, want about 8.5", b.Max.Y)
	}
	if math.Abs(b.Min.X+1) > 0.01 || math.Abs(b.Max.X-11) > 0.01 {
		t.Errorf("x range = [%v, %v], want about [-1, 11]", b.Min.X, b.Max.X)
	}
}

func TestStrokeBounds(t *testing.T) {
	tests := []struct {
		name     string
		path     *path.Path
		style    Stroke
		min, max path.Point
	}{
		{
			name:  "square cap",
			path:  line(0, 0, 10, 0),
			style: Stroke{Width: 4, Cap: LineCapSquare, MiterLimit: 4},
			min:   path.Pt(-2, -2),
			max:   path.Pt(12, 2),
		},
		{
			name:  "vertical round cap",
			path:  line(0, 0, 0, 10),
			style: Stroke{Width: 6, Cap: LineCapRound, MiterLimit: 4},
			min:   path.Pt(-3, -3),
			max:   path.Pt(3, 13),
		},
		{
			name: "closed square",
			path: func() *path.Path {
				p := path.New()
				p.Rect(0, 0, 5, 5)
				return p
			}(),
			style: Stroke{Width: 2, Join: LineJoinMiter, MiterLimit: 4},
			min:   path.Pt(-1, -1),
			max:   path.Pt(6, 6),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := NewStrokeExpander(tt.style).Bounds(tt.path)
			if !ok {
				t.Fatal("no bounds")
			}
			if !near(b.Min, tt.min, 1e-9) || !near(b.Max, tt.max, 1e-9) {
				t.Errorf("bounds = %v-%v, want %v-%v", b.Min, b.Max, tt.min, tt.max)
			}
		})
	}
}

func TestExpandDashed(t *testing.T) {
	d, err := NewDash([]float64{3, 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	style := Stroke{Width: 2, MiterLimit: 4, Dash: d}
	c := contours(NewStrokeExpander(style).Expand(line(0, 0, 10, 0)))
	if len(c) != 2 {
		t.Fatalf("got %d dash outlines, want 2", len(c))
	}
	if !near(c[0][0], path.Pt(0, 1), eps) || !near(c[0][1], path.Pt(3, 1), eps) {
		t.Errorf("first dash = %v", c[0])
	}
	if !near(c[1][0], path.Pt(5, 1), eps) || !near(c[1][1], path.Pt(8, 1), eps) {
		t.Errorf("second dash = %v", c[1])
	}
}

func TestExpandRepeatedPoints(t *testing.T) {
	build := func(pts ...path.Point) *path.Path {
		p := path.New()
		p.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		return p
	}
	a, b, c := path.Pt(2, 10), path.Pt(10, 10), path.Pt(10, 2)

	tests := []struct {
		name string
		path *path.Path
	}{
		{"repeated corner", build(a, b, b, c)},
		{"repeated start", build(a, a, b, c)},
		{"repeated end", build(a, b, c, c)},
		{"nearly repeated corner", build(a, b, b.Add(path.Pt(1e-8, 0)), c)},
	}
	for _, join := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		for _, cp := range []LineCap{LineCapButt, LineCapSquare} {
			style := Stroke{Width: 4, Cap: cp, Join: join, MiterLimit: 4}
			e := NewStrokeExpander(style)
			want := contours(e.Expand(build(a, b, c)))
			for _, tt := range tests {
				t.Run(join.String()+"/"+cp.String()+"/"+tt.name, func(t *testing.T) {
					got := contours(e.Expand(tt.path))
					if len(got) != len(want) {
						t.Fatalf("got %d contours, want %d", len(got), len(want))
					}
					for i := range want {
						if len(got[i]) != len(want[i]) {
							t.Fatalf("contour %d has %d points, want %d", i, len(got[i]), len(want[i]))
						}
						for j := range want[i] {
							if !near(got[i][j], want[i][j], 1e-6) {
								t.Errorf("contour %d point %d = %v, want %v", i, j, got[i][j], want[i][j])
							}
						}
					}
				})
			}
		}
	}
}

func TestExpandZeroLengthLine(t *testing.T) {
	e := NewStrokeExpander(Stroke{Width: 2, Cap: LineCapSquare, MiterLimit: 4})
	if out := e.Expand(line(3, 3, 3, 3)); !out.IsEmpty() {
		t.Errorf("zero-length line stroked to %d points, want none", len(out.Points))
	}
}
