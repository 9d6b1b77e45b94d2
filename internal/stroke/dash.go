package stroke

import (
	"math"
	"slices"

	"github.com/gogpu/tinyskia/internal/path"
)

// distanceEpsilon is the length below which dash steps and segments are
// treated as empty.
const distanceEpsilon = 1e-6

// Dash is a validated dash pattern. Construct it with NewDash; the value
// never changes afterwards.
type Dash struct {
	intervals   []float64
	offset      float64
	length      float64
	firstIndex  int
	firstLength float64
}

// NewDash validates intervals and offset and precomputes where the
// pattern starts. intervals must hold an even number (at least two) of
// finite, non-negative lengths with a positive finite sum, and offset must
// be finite. A negative offset shifts the pattern the other way.
func NewDash(intervals []float64, offset float64) (*Dash, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, ErrInvalidDash
	}
	if len(intervals) < 2 || len(intervals)%2 != 0 {
		return nil, ErrInvalidDash
	}

	var sum, longest float64
	for _, v := range intervals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, ErrInvalidDash
		}
		sum += v
		longest = max(longest, v)
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, ErrInvalidDash
	}
	// The walker skips intervals at or below distanceEpsilon, so at least
	// one must be longer or it would never advance.
	if longest <= distanceEpsilon {
		return nil, ErrInvalidDash
	}

	d := &Dash{
		intervals: slices.Clone(intervals),
		offset:    adjustOffset(offset, sum),
		length:    sum,
	}
	d.firstIndex, d.firstLength = d.findFirstInterval()
	return d, nil
}

// adjustOffset maps offset into [0, length).
func adjustOffset(offset, length float64) float64 {
	if offset < 0 {
		offset = -offset
		if offset > length {
			offset = math.Mod(offset, length)
		}
		offset = length - offset
		if offset == length {
			offset = 0
		}
		return offset
	}
	if offset >= length {
		return math.Mod(offset, length)
	}
	return offset
}

func (d *Dash) findFirstInterval() (int, float64) {
	off := d.offset
	for i, gap := range d.intervals {
		if off > gap || (off == gap && gap != 0) {
			off -= gap
			continue
		}
		return i, gap - off
	}
	return 0, d.intervals[0]
}

// Intervals returns a copy of the dash lengths.
func (d *Dash) Intervals() []float64 { return slices.Clone(d.intervals) }

// Offset returns the offset normalized to [0, IntervalLength).
func (d *Dash) Offset() float64 { return d.offset }

// IntervalLength returns the sum of all dash and gap lengths.
func (d *Dash) IntervalLength() float64 { return d.length }

// FirstIndex returns the interval index the pattern starts in.
func (d *Dash) FirstIndex() int { return d.firstIndex }

// FirstLength returns what remains of the first interval after the offset.
func (d *Dash) FirstLength() float64 { return d.firstLength }

// dashState is the walker position inside the pattern. It is passed and
// returned by value.
type dashState struct {
	index     int
	remaining float64
	draw      bool
}

func newDashState(d *Dash) dashState {
	return dashState{
		index:     d.firstIndex,
		remaining: d.firstLength,
		draw:      d.firstIndex%2 == 0,
	}
}

func (s dashState) advance(d *Dash) dashState {
	s.index = (s.index + 1) % len(d.intervals)
	s.remaining = d.intervals[s.index]
	s.draw = s.index%2 == 0
	return s
}

// ensureRemaining skips zero-length intervals. The positive pattern sum
// guarantees termination.
func (s dashState) ensureRemaining(d *Dash) dashState {
	for s.remaining <= distanceEpsilon {
		s = s.advance(d)
	}
	return s
}

// ApplyDash returns a new path holding only the "on" intervals of p.
// Curves are flattened first. The pattern restarts at every subpath, and a
// closed subpath is dashed as a polyline ending at its start point.
func ApplyDash(p *path.Path, d *Dash) *path.Path {
	out := path.New()
	if p.IsEmpty() || d == nil {
		return out
	}

	w := dasher{dash: d, out: out}
	var poly []path.Point

	p.Segments(func(s path.Segment) bool {
		switch s.Verb {
		case path.MoveTo:
			w.polyline(poly)
			poly = append(poly[:0], s.Pts[0])
		case path.LineTo:
			poly = append(poly, s.Pts[0])
		case path.CubicTo:
			if len(poly) == 0 {
				break
			}
			poly = path.FlattenCubic(poly, poly[len(poly)-1], s.Pts[0], s.Pts[1], s.Pts[2], path.StrokeTolerance)
		case path.Close:
			poly = append(poly, s.Pts[0])
			w.polyline(poly)
			poly = poly[:0]
		}
		return true
	})
	w.polyline(poly)
	return out
}

type dasher struct {
	dash   *Dash
	out    *path.Path
	last   path.Point
	hasOut bool
}

func (w *dasher) polyline(pts []path.Point) {
	if len(pts) < 2 {
		return
	}
	st := newDashState(w.dash)
	w.hasOut = false
	for i := 1; i < len(pts); i++ {
		st = w.segment(pts[i-1], pts[i], st)
	}
}

func (w *dasher) segment(start, end path.Point, st dashState) dashState {
	segLen := end.Sub(start).Length()
	if segLen <= distanceEpsilon {
		return st
	}

	consumed := 0.0
	for consumed+distanceEpsilon < segLen {
		st = st.ensureRemaining(w.dash)

		step := math.Min(segLen-consumed, st.remaining)
		if st.draw && step > distanceEpsilon {
			w.emit(start.Lerp(end, consumed/segLen), start.Lerp(end, (consumed+step)/segLen))
		}

		consumed += step
		st.remaining -= step
		if st.remaining <= distanceEpsilon {
			st = st.advance(w.dash)
		}
	}
	return st
}

func (w *dasher) emit(a, b path.Point) {
	if b.Sub(a).LengthSquared() <= distanceEpsilon {
		return
	}
	if !w.hasOut || w.last.Sub(a).LengthSquared() > distanceEpsilon {
		w.out.MoveTo(a.X, a.Y)
	}
	w.out.LineTo(b.X, b.Y)
	w.last = b
	w.hasOut = true
}
