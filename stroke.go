package tinyskia

import "github.com/gogpu/tinyskia/internal/stroke"

// Stroke describes how a path outline is drawn. The zero Stroke draws like
// DefaultStroke, and a zero MiterLimit means 4.
type Stroke = stroke.Stroke

// LineCap specifies the shape of line endpoints.
type LineCap = stroke.LineCap

// LineJoin specifies the shape of line joins.
type LineJoin = stroke.LineJoin

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt = stroke.LineCapButt
	// LineCapRound specifies a rounded line cap.
	LineCapRound = stroke.LineCapRound
	// LineCapSquare extends the line by half its width.
	LineCapSquare = stroke.LineCapSquare
)

const (
	// LineJoinMiter specifies a sharp join that falls back to bevel past
	// the miter limit.
	LineJoinMiter = stroke.LineJoinMiter
	// LineJoinMiterClip clips the miter at the miter limit.
	LineJoinMiterClip = stroke.LineJoinMiterClip
	// LineJoinRound specifies a rounded join.
	LineJoinRound = stroke.LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel = stroke.LineJoinBevel
)

// DefaultStroke returns a 1-unit butt/miter stroke with miter limit 4.
func DefaultStroke() Stroke {
	return stroke.DefaultStroke()
}

// defaultMiterLimit replaces an unset MiterLimit.
const defaultMiterLimit = 4.0

// resolveStroke replaces the zero Stroke with DefaultStroke, fills in an
// unset MiterLimit and validates the rest.
func resolveStroke(st Stroke) (Stroke, error) {
	if st == (Stroke{}) {
		return DefaultStroke(), nil
	}
	if st.MiterLimit == 0 {
		st.MiterLimit = defaultMiterLimit
	}
	if err := st.Validate(); err != nil {
		return Stroke{}, err
	}
	return st, nil
}

// StrokeOutline expands p into a closed outline that, filled with the
// non-zero rule, covers the stroke.
func StrokeOutline(p *Path, st Stroke) (*Path, error) {
	st, err := resolveStroke(st)
	if err != nil {
		return nil, err
	}
	e := stroke.NewStrokeExpander(st)
	e.Logger = Logger()
	return e.Expand(p), nil
}

// ComputeStrokeBounds returns the bounds of the stroked outline of p.
// It returns false when the stroke is invalid or covers nothing.
func ComputeStrokeBounds(p *Path, st Stroke) (Rect, bool) {
	st, err := resolveStroke(st)
	if err != nil || p == nil {
		return Rect{}, false
	}
	return stroke.NewStrokeExpander(st).Bounds(p)
}
