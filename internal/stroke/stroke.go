package stroke

import (
	"errors"
	"math"
)

// Errors returned for invalid stroke parameters.
var (
	ErrInvalidStroke = errors.New("stroke: invalid stroke")
	ErrInvalidDash   = errors.New("stroke: invalid dash")
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the SVG name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinMiterClip specifies a miter clipped at the miter limit.
	LineJoinMiterClip
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// Stroke describes how a path outline is drawn.
type Stroke struct {
	// Width is the full stroke thickness. Must be positive and finite.
	Width float64

	// Cap is applied at both ends of open subpaths.
	Cap LineCap

	// Join is applied at interior vertices.
	Join LineJoin

	// MiterLimit is the largest allowed ratio of miter length to half
	// width before a miter join falls back to a bevel.
	MiterLimit float64

	// Dash is an optional validated dash pattern.
	Dash *Dash
}

// DefaultStroke returns a 1-unit butt/miter stroke with miter limit 4.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Validate checks the width and miter limit.
func (s Stroke) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return ErrInvalidStroke
	}
	if math.IsNaN(s.MiterLimit) || math.IsInf(s.MiterLimit, 0) || s.MiterLimit < 0 {
		return ErrInvalidStroke
	}
	return nil
}
