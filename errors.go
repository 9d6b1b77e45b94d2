package tinyskia

import (
	"errors"

	"github.com/gogpu/tinyskia/internal/raster"
	"github.com/gogpu/tinyskia/internal/stroke"
)

// Errors shared with the internal packages. They are the same values, so
// errors.Is works regardless of which layer reported them.
var (
	// ErrInvalidDimensions is returned for non-positive or overflowing
	// pixmap and mask sizes.
	ErrInvalidDimensions = raster.ErrInvalidDimensions

	// ErrMaskMismatch is returned when a clip mask is invalid or its size
	// differs from the destination.
	ErrMaskMismatch = raster.ErrMaskMismatch

	// ErrInvalidStroke is returned for a non-positive or non-finite stroke
	// width or an invalid miter limit.
	ErrInvalidStroke = stroke.ErrInvalidStroke

	// ErrInvalidDash is returned for malformed dash intervals.
	ErrInvalidDash = stroke.ErrInvalidDash
)

var (
	// ErrInvalidPixmap is returned when a destination pixmap is nil or its
	// buffer does not cover its dimensions.
	ErrInvalidPixmap = errors.New("tinyskia: invalid pixmap")

	// ErrSingularTransform is returned when a shader transform cannot be
	// inverted.
	ErrSingularTransform = errors.New("tinyskia: transform is not invertible")

	// ErrNoGradientStops is returned for a gradient without enough stops.
	ErrNoGradientStops = errors.New("tinyskia: gradient has no stops")

	// ErrInvalidRadius is returned for a radial gradient whose radius is
	// negative or zero.
	ErrInvalidRadius = errors.New("tinyskia: radial gradient radius must be positive")

	// ErrNonFiniteGradient is returned when gradient geometry is not finite.
	ErrNonFiniteGradient = errors.New("tinyskia: gradient geometry is not finite")

	// ErrDegenerateGradient is returned for a radial gradient with
	// coincident centers and a vanishing radius.
	ErrDegenerateGradient = errors.New("tinyskia: gradient is degenerate")

	// ErrMissingPixmap is returned when a pattern has no valid source pixmap.
	ErrMissingPixmap = errors.New("tinyskia: pattern pixmap is missing or invalid")
)
