package tinyskia

import "github.com/gogpu/tinyskia/internal/stroke"

// Dash is a validated, immutable dash pattern.
type Dash = stroke.Dash

// NewDash validates intervals (an even number of non-negative on/off
// lengths with a positive sum) and normalizes offset into one period.
func NewDash(intervals []float64, offset float64) (*Dash, error) {
	return stroke.NewDash(intervals, offset)
}
