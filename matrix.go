package tinyskia

import (
	"golang.org/x/image/math/f64"

	"github.com/gogpu/tinyskia/internal/path"
)

// Matrix is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix = path.Matrix

// Identity returns the identity transformation matrix.
func Identity() Matrix { return path.Identity() }

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix { return path.Translate(x, y) }

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix { return path.Scale(x, y) }

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix { return path.Rotate(angle) }

// Skew creates a skew matrix with the given x and y shear factors.
func Skew(x, y float64) Matrix { return path.Skew(x, y) }

// MatrixFromAff3 converts an x/image affine matrix, so transforms built for
// golang.org/x/image/draw can be reused for paths and shaders.
func MatrixFromAff3(a f64.Aff3) Matrix { return path.FromAff3(a) }
