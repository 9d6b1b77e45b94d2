// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"math"

	"github.com/gogpu/tinyskia/internal/wide"
)

// Errors returned by mask construction and combination.
var (
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
	ErrMaskMismatch      = errors.New("raster: mask size mismatch")
)

// Mask is an 8-bit coverage buffer with stride equal to its width.
type Mask struct {
	Width  int
	Height int
	Data   []byte
}

// NewMask allocates a zeroed mask. Width and height must be positive and
// the byte count must fit in an int.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 || width > MaxWidth {
		return nil, ErrInvalidDimensions
	}
	if height > math.MaxInt/width {
		return nil, ErrInvalidDimensions
	}
	return &Mask{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height),
	}, nil
}

// IsValid reports whether the mask has positive dimensions and a buffer
// large enough for them.
func (m *Mask) IsValid() bool {
	return m != nil && m.Width > 0 && m.Height > 0 && len(m.Data) >= m.Width*m.Height
}

// Row returns the coverage bytes of scanline y.
func (m *Mask) Row(y int) []byte {
	off := y * m.Width
	return m.Data[off : off+m.Width]
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// Clear zeroes all coverage.
func (m *Mask) Clear() {
	clear(m.Data)
}

// Multiply scales every coverage value by the matching clip value using
// (m*c+127)/255. The clip must have the same dimensions.
// Nothing is modified when the sizes differ.
func (m *Mask) Multiply(clip *Mask) error {
	if !clip.IsValid() || clip.Width != m.Width || clip.Height != m.Height {
		return ErrMaskMismatch
	}

	n := m.Width * m.Height
	dst := m.Data[:n]
	src := clip.Data[:n]

	i := 0
	for ; i+16 <= n; i += 16 {
		wide.LoadU8(dst[i:]).MulDiv255Round(wide.LoadU8(src[i:])).StoreU8(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = uint8((uint16(dst[i])*uint16(src[i]) + 127) / 255) //nolint:gosec // result is at most 255
	}
	return nil
}
