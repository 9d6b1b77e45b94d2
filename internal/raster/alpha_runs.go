// Package raster turns path geometry into 8-bit coverage masks.
// This file implements AlphaRuns, the run-length coverage buffer for one
// scanline. Based on tiny-skia's alpha_runs.rs (Android/Skia heritage).
package raster

// AlphaRuns stores run-length-encoded alpha (coverage) values for a scanline.
// Sparseness allows several spans to accumulate into the same buffer.
type AlphaRuns struct {
	// runs stores the length of each run. A zero value terminates the runs.
	runs []uint16
	// alpha stores the coverage of each run, indexed by the run's first pixel.
	alpha []uint8
	width int
}

// MaxWidth is the widest scanline a run buffer can describe.
const MaxWidth = 65535

// NewAlphaRuns creates a new AlphaRuns buffer for the given width.
func NewAlphaRuns(width int) *AlphaRuns {
	ar := &AlphaRuns{}
	ar.Reset(width)
	return ar
}

// CatchOverflow converts an accumulated 0-256 coverage to 0-255.
// Larger sums saturate at 255.
func CatchOverflow(alpha uint16) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	return uint8(alpha - (alpha >> 8)) //nolint:gosec // bounded by 255 after overflow correction
}

// IsEmpty returns true if the scanline contains only a single run of alpha 0.
func (ar *AlphaRuns) IsEmpty() bool {
	if ar.runs[0] == 0 {
		return true
	}
	return ar.alpha[0] == 0 && ar.runs[ar.runs[0]] == 0
}

// Width returns the scanline width the buffer was last reset to.
func (ar *AlphaRuns) Width() int {
	return ar.width
}

// Reset reinitializes the buffer to one transparent run spanning width.
// The backing arrays are reused when large enough.
func (ar *AlphaRuns) Reset(width int) {
	if width < 0 {
		width = 0
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	if cap(ar.runs) < width+1 {
		ar.runs = make([]uint16, width+1)
		ar.alpha = make([]uint8, width+1)
	}
	ar.runs = ar.runs[:width+1]
	ar.alpha = ar.alpha[:width+1]
	clear(ar.runs)
	clear(ar.alpha)
	ar.width = width
	ar.runs[0] = uint16(width) //nolint:gosec // bounded to MaxWidth above
	ar.runs[width] = 0
}

// Add accumulates a span into the buffer:
//   - x: first pixel of the span
//   - startAlpha: coverage added to pixel x (skipped if zero)
//   - middleCount: number of pixels after the start pixel receiving maxValue
//   - stopAlpha: coverage added to the pixel after the middle run (skipped if zero)
//   - offsetX: resume offset returned by a previous Add on the same scanline
//
// Returns the resume offset for the next call. It is only valid when the
// next span starts at or after it.
func (ar *AlphaRuns) Add(x int, startAlpha uint8, middleCount int, stopAlpha uint8, maxValue uint8, offsetX int) int {
	if x < 0 || x >= ar.width {
		return offsetX
	}
	if offsetX > x {
		offsetX = x
	}
	if offsetX < 0 {
		offsetX = 0
	}

	offset := offsetX
	lastAlphaOffset := offsetX
	x -= offsetX

	if startAlpha != 0 {
		ar.breakRun(offset, x, 1)
		tmp := uint16(ar.alpha[offset+x]) + uint16(startAlpha)
		ar.alpha[offset+x] = CatchOverflow(tmp)

		offset += x + 1
		x = 0
	}

	if middleCount > 0 {
		ar.breakRun(offset, x, middleCount)
		offset += x
		x = 0

		for middleCount > 0 {
			ar.alpha[offset] = CatchOverflow(uint16(ar.alpha[offset]) + uint16(maxValue))
			n := int(ar.runs[offset])
			if n == 0 {
				break
			}
			offset += n
			middleCount -= n
		}

		lastAlphaOffset = offset
	}

	if stopAlpha != 0 {
		ar.breakRun(offset, x, 1)
		offset += x
		if offset < ar.width {
			sum := uint16(ar.alpha[offset]) + uint16(stopAlpha)
			ar.alpha[offset] = uint8(min(sum, 255)) //nolint:gosec // clamped to 255
		}
		lastAlphaOffset = offset
	}

	return lastAlphaOffset
}

// breakRun splits runs so that one begins at base+x and another at
// base+x+count, keeping the partition of the scanline intact.
func (ar *AlphaRuns) breakRun(base, x, count int) {
	runs := ar.runs[base:]
	alpha := ar.alpha[base:]
	origX := x

	// first split at x
	i := 0
	for x > 0 {
		n := int(runs[i])
		if n == 0 {
			break
		}
		if x < n {
			alpha[i+x] = alpha[i]
			runs[i] = uint16(x)       //nolint:gosec // x < n and n fits in uint16
			runs[i+x] = uint16(n - x) //nolint:gosec // n-x is positive and bounded
			break
		}
		i += n
		x -= n
	}

	// second split at origX+count
	i = origX
	x = count
	for i < len(runs) {
		n := int(runs[i])
		if n == 0 {
			break
		}
		if x < n {
			alpha[i+x] = alpha[i]
			runs[i] = uint16(x)       //nolint:gosec // x < n and n fits in uint16
			runs[i+x] = uint16(n - x) //nolint:gosec // n-x is positive and bounded
			break
		}
		x -= n
		if x == 0 {
			break
		}
		i += n
	}
}

// Decode expands the runs into dst, one coverage byte per pixel.
// dst must hold at least Width bytes.
func (ar *AlphaRuns) Decode(dst []byte) {
	x := 0
	for {
		n := int(ar.runs[x])
		if n == 0 {
			return
		}
		a := ar.alpha[x]
		end := min(x+n, len(dst), ar.width)
		for i := x; i < end; i++ {
			dst[i] = a
		}
		x += n
		if x >= ar.width {
			return
		}
	}
}
