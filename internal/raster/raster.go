// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/gogpu/tinyskia/internal/path"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// coverageEpsilon nudges span ends so a span ending exactly on a pixel
// boundary does not touch the next pixel.
const coverageEpsilon = 1e-6

// crossing is one edge intersection with a scanline center.
type crossing struct {
	x       float64
	winding int8
}

// Rasterizer converts paths into coverage masks with one sample per
// scanline center and exact horizontal coverage.
//
// A Rasterizer reuses its scratch buffers between calls and is not safe
// for concurrent use. The zero value is ready to use.
type Rasterizer struct {
	edges     []Edge
	active    []*Edge
	crossings []crossing
	runs      AlphaRuns
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Fill rasterizes p, transformed by m, into a new width x height mask.
// An empty path yields an all-zero mask. Only invalid dimensions fail.
func (r *Rasterizer) Fill(p *path.Path, width, height int, rule FillRule, antiAlias bool, m path.Matrix) (*Mask, error) {
	mask, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}

	r.edges = appendEdges(r.edges[:0], p, m)
	slogger().Debug("raster: fill",
		slog.Int("edges", len(r.edges)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("rule", rule.String()),
		slog.Bool("aa", antiAlias))
	if len(r.edges) == 0 {
		return mask, nil
	}

	minY, maxY := height, -1
	for i := range r.edges {
		minY = min(minY, r.edges[i].FirstY)
		maxY = max(maxY, r.edges[i].LastY)
	}
	minY = max(minY, 0)
	maxY = min(maxY, height-1)

	for y := minY; y <= maxY; y++ {
		r.scanline(y, width, rule, antiAlias)
		if !r.runs.IsEmpty() {
			r.runs.Decode(mask.Row(y))
		}
	}
	return mask, nil
}

// Fill rasterizes p with a fresh Rasterizer.
func Fill(p *path.Path, width, height int, rule FillRule, antiAlias bool, m path.Matrix) (*Mask, error) {
	var r Rasterizer
	return r.Fill(p, width, height, rule, antiAlias, m)
}

// scanline accumulates the spans of row y into r.runs.
func (r *Rasterizer) scanline(y, width int, rule FillRule, antiAlias bool) {
	r.runs.Reset(width)

	r.active = r.active[:0]
	for i := range r.edges {
		if r.edges[i].CoversScanline(y) {
			r.active = append(r.active, &r.edges[i])
		}
	}
	if len(r.active) == 0 {
		return
	}

	r.crossings = r.crossings[:0]
	for _, e := range r.active {
		r.crossings = append(r.crossings, crossing{x: e.XAtScanline(y), winding: e.Winding})
	}
	slices.SortStableFunc(r.crossings, func(a, b crossing) int {
		return cmp.Compare(a.x, b.x)
	})

	if rule == FillRuleEvenOdd {
		r.fillEvenOdd(width, antiAlias)
	} else {
		r.fillNonZero(width, antiAlias)
	}
}

// fillNonZero opens a span at the first crossing and closes it when the
// accumulated winding returns to zero.
func (r *Rasterizer) fillNonZero(width int, antiAlias bool) {
	winding := 0
	inSpan := false
	var start float64
	offset := 0

	for _, c := range r.crossings {
		if !inSpan {
			start = c.x
			inSpan = true
		}
		winding += int(c.winding)
		if winding == 0 {
			offset = emitSpan(&r.runs, antiAlias, start, c.x, width, offset)
			inSpan = false
		}
	}
}

// fillEvenOdd toggles inside/outside at every crossing.
func (r *Rasterizer) fillEvenOdd(width int, antiAlias bool) {
	inSpan := false
	var start float64
	offset := 0

	for _, c := range r.crossings {
		if inSpan {
			offset = emitSpan(&r.runs, antiAlias, start, c.x, width, offset)
		} else {
			start = c.x
		}
		inSpan = !inSpan
	}
}

func emitSpan(runs *AlphaRuns, antiAlias bool, start, stop float64, width, offset int) int {
	if antiAlias {
		return emitSpanAA(runs, start, stop, width, offset)
	}
	return emitSpanAliased(runs, start, stop, width, offset)
}

// emitSpanAA adds [start, stop) with fractional coverage on the end pixels.
func emitSpanAA(runs *AlphaRuns, start, stop float64, width, offset int) int {
	w := float64(width)
	start = clampF(start, 0, w)
	stop = clampF(stop, 0, w)
	if stop <= start {
		return offset
	}

	startPixel := int(math.Floor(start))
	stopPixel := int(math.Floor(stop - coverageEpsilon))
	if startPixel >= width || stopPixel < 0 {
		return offset
	}
	first := max(0, startPixel)
	last := min(width-1, stopPixel)
	if last < first {
		return offset
	}

	if first == last {
		a := coverageByte(stop - start)
		return runs.Add(first, a, 0, 0, a, offset)
	}

	startAlpha := coverageByte(float64(startPixel) + 1 - start)
	stopAlpha := coverageByte(math.Min(1, stop-float64(stopPixel)))
	middle := max(0, last-first-1)
	return runs.Add(first, startAlpha, middle, stopAlpha, 255, offset)
}

// emitSpanAliased fills pixels ceil(start) through floor(stop) inclusive
// at full coverage. Spans that contain no whole pixel boundary are dropped.
func emitSpanAliased(runs *AlphaRuns, start, stop float64, width, offset int) int {
	w := float64(width)
	start = clampF(start, 0, w)
	stop = clampF(stop, 0, w)
	if stop <= start {
		return offset
	}

	first := int(math.Ceil(start))
	last := int(math.Floor(stop - coverageEpsilon))
	if first >= width || last < 0 || last < first {
		return offset
	}
	return runs.Add(first, 0, last-first+1, 0, 255, offset)
}

// coverageByte converts a coverage fraction into 0..255, rounding half
// away from zero.
func coverageByte(f float64) uint8 {
	return uint8(math.Round(clampF(f, 0, 1) * 255))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
