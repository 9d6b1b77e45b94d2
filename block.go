package tinyskia

import (
	icolor "github.com/gogpu/tinyskia/internal/color"
	"github.com/gogpu/tinyskia/internal/wide"
)

// Source-over compositing in 4- and 8-pixel blocks.
//
// Colors are loaded into planar lanes: color channels premultiplied with
// (c*a+127)/255 and kept in 0..255 units, alpha in [0, 1]. The blend is
// out = s + d*(1-sa) per lane in float32. Results are un-premultiplied
// before they are stored, like the scalar path, and stay within one unit
// of it per channel.

// blendSourceOverRow composites src over row, optionally scaled by
// coverage (nil means full coverage). Pixels with zero coverage are left
// untouched.
func blendSourceOverRow(row []byte, src []Color, coverage []byte, mode blockMode) {
	n := len(src)
	i := 0
	if mode == blockX8 {
		for ; n-i >= 8; i += 8 {
			blendSourceOverBlock8(row[i*4:], src[i:i+8], coverageAt(coverage, i, 8))
		}
	}
	if mode >= blockX4 {
		for ; n-i >= 4; i += 4 {
			blendSourceOverBlock4(row[i*4:], src[i:i+4], coverageAt(coverage, i, 4))
		}
	}
	for ; i < n; i++ {
		s := src[i]
		if coverage != nil {
			if coverage[i] == 0 {
				continue
			}
			s = icolor.MultiplyColor(s, float32(coverage[i])/255)
		}
		px := row[i*4:]
		storePixel(px, blendSourceOverPixel(s, loadPixel(px)))
	}
}

// blendSourceOverPixel is the scalar reference for the block paths.
func blendSourceOverPixel(src, dst Color) Color {
	s := icolor.Premultiply(src)
	d := icolor.Premultiply(dst)
	inv := float32(1 - s.A)
	out := icolor.Premultiplied{
		R: float64(float32(s.R) + float32(d.R)*inv),
		G: float64(float32(s.G) + float32(d.G)*inv),
		B: float64(float32(s.B) + float32(d.B)*inv),
		A: float64(float32(s.A) + float32(d.A)*inv),
	}
	return out.Straight()
}

func blendSourceOverBlock4(px []byte, src []Color, coverage []byte) {
	if allZero(coverage) {
		return
	}
	var s, d [4]wide.F32x4
	for i := range 4 {
		loadLane(s[0][:], s[1][:], s[2][:], s[3][:], i, scaledSource(src, coverage, i))
		loadLane(d[0][:], d[1][:], d[2][:], d[3][:], i, loadPixel(px[i*4:]))
	}

	inv := wide.SplatF32x4(1).Sub(s[3])
	a := d[3].MulAdd(inv, s[3])
	r := d[0].MulAdd(inv, s[0]).Div(a).Clamp(0, 255).Round()
	g := d[1].MulAdd(inv, s[1]).Div(a).Clamp(0, 255).Round()
	b := d[2].MulAdd(inv, s[2]).Div(a).Clamp(0, 255).Round()
	ab := a.Mul(wide.SplatF32x4(255)).Clamp(0, 255).Round()

	for i := range 4 {
		if coverage != nil && coverage[i] == 0 {
			continue
		}
		storeLane(px[i*4:], r[i], g[i], b[i], a[i], ab[i])
	}
}

func blendSourceOverBlock8(px []byte, src []Color, coverage []byte) {
	if allZero(coverage) {
		return
	}
	var s, d [4]wide.F32x8
	for i := range 8 {
		loadLane(s[0][:], s[1][:], s[2][:], s[3][:], i, scaledSource(src, coverage, i))
		loadLane(d[0][:], d[1][:], d[2][:], d[3][:], i, loadPixel(px[i*4:]))
	}

	inv := wide.SplatF32x8(1).Sub(s[3])
	a := d[3].MulAdd(inv, s[3])
	r := d[0].MulAdd(inv, s[0]).Div(a).Clamp(0, 255).Round()
	g := d[1].MulAdd(inv, s[1]).Div(a).Clamp(0, 255).Round()
	b := d[2].MulAdd(inv, s[2]).Div(a).Clamp(0, 255).Round()
	ab := a.Mul(wide.SplatF32x8(255)).Clamp(0, 255).Round()

	for i := range 8 {
		if coverage != nil && coverage[i] == 0 {
			continue
		}
		storeLane(px[i*4:], r[i], g[i], b[i], a[i], ab[i])
	}
}

// scaledSource returns src[i] scaled by its coverage.
func scaledSource(src []Color, coverage []byte, i int) Color {
	if coverage == nil {
		return src[i]
	}
	return icolor.MultiplyColor(src[i], float32(coverage[i])/255)
}

// loadLane writes c into lane i with premultiplied 0..255 color channels
// and alpha in [0, 1].
func loadLane(r, g, b, a []float32, i int, c Color) {
	r[i] = float32(icolor.MulDiv255(c.R, c.A))
	g[i] = float32(icolor.MulDiv255(c.G, c.A))
	b[i] = float32(icolor.MulDiv255(c.B, c.A))
	a[i] = float32(c.A) / 255
}

// storeLane stores one un-premultiplied lane. A zero alpha stores
// transparent black.
func storeLane(px []byte, r, g, b, alpha, alphaByte float32) {
	if !(alpha > 0) {
		storePixel(px, Transparent)
		return
	}
	px[0] = uint8(r)         //nolint:gosec // clamped to [0, 255]
	px[1] = uint8(g)         //nolint:gosec // clamped to [0, 255]
	px[2] = uint8(b)         //nolint:gosec // clamped to [0, 255]
	px[3] = uint8(alphaByte) //nolint:gosec // clamped to [0, 255]
}

// coverageAt returns coverage[i:i+n], or nil for full coverage.
func coverageAt(coverage []byte, i, n int) []byte {
	if coverage == nil {
		return nil
	}
	return coverage[i : i+n]
}

// allZero reports whether a non-nil coverage block is entirely zero.
func allZero(coverage []byte) bool {
	if coverage == nil {
		return false
	}
	for _, c := range coverage {
		if c != 0 {
			return false
		}
	}
	return true
}
