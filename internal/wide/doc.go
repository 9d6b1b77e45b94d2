// Package wide provides SIMD-friendly lane types for block pixel processing.
//
// The types are fixed-size arrays operated on by simple loops, which the Go
// compiler can auto-vectorize on SSE, AVX and NEON targets. There is no
// assembly and no unsafe.
//
// # Lane Types
//
// F32x4: 4 float32 lanes, one per pixel of a 4-pixel compositor block.
// F32x8: 8 float32 lanes for the 8-pixel blocks used on AVX2 machines.
// U16x16: 16 uint16 lanes for exact byte products on coverage masks.
//
// # Rounding
//
// Float lanes round half away from zero, matching the scalar pixel path.
// U16x16.MulDiv255Round computes (a*b + 127) / 255 exactly, so mask
// arithmetic done 16 bytes at a time is bit-identical to the scalar loop.
//
// # Usage Example
//
//	inv := wide.SplatF32x4(1).Sub(srcA)
//	outR := dstR.MulAdd(inv, srcR).Clamp(0, 255).Round()
package wide
