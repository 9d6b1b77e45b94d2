// Package stroke converts stroked paths into filled outlines.
//
// The expander flattens each subpath into a polyline, offsets it by half the
// stroke width on both sides and stitches the two offset chains together with
// joins and caps. The result is filled with the non-zero rule.
//
// # Algorithm Overview
//
// For an open subpath the outline is built as:
//  1. Left offset chain, start cap point first
//  2. End cap (arc points for round caps)
//  3. Right offset chain, reversed
//  4. Start cap, then close
//
// A closed subpath has no caps. Its left chain and its reversed right chain
// become two separate closed contours, so the non-zero fill covers only the
// band between them.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: half circle of radius width/2 (8 segments)
//   - LineCapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, beveled when the miter limit is exceeded
//   - LineJoinMiterClip: sharp corner clipped at the miter limit
//   - LineJoinRound: circular arc (8 segments)
//   - LineJoinBevel: straight line across the corner
//
// # Dashing
//
// ApplyDash splits a path into its "on" intervals before stroking. The dash
// phase restarts at every subpath.
//
// # Usage
//
//	style := stroke.Stroke{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	outline := stroke.NewStrokeExpander(style).Expand(p)
//
// # References
//
// The join, cap and dash rules follow tiny-skia (Rust): path/src/stroker.rs
// and path/src/dash.rs.
package stroke
