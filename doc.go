// Package tinyskia is a software 2D rasterizer and compositor.
//
// # Overview
//
// tinyskia turns path geometry into 8-bit coverage masks and composites
// them into RGBA pixel buffers. Results match tiny-skia to within one unit
// per channel, including the SIMD block paths, which are checked against the
// scalar path.
//
// # Quick Start
//
//	import "github.com/gogpu/tinyskia"
//
//	pm, _ := tinyskia.NewPixmap(256, 256)
//	pm.Fill(tinyskia.White)
//
//	p := tinyskia.NewPath()
//	p.Rect(32, 32, 192, 192)
//
//	paint := tinyskia.NewPaint()
//	paint.Color = tinyskia.RGBA8(200, 40, 40, 255)
//	_ = tinyskia.FillPath(pm, p, paint, tinyskia.FillRuleNonZero, tinyskia.Identity(), nil)
//
//	_ = pm.SavePNG("out.png")
//
// # Pipeline
//
// A draw call flows through these stages:
//   - stroke expansion (internal/stroke) when stroking, with optional dashing
//   - edge building and scanline rasterization (internal/raster)
//   - optional clip mask multiplication
//   - shading (solid, linear, radial, pattern) and opacity
//   - blending (internal/blend, 29 modes) and storage into the Pixmap
//
// # Pixel format
//
// Pixmaps hold straight (non-premultiplied) RGBA, 4 bytes per pixel. The
// compositor premultiplies on load and un-premultiplies on store. All
// float-to-byte conversions clamp and round half away from zero; integer
// premultiplication uses (c*a+127)/255.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// records from the rasterizer, stroker and compositor.
package tinyskia
