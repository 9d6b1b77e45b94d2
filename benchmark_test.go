package tinyskia

import (
	"math"
	"testing"
)

func BenchmarkBlendSpanSourceOver(b *testing.B) {
	pm, err := NewPixmap(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	pm.Fill(White)
	paint := NewPaint()
	paint.Color = RGBA8(255, 0, 0, 128)
	ctx, err := NewPaintContext(paint)
	if err != nil {
		b.Fatal(err)
	}

	for _, mode := range []blockMode{blockScalar, blockX4, blockX8} {
		b.Run(mode.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(1024 * 4)
			for i := 0; i < b.N; i++ {
				blendSpan(pm, 0, 0, 1024, ctx, mode)
			}
		})
	}
}

func BenchmarkBlendMaskSpan(b *testing.B) {
	pm, err := NewPixmap(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	coverage := make([]byte, 1024)
	for i := range coverage {
		coverage[i] = uint8(i)
	}
	ctx, err := NewPaintContext(solidPaint(RGB8(0, 128, 255)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BlendMaskSpan(pm, 0, 0, coverage, ctx)
	}
}

func BenchmarkFillPath(b *testing.B) {
	pm, err := NewPixmap(512, 512)
	if err != nil {
		b.Fatal(err)
	}
	p := NewPath()
	p.MoveTo(256, 16)
	for i := 1; i < 10; i++ {
		a := float64(i) * 4 * math.Pi / 5
		p.LineTo(256+240*math.Sin(a), 256-240*math.Cos(a))
	}
	p.Close()

	paint := solidPaint(RGBA8(30, 60, 200, 200))
	paint.AntiAlias = true

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := FillPath(pm, p, paint, FillRuleNonZero, Identity(), nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLinearGradientFill(b *testing.B) {
	pm, err := NewPixmap(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	shader, err := NewLinearGradient(Pt(0, 0), Pt(256, 0), redBlueStops(), SpreadPad, Identity())
	if err != nil {
		b.Fatal(err)
	}
	paint := NewPaint()
	paint.Shader = &shader

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := FillPath(pm, rectPath(0, 0, 256, 256), paint, FillRuleNonZero, Identity(), nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStrokePath(b *testing.B) {
	pm, err := NewPixmap(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	p := NewPath()
	p.MoveTo(20, 20)
	p.CubicTo(100, 250, 150, -50, 236, 200)
	st := DefaultStroke()
	st.Width = 6
	st.Join = LineJoinRound
	st.Cap = LineCapRound

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := StrokePath(pm, p, st, solidPaint(Black), Identity(), nil); err != nil {
			b.Fatal(err)
		}
	}
}
