// Command tinyskia-demo renders a sample scene with the tinyskia rasterizer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/tinyskia"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		blend   = flag.String("blend", "multiply", "blend mode of the overlapping circles")
		aliased = flag.Bool("aliased", false, "disable anti-aliasing")
		verbose = flag.Bool("v", false, "log rasterizer debug output")
	)
	flag.Parse()

	if *verbose {
		tinyskia.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := tinyskia.ParseBlendMode(*blend)
	if err != nil {
		log.Fatalf("Invalid blend mode: %v", err)
	}

	c, err := tinyskia.NewCanvas(*width, *height, tinyskia.WithAntiAlias(!*aliased))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	steps := []func(*tinyskia.Canvas, tinyskia.BlendMode) error{
		drawBackground,
		drawCircles,
		drawTransformDemo,
		drawStrokeDemo,
		drawPatternDemo,
	}
	for _, step := range steps {
		if err := step(c, mode); err != nil {
			log.Fatalf("Failed to draw: %v", err)
		}
	}

	if err := c.Pixmap().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(c *tinyskia.Canvas, _ tinyskia.BlendMode) error {
	w, h := float64(c.Width()), float64(c.Height())
	shader, err := tinyskia.NewLinearGradient(
		tinyskia.Pt(0, 0), tinyskia.Pt(0, h),
		[]tinyskia.GradientStop{
			{Position: 0, Color: tinyskia.Hex("#1a3366")},
			{Position: 1, Color: tinyskia.Hex("#668099")},
		},
		tinyskia.SpreadPad, tinyskia.Identity())
	if err != nil {
		return err
	}
	paint := tinyskia.NewPaint()
	paint.Shader = &shader
	return c.FillRect(0, 0, w, h, paint, tinyskia.Identity())
}

func circle(cx, cy, r float64) *tinyskia.Path {
	// Four cubic arcs.
	const k = 0.5522847498
	p := tinyskia.NewPath()
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r)
	p.CubicTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy)
	p.CubicTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r)
	p.CubicTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy)
	p.Close()
	return p
}

func drawCircles(c *tinyskia.Canvas, mode tinyskia.BlendMode) error {
	circles := []struct {
		x, y  float64
		color tinyskia.Color
	}{
		{150, 150, tinyskia.RGBA8(255, 77, 77, 204)},
		{200, 150, tinyskia.RGBA8(77, 255, 77, 204)},
		{175, 200, tinyskia.RGBA8(77, 77, 255, 204)},
	}
	for i, ci := range circles {
		paint := tinyskia.NewPaint()
		paint.Color = ci.color
		if i > 0 {
			paint.BlendMode = mode
		}
		if err := c.FillPath(circle(ci.x, ci.y, 60), paint, tinyskia.FillRuleNonZero, tinyskia.Identity()); err != nil {
			return err
		}
	}
	return nil
}

func drawTransformDemo(c *tinyskia.Canvas, _ tinyskia.BlendMode) error {
	square := tinyskia.NewPath()
	square.Rect(-30, -30, 60, 60)

	shader, err := tinyskia.NewRadialGradient(
		tinyskia.Pt(600, 150), tinyskia.Pt(600, 150), 75,
		[]tinyskia.GradientStop{
			{Position: 0, Color: tinyskia.Hex("#ffe680")},
			{Position: 1, Color: tinyskia.Hex("#cc3300c0")},
		},
		tinyskia.SpreadPad, tinyskia.Identity())
	if err != nil {
		return err
	}

	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		m := tinyskia.Translate(600, 150).Multiply(tinyskia.Rotate(angle))

		paint := tinyskia.NewPaint()
		paint.Shader = &shader
		paint.Opacity = 0.6
		if err := c.FillPath(square, paint, tinyskia.FillRuleNonZero, m); err != nil {
			return err
		}
	}
	return nil
}

func drawStrokeDemo(c *tinyskia.Canvas, _ tinyskia.BlendMode) error {
	wave := tinyskia.NewPath()
	wave.MoveTo(150, 400)
	wave.CubicTo(200, 350, 250, 450, 300, 400)
	wave.CubicTo(350, 370, 400, 430, 450, 400)

	st := tinyskia.DefaultStroke()
	st.Width = 6
	st.Cap = tinyskia.LineCapRound
	st.Join = tinyskia.LineJoinRound
	paint := tinyskia.NewPaint()
	paint.Color = tinyskia.Hex("#ff8000")
	if err := c.StrokePath(wave, st, paint, tinyskia.Identity()); err != nil {
		return err
	}

	// Dashed star.
	star := tinyskia.NewPath()
	const points = 5
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / points
		r := 60.0
		if i%2 == 1 {
			r = 30
		}
		x := 600 + r*math.Cos(angle-math.Pi/2)
		y := 400 + r*math.Sin(angle-math.Pi/2)
		if i == 0 {
			star.MoveTo(x, y)
		} else {
			star.LineTo(x, y)
		}
	}
	star.Close()

	paint.Color = tinyskia.Hex("#ffff00")
	if err := c.FillPath(star, paint, tinyskia.FillRuleEvenOdd, tinyskia.Identity()); err != nil {
		return err
	}

	dash, err := tinyskia.NewDash([]float64{12, 6}, 0)
	if err != nil {
		return err
	}
	st = tinyskia.DefaultStroke()
	st.Width = 3
	st.Dash = dash
	paint.Color = tinyskia.White
	return c.StrokePath(star, st, paint, tinyskia.Identity())
}

func drawPatternDemo(c *tinyskia.Canvas, _ tinyskia.BlendMode) error {
	checker, err := tinyskia.NewPixmap(8, 8)
	if err != nil {
		return err
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x/4+y/4)%2 == 0 {
				checker.SetPixel(x, y, tinyskia.White)
			} else {
				checker.SetPixel(x, y, tinyskia.RGB8(40, 40, 40))
			}
		}
	}

	shader, err := tinyskia.NewPattern(checker, tinyskia.SpreadRepeat, tinyskia.FilterBilinear, 1,
		tinyskia.Translate(100, 480).Multiply(tinyskia.Scale(3, 3)))
	if err != nil {
		return err
	}
	paint := tinyskia.NewPaint()
	paint.Shader = &shader
	if err := c.FillRect(100, 480, 200, 90, paint, tinyskia.Identity()); err != nil {
		return err
	}

	pp := tinyskia.NewPixmapPaint()
	pp.Quality = tinyskia.FilterBicubic
	pp.Opacity = 0.8
	return c.DrawPixmap(0, 0, checker, pp, tinyskia.Translate(400, 480).Multiply(tinyskia.Scale(10, 10)))
}
