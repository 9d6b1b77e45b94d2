package blend

import "github.com/gogpu/tinyskia/internal/color"

type premul = color.Premultiplied

func blendClear(_, _ premul) premul {
	return premul{}
}

func blendSource(src, _ premul) premul {
	return src
}

func blendDestination(_, dst premul) premul {
	return dst
}

// blendSourceOver: S + D*(1-Sa)
func blendSourceOver(src, dst premul) premul {
	inv := 1 - src.A
	return premul{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}

// blendDestinationOver: D + S*(1-Da)
func blendDestinationOver(src, dst premul) premul {
	return blendSourceOver(dst, src)
}

// blendSourceIn: S*Da
func blendSourceIn(src, dst premul) premul {
	return scale(src, dst.A)
}

// blendDestinationIn: D*Sa
func blendDestinationIn(src, dst premul) premul {
	return scale(dst, src.A)
}

// blendSourceOut: S*(1-Da)
func blendSourceOut(src, dst premul) premul {
	return scale(src, 1-dst.A)
}

// blendDestinationOut: D*(1-Sa)
func blendDestinationOut(src, dst premul) premul {
	return scale(dst, 1-src.A)
}

// blendSourceAtop: S*Da + D*(1-Sa), alpha Da
func blendSourceAtop(src, dst premul) premul {
	inv := 1 - src.A
	return premul{
		R: src.R*dst.A + dst.R*inv,
		G: src.G*dst.A + dst.G*inv,
		B: src.B*dst.A + dst.B*inv,
		A: dst.A,
	}
}

// blendDestinationAtop: D*Sa + S*(1-Da), alpha Sa
func blendDestinationAtop(src, dst premul) premul {
	inv := 1 - dst.A
	return premul{
		R: dst.R*src.A + src.R*inv,
		G: dst.G*src.A + src.G*inv,
		B: dst.B*src.A + src.B*inv,
		A: src.A,
	}
}

// blendXor: S*(1-Da) + D*(1-Sa)
func blendXor(src, dst premul) premul {
	invSa := 1 - src.A
	invDa := 1 - dst.A
	return premul{
		R: src.R*invDa + dst.R*invSa,
		G: src.G*invDa + dst.G*invSa,
		B: src.B*invDa + dst.B*invSa,
		A: src.A*invDa + dst.A*invSa,
	}
}

// blendPlus: min(1, S + D)
func blendPlus(src, dst premul) premul {
	return premul{
		R: clamp01(src.R + dst.R),
		G: clamp01(src.G + dst.G),
		B: clamp01(src.B + dst.B),
		A: clamp01(src.A + dst.A),
	}
}

// blendModulate: S*D
func blendModulate(src, dst premul) premul {
	return premul{
		R: src.R * dst.R,
		G: src.G * dst.G,
		B: src.B * dst.B,
		A: src.A * dst.A,
	}
}

func scale(c premul, s float64) premul {
	return premul{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
