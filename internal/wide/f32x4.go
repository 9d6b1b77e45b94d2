package wide

import "github.com/chewxy/math32"

// F32x4 represents 4 float32 lanes, one per pixel of a 4-pixel block.
type F32x4 [4]float32

// SplatF32x4 creates F32x4 with all lanes set to n.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs lane-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd returns v*mul + add per lane with the product rounded to float32
// first.
func (v F32x4) MulAdd(mul, add F32x4) F32x4 {
	var result F32x4
	for i := range v {
		p := v[i] * mul[i]
		result[i] = p + add[i]
	}
	return result
}

// Div performs lane-wise division.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal]. NaN lanes become minVal.
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	var result F32x4
	for i := range v {
		switch {
		case !(v[i] >= minVal):
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Lerp returns v*(1-t) + to*t per lane. Each product is rounded to
// float32 before the sum.
func (v F32x4) Lerp(to, t F32x4) F32x4 {
	var result F32x4
	for i := range v {
		inv := 1 - t[i]
		result[i] = float32(v[i]*inv) + float32(to[i]*t[i])
	}
	return result
}

// Round rounds each lane half away from zero.
func (v F32x4) Round() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Round(v[i])
	}
	return result
}

// Join concatenates two F32x4 into an F32x8.
func Join(lo, hi F32x4) F32x8 {
	return F32x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}
