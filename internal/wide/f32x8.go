package wide

import "github.com/chewxy/math32"

// F32x8 represents 8 float32 lanes. It backs the 8-pixel compositor blocks
// used when the CPU reports AVX2.
type F32x8 [8]float32

// SplatF32x8 creates F32x8 with all lanes set to n.
func SplatF32x8(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs lane-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd returns v*mul + add per lane. The product is rounded to float32
// before the addition, so results match separate Mul and Add calls.
func (v F32x8) MulAdd(mul, add F32x8) F32x8 {
	var result F32x8
	for i := range v {
		p := v[i] * mul[i]
		result[i] = p + add[i]
	}
	return result
}

// Div performs lane-wise division. Division by zero follows IEEE 754.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal]. NaN lanes become minVal.
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
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
func (v F32x8) Lerp(to, t F32x8) F32x8 {
	var result F32x8
	for i := range v {
		inv := 1 - t[i]
		result[i] = float32(v[i]*inv) + float32(to[i]*t[i])
	}
	return result
}

// Round rounds each lane half away from zero.
func (v F32x8) Round() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = math32.Round(v[i])
	}
	return result
}

// Lo returns lanes 0-3.
func (v F32x8) Lo() F32x4 {
	return F32x4{v[0], v[1], v[2], v[3]}
}

// Hi returns lanes 4-7.
func (v F32x8) Hi() F32x4 {
	return F32x4{v[4], v[5], v[6], v[7]}
}
