package wide

// U16x16 represents 16 uint16 lanes. Coverage masks are processed 16 bytes
// at a time with it.
type U16x16 [16]uint16

// LoadU8 widens 16 bytes into lanes. src must hold at least 16 bytes.
func LoadU8(src []byte) U16x16 {
	var result U16x16
	_ = src[15]
	for i := range result {
		result[i] = uint16(src[i])
	}
	return result
}

// StoreU8 narrows the lanes into dst, which must hold at least 16 bytes.
// Lanes must already be at most 255.
func (v U16x16) StoreU8(dst []byte) {
	_ = dst[15]
	for i := range v {
		dst[i] = uint8(v[i]) // #nosec G115 -- caller guarantees v[i] <= 255
	}
}

// MulDiv255Round performs (v * other + 127) / 255 for each lane with
// exact integer division. Both operands must be at most 255.
func (v U16x16) MulDiv255Round(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		x := uint32(v[i])*uint32(other[i]) + 127
		result[i] = uint16(x / 255) // #nosec G115
	}
	return result
}
