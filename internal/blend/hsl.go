package blend

// HSL helpers for the non-separable modes (hue, saturation, color,
// luminosity). Inputs are un-premultiplied channels in [0, 1].
//
// Reference: W3C Compositing and Blending Level 1, section 9.

// Lum returns the BT.601 luminance 0.3R + 0.59G + 0.11B.
func Lum(c rgb) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

// Sat returns max(c) - min(c).
func Sat(c rgb) float64 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

// SetLum shifts c to luminance l, then pulls out-of-gamut channels back
// into [0, 1] by scaling toward l.
func SetLum(c rgb, l float64) rgb {
	d := l - Lum(c)
	c = rgb{c[0] + d, c[1] + d, c[2] + d}

	n := min(c[0], c[1], c[2])
	x := max(c[0], c[1], c[2])
	if n < 0 {
		k := l / (l - n)
		for i := range c {
			c[i] = l + (c[i]-l)*k
		}
	}
	if x > 1 {
		k := (1 - l) / (x - l)
		for i := range c {
			c[i] = l + (c[i]-l)*k
		}
	}
	return c
}

// SetSat rescales c so that max - min equals s, keeping the channel order.
// Grey inputs become black.
func SetSat(c rgb, s float64) rgb {
	hi := max(c[0], c[1], c[2])
	lo := min(c[0], c[1], c[2])
	if hi-lo < epsilon {
		return rgb{}
	}

	maxIdx, minIdx := channelIndex(c, hi), channelIndex(c, lo)
	midIdx := 3 - maxIdx - minIdx

	var out rgb
	out[maxIdx] = s
	out[midIdx] = s * (c[midIdx] - lo) / (hi - lo)
	out[minIdx] = 0
	return out
}

// channelIndex returns the first channel equal to v.
func channelIndex(c rgb, v float64) int {
	switch v {
	case c[0]:
		return 0
	case c[1]:
		return 1
	default:
		return 2
	}
}
