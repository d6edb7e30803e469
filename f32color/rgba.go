// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import "image/color"

// MulAlpha scales the alpha of c by alpha, which is clamped to [0, 1].
func MulAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}

// ARGB converts a color in 0xAARRGGBB notation.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// RGBA converts a color in 0xRRGGBBAA notation.
func RGBA(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// Mix mixes c1 and c2 weighted by a and (1 - a) respectively.
func Mix(c1, c2 color.NRGBA, a float32) color.NRGBA {
	a = min(max(a, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x)*a + float32(y)*(1-a) + 0.5)
	}
	return color.NRGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: mix(c1.A, c2.A),
	}
}
