package color

import "math"

// SRGBToLinear converts an sRGB component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear converts an sRGB color to linear light.
func ToLinear(c RGB) RGB {
	return RGB{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B)}
}

// ToSRGB converts a linear-light color to sRGB, clamping to [0,1] first.
func ToSRGB(c RGB) RGB {
	return RGB{
		R: LinearToSRGB(Clamp01(c.R)),
		G: LinearToSRGB(Clamp01(c.G)),
		B: LinearToSRGB(Clamp01(c.B)),
	}
}

// MixLinear interpolates two sRGB colors in linear light and returns the
// result in sRGB. t=0 yields a, t=1 yields b.
func MixLinear(a, b RGB, t float64) RGB {
	la, lb := ToLinear(a), ToLinear(b)
	return ToSRGB(RGB{
		R: la.R + (lb.R-la.R)*t,
		G: la.G + (lb.G-la.G)*t,
		B: la.B + (lb.B-la.B)*t,
	})
}

// Clamp01 restricts v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// To8 converts a [0,1] component to an 8-bit channel with rounding.
func To8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}
