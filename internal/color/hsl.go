package color

import colorful "github.com/lucasb-eyer/go-colorful"

// RGBToHSL converts sRGB components in [0,1] to HSL using the max/min
// channel construction.
func RGBToHSL(c RGB) HSL {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL back to sRGB components in [0,1].
// Zero saturation yields the gray triple (L, L, L).
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}
	out := colorful.Hsl(c.H, c.S, c.L)
	return RGB{R: out.R, G: out.G, B: out.B}
}

// ScaleLightness multiplies the HSL lightness of c by mod, adds off and
// clamps the result to [0,1] before converting back to RGB.
func ScaleLightness(c RGB, mod, off float64) RGB {
	hsl := RGBToHSL(c)
	hsl.L = Clamp01(hsl.L*mod + off)
	return HSLToRGB(hsl)
}
