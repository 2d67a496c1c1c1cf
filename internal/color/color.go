// Package color provides the color-space math behind dml color resolution:
// HSL round-trips for luminance modifiers and sRGB/linear-light transfer
// functions for scRGB colors and gradient sampling.
package color

// RGB is a color with float64 components in [0,1].
// Whether they are sRGB or linear-light depends on the caller.
type RGB struct {
	R, G, B float64
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees [0, 360); S and L are in [0, 1].
type HSL struct {
	H, S, L float64
}
