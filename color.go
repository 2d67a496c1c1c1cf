package dml

import (
	"fmt"
	"image/color"
	"math"

	icolor "github.com/gogpu/dml/internal/color"
)

// RGBA is a resolved color. Each component is in the range [0, 1] and the
// color channels are non-premultiplied sRGB.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: icolor.To8(c.A)}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// RGB255 returns the color channels as rounded 8-bit values.
func (c RGBA) RGB255() (r, g, b uint8) {
	return icolor.To8(c.R), icolor.To8(c.G), icolor.To8(c.B)
}

// Hex formats the color channels as RRGGBB, the srgbClr val syntax.
func (c RGBA) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// String returns a compact description for logs and test failures.
func (c RGBA) String() string {
	return fmt.Sprintf("#%s/%.3f", c.Hex(), c.A)
}

func (c RGBA) rgb() icolor.RGB {
	return icolor.RGB{R: c.R, G: c.G, B: c.B}
}

func fromRGB(c icolor.RGB, a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Common resolved colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// ParseHex parses an opaque RRGGBB color; a leading '#' is accepted.
func ParseHex(hex string) (RGBColor, bool) {
	return parseHexRGB(hex)
}

// parseHexRGB parses RRGGBB (an optional leading '#' is accepted).
func parseHexRGB(hex string) (RGBColor, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGBColor{}, false
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return RGBColor{}, false
		}
		v[i] = hi<<4 | lo
	}
	return RGBColor{R: v[0], G: v[1], B: v[2], A: 1}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// mustHex is for package-level color tables only.
func mustHex(hex string) RGBColor {
	c, ok := parseHexRGB(hex)
	if !ok {
		panic("dml: bad color literal " + hex)
	}
	return c
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
