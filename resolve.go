package dml

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	icolor "github.com/gogpu/dml/internal/color"
)

// ErrNilTheme is returned when a scheme color has to be resolved without
// a theme table. It signals a caller bug rather than malformed input.
var ErrNilTheme = errors.New("dml: scheme color requested without a theme")

// ResolveColor resolves a color reference to a concrete RGBA.
//
// The base color comes from the literal value, the theme (scheme colors,
// aliases normalized), or the fixed system and preset tables; unknown
// names resolve to black. Modifiers apply in a fixed order: lumMod and
// lumOff in HSL space, then tint toward white, then shade toward black,
// then alpha, alphaMod and alphaOff.
//
// The only error is ErrNilTheme.
func ResolveColor(c Color, theme *Theme) (RGBA, error) {
	return resolveColor(c, theme, nil, Logger())
}

// resolveColor resolves c; placeholder substitutes phClr when non-nil.
// Fallback notices go to log.
func resolveColor(c Color, theme *Theme, placeholder *Color, log *slog.Logger) (RGBA, error) {
	if theme == nil && c.usesTheme() {
		return Black, fmt.Errorf("resolve %s: %w", describeColor(c.Base), ErrNilTheme)
	}

	if s, ok := c.Base.(SchemeColor); ok && s.Name == placeholderName {
		if placeholder == nil {
			log.Debug("dml: phClr outside a style reference", "fallback", "black")
			return applyModifiers(Black, c.Mods), nil
		}
		base, err := resolveColor(*placeholder, theme, nil, log)
		if err != nil {
			return Black, err
		}
		return applyModifiers(base, c.Mods), nil
	}

	return applyModifiers(baseColor(c.Base, theme, log), c.Mods), nil
}

// baseColor determines the unmodified color of a value. Misses resolve to
// opaque black.
func baseColor(v ColorValue, theme *Theme, log *slog.Logger) RGBA {
	switch b := v.(type) {
	case RGBColor:
		return RGBA{
			R: float64(b.R) / 255,
			G: float64(b.G) / 255,
			B: float64(b.B) / 255,
			A: clampUnit(b.A),
		}
	case SchemeColor:
		if rgb, ok := theme.Color(b.Name); ok {
			return opaque(rgb)
		}
		log.Debug("dml: unknown scheme color", "name", b.Name)
	case SystemColor:
		if rgb, ok := lookupSystem(b); ok {
			return opaque(rgb)
		}
		log.Debug("dml: unknown system color", "name", b.Name)
	case PresetColor:
		if rgb, ok := lookupPreset(b.Name); ok {
			return opaque(rgb)
		}
		log.Debug("dml: unknown preset color", "name", b.Name)
	case HSLColor:
		rgb := icolor.HSLToRGB(icolor.HSL{
			H: normalizeDegrees(b.Hue),
			S: icolor.Clamp01(b.Sat),
			L: icolor.Clamp01(b.Lum),
		})
		return fromRGB(rgb, 1)
	case ScRGBColor:
		return fromRGB(icolor.ToSRGB(icolor.RGB{R: b.R, G: b.G, B: b.B}), 1)
	}
	return Black
}

// applyModifiers runs the modifier pipeline on a base color.
func applyModifiers(c RGBA, m Modifiers) RGBA {
	if m.LumMod.IsSet() || m.LumOff.IsSet() {
		rgb := icolor.ScaleLightness(c.rgb(), m.LumMod.Float(1), m.LumOff.Float(0))
		c = fromRGB(rgb, c.A)
	}
	if m.Tint.IsSet() {
		t := m.Tint.Float(1)
		c.R = c.R*t + (1 - t)
		c.G = c.G*t + (1 - t)
		c.B = c.B*t + (1 - t)
	}
	if m.Shade.IsSet() {
		s := m.Shade.Float(1)
		c.R *= s
		c.G *= s
		c.B *= s
	}
	if m.Alpha.IsSet() {
		c.A = m.Alpha.Float(1)
	}
	if m.AlphaMod.IsSet() {
		c.A *= m.AlphaMod.Float(1)
	}
	if m.AlphaOff.IsSet() {
		c.A += m.AlphaOff.Float(0)
	}
	return RGBA{
		R: clampUnit(c.R),
		G: clampUnit(c.G),
		B: clampUnit(c.B),
		A: clampUnit(c.A),
	}
}

func opaque(c RGBColor) RGBA {
	return RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 1}
}

func normalizeDegrees(d float64) float64 {
	if !isFinite(d) {
		return 0
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func describeColor(v ColorValue) string {
	switch b := v.(type) {
	case SchemeColor:
		return "schemeClr " + b.Name
	case SystemColor:
		return "sysClr " + b.Name
	case PresetColor:
		return "prstClr " + b.Name
	case RGBColor:
		return fmt.Sprintf("srgbClr %02X%02X%02X", b.R, b.G, b.B)
	}
	return fmt.Sprintf("%T", v)
}
