package dml

import "strconv"

// FractionScale is the DrawingML percentage unit: 100000 means 100%.
const FractionScale = 100000

// Fraction is an optional percentage value in 1/100000 units.
// The zero Fraction is absent, which is distinct from a present 0.
type Fraction struct {
	value int64
	set   bool
}

// Frac returns a present Fraction holding v.
func Frac(v int64) Fraction {
	return Fraction{value: v, set: true}
}

// Get returns the raw value and whether it is present.
func (f Fraction) Get() (int64, bool) {
	return f.value, f.set
}

// IsSet reports whether the fraction is present.
func (f Fraction) IsSet() bool {
	return f.set
}

// Float returns the value as a plain fraction (100000 -> 1.0), or def
// when absent.
func (f Fraction) Float(def float64) float64 {
	if !f.set {
		return def
	}
	return float64(f.value) / FractionScale
}

// String returns the value or "-" when absent.
func (f Fraction) String() string {
	if !f.set {
		return "-"
	}
	return strconv.FormatInt(f.value, 10)
}

// Modifiers are the color transforms DrawingML attaches to any color
// element. Absent fields leave the color untouched.
type Modifiers struct {
	LumMod   Fraction
	LumOff   Fraction
	Tint     Fraction
	Shade    Fraction
	Alpha    Fraction
	AlphaMod Fraction
	AlphaOff Fraction
}

// IsZero reports whether no modifier is present.
func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

// ColorValue is the base of a color reference before modifiers.
// This is a sealed interface: RGBColor, SchemeColor, SystemColor,
// PresetColor, HSLColor and ScRGBColor are the only implementations.
type ColorValue interface {
	colorValue()
}

// RGBColor is a literal sRGB color (srgbClr). A is the intrinsic alpha in
// [0,1] used when no alpha modifier overrides it.
type RGBColor struct {
	R, G, B uint8
	A       float64
}

func (RGBColor) colorValue() {}

// SchemeColor references a theme color slot by name (schemeClr).
// Aliases such as tx1 and bg1 are accepted; phClr refers to the
// placeholder color of a style reference.
type SchemeColor struct {
	Name string
}

func (SchemeColor) colorValue() {}

// SystemColor references an operating-system color (sysClr). LastColor
// is the lastClr attribute, used when the name is not in the system table.
type SystemColor struct {
	Name         string
	LastColor    RGBColor
	HasLastColor bool
}

func (SystemColor) colorValue() {}

// PresetColor is a named DrawingML preset color (prstClr) such as
// "dkSlateGray" or "cornflowerBlue".
type PresetColor struct {
	Name string
}

func (PresetColor) colorValue() {}

// HSLColor is an hslClr: Hue in degrees, Sat and Lum in [0,1].
type HSLColor struct {
	Hue, Sat, Lum float64
}

func (HSLColor) colorValue() {}

// ScRGBColor is an scrgbClr with linear-light components in [0,1].
type ScRGBColor struct {
	R, G, B float64
}

func (ScRGBColor) colorValue() {}

// Color is an immutable color reference: a base value plus modifiers.
// The zero Color has no base and resolves to opaque black.
type Color struct {
	Base ColorValue
	Mods Modifiers
}

// SRGB returns an opaque literal color.
func SRGB(r, g, b uint8) Color {
	return Color{Base: RGBColor{R: r, G: g, B: b, A: 1}}
}

// SRGBHex parses an srgbClr val such as "4472C4". Malformed input yields
// opaque black.
func SRGBHex(hex string) Color {
	c, ok := parseHexRGB(hex)
	if !ok {
		return Color{Base: RGBColor{A: 1}}
	}
	return Color{Base: c}
}

// Scheme returns a theme color reference.
func Scheme(name string) Color {
	return Color{Base: SchemeColor{Name: name}}
}

// Placeholder returns the phClr reference used inside theme style lists.
func Placeholder() Color {
	return Scheme(placeholderName)
}

// System returns a system color reference without a lastClr fallback.
func System(name string) Color {
	return Color{Base: SystemColor{Name: name}}
}

// SystemWithLast returns a system color reference with a lastClr fallback.
func SystemWithLast(name string, last RGBColor) Color {
	return Color{Base: SystemColor{Name: name, LastColor: last, HasLastColor: true}}
}

// Preset returns a preset color reference.
func Preset(name string) Color {
	return Color{Base: PresetColor{Name: name}}
}

// HSL returns an hslClr color. hue is in degrees, sat and lum in [0,1].
func HSL(hue, sat, lum float64) Color {
	return Color{Base: HSLColor{Hue: hue, Sat: sat, Lum: lum}}
}

// ScRGB returns a linear-light scrgbClr color.
func ScRGB(r, g, b float64) Color {
	return Color{Base: ScRGBColor{R: r, G: g, B: b}}
}

// WithMods returns a copy of c with the given modifiers.
func (c Color) WithMods(m Modifiers) Color {
	c.Mods = m
	return c
}

// WithLumMod returns a copy of c with a lumMod modifier.
func (c Color) WithLumMod(v int64) Color {
	c.Mods.LumMod = Frac(v)
	return c
}

// WithLumOff returns a copy of c with a lumOff modifier.
func (c Color) WithLumOff(v int64) Color {
	c.Mods.LumOff = Frac(v)
	return c
}

// WithTint returns a copy of c with a tint modifier.
func (c Color) WithTint(v int64) Color {
	c.Mods.Tint = Frac(v)
	return c
}

// WithShade returns a copy of c with a shade modifier.
func (c Color) WithShade(v int64) Color {
	c.Mods.Shade = Frac(v)
	return c
}

// WithAlpha returns a copy of c with an alpha modifier (0..100000).
func (c Color) WithAlpha(v int64) Color {
	c.Mods.Alpha = Frac(v)
	return c
}

// WithAlphaMod returns a copy of c with an alphaMod modifier.
func (c Color) WithAlphaMod(v int64) Color {
	c.Mods.AlphaMod = Frac(v)
	return c
}

// WithAlphaOff returns a copy of c with an alphaOff modifier.
func (c Color) WithAlphaOff(v int64) Color {
	c.Mods.AlphaOff = Frac(v)
	return c
}

// usesTheme reports whether resolving c needs a theme table.
func (c Color) usesTheme() bool {
	s, ok := c.Base.(SchemeColor)
	return ok && s.Name != placeholderName
}
