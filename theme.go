package dml

import "strings"

// SchemeName identifies one of the twelve theme color slots.
type SchemeName int

const (
	SchemeDark1 SchemeName = iota
	SchemeLight1
	SchemeDark2
	SchemeLight2
	SchemeAccent1
	SchemeAccent2
	SchemeAccent3
	SchemeAccent4
	SchemeAccent5
	SchemeAccent6
	SchemeHyperlink
	SchemeFollowedHyperlink

	schemeCount
)

const placeholderName = "phClr"

var schemeNames = [schemeCount]string{
	"dk1", "lt1", "dk2", "lt2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// schemeAliases maps the text/background aliases used by shape and text
// markup onto the canonical slots.
var schemeAliases = map[string]SchemeName{
	"tx1":         SchemeDark1,
	"bg1":         SchemeLight1,
	"tx2":         SchemeDark2,
	"bg2":         SchemeLight2,
	"text1":       SchemeDark1,
	"text2":       SchemeDark2,
	"background1": SchemeLight1,
	"background2": SchemeLight2,
}

// String returns the canonical slot name, e.g. "accent1".
func (n SchemeName) String() string {
	if n < 0 || n >= schemeCount {
		return "SchemeName(?)"
	}
	return schemeNames[n]
}

// ParseSchemeName returns the slot for a canonical name or alias.
// Matching is case-insensitive.
func ParseSchemeName(name string) (SchemeName, bool) {
	for i, s := range schemeNames {
		if strings.EqualFold(s, name) {
			return SchemeName(i), true
		}
	}
	for alias, n := range schemeAliases {
		if strings.EqualFold(alias, name) {
			return n, true
		}
	}
	return 0, false
}

// ColorScheme holds the concrete color of every theme slot.
type ColorScheme [schemeCount]RGBColor

// FormatScheme holds the theme's style matrices, addressed by the
// 1-based indices of fillRef, lnRef and effectRef. Entries normally paint
// with the placeholder color (phClr), which the style reference supplies.
type FormatScheme struct {
	FillStyles           []Fill
	LineStyles           []Stroke
	EffectStyles         [][]Effect
	BackgroundFillStyles []Fill
}

// Theme is the per-document color and format table shapes resolve
// against. Treat a Theme as read-only once shared between goroutines.
type Theme struct {
	Name    string
	Colors  ColorScheme
	Formats FormatScheme
}

// Color returns the RGB color of a slot name or alias.
func (t *Theme) Color(name string) (RGBColor, bool) {
	n, ok := ParseSchemeName(name)
	if !ok {
		return RGBColor{}, false
	}
	return t.Colors[n], true
}

// WithColor returns a copy of t with one slot replaced.
func (t *Theme) WithColor(n SchemeName, c RGBColor) *Theme {
	cp := *t
	if n >= 0 && n < schemeCount {
		cp.Colors[n] = c
	}
	return &cp
}

// fillStyle returns the fill style for a fillRef index: 1..999 address
// FillStyles and 1001.. address BackgroundFillStyles.
func (f FormatScheme) fillStyle(idx int) (Fill, bool) {
	switch {
	case idx >= 1001:
		return styleAt(f.BackgroundFillStyles, idx-1000)
	case idx >= 1:
		return styleAt(f.FillStyles, idx)
	}
	return nil, false
}

func (f FormatScheme) lineStyle(idx int) (Stroke, bool) {
	return styleAt(f.LineStyles, idx)
}

func (f FormatScheme) effectStyle(idx int) ([]Effect, bool) {
	return styleAt(f.EffectStyles, idx)
}

func styleAt[T any](list []T, idx int) (T, bool) {
	var zero T
	if idx < 1 || idx > len(list) {
		return zero, false
	}
	return list[idx-1], true
}

// DefaultTheme returns a fresh copy of the Office default theme. The
// facade uses it when the caller supplies none.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Office Theme",
		Colors: ColorScheme{
			SchemeDark1:             mustHex("000000"),
			SchemeLight1:            mustHex("FFFFFF"),
			SchemeDark2:             mustHex("44546A"),
			SchemeLight2:            mustHex("E7E6E6"),
			SchemeAccent1:           mustHex("4472C4"),
			SchemeAccent2:           mustHex("ED7D31"),
			SchemeAccent3:           mustHex("A5A5A5"),
			SchemeAccent4:           mustHex("FFC000"),
			SchemeAccent5:           mustHex("5B9BD5"),
			SchemeAccent6:           mustHex("70AD47"),
			SchemeHyperlink:         mustHex("0563C1"),
			SchemeFollowedHyperlink: mustHex("954F72"),
		},
		Formats: defaultFormatScheme(),
	}
}

func defaultFormatScheme() FormatScheme {
	ph := Placeholder()
	line := func(w int64) Stroke {
		return Stroke{
			Fill:     SolidFill{Color: ph},
			Width:    w,
			Cap:      CapFlat,
			Join:     JoinMiter,
			Compound: CompoundSingle,
		}
	}
	return FormatScheme{
		FillStyles: []Fill{
			SolidFill{Color: ph},
			GradientFill{Gradient: Gradient{
				Kind:  GradientLinear,
				Angle: 90,
				Stops: []GradientStop{
					{Position: 0, Color: ph.WithTint(67000)},
					{Position: 0.5, Color: ph.WithTint(73000)},
					{Position: 1, Color: ph.WithTint(81000)},
				},
			}},
			GradientFill{Gradient: Gradient{
				Kind:  GradientLinear,
				Angle: 90,
				Stops: []GradientStop{
					{Position: 0, Color: ph.WithTint(94000)},
					{Position: 0.5, Color: ph.WithShade(100000)},
					{Position: 1, Color: ph.WithShade(78000)},
				},
			}},
		},
		LineStyles: []Stroke{line(6350), line(12700), line(19050)},
		EffectStyles: [][]Effect{
			nil,
			nil,
			{OuterShadow{
				BlurRadius: 57150,
				Distance:   19050,
				Direction:  5400000,
				Color:      SRGB(0, 0, 0).WithAlpha(63000),
			}},
		},
		BackgroundFillStyles: []Fill{
			SolidFill{Color: ph},
			SolidFill{Color: ph.WithTint(95000)},
			GradientFill{Gradient: Gradient{
				Kind:  GradientLinear,
				Angle: 90,
				Stops: []GradientStop{
					{Position: 0, Color: ph.WithTint(93000)},
					{Position: 0.5, Color: ph.WithShade(98000)},
					{Position: 1, Color: ph.WithShade(73000)},
				},
			}},
		},
	}
}
