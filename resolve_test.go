package dml

import (
	"errors"
	"math"
	"testing"
)

func rgb255(t *testing.T, c Color, theme *Theme) [3]uint8 {
	t.Helper()
	got, err := ResolveColor(c, theme)
	if err != nil {
		t.Fatalf("ResolveColor(%+v) error = %v", c, err)
	}
	r, g, b := got.RGB255()
	return [3]uint8{r, g, b}
}

func TestResolveColor_SchemeAliases(t *testing.T) {
	theme := DefaultTheme().
		WithColor(SchemeDark1, RGBColor{R: 10, G: 20, B: 30, A: 1}).
		WithColor(SchemeLight2, RGBColor{R: 200, G: 210, B: 220, A: 1})

	pairs := []struct{ alias, canonical string }{
		{"tx1", "dk1"},
		{"bg1", "lt1"},
		{"tx2", "dk2"},
		{"bg2", "lt2"},
		{"text1", "dk1"},
		{"text2", "dk2"},
		{"background1", "lt1"},
		{"background2", "lt2"},
	}
	for _, p := range pairs {
		t.Run(p.alias, func(t *testing.T) {
			a := rgb255(t, Scheme(p.alias), theme)
			c := rgb255(t, Scheme(p.canonical), theme)
			if a != c {
				t.Errorf("%s = %v, %s = %v; want equal", p.alias, a, p.canonical, c)
			}
		})
	}
}

func TestResolveColor_Modifiers(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [3]uint8
	}{
		{"tint toward white", SRGB(0, 0, 0).WithTint(40000), [3]uint8{153, 153, 153}},
		{"shade toward black", SRGB(200, 100, 50).WithShade(50000), [3]uint8{100, 50, 25}},
		{"lumMod halves lightness", SRGB(202, 102, 50).WithLumMod(50000), [3]uint8{101, 51, 25}},
		{"lumMod then tint", SRGB(202, 102, 50).WithLumMod(50000).WithTint(50000), [3]uint8{178, 153, 140}},
		{"tint then lumMod declared order is ignored", SRGB(202, 102, 50).WithTint(50000).WithLumMod(50000), [3]uint8{178, 153, 140}},
		{"lumOff clamps", SRGB(128, 128, 128).WithLumOff(90000), [3]uint8{255, 255, 255}},
		{"gray lumMod stays gray", SRGB(100, 100, 100).WithLumMod(50000), [3]uint8{50, 50, 50}},
		{"tint then shade", SRGB(0, 0, 0).WithTint(50000).WithShade(50000), [3]uint8{64, 64, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rgb255(t, tt.c, nil)
			for i := range got {
				if d := int(got[i]) - int(tt.want[i]); d < -1 || d > 1 {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestResolveColor_Alpha(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"opaque by default", SRGB(1, 2, 3), 1},
		{"literal alpha kept", Color{Base: RGBColor{R: 1, A: 0.25}}, 0.25},
		{"alpha overrides literal", Color{Base: RGBColor{R: 1, A: 0.25}}.WithAlpha(60000), 0.6},
		{"alphaMod multiplies", SRGB(1, 2, 3).WithAlpha(50000).WithAlphaMod(50000), 0.25},
		{"alphaOff adds and clamps", SRGB(1, 2, 3).WithAlphaOff(50000), 1},
		{"negative alphaOff", SRGB(1, 2, 3).WithAlphaOff(-30000), 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColor(tt.c, nil)
			if err != nil {
				t.Fatalf("ResolveColor() error = %v", err)
			}
			if math.Abs(got.A-tt.want) > 1e-9 {
				t.Errorf("A = %v, want %v", got.A, tt.want)
			}
		})
	}
}

func TestResolveColor_Lookups(t *testing.T) {
	theme := DefaultTheme()
	tests := []struct {
		name string
		c    Color
		want [3]uint8
	}{
		{"scheme accent1", Scheme("accent1"), [3]uint8{0x44, 0x72, 0xC4}},
		{"scheme is case-insensitive", Scheme("ACCENT2"), [3]uint8{0xED, 0x7D, 0x31}},
		{"unknown scheme is black", Scheme("accent9"), [3]uint8{0, 0, 0}},
		{"preset red", Preset("red"), [3]uint8{255, 0, 0}},
		{"preset dk prefix", Preset("dkBlue"), [3]uint8{0, 0, 139}},
		{"preset lt prefix", Preset("ltGray"), [3]uint8{211, 211, 211}},
		{"preset med prefix", Preset("medPurple"), [3]uint8{147, 112, 219}},
		{"preset lime untouched by prefix expansion", Preset("lime"), [3]uint8{0, 255, 0}},
		{"unknown preset is black", Preset("notAColor"), [3]uint8{0, 0, 0}},
		{"system window", System("window"), [3]uint8{255, 255, 255}},
		{"system folded name", System("WINDOWTEXT"), [3]uint8{0, 0, 0}},
		{"system lastClr fallback", SystemWithLast("mystery", RGBColor{R: 1, G: 2, B: 3, A: 1}), [3]uint8{1, 2, 3}},
		{"unknown system is black", System("mystery"), [3]uint8{0, 0, 0}},
		{"hsl red", HSL(0, 1, 0.5), [3]uint8{255, 0, 0}},
		{"hsl hue wraps", HSL(480, 1, 0.5), [3]uint8{0, 255, 0}},
		{"scRGB mid gray", ScRGB(0.2140, 0.2140, 0.2140), [3]uint8{128, 128, 128}},
		{"zero color is black", Color{}, [3]uint8{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rgb255(t, tt.c, theme)
			for i := range got {
				if d := int(got[i]) - int(tt.want[i]); d < -1 || d > 1 {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestResolveColor_NilTheme(t *testing.T) {
	_, err := ResolveColor(Scheme("accent1"), nil)
	if !errors.Is(err, ErrNilTheme) {
		t.Fatalf("ResolveColor(scheme, nil) error = %v, want ErrNilTheme", err)
	}

	// Colors that do not touch the theme resolve without one.
	for _, c := range []Color{SRGB(1, 2, 3), Preset("red"), System("window"), Placeholder()} {
		if _, err := ResolveColor(c, nil); err != nil {
			t.Errorf("ResolveColor(%+v, nil) error = %v", c.Base, err)
		}
	}
}

func TestResolveColor_PlaceholderOutsideStyle(t *testing.T) {
	got := rgb255(t, Placeholder().WithTint(50000), DefaultTheme())
	if got != [3]uint8{128, 128, 128} {
		t.Errorf("phClr without a style reference = %v, want black tinted to 128", got)
	}
}

func TestResolveColor_PlaceholderSubstitution(t *testing.T) {
	theme := DefaultTheme()
	ref := Scheme("accent1")
	got, err := resolveColor(Placeholder().WithShade(50000), theme, &ref, Logger())
	if err != nil {
		t.Fatalf("resolveColor() error = %v", err)
	}
	r, g, b := got.RGB255()
	want := [3]uint8{0x22, 0x39, 0x62}
	if [3]uint8{r, g, b} != want {
		t.Errorf("phClr(accent1)+shade = %v, want %v", [3]uint8{r, g, b}, want)
	}
}
