package dml

import (
	"image/color"
	"testing"
)

func TestRGBA_Hex(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{"black", Black, "000000"},
		{"white", White, "FFFFFF"},
		{"accent1", RGBA{R: 0x44 / 255.0, G: 0x72 / 255.0, B: 0xC4 / 255.0, A: 1}, "4472C4"},
		{"rounds to nearest", RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1}, "999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Color()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if got != want {
		t.Errorf("Color() = %#v, want %#v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in     string
		want   RGBColor
		wantOK bool
	}{
		{"4472C4", RGBColor{R: 0x44, G: 0x72, B: 0xC4, A: 1}, true},
		{"#ffc000", RGBColor{R: 0xFF, G: 0xC0, B: 0x00, A: 1}, true},
		{"FFF", RGBColor{}, false},
		{"GG0000", RGBColor{}, false},
		{"", RGBColor{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseHex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSRGBHex_MalformedIsOpaqueBlack(t *testing.T) {
	got, err := ResolveColor(SRGBHex("nope"), nil)
	if err != nil {
		t.Fatalf("ResolveColor() error = %v", err)
	}
	if got != Black {
		t.Errorf("SRGBHex(\"nope\") resolved to %v, want %v", got, Black)
	}
}

func TestFraction(t *testing.T) {
	var unset Fraction
	if unset.IsSet() {
		t.Error("zero Fraction should be unset")
	}
	if got := unset.Float(0.25); got != 0.25 {
		t.Errorf("unset.Float(0.25) = %v, want default", got)
	}

	f := Frac(-25000)
	if v, ok := f.Get(); !ok || v != -25000 {
		t.Errorf("Frac(-25000).Get() = %v, %v", v, ok)
	}
	if got := f.Float(1); got != -0.25 {
		t.Errorf("Frac(-25000).Float() = %v, want -0.25", got)
	}
}

func TestColor_WithCopies(t *testing.T) {
	base := Scheme("accent1")
	modified := base.WithLumMod(75000).WithTint(50000)

	if !base.Mods.IsZero() {
		t.Error("With* modified the receiver")
	}
	if !modified.Mods.LumMod.IsSet() || !modified.Mods.Tint.IsSet() {
		t.Errorf("modified.Mods = %+v, want lumMod and tint set", modified.Mods)
	}
	if modified.Mods.Shade.IsSet() {
		t.Error("shade should stay unset")
	}
}
