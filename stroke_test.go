package dml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStroke_WithWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int64
	}{
		{"hairline", 3175},
		{"normal", 12700},
		{"thick", 63500},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stroke{}.WithWidth(tt.width)
			if s.Width != tt.width {
				t.Errorf("WithWidth(%v).Width = %v", tt.width, s.Width)
			}
		})
	}
}

func TestStroke_ValueSemantics(t *testing.T) {
	original := Stroke{Width: 12700, CustomDash: []DashStop{{Dash: 100000, Space: 100000}}}
	modified := original.WithCap(CapRound).WithJoin(JoinBevel).WithDash(DashDot)

	if original.Cap != CapFlat || original.Join != JoinRound {
		t.Errorf("original modified: cap=%v join=%v", original.Cap, original.Join)
	}
	if len(original.CustomDash) != 1 {
		t.Error("WithDash cleared the receiver's custom dash")
	}
	if modified.Cap != CapRound || modified.Join != JoinBevel || modified.Dash != DashDot {
		t.Errorf("modified = %+v", modified)
	}
	if modified.CustomDash != nil {
		t.Error("WithDash should drop the custom dash")
	}
}

func TestParseLineAttributes(t *testing.T) {
	if got := ParseLineCap("rnd"); got != CapRound {
		t.Errorf("ParseLineCap(rnd) = %v", got)
	}
	if got := ParseLineCap("bogus"); got != CapFlat {
		t.Errorf("ParseLineCap(bogus) = %v, want flat", got)
	}
	if got := ParseLineJoin("miter"); got != JoinMiter {
		t.Errorf("ParseLineJoin(miter) = %v", got)
	}
	if got := ParseCompoundLine("thickThin"); got != CompoundThickThin {
		t.Errorf("ParseCompoundLine(thickThin) = %v", got)
	}
	if got := ParseLineEndType("Stealth"); got != LineEndStealth {
		t.Errorf("ParseLineEndType(Stealth) = %v", got)
	}
	if got := ParseLineEndSize("lg"); got != SizeLarge {
		t.Errorf("ParseLineEndSize(lg) = %v", got)
	}
}

func TestResolveStroke_Declared(t *testing.T) {
	s := &Stroke{
		Fill:  SolidFill{Color: SRGB(255, 0, 0)},
		Width: 25400,
		Dash:  DashDash,
		Cap:   CapRound,
		Head:  &LineEnd{Type: LineEndTriangle, Width: SizeSmall, Length: SizeLarge},
	}
	got, err := ResolveStroke(s, DefaultTheme(), nil)
	if err != nil {
		t.Fatalf("ResolveStroke() error = %v", err)
	}

	want := ResolvedStroke{
		Paint: SolidPaint{Color: RGBA{R: 1, A: 1}},
		Width: 25400,
		Dash:  &Dash{Array: []float64{4 * 25400, 3 * 25400}},
		Cap:   CapRound,
		Head:  &ResolvedLineEnd{Type: LineEndTriangle, Width: 2 * 25400, Length: 5 * 25400},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveStroke() mismatch (-want +got):\n%s", diff)
	}
	if !got.IsVisible() {
		t.Error("declared red stroke should be visible")
	}
}

func TestResolveStroke_DefaultWidth(t *testing.T) {
	got, err := ResolveStroke(&Stroke{Fill: SolidFill{Color: SRGB(0, 0, 0)}}, nil, nil)
	if err != nil {
		t.Fatalf("ResolveStroke() error = %v", err)
	}
	if got.Width != DefaultLineWidth {
		t.Errorf("Width = %v, want %v", got.Width, DefaultLineWidth)
	}
	if got.Dash != nil {
		t.Errorf("solid stroke Dash = %v, want nil", got.Dash)
	}
}

func TestResolveStroke_StyleFallback(t *testing.T) {
	theme := DefaultTheme()
	accent := Scheme("accent2")

	tests := []struct {
		name      string
		stroke    *Stroke
		ref       *StyleRef
		wantPaint Paint
		wantWidth float64
	}{
		{
			name:      "no stroke, no ref",
			wantPaint: NoPaint{},
			wantWidth: 0,
		},
		{
			name:      "index 0 inherits nothing",
			ref:       &StyleRef{Index: 0, Color: &accent},
			wantPaint: NoPaint{},
			wantWidth: 0,
		},
		{
			name:      "lnRef 2 uses the style width and the ref color",
			ref:       &StyleRef{Index: 2, Color: &accent},
			wantPaint: SolidPaint{Color: RGBA{R: 0xED / 255.0, G: 0x7D / 255.0, B: 0x31 / 255.0, A: 1}},
			wantWidth: 12700,
		},
		{
			name:      "declared width wins, fill inherited",
			stroke:    &Stroke{Width: 38100},
			ref:       &StyleRef{Index: 1, Color: &accent},
			wantPaint: SolidPaint{Color: RGBA{R: 0xED / 255.0, G: 0x7D / 255.0, B: 0x31 / 255.0, A: 1}},
			wantWidth: 38100,
		},
		{
			name:      "declared noFill wins over style",
			stroke:    &Stroke{Fill: NoFill{}},
			ref:       &StyleRef{Index: 3, Color: &accent},
			wantPaint: NoPaint{},
			wantWidth: 19050,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStroke(tt.stroke, theme, tt.ref)
			if err != nil {
				t.Fatalf("ResolveStroke() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantPaint, got.Paint); diff != "" {
				t.Errorf("Paint mismatch (-want +got):\n%s", diff)
			}
			if got.Width != tt.wantWidth {
				t.Errorf("Width = %v, want %v", got.Width, tt.wantWidth)
			}
		})
	}
}

func TestResolveStroke_NilThemeWithRef(t *testing.T) {
	_, err := ResolveStroke(nil, nil, &StyleRef{Index: 1})
	if !errors.Is(err, ErrNilTheme) {
		t.Errorf("error = %v, want ErrNilTheme", err)
	}
}

func TestResolvedStroke_IsVisible(t *testing.T) {
	tests := []struct {
		name string
		s    ResolvedStroke
		want bool
	}{
		{"unresolved", ResolvedStroke{Width: 1}, false},
		{"no paint", ResolvedStroke{Paint: NoPaint{}, Width: 1}, false},
		{"zero width", ResolvedStroke{Paint: SolidPaint{Color: Black}}, false},
		{"solid", ResolvedStroke{Paint: SolidPaint{Color: Black}, Width: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsVisible(); got != tt.want {
				t.Errorf("IsVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}
