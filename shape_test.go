package dml

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveShape_UnknownPresetIsRect(t *testing.T) {
	target := Rect{X: 5, Y: 5, Width: 120, Height: 60}
	rs, err := ResolveShape(ShapeDescriptor{
		Geometry: PresetGeometry{Name: "notAShape"},
		Target:   target,
	})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	want := rectProgram(120, 60)
	if diff := cmp.Diff(want, rs.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	if rs.ScaleX != 1 || rs.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", rs.ScaleX, rs.ScaleY)
	}
}

func TestResolveShape_NilGeometryIsRect(t *testing.T) {
	rs, err := ResolveShape(ShapeDescriptor{Target: Rect{Width: 4, Height: 3}})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if diff := cmp.Diff(rectProgram(4, 3), rs.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveShape_CustomGeometryScale(t *testing.T) {
	rs, err := ResolveShape(ShapeDescriptor{
		Geometry: CustomGeometry{Commands: []PathCommand{
			MoveToCmd{Pt: P(0, 0)},
			LineToCmd{Pt: P(21600, 0)},
			LineToCmd{Pt: P(10800, 21600)},
			CloseCmd{},
		}},
		Target: Rect{X: 100, Y: 200, Width: 43200, Height: 10800},
	})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if rs.Path.Space != DefaultSpace {
		t.Errorf("Space = %v, want the default space", rs.Path.Space)
	}
	if rs.ScaleX != 2 || rs.ScaleY != 0.5 {
		t.Errorf("scale = (%v, %v), want (2, 0.5)", rs.ScaleX, rs.ScaleY)
	}

	placed := rs.PlacedPath()
	apex := placed.Segments[2].(LineTo).Point
	if !pointNear(apex, Pt(100+21600, 200+10800), 1e-9) {
		t.Errorf("placed apex = %v", apex)
	}
	if placed.Space != (Size{Width: 43200, Height: 10800}) {
		t.Errorf("placed Space = %v", placed.Space)
	}
}

func TestResolveShape_PresetAtTargetSize(t *testing.T) {
	rs, err := ResolveShape(ShapeDescriptor{
		Geometry: PresetGeometry{Name: "roundRect", Adjustments: Adjustments{"adj": 50000}},
		Target:   Rect{X: 10, Y: 10, Width: 300, Height: 100},
	})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if rs.Path.Space != (Size{Width: 300, Height: 100}) {
		t.Errorf("Space = %v, want the target size", rs.Path.Space)
	}
	b := rs.PlacedPath().Bounds()
	if math.Abs(b.X-10) > 1e-9 || math.Abs(b.Y-10) > 1e-9 ||
		math.Abs(b.Width-300) > 1e-9 || math.Abs(b.Height-100) > 1e-9 {
		t.Errorf("placed bounds = %+v", b)
	}
}

func TestResolveShape_StyleMatrix(t *testing.T) {
	accent := Scheme("accent1")
	font := Scheme("lt1")
	rs, err := ResolveShape(ShapeDescriptor{
		Geometry: PresetGeometry{Name: "ellipse"},
		Target:   Rect{Width: 100, Height: 100},
		Style: &ShapeStyle{
			FillRef:   StyleRef{Index: 1, Color: &accent},
			LineRef:   StyleRef{Index: 2, Color: &accent},
			EffectRef: StyleRef{Index: 3},
			FontRef:   StyleRef{Index: 1, Color: &font},
		},
	})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}

	accentRGBA := RGBA{R: 0x44 / 255.0, G: 0x72 / 255.0, B: 0xC4 / 255.0, A: 1}
	if diff := cmp.Diff(Paint(SolidPaint{Color: accentRGBA}), rs.Fill); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
	if rs.Stroke.Width != 12700 || !rs.Stroke.IsVisible() {
		t.Errorf("Stroke = %+v, want a visible 12700 EMU line", rs.Stroke)
	}
	if len(rs.Effects) != 1 {
		t.Errorf("Effects = %v, want the intense shadow", rs.Effects)
	}
	if rs.FontColor == nil || *rs.FontColor != White {
		t.Errorf("FontColor = %v, want white", rs.FontColor)
	}
}

func TestResolveShape_DeclaredOverridesStyle(t *testing.T) {
	accent := Scheme("accent1")
	rs, err := ResolveShape(ShapeDescriptor{
		Fill:    SolidFill{Color: SRGB(0, 255, 0)},
		Stroke:  &Stroke{Fill: NoFill{}},
		Effects: []Effect{},
		Style: &ShapeStyle{
			FillRef:   StyleRef{Index: 1, Color: &accent},
			LineRef:   StyleRef{Index: 1, Color: &accent},
			EffectRef: StyleRef{Index: 3},
		},
		Target: Rect{Width: 1, Height: 1},
	})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if diff := cmp.Diff(Paint(SolidPaint{Color: RGBA{G: 1, A: 1}}), rs.Fill); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
	if rs.Stroke.IsVisible() {
		t.Error("declared noFill line should hide the stroke")
	}
	if len(rs.Effects) != 0 {
		t.Errorf("Effects = %v, want none", rs.Effects)
	}
	if rs.FontColor != nil {
		t.Errorf("FontColor = %v, want nil without a fontRef color", *rs.FontColor)
	}
}

func TestResolveShape_WithTheme(t *testing.T) {
	theme := DefaultTheme().WithColor(SchemeAccent1, RGBColor{R: 255, A: 1})
	rs, err := ResolveShape(ShapeDescriptor{
		Fill:   SolidFill{Color: Scheme("accent1")},
		Target: Rect{Width: 1, Height: 1},
	}, WithTheme(theme))
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if diff := cmp.Diff(Paint(SolidPaint{Color: RGBA{R: 1, A: 1}}), rs.Fill); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveShape_NoStyleNoPaint(t *testing.T) {
	rs, err := ResolveShape(ShapeDescriptor{Target: Rect{Width: 1, Height: 1}})
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if _, ok := rs.Fill.(NoPaint); !ok {
		t.Errorf("Fill = %T, want NoPaint", rs.Fill)
	}
	if rs.Stroke.IsVisible() {
		t.Error("stroke without declaration or style should be invisible")
	}
	if len(rs.Effects) != 0 {
		t.Errorf("Effects = %v", rs.Effects)
	}
}
