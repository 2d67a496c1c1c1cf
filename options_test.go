package dml

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.theme == nil {
		t.Fatal("default theme is nil")
	}
	if o.theme.Colors[SchemeAccent1] != mustHex("4472C4") {
		t.Errorf("default accent1 = %v", o.theme.Colors[SchemeAccent1])
	}
	if o.workers != 0 {
		t.Errorf("default workers = %d, want 0", o.workers)
	}
	if o.logger == nil {
		t.Error("default logger is nil")
	}
}

func TestOptions_Apply(t *testing.T) {
	theme := DefaultTheme().WithColor(SchemeAccent1, RGBColor{R: 1, G: 2, B: 3, A: 1})
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	o := applyOptions([]Option{WithTheme(theme), WithWorkers(3), WithLogger(logger), nil})
	if o.theme != theme {
		t.Error("WithTheme not applied")
	}
	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if o.logger != logger {
		t.Error("WithLogger not applied")
	}
}

func TestOptions_NilThemeFallsBack(t *testing.T) {
	o := applyOptions([]Option{WithTheme(nil)})
	if o.theme == nil {
		t.Error("WithTheme(nil) left no theme")
	}
}

func TestWithLogger_GeometryFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rs, err := ResolveShape(ShapeDescriptor{
		Geometry: PresetGeometry{Name: "cloudCallout"},
		Target:   Rect{Width: 10, Height: 10},
	}, WithLogger(logger))
	if err != nil {
		t.Fatalf("ResolveShape() error = %v", err)
	}
	if rs.Path.IsEmpty() {
		t.Error("fallback path is empty")
	}
	if !strings.Contains(buf.String(), "cloudCallout") {
		t.Errorf("log output %q does not name the unknown preset", buf.String())
	}
}

func TestWithLogger_ResolutionFallbacks(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var global bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&global, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tests := []struct {
		name string
		desc ShapeDescriptor
		want string
	}{
		{"unknown preset color", ShapeDescriptor{Fill: SolidFill{Color: Preset("notAColor")}}, "notAColor"},
		{"placeholder without style", ShapeDescriptor{Fill: SolidFill{Color: Placeholder()}}, "phClr"},
		{"fillRef out of range", ShapeDescriptor{Style: &ShapeStyle{FillRef: StyleRef{Index: 9}}}, "fillRef"},
		{"lnRef out of range", ShapeDescriptor{Style: &ShapeStyle{LineRef: StyleRef{Index: 9}}}, "lnRef"},
		{"effectRef out of range", ShapeDescriptor{Style: &ShapeStyle{EffectRef: StyleRef{Index: 9}}}, "effectRef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			tt.desc.Target = Rect{Width: 10, Height: 10}

			if _, err := ResolveShape(tt.desc, WithLogger(logger)); err != nil {
				t.Fatalf("ResolveShape() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("call logger output %q does not mention %q", buf.String(), tt.want)
			}
		})
	}
	if global.Len() != 0 {
		t.Errorf("package logger received %q, want nothing", global.String())
	}
}
