package dml

import (
	"math"
	"testing"
)

func TestIsAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"pure translation", Translate(10, 20), true},
		{"uniform scale", Scale(2, 2), true},
		{"non-uniform scale", Scale(3, 0.5), true},
		{"negative scale x", Scale(-1, 1), true},
		{"rotation 45deg", Rotate(math.Pi / 4), false},
		{"rotation 90deg", Rotate(math.Pi / 2), false},
		{"scale + translate", Translate(10, 20).Multiply(Scale(2, 3)), true},
		{"zero matrix", Matrix{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.IsAxisAligned()
			if got != tt.want {
				t.Errorf("Matrix%+v.IsAxisAligned() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(10, 10).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointNear(got, tt.want, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlaceInRect(t *testing.T) {
	tests := []struct {
		name   string
		space  Size
		target Rect
		in     Point
		want   Point
	}{
		{
			name:   "default space onto offset rect",
			space:  DefaultSpace,
			target: Rect{X: 100, Y: 50, Width: 216, Height: 108},
			in:     Pt(21600, 21600),
			want:   Pt(316, 158),
		},
		{
			name:   "same size only translates",
			space:  Size{Width: 200, Height: 100},
			target: Rect{X: 5, Y: 7, Width: 200, Height: 100},
			in:     Pt(10, 10),
			want:   Pt(15, 17),
		},
		{
			name:   "zero space width collapses x",
			space:  Size{Width: 0, Height: 100},
			target: Rect{X: 5, Y: 0, Width: 200, Height: 100},
			in:     Pt(10, 10),
			want:   Pt(5, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceInRect(tt.space, tt.target).TransformPoint(tt.in)
			if !pointNear(got, tt.want, 1e-9) {
				t.Errorf("PlaceInRect(%v, %v) maps %v to %v, want %v", tt.space, tt.target, tt.in, got, tt.want)
			}
		})
	}
}

func pointNear(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
