package dml

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsAxisAligned reports whether the matrix only scales and translates.
// Axis-aligned matrices map an axis-aligned ellipse onto another one, so
// arc segments survive them without conversion to curves.
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// PlaceInRect returns the matrix mapping a declared coordinate space onto
// the target rectangle: a non-uniform scale followed by a translation.
// Degenerate space dimensions map to a zero scale on that axis.
func PlaceInRect(space Size, target Rect) Matrix {
	sx, sy := scaleFactors(space, target.Size())
	return Translate(target.X, target.Y).Multiply(Scale(sx, sy))
}

func scaleFactors(space, target Size) (sx, sy float64) {
	if space.Width > 0 {
		sx = target.Width / space.Width
	}
	if space.Height > 0 {
		sy = target.Height / space.Height
	}
	return sx, sy
}
