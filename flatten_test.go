package dml

import (
	"math"
	"testing"
)

func TestFlatten_Polygon(t *testing.T) {
	p, _ := Generate("diamond", 10, 20, nil)
	lines := p.Flatten(0.1)
	if len(lines) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(lines))
	}
	want := []Point{{0, 10}, {5, 0}, {10, 10}, {5, 20}, {0, 10}}
	if len(lines[0]) != len(want) {
		t.Fatalf("points = %v, want %v", lines[0], want)
	}
	for i := range want {
		if lines[0][i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, lines[0][i], want[i])
		}
	}
}

func TestFlatten_CircleWithinTolerance(t *testing.T) {
	p, _ := Generate("ellipse", 200, 200, nil)
	for _, tol := range []float64{1, 0.1, 0.01} {
		lines := p.Flatten(tol)
		if len(lines) != 1 {
			t.Fatalf("tol %v: subpaths = %d, want 1", tol, len(lines))
		}
		pts := lines[0]
		if pts[0] != pts[len(pts)-1] {
			t.Errorf("tol %v: closed subpath does not end at its start", tol)
		}
		for _, pt := range pts {
			// Cubic arc approximation error plus flattening tolerance.
			if r := pt.Distance(Pt(100, 100)); math.Abs(r-100) > tol+0.03 {
				t.Errorf("tol %v: point %v at radius %v", tol, pt, r)
				break
			}
		}
	}
	if coarse, fine := len(p.Flatten(1)[0]), len(p.Flatten(0.01)[0]); fine <= coarse {
		t.Errorf("finer tolerance gave %d points, coarse %d", fine, coarse)
	}
}

func TestFlatten_Subpaths(t *testing.T) {
	p, _ := Generate("frame", 100, 100, nil)
	if got := len(p.Flatten(0)); got != 2 {
		t.Errorf("frame subpaths = %d, want 2", got)
	}

	p, _ = Generate("leftBracket", 20, 100, nil)
	lines := p.Flatten(0)
	if len(lines) != 1 {
		t.Fatalf("bracket subpaths = %d, want 1", len(lines))
	}
	if first, last := lines[0][0], lines[0][len(lines[0])-1]; first == last {
		t.Error("open bracket came back closed")
	}
}

func TestFlatten_Degenerate(t *testing.T) {
	p := PathProgram{Segments: []Segment{
		MoveTo{Pt(0, 0)},
		CubicTo{Control1: Pt(math.NaN(), 0), Control2: Pt(1, 1), Point: Pt(2, 2)},
	}}
	lines := p.Flatten(0.1)
	if len(lines) != 1 || len(lines[0]) < 2 {
		t.Fatalf("Flatten() = %v", lines)
	}
	if got := (PathProgram{}).Flatten(1); got != nil {
		t.Errorf("empty Flatten() = %v, want nil", got)
	}
}
