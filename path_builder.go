package dml

import "math"

// pathBuilder accumulates segments and tracks the pen the way DrawingML
// path commands expect: arcs start at the current point and derive their
// own center from it.
type pathBuilder struct {
	segments []Segment
	start    Point // start of the current subpath
	current  Point // pen position
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{segments: make([]Segment, 0, 16)}
}

func (b *pathBuilder) moveTo(x, y float64) {
	pt := Pt(x, y)
	b.segments = append(b.segments, MoveTo{Point: pt})
	b.start = pt
	b.current = pt
}

func (b *pathBuilder) lineTo(x, y float64) {
	pt := Pt(x, y)
	b.segments = append(b.segments, LineTo{Point: pt})
	b.current = pt
}

func (b *pathBuilder) quadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	b.segments = append(b.segments, QuadTo{Control: Pt(cx, cy), Point: pt})
	b.current = pt
}

func (b *pathBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	b.segments = append(b.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	b.current = pt
}

// arcTo appends an elliptical arc that begins at the pen. start and sweep
// are in radians. The center is placed so that the start angle lands on
// the pen:
//
//	cx = x - wR*cos(start)
//	cy = y - hR*sin(start)
//
// Non-positive or non-finite radii leave the program and the pen untouched.
func (b *pathBuilder) arcTo(wR, hR, start, sweep float64) bool {
	if !(wR > 0) || !(hR > 0) || !isFinite(wR) || !isFinite(hR) || !isFinite(start) || !isFinite(sweep) {
		return false
	}
	sin, cos := math.Sincos(start)
	arc := ArcTo{
		Center: Point{X: b.current.X - wR*cos, Y: b.current.Y - hR*sin},
		RX:     wR,
		RY:     hR,
		Start:  start,
		Sweep:  sweep,
	}
	b.segments = append(b.segments, arc)
	b.current = arc.EndPoint()
	return true
}

// arcToDeg is arcTo with angles in degrees, the unit preset formulas use.
func (b *pathBuilder) arcToDeg(wR, hR, startDeg, sweepDeg float64) bool {
	return b.arcTo(wR, hR, degToRad(startDeg), degToRad(sweepDeg))
}

func (b *pathBuilder) close() {
	b.segments = append(b.segments, Close{})
	b.current = b.start
}

// polygon adds a closed polygon through pts.
func (b *pathBuilder) polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	b.moveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.lineTo(pt.X, pt.Y)
	}
	b.close()
}

func (b *pathBuilder) program(space Size) PathProgram {
	return PathProgram{Segments: b.segments, Space: space}
}

// ooxmlAngle converts a DrawingML angle (1/60000 degree) to radians.
func ooxmlAngle(v float64) float64 {
	return degToRad(v / 60000)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
