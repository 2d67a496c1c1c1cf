package dml

import "math"

// DefaultFlattenTolerance is the flattening tolerance used when a
// non-positive one is requested, in declared-space units.
const DefaultFlattenTolerance = 0.1

// maxFlattenDepth bounds curve subdivision so degenerate input terminates.
const maxFlattenDepth = 16

// Flatten converts the program into polylines, one per subpath, for
// consumers without curve support. Arcs are converted to cubic curves
// first; curves are subdivided until their control points lie within
// tolerance of the chord. A closed subpath ends with its start point.
func (p PathProgram) Flatten(tolerance float64) [][]Point {
	if !(tolerance > 0) {
		tolerance = DefaultFlattenTolerance
	}

	var (
		out     [][]Point
		current []Point
		pen     Point
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}

	for _, seg := range p.Cubics().Segments {
		switch s := seg.(type) {
		case MoveTo:
			flush()
			pen = s.Point
			current = []Point{pen}
		case LineTo:
			if current == nil {
				current = []Point{pen}
			}
			pen = s.Point
			current = append(current, pen)
		case QuadTo:
			if current == nil {
				current = []Point{pen}
			}
			current = flattenQuad(current, pen, s.Control, s.Point, tolerance, 0)
			pen = s.Point
		case CubicTo:
			if current == nil {
				current = []Point{pen}
			}
			current = flattenCubic(current, pen, s.Control1, s.Control2, s.Point, tolerance, 0)
			pen = s.Point
		case Close:
			if len(current) > 0 {
				start := current[0]
				current = append(current, start)
				pen = start
			}
			flush()
		}
	}
	flush()
	return out
}

func flattenQuad(pts []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxFlattenDepth || !(distanceToSegment(p1, p0, p2) >= tolerance) {
		return append(pts, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	pts = flattenQuad(pts, p0, q0, q2, tolerance, depth+1)
	return flattenQuad(pts, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic subdivides with de Casteljau's algorithm.
func flattenCubic(pts []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxFlattenDepth || !(d >= tolerance) {
		return append(pts, p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	pts = flattenCubic(pts, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubic(pts, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToSegment returns the distance from p to the segment ab.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	switch {
	case t <= 0:
		return p.Distance(a)
	case t >= 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
