package dml

import "math"

// DefaultSpace is the declared coordinate space assumed when a custom
// geometry omits its own path dimensions.
var DefaultSpace = Size{Width: 21600, Height: 21600}

// Segment is a single element of a PathProgram.
// This is a sealed interface: MoveTo, LineTo, CubicTo, QuadTo, ArcTo and
// Close are the only implementations.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// ArcTo draws an elliptical arc around Center with radii RX and RY.
// Start and Sweep are parametric angles in radians; positive sweeps run
// clockwise in y-down coordinates. The arc begins at StartPoint, which is
// always the pen position at the time the segment was emitted.
type ArcTo struct {
	Center Point
	RX, RY float64
	Start  float64
	Sweep  float64
}

func (ArcTo) isSegment() {}

// StartPoint returns the point at the start angle.
func (a ArcTo) StartPoint() Point {
	return a.pointAt(a.Start)
}

// EndPoint returns the point at Start+Sweep.
func (a ArcTo) EndPoint() Point {
	return a.pointAt(a.Start + a.Sweep)
}

// LargeArc reports whether the arc spans at least 180 degrees, allowing
// for rounding in a half turn derived from degrees.
func (a ArcTo) LargeArc() bool {
	return math.Abs(a.Sweep) >= math.Pi-1e-9
}

// SweepPositive reports whether the arc runs in the positive-angle direction.
func (a ArcTo) SweepPositive() bool {
	return a.Sweep > 0
}

func (a ArcTo) pointAt(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: a.Center.X + a.RX*cos, Y: a.Center.Y + a.RY*sin}
}

// Close terminates the current subpath.
type Close struct{}

func (Close) isSegment() {}

// PathProgram is an ordered list of path segments expressed in a declared
// coordinate space. Coordinates are never rescaled implicitly: callers map
// Space onto their target with ScaleTo or PlaceInRect.
type PathProgram struct {
	Segments []Segment
	Space    Size
}

// IsEmpty reports whether the program has no segments.
func (p PathProgram) IsEmpty() bool {
	return len(p.Segments) == 0
}

// ScaleTo returns the non-uniform factors mapping the declared space onto
// target. A zero-sized space dimension yields a zero factor.
func (p PathProgram) ScaleTo(target Rect) (sx, sy float64) {
	return scaleFactors(p.Space, target.Size())
}

// HasNaN reports whether any coordinate in the program is NaN or infinite.
func (p PathProgram) HasNaN() bool {
	for _, seg := range p.Segments {
		for _, pt := range segmentPoints(seg) {
			if !pt.IsFinite() {
				return true
			}
		}
		if a, ok := seg.(ArcTo); ok {
			if !isFinite(a.RX) || !isFinite(a.RY) || !isFinite(a.Start) || !isFinite(a.Sweep) {
				return true
			}
		}
	}
	return false
}

// Bounds returns the bounding box of all on-curve and control points.
// Arcs contribute their full ellipse extremes within the swept range.
func (p PathProgram) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	add := func(pt Point) {
		if first {
			minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
			first = false
			return
		}
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, seg := range p.Segments {
		if a, ok := seg.(ArcTo); ok {
			for _, pt := range arcExtremes(a) {
				add(pt)
			}
			continue
		}
		for _, pt := range segmentPoints(seg) {
			add(pt)
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Transform applies m to every coordinate and returns a new program in the
// transformed space. Arcs are kept as arcs when m only scales by positive
// factors and translates; otherwise they are converted to cubic curves.
func (p PathProgram) Transform(m Matrix) PathProgram {
	keepArcs := m.IsAxisAligned() && m.A > 0 && m.E > 0
	src := p
	if !keepArcs {
		src = p.Cubics()
	}
	out := make([]Segment, 0, len(src.Segments))
	for _, seg := range src.Segments {
		switch s := seg.(type) {
		case MoveTo:
			out = append(out, MoveTo{Point: m.TransformPoint(s.Point)})
		case LineTo:
			out = append(out, LineTo{Point: m.TransformPoint(s.Point)})
		case QuadTo:
			out = append(out, QuadTo{
				Control: m.TransformPoint(s.Control),
				Point:   m.TransformPoint(s.Point),
			})
		case CubicTo:
			out = append(out, CubicTo{
				Control1: m.TransformPoint(s.Control1),
				Control2: m.TransformPoint(s.Control2),
				Point:    m.TransformPoint(s.Point),
			})
		case ArcTo:
			out = append(out, ArcTo{
				Center: m.TransformPoint(s.Center),
				RX:     s.RX * m.A,
				RY:     s.RY * m.E,
				Start:  s.Start,
				Sweep:  s.Sweep,
			})
		case Close:
			out = append(out, s)
		}
	}
	space := Size{
		Width:  math.Abs(p.Space.Width * m.A),
		Height: math.Abs(p.Space.Height * m.E),
	}
	return PathProgram{Segments: out, Space: space}
}

// Cubics returns a copy of the program with every ArcTo replaced by cubic
// Bezier curves of at most 90 degrees each, for backends without native
// elliptical arcs.
func (p PathProgram) Cubics() PathProgram {
	out := make([]Segment, 0, len(p.Segments))
	for _, seg := range p.Segments {
		a, ok := seg.(ArcTo)
		if !ok {
			out = append(out, seg)
			continue
		}
		out = appendArcCubics(out, a)
	}
	return PathProgram{Segments: out, Space: p.Space}
}

// appendArcCubics splits an arc into pieces of at most 90 degrees.
func appendArcCubics(out []Segment, a ArcTo) []Segment {
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.Sweep)/maxAngle - 1e-9))
	if n == 0 {
		return out
	}
	step := a.Sweep / float64(n)
	for i := range n {
		a1 := a.Start + float64(i)*step
		out = append(out, arcSegment(a, a1, a1+step))
	}
	return out
}

// arcSegment approximates the elliptical arc between angles a1 and a2
// (|a2-a1| <= 90 degrees) by one cubic curve.
func arcSegment(a ArcTo, a1, a2 float64) CubicTo {
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)
	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	p1 := a.pointAt(a1)
	p2 := a.pointAt(a2)
	return CubicTo{
		Control1: Point{X: p1.X - k*a.RX*sin1, Y: p1.Y + k*a.RY*cos1},
		Control2: Point{X: p2.X + k*a.RX*sin2, Y: p2.Y - k*a.RY*cos2},
		Point:    p2,
	}
}

// arcExtremes returns the arc endpoints plus every axis extreme of the
// ellipse that falls inside the swept range.
func arcExtremes(a ArcTo) []Point {
	pts := []Point{a.StartPoint(), a.EndPoint()}
	lo, hi := a.Start, a.Start+a.Sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		pts = append(pts, a.pointAt(k*math.Pi/2))
	}
	return pts
}

func segmentPoints(seg Segment) []Point {
	switch s := seg.(type) {
	case MoveTo:
		return []Point{s.Point}
	case LineTo:
		return []Point{s.Point}
	case QuadTo:
		return []Point{s.Control, s.Point}
	case CubicTo:
		return []Point{s.Control1, s.Control2, s.Point}
	case ArcTo:
		return []Point{s.Center, s.StartPoint(), s.EndPoint()}
	}
	return nil
}
