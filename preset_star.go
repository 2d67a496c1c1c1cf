package dml

import "math"

// starSpec describes one star preset. The stretch factors hf and vf (1/100000)
// widen the circumscribing ellipse so the outer vertices touch the frame.
type starSpec struct {
	points   int
	adj      int64 // default inner radius, 1/50000 of the outer radius
	hf, vf   float64
	startDeg float64
	lift     bool
}

var starSpecs = map[int]starSpec{
	4:  {points: 4, adj: 12500, hf: 100000, vf: 100000, startDeg: -90},
	5:  {points: 5, adj: 19098, hf: 105146, vf: 110557, startDeg: -90, lift: true},
	6:  {points: 6, adj: 28868, hf: 115470, vf: 100000, startDeg: -90},
	7:  {points: 7, adj: 34601, hf: 102572, vf: 105210, startDeg: -90, lift: true},
	8:  {points: 8, adj: 38250, hf: 100000, vf: 100000, startDeg: -90},
	10: {points: 10, adj: 42533, hf: 105146, vf: 100000, startDeg: 180},
	12: {points: 12, adj: 37500, hf: 100000, vf: 100000, startDeg: -90},
	16: {points: 16, adj: 39000, hf: 100000, vf: 100000, startDeg: -90},
	24: {points: 24, adj: 41250, hf: 100000, vf: 100000, startDeg: -90},
	32: {points: 32, adj: 43750, hf: 100000, vf: 100000, startDeg: -90},
}

func starDefaults(points int) []AdjustDefault {
	return []AdjustDefault{
		{Name: "adj", Default: starSpecs[points].adj},
		{Name: "adj2", Default: 0},
	}
}

func starGen(points int) func(g *shapeGeom) {
	spec := starSpecs[points]
	return func(g *shapeGeom) { g.star(spec) }
}

// star alternates outer and inner vertices. adj sets the inner radius as
// a fraction of the outer one (50000 = equal); adj2 rotates the whole star.
func (g *shapeGeom) star(spec starSpec) {
	a := g.pin("adj", 0, 50000)
	rot := g.raw("adj2") / 60000

	rx := g.wd2 * spec.hf / FractionScale
	ry := g.hd2 * spec.vf / FractionScale
	cy := g.vc
	if spec.lift {
		cy = g.vc * spec.vf / FractionScale
	}
	irx := rx * a / 50000
	iry := ry * a / 50000

	n := spec.points
	step := 360 / float64(n)
	pts := make([]Point, 0, 2*n)
	for i := range n {
		outer := spec.startDeg + rot + float64(i)*step
		sin, cos := math.Sincos(degToRad(outer))
		pts = append(pts, Pt(g.hc+rx*cos, cy+ry*sin))
		sin, cos = math.Sincos(degToRad(outer + step/2))
		pts = append(pts, Pt(g.hc+irx*cos, cy+iry*sin))
	}
	g.polygon(pts...)
}
