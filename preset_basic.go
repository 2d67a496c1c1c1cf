package dml

import "math"

func genRect(g *shapeGeom) {
	g.polygon(Pt(0, 0), Pt(g.w, 0), Pt(g.w, g.h), Pt(0, g.h))
}

func genRoundRect(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	x1 := g.ssFrac(a)

	g.moveTo(0, x1)
	g.arcToDeg(x1, x1, 180, 90)
	g.lineTo(g.w-x1, 0)
	g.arcToDeg(x1, x1, 270, 90)
	g.lineTo(g.w, g.h-x1)
	g.arcToDeg(x1, x1, 0, 90)
	g.lineTo(x1, g.h)
	g.arcToDeg(x1, x1, 90, 90)
	g.close()
}

func genEllipse(g *shapeGeom) {
	g.moveTo(0, g.vc)
	for _, st := range [4]float64{180, 270, 0, 90} {
		g.arcToDeg(g.wd2, g.hd2, st, 90)
	}
	g.close()
}

func genTriangle(g *shapeGeom) {
	a := g.pin("adj", 0, 100000)
	x1 := g.w * a / FractionScale
	g.polygon(Pt(0, g.h), Pt(x1, 0), Pt(g.w, g.h))
}

func genRtTriangle(g *shapeGeom) {
	g.polygon(Pt(0, g.h), Pt(0, 0), Pt(g.w, g.h))
}

func genDiamond(g *shapeGeom) {
	g.polygon(Pt(0, g.vc), Pt(g.hc, 0), Pt(g.w, g.vc), Pt(g.hc, g.h))
}

func genParallelogram(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(100000, g.w))
	x2 := g.ssFrac(a)
	g.polygon(Pt(0, g.h), Pt(x2, 0), Pt(g.w, 0), Pt(g.w-x2, g.h))
}

func genTrapezoid(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(50000, g.w))
	x2 := g.ssFrac(a)
	g.polygon(Pt(0, g.h), Pt(x2, 0), Pt(g.w-x2, 0), Pt(g.w, g.h))
}

// regularPolygon places n vertices on an ellipse stretched by hf/vf
// (1/100000 units). The first vertex sits at startDeg; with lift the
// center moves down by the vertical stretch so the top vertex touches
// the frame.
func (g *shapeGeom) regularPolygon(n int, hf, vf, startDeg float64, lift bool) {
	rx := g.wd2 * hf / FractionScale
	ry := g.hd2 * vf / FractionScale
	cy := g.vc
	if lift {
		cy = g.vc * vf / FractionScale
	}
	pts := make([]Point, n)
	step := 360 / float64(n)
	for i := range pts {
		sin, cos := math.Sincos(degToRad(startDeg + float64(i)*step))
		pts[i] = Pt(g.hc+rx*cos, cy+ry*sin)
	}
	g.polygon(pts...)
}

func genPentagon(g *shapeGeom) {
	g.regularPolygon(5, g.raw("hf"), g.raw("vf"), -90, true)
}

func genHexagon(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(50000, g.w))
	shd2 := g.hd2 * g.raw("vf") / FractionScale
	x1 := g.ssFrac(a)
	x2 := g.w - x1
	dy1 := shd2 * math.Sin(degToRad(60))
	y1 := g.vc - dy1
	y2 := g.vc + dy1
	g.polygon(Pt(0, g.vc), Pt(x1, y1), Pt(x2, y1), Pt(g.w, g.vc), Pt(x2, y2), Pt(x1, y2))
}

func genHeptagon(g *shapeGeom) {
	g.regularPolygon(7, g.raw("hf"), g.raw("vf"), -90, true)
}

func genOctagon(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	x1 := g.ssFrac(a)
	x2, y2 := g.w-x1, g.h-x1
	g.polygon(
		Pt(0, x1), Pt(x1, 0), Pt(x2, 0), Pt(g.w, x1),
		Pt(g.w, y2), Pt(x2, g.h), Pt(x1, g.h), Pt(0, y2),
	)
}

func genDecagon(g *shapeGeom) {
	g.regularPolygon(10, FractionScale, g.raw("vf"), 180, false)
}

func genDodecagon(g *shapeGeom) {
	fx := func(v float64) float64 { return g.w * v / 21600 }
	fy := func(v float64) float64 { return g.h * v / 21600 }
	x1, x2, x3, x4 := fx(2894), fx(7906), fx(13694), fx(18706)
	y1, y2, y3, y4 := fy(2894), fy(7906), fy(13694), fy(18706)
	g.polygon(
		Pt(0, y2), Pt(x1, y1), Pt(x2, 0), Pt(x3, 0),
		Pt(x4, y1), Pt(g.w, y2), Pt(g.w, y3), Pt(x4, y4),
		Pt(x3, g.h), Pt(x2, g.h), Pt(x1, y4), Pt(0, y3),
	)
}

func genPlus(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	x1 := g.ssFrac(a)
	x2, y2 := g.w-x1, g.h-x1
	g.polygon(
		Pt(0, x1), Pt(x1, x1), Pt(x1, 0), Pt(x2, 0),
		Pt(x2, x1), Pt(g.w, x1), Pt(g.w, y2), Pt(x2, y2),
		Pt(x2, g.h), Pt(x1, g.h), Pt(x1, y2), Pt(0, y2),
	)
}

func genLine(g *shapeGeom) {
	g.moveTo(0, 0)
	g.lineTo(g.w, g.h)
}

func genFlowChartTerminator(g *shapeGeom) {
	x1 := g.w * 3475 / 21600
	x2 := g.w * 18125 / 21600

	g.moveTo(x1, 0)
	g.lineTo(x2, 0)
	g.arcToDeg(x1, g.hd2, 270, 180)
	g.lineTo(x1, g.h)
	g.arcToDeg(x1, g.hd2, 90, 180)
	g.close()
}
