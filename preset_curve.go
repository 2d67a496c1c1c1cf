package dml

import "math"

// genCan emits the body outline and the top ellipse as a second subpath.
func genCan(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(50000, g.h))
	y1 := g.ss * a / 200000
	y3 := g.h - y1

	g.moveTo(0, y1)
	g.arcToDeg(g.wd2, y1, 180, -180)
	g.lineTo(g.w, y3)
	g.arcToDeg(g.wd2, y1, 0, 180)
	g.close()

	g.moveTo(0, y1)
	g.arcToDeg(g.wd2, y1, 180, 180)
	g.arcToDeg(g.wd2, y1, 0, 180)
	g.close()
}

// genDonut winds the inner ellipse opposite to the outer one.
func genDonut(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	dr := g.ssFrac(a)
	iwd2 := g.wd2 - dr
	ihd2 := g.hd2 - dr

	genEllipse(g)

	g.moveTo(dr, g.vc)
	for _, st := range [4]float64{180, 90, 0, 270} {
		g.arcToDeg(iwd2, ihd2, st, -90)
	}
	g.close()
}

func genHeart(g *shapeGeom) {
	dx1 := g.w * 49 / 48
	dx2 := g.w * 10 / 48
	x1, x2 := g.hc-dx1, g.hc-dx2
	x3, x4 := g.hc+dx2, g.hc+dx1
	y1 := -g.h / 3
	hd4 := g.h / 4

	g.moveTo(g.hc, hd4)
	g.cubicTo(x3, y1, x4, hd4, g.hc, g.h)
	g.cubicTo(x1, hd4, x2, y1, g.hc, hd4)
	g.close()
}

// genMoon draws a crescent: the outer half ellipse on the left, then an
// inner half ellipse back to the start whose leftmost point sits adj of
// the short side in from the left edge.
func genMoon(g *shapeGeom) {
	a := g.pin("adj", 0, 87500)
	g0 := g.ssFrac(a)
	var g0w float64
	if g.ss > 0 {
		g0w = g0 * g.w / g.ss
	}

	g.moveTo(g.w, g.h)
	g.arcToDeg(g.w, g.hd2, 90, 180)
	g.arcToDeg(g.w-g0w, g.hd2, 270, -180)
	g.close()
}

func genTeardrop(g *shapeGeom) {
	a := g.pin("adj", 0, 200000)
	tw := math.Sqrt2 * g.wd2
	th := math.Sqrt2 * g.hd2
	sw := tw * a / FractionScale
	sh := th * a / FractionScale
	x1 := g.hc + sw*math.Cos(degToRad(45))
	y1 := g.vc - sh*math.Sin(degToRad(45))
	x2 := (g.hc + x1) / 2
	y2 := (g.vc + y1) / 2

	g.moveTo(0, g.vc)
	g.arcToDeg(g.wd2, g.hd2, 180, 90)
	g.quadTo(x2, 0, x1, y1)
	g.quadTo(g.w, y2, g.w, g.vc)
	g.arcToDeg(g.wd2, g.hd2, 0, 90)
	g.arcToDeg(g.wd2, g.hd2, 90, 90)
	g.close()
}

// arcAngles returns the start angle and positive sweep, in degrees, for
// the adj1/adj2 start and end angles of the arc family.
func (g *shapeGeom) arcAngles() (st, sw float64) {
	st = g.pin("adj1", 0, 21599999) / 60000
	en := g.pin("adj2", 0, 21599999) / 60000
	sw = en - st
	if sw <= 0 {
		sw += 360
	}
	return st, sw
}

func genArc(g *shapeGeom) {
	st, sw := g.arcAngles()
	p := g.ellipsePoint(g.wd2, g.hd2, degToRad(st))
	g.moveTo(p.X, p.Y)
	g.arcToDeg(g.wd2, g.hd2, st, sw)
}

func genPie(g *shapeGeom) {
	st, sw := g.arcAngles()
	p := g.ellipsePoint(g.wd2, g.hd2, degToRad(st))
	g.moveTo(p.X, p.Y)
	g.arcToDeg(g.wd2, g.hd2, st, sw)
	g.lineTo(g.hc, g.vc)
	g.close()
}

func genChord(g *shapeGeom) {
	st, sw := g.arcAngles()
	p := g.ellipsePoint(g.wd2, g.hd2, degToRad(st))
	g.moveTo(p.X, p.Y)
	g.arcToDeg(g.wd2, g.hd2, st, sw)
	g.close()
}

func genBlockArc(g *shapeGeom) {
	st, sw := g.arcAngles()
	en := st + sw
	a3 := g.pin("adj3", 0, 50000)
	dr := g.ssFrac(a3)
	iwd2 := g.wd2 - dr
	ihd2 := g.hd2 - dr

	p := g.ellipsePoint(g.wd2, g.hd2, degToRad(st))
	g.moveTo(p.X, p.Y)
	g.arcToDeg(g.wd2, g.hd2, st, sw)
	q := g.ellipsePoint(iwd2, ihd2, degToRad(en))
	g.lineTo(q.X, q.Y)
	g.arcToDeg(iwd2, ihd2, en, -sw)
	g.close()
}

// Brackets and braces are open paths.

func genLeftBracket(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(50000, g.h))
	y1 := g.ssFrac(a)

	g.moveTo(g.w, g.h)
	g.arcToDeg(g.w, y1, 90, 90)
	g.lineTo(0, y1)
	g.arcToDeg(g.w, y1, 180, 90)
}

func genRightBracket(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(50000, g.h))
	y1 := g.ssFrac(a)

	g.moveTo(0, 0)
	g.arcToDeg(g.w, y1, 270, 90)
	g.lineTo(g.w, g.h-y1)
	g.arcToDeg(g.w, y1, 0, 90)
}

// braceGuides returns the corner radius y1 and the tip position y3 shared
// by both braces.
func (g *shapeGeom) braceGuides() (y1, y3 float64) {
	a2 := g.pin("adj2", 0, 100000)
	q2 := math.Min(FractionScale-a2, a2)
	a1 := g.pin("adj1", 0, g.maxAdj(q2/2, g.h))
	return g.ssFrac(a1), g.h * a2 / FractionScale
}

func genLeftBrace(g *shapeGeom) {
	y1, y3 := g.braceGuides()

	g.moveTo(g.w, g.h)
	g.arcToDeg(g.wd2, y1, 90, 90)
	g.lineTo(g.hc, y3+y1)
	g.arcToDeg(g.wd2, y1, 0, -90)
	g.arcToDeg(g.wd2, y1, 90, -90)
	g.lineTo(g.hc, y1)
	g.arcToDeg(g.wd2, y1, 180, 90)
}

func genRightBrace(g *shapeGeom) {
	y1, y3 := g.braceGuides()

	g.moveTo(0, 0)
	g.arcToDeg(g.wd2, y1, 270, 90)
	g.lineTo(g.hc, y3-y1)
	g.arcToDeg(g.wd2, y1, 180, -90)
	g.arcToDeg(g.wd2, y1, 270, -90)
	g.lineTo(g.hc, g.h-y1)
	g.arcToDeg(g.wd2, y1, 0, 90)
}
