package dml

// Block arrows share two adjust values: adj1 is the shaft thickness as a
// fraction of the cross dimension, adj2 the head length as a fraction of
// the short side.

func genRightArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(100000, g.w))
	x1 := g.w - g.ssFrac(a2)
	dy1 := g.h * a1 / 200000
	y1, y2 := g.vc-dy1, g.vc+dy1
	g.polygon(
		Pt(0, y1), Pt(x1, y1), Pt(x1, 0), Pt(g.w, g.vc),
		Pt(x1, g.h), Pt(x1, y2), Pt(0, y2),
	)
}

func genLeftArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(100000, g.w))
	x2 := g.ssFrac(a2)
	dy1 := g.h * a1 / 200000
	y1, y2 := g.vc-dy1, g.vc+dy1
	g.polygon(
		Pt(0, g.vc), Pt(x2, 0), Pt(x2, y1), Pt(g.w, y1),
		Pt(g.w, y2), Pt(x2, y2), Pt(x2, g.h),
	)
}

func genUpArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(100000, g.h))
	y2 := g.ssFrac(a2)
	dx1 := g.w * a1 / 200000
	x1, x2 := g.hc-dx1, g.hc+dx1
	g.polygon(
		Pt(0, y2), Pt(g.hc, 0), Pt(g.w, y2), Pt(x2, y2),
		Pt(x2, g.h), Pt(x1, g.h), Pt(x1, y2),
	)
}

func genDownArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(100000, g.h))
	y1 := g.h - g.ssFrac(a2)
	dx1 := g.w * a1 / 200000
	x1, x2 := g.hc-dx1, g.hc+dx1
	g.polygon(
		Pt(x1, 0), Pt(x2, 0), Pt(x2, y1), Pt(g.w, y1),
		Pt(g.hc, g.h), Pt(0, y1), Pt(x1, y1),
	)
}

func genLeftRightArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(50000, g.w))
	x2 := g.ssFrac(a2)
	x3 := g.w - x2
	dy := g.h * a1 / 200000
	y1, y2 := g.vc-dy, g.vc+dy
	g.polygon(
		Pt(0, g.vc), Pt(x2, 0), Pt(x2, y1), Pt(x3, y1), Pt(x3, 0),
		Pt(g.w, g.vc), Pt(x3, g.h), Pt(x3, y2), Pt(x2, y2), Pt(x2, g.h),
	)
}

func genUpDownArrow(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 100000)
	a2 := g.pin("adj2", 0, g.maxAdj(50000, g.h))
	y2 := g.ssFrac(a2)
	y3 := g.h - y2
	dx1 := g.w * a1 / 200000
	x1, x2 := g.hc-dx1, g.hc+dx1
	g.polygon(
		Pt(0, y2), Pt(g.hc, 0), Pt(g.w, y2), Pt(x2, y2), Pt(x2, y3),
		Pt(g.w, y3), Pt(g.hc, g.h), Pt(0, y3), Pt(x1, y3), Pt(x1, y2),
	)
}

func genChevron(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(100000, g.w))
	x1 := g.ssFrac(a)
	x2 := g.w - x1
	g.polygon(Pt(0, 0), Pt(x2, 0), Pt(g.w, g.vc), Pt(x2, g.h), Pt(0, g.h), Pt(x1, g.vc))
}

func genHomePlate(g *shapeGeom) {
	a := g.pin("adj", 0, g.maxAdj(100000, g.w))
	x1 := g.w - g.ssFrac(a)
	g.polygon(Pt(0, 0), Pt(x1, 0), Pt(g.w, g.vc), Pt(x1, g.h), Pt(0, g.h))
}
