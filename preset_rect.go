package dml

func genSnip1Rect(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	dx1 := g.ssFrac(a)
	x1 := g.w - dx1
	g.polygon(Pt(0, 0), Pt(x1, 0), Pt(g.w, dx1), Pt(g.w, g.h), Pt(0, g.h))
}

func genSnip2SameRect(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 50000)
	a2 := g.pin("adj2", 0, 50000)
	tx1 := g.ssFrac(a1)
	tx2 := g.w - tx1
	bx1 := g.ssFrac(a2)
	bx2 := g.w - bx1
	by1 := g.h - bx1
	g.polygon(
		Pt(tx1, 0), Pt(tx2, 0), Pt(g.w, tx1), Pt(g.w, by1),
		Pt(bx2, g.h), Pt(bx1, g.h), Pt(0, by1), Pt(0, tx1),
	)
}

func genRound1Rect(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	dx1 := g.ssFrac(a)

	g.moveTo(0, 0)
	g.lineTo(g.w-dx1, 0)
	g.arcToDeg(dx1, dx1, 270, 90)
	g.lineTo(g.w, g.h)
	g.lineTo(0, g.h)
	g.close()
}

func genRound2SameRect(g *shapeGeom) {
	a1 := g.pin("adj1", 0, 50000)
	a2 := g.pin("adj2", 0, 50000)
	tx1 := g.ssFrac(a1)
	bx1 := g.ssFrac(a2)

	g.moveTo(tx1, 0)
	g.lineTo(g.w-tx1, 0)
	g.arcToDeg(tx1, tx1, 270, 90)
	g.lineTo(g.w, g.h-bx1)
	g.arcToDeg(bx1, bx1, 0, 90)
	g.lineTo(bx1, g.h)
	g.arcToDeg(bx1, bx1, 90, 90)
	g.lineTo(0, tx1)
	g.arcToDeg(tx1, tx1, 180, 90)
	g.close()
}

// genPlaque cuts concave quarter circles out of every corner.
func genPlaque(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	x1 := g.ssFrac(a)

	g.moveTo(0, x1)
	g.arcToDeg(x1, x1, 90, -90)
	g.lineTo(g.w-x1, 0)
	g.arcToDeg(x1, x1, 180, -90)
	g.lineTo(g.w, g.h-x1)
	g.arcToDeg(x1, x1, 270, -90)
	g.lineTo(x1, g.h)
	g.arcToDeg(x1, x1, 0, -90)
	g.close()
}

// genCube emits the front, top and side faces as separate subpaths.
func genCube(g *shapeGeom) {
	a := g.pin("adj", 0, 100000)
	y1 := g.ssFrac(a)
	x4 := g.w - y1
	y4 := g.h - y1

	g.polygon(Pt(0, y1), Pt(x4, y1), Pt(x4, g.h), Pt(0, g.h))
	g.polygon(Pt(0, y1), Pt(y1, 0), Pt(g.w, 0), Pt(x4, y1))
	g.polygon(Pt(x4, y1), Pt(g.w, 0), Pt(g.w, y4), Pt(x4, g.h))
}

// genBevel emits the inner face followed by the four sloped facets.
func genBevel(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	x1 := g.ssFrac(a)
	x2, y2 := g.w-x1, g.h-x1

	g.polygon(Pt(x1, x1), Pt(x2, x1), Pt(x2, y2), Pt(x1, y2))
	g.polygon(Pt(0, 0), Pt(g.w, 0), Pt(x2, x1), Pt(x1, x1))
	g.polygon(Pt(g.w, 0), Pt(g.w, g.h), Pt(x2, y2), Pt(x2, x1))
	g.polygon(Pt(g.w, g.h), Pt(0, g.h), Pt(x1, y2), Pt(x2, y2))
	g.polygon(Pt(0, g.h), Pt(0, 0), Pt(x1, x1), Pt(x1, y2))
}

// genFrame winds the inner rectangle opposite to the outer one so the
// hole survives a nonzero fill.
func genFrame(g *shapeGeom) {
	a := g.pin("adj1", 0, 50000)
	x1 := g.ssFrac(a)
	x4, y4 := g.w-x1, g.h-x1

	g.polygon(Pt(0, 0), Pt(g.w, 0), Pt(g.w, g.h), Pt(0, g.h))
	g.polygon(Pt(x1, x1), Pt(x1, y4), Pt(x4, y4), Pt(x4, x1))
}

func genCorner(g *shapeGeom) {
	a1 := g.pin("adj1", 0, g.maxAdj(100000, g.h))
	a2 := g.pin("adj2", 0, g.maxAdj(100000, g.w))
	x1 := g.ssFrac(a2)
	y1 := g.h - g.ssFrac(a1)
	g.polygon(Pt(0, 0), Pt(x1, 0), Pt(x1, y1), Pt(g.w, y1), Pt(g.w, g.h), Pt(0, g.h))
}

func genDiagStripe(g *shapeGeom) {
	a := g.pin("adj", 0, 100000)
	x2 := g.w * a / FractionScale
	y2 := g.h * a / FractionScale
	g.polygon(Pt(0, y2), Pt(x2, 0), Pt(g.w, 0), Pt(0, g.h))
}

// genFoldedCorner emits the page outline and the folded flap.
func genFoldedCorner(g *shapeGeom) {
	a := g.pin("adj", 0, 50000)
	dy2 := g.ssFrac(a)
	dy1 := dy2 / 5
	x1 := g.w - dy2
	x2 := x1 + dy1
	y2 := g.h - dy2
	y1 := y2 + dy1

	g.polygon(Pt(0, 0), Pt(g.w, 0), Pt(g.w, y2), Pt(x1, g.h), Pt(0, g.h))
	g.polygon(Pt(x1, g.h), Pt(x2, y1), Pt(g.w, y2))
}
