package dml

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Adjustments are named adjust values (avLst guides) of a preset shape
// instance, in the shape's own units (mostly 1/100000 of the short side,
// angles in 1/60000 degree). Missing names take the shape's default.
type Adjustments map[string]int64

// ParseAdjustments converts avLst guide formulas to Adjustments. Both
// "val 50000" and a bare integer are accepted; any other formula is
// dropped so the shape default applies.
func ParseAdjustments(guides map[string]string) Adjustments {
	adj := make(Adjustments, len(guides))
	for name, fmla := range guides {
		v, ok := parseGuideValue(fmla)
		if !ok {
			Logger().Debug("dml: adjustment formula ignored", "name", name, "fmla", fmla)
			continue
		}
		adj[name] = v
	}
	return adj
}

func parseGuideValue(fmla string) (int64, bool) {
	fields := strings.Fields(fmla)
	switch {
	case len(fields) == 2 && fields[0] == "val":
		fmla = fields[1]
	case len(fields) == 1:
		fmla = fields[0]
	default:
		return 0, false
	}
	v, err := strconv.ParseInt(fmla, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AdjustDefault documents one adjust value of a shape.
type AdjustDefault struct {
	Name    string
	Default int64
}

// shapeDef is a registry entry: the markup name, the documented adjust
// defaults and the generator.
type shapeDef struct {
	name   string
	adjust []AdjustDefault
	gen    func(g *shapeGeom)
}

// ShapeType identifies a registered preset geometry.
type ShapeType int

// String returns the prstGeom name of the shape.
func (t ShapeType) String() string {
	if t < 0 || t >= shapeTypeCount {
		return "ShapeType(" + strconv.Itoa(int(t)) + ")"
	}
	return shapeDefs[t].name
}

// Defaults returns the documented adjust defaults of the shape.
func (t ShapeType) Defaults() []AdjustDefault {
	if t < 0 || t >= shapeTypeCount {
		return nil
	}
	out := make([]AdjustDefault, len(shapeDefs[t].adjust))
	copy(out, shapeDefs[t].adjust)
	return out
}

// Generate builds the shape's path for a w×h frame. The program's
// declared space is the frame itself.
func (t ShapeType) Generate(w, h float64, adj Adjustments) PathProgram {
	if t < 0 || t >= shapeTypeCount {
		return rectProgram(w, h)
	}
	w, h = sanitizeDim(w), sanitizeDim(h)
	g := newShapeGeom(w, h, adj, shapeDefs[t])
	shapeDefs[t].gen(g)
	return g.program(Size{Width: w, Height: h})
}

var shapeIndex = func() map[string]ShapeType {
	m := make(map[string]ShapeType, shapeTypeCount)
	for i := range shapeTypeCount {
		m[shapeDefs[i].name] = i
	}
	return m
}()

// ParseShapeType looks up a prstGeom name. Exact names match first, then
// case-insensitively.
func ParseShapeType(name string) (ShapeType, bool) {
	if t, ok := shapeIndex[name]; ok {
		return t, true
	}
	for n, t := range shapeIndex {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

// ShapeTypes returns every registered shape, ordered by name.
func ShapeTypes() []ShapeType {
	out := make([]ShapeType, 0, shapeTypeCount)
	for i := range shapeTypeCount {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Generate builds the named preset shape for a w×h frame. It reports
// false when the name is not registered; callers then fall back to a
// rectangle.
func Generate(name string, w, h float64, adj Adjustments) (PathProgram, bool) {
	t, ok := ParseShapeType(name)
	if !ok {
		return PathProgram{}, false
	}
	return t.Generate(w, h, adj), true
}

func rectProgram(w, h float64) PathProgram {
	w, h = sanitizeDim(w), sanitizeDim(h)
	b := newPathBuilder()
	b.polygon(Pt(0, 0), Pt(w, 0), Pt(w, h), Pt(0, h))
	return b.program(Size{Width: w, Height: h})
}

func sanitizeDim(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// shapeGeom carries the built-in guides of the DrawingML shape language
// (w, h, hc, vc, wd2, hd2, ss) and the adjust values for one generation.
type shapeGeom struct {
	*pathBuilder

	w, h     float64
	hc, vc   float64
	wd2, hd2 float64
	ss       float64
	adj      Adjustments
	def      shapeDef
}

func newShapeGeom(w, h float64, adj Adjustments, def shapeDef) *shapeGeom {
	return &shapeGeom{
		pathBuilder: newPathBuilder(),
		w:           w,
		h:           h,
		hc:          w / 2,
		vc:          h / 2,
		wd2:         w / 2,
		hd2:         h / 2,
		ss:          math.Min(w, h),
		adj:         adj,
		def:         def,
	}
}

// raw returns the adjust value by name, or its documented default.
func (g *shapeGeom) raw(name string) float64 {
	if v, ok := g.adj[name]; ok {
		return float64(v)
	}
	for _, d := range g.def.adjust {
		if d.Name == name {
			return float64(d.Default)
		}
	}
	return 0
}

// pin returns the adjust value clamped to [lo, hi].
func (g *shapeGeom) pin(name string, lo, hi float64) float64 {
	return pin(lo, g.raw(name), hi)
}

// maxAdj is the common "scale * dim / ss" limit guide. A zero short side
// yields 0.
func (g *shapeGeom) maxAdj(scale, dim float64) float64 {
	if g.ss == 0 {
		return 0
	}
	return scale * dim / g.ss
}

// ssFrac is ss * v / 100000.
func (g *shapeGeom) ssFrac(v float64) float64 {
	return g.ss * v / FractionScale
}

// ellipsePoint returns the point at a parametric angle (radians) on the
// ellipse inscribed in the frame, optionally shrunk by rx/ry.
func (g *shapeGeom) ellipsePoint(rx, ry, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: g.hc + rx*cos, Y: g.vc + ry*sin}
}

func pin(lo, v, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
