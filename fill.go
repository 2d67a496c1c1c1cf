package dml

// Fill describes how an area is painted, as declared in markup.
// This is a sealed interface: SolidFill, GradientFill, PatternFill and
// NoFill are the only implementations. A nil Fill means the markup
// declared nothing, so style references may supply one.
type Fill interface {
	isFill()
}

// SolidFill paints with a single color (solidFill).
type SolidFill struct {
	Color Color
}

func (SolidFill) isFill() {}

// GradientFill paints with a gradient (gradFill).
type GradientFill struct {
	Gradient Gradient
}

func (GradientFill) isFill() {}

// PatternFill paints with a two-color preset pattern (pattFill).
type PatternFill struct {
	Pattern Pattern
}

func (PatternFill) isFill() {}

// NoFill explicitly paints nothing (noFill).
type NoFill struct{}

func (NoFill) isFill() {}

// GradientKind selects between a linear and a path gradient.
type GradientKind int

const (
	// GradientLinear shades along a line at Angle (a:lin).
	GradientLinear GradientKind = iota
	// GradientPath shades outward from a focus following PathShape (a:path).
	GradientPath
)

// String returns "linear" or "path".
func (k GradientKind) String() string {
	if k == GradientPath {
		return "path"
	}
	return "linear"
}

// PathShape is the path attribute of a path gradient.
type PathShape int

const (
	PathCircle PathShape = iota
	PathRect
	PathShapeOutline
)

var pathShapeNames = [...]string{"circle", "rect", "shape"}

// String returns the path attribute value.
func (p PathShape) String() string {
	if p < 0 || int(p) >= len(pathShapeNames) {
		return "circle"
	}
	return pathShapeNames[p]
}

// ParsePathShape parses a path gradient shape; unknown values map to circle.
func ParsePathShape(s string) PathShape {
	for i, name := range pathShapeNames {
		if name == s {
			return PathShape(i)
		}
	}
	return PathCircle
}

// GradientStop is one gs element. Position is in [0,1].
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient is a gradient declaration. Stops are kept in source order;
// Position, not order, is authoritative.
type Gradient struct {
	Kind GradientKind
	// Path is the shape of a path gradient.
	Path PathShape
	// Angle is the linear gradient direction in degrees, clockwise from
	// the x axis. Passed through unmodified.
	Angle float64
	// Scaled reports whether the angle scales with the shape's aspect ratio.
	Scaled bool
	// FillRect is the focus rectangle of a path gradient as l, t, r, b
	// insets in 1/100000 of the shape size.
	FillRect [4]int64
	Stops    []GradientStop
}

// GradientStopPos converts a gs pos attribute (1/100000) to [0,1].
func GradientStopPos(pos int64) float64 {
	return float64(pos) / FractionScale
}

// GradientAngle converts a lin ang attribute (1/60000 degree) to degrees.
func GradientAngle(ang int64) float64 {
	return float64(ang) / 60000
}

// Pattern is a pattFill declaration. Preset is the prst key (e.g.
// "pct50", "dkDnDiag") passed through for the backend's tile table.
type Pattern struct {
	Preset string
	Fg     Color
	Bg     Color
}
