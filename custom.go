package dml

import (
	"strconv"
	"strings"
)

// Coord is a path coordinate exactly as written in markup: either an
// integer literal or the name of a shape guide. Guide references are not
// evaluated at this layer and count as 0.
type Coord string

// Lit returns a literal coordinate.
func Lit(v int64) Coord {
	return Coord(strconv.FormatInt(v, 10))
}

// Value returns the numeric value of a literal, or 0 for anything else.
func (c Coord) Value() float64 {
	v, err := strconv.ParseInt(strings.TrimSpace(string(c)), 10, 64)
	if err != nil {
		return 0
	}
	return float64(v)
}

// IsLiteral reports whether c is a numeric literal.
func (c Coord) IsLiteral() bool {
	_, err := strconv.ParseInt(strings.TrimSpace(string(c)), 10, 64)
	return err == nil
}

// PathPoint is a pt element.
type PathPoint struct {
	X, Y Coord
}

// P returns a literal PathPoint.
func P(x, y int64) PathPoint {
	return PathPoint{X: Lit(x), Y: Lit(y)}
}

func (p PathPoint) point() Point {
	return Point{X: p.X.Value(), Y: p.Y.Value()}
}

// PathCommand is one command of a custom geometry path.
// This is a sealed interface: MoveToCmd, LineToCmd, CubicBezToCmd,
// QuadBezToCmd, ArcToCmd and CloseCmd are the only implementations.
type PathCommand interface {
	isPathCommand()
}

// MoveToCmd is a moveTo command.
type MoveToCmd struct {
	Pt PathPoint
}

func (MoveToCmd) isPathCommand() {}

// LineToCmd is an lnTo command.
type LineToCmd struct {
	Pt PathPoint
}

func (LineToCmd) isPathCommand() {}

// CubicBezToCmd is a cubicBezTo command: two control points and an end.
type CubicBezToCmd struct {
	C1, C2, Pt PathPoint
}

func (CubicBezToCmd) isPathCommand() {}

// QuadBezToCmd is a quadBezTo command: one control point and an end.
type QuadBezToCmd struct {
	C1, Pt PathPoint
}

func (QuadBezToCmd) isPathCommand() {}

// ArcToCmd is an arcTo command. WR and HR are the ellipse radii; StAng and
// SwAng are in 1/60000 degree.
type ArcToCmd struct {
	WR, HR       Coord
	StAng, SwAng Coord
}

func (ArcToCmd) isPathCommand() {}

// CloseCmd is a close command.
type CloseCmd struct{}

func (CloseCmd) isPathCommand() {}

// Interpret executes custom geometry path commands and returns the
// resulting program in the declared space. A zero space dimension takes
// the 21600 default.
//
// Each moveTo starts an independent subpath. An arcTo begins at the pen:
// its center is derived from the pen and the start angle, and it is
// emitted verbatim as an ArcTo segment. Arcs with non-positive radii are
// skipped and leave the pen where it was.
func Interpret(cmds []PathCommand, space Size) PathProgram {
	if !(space.Width > 0) {
		space.Width = DefaultSpace.Width
	}
	if !(space.Height > 0) {
		space.Height = DefaultSpace.Height
	}

	b := newPathBuilder()
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveToCmd:
			pt := c.Pt.point()
			b.moveTo(pt.X, pt.Y)
		case LineToCmd:
			pt := c.Pt.point()
			b.lineTo(pt.X, pt.Y)
		case CubicBezToCmd:
			c1, c2, pt := c.C1.point(), c.C2.point(), c.Pt.point()
			b.cubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case QuadBezToCmd:
			c1, pt := c.C1.point(), c.Pt.point()
			b.quadTo(c1.X, c1.Y, pt.X, pt.Y)
		case ArcToCmd:
			wR, hR := c.WR.Value(), c.HR.Value()
			if !b.arcTo(wR, hR, ooxmlAngle(c.StAng.Value()), ooxmlAngle(c.SwAng.Value())) {
				Logger().Debug("dml: degenerate arcTo skipped", "wR", c.WR, "hR", c.HR)
			}
		case CloseCmd:
			b.close()
		}
	}
	return b.program(space)
}
