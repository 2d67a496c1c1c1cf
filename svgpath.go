package dml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SVGPathData returns the program as SVG path data in its declared space.
// Arcs are written in endpoint form; an arc of a full turn or more is
// split into pieces of at most a half turn because SVG cannot express
// coincident endpoints.
func (p PathProgram) SVGPathData() string {
	if p.IsEmpty() {
		return ""
	}

	sb := strings.Builder{}
	for _, seg := range p.Segments {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(s.Point.X), num(s.Point.Y))
		case LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(s.Point.X), num(s.Point.Y))
		case QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				num(s.Control.X), num(s.Control.Y), num(s.Point.X), num(s.Point.Y))
		case CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				num(s.Control1.X), num(s.Control1.Y), num(s.Control2.X), num(s.Control2.Y),
				num(s.Point.X), num(s.Point.Y))
		case ArcTo:
			n := 1
			if math.Abs(s.Sweep) >= 2*math.Pi {
				n = int(math.Ceil(math.Abs(s.Sweep)/math.Pi - 1e-9))
			}
			piece := s
			piece.Sweep = s.Sweep / float64(n)
			for i := range n {
				if i > 0 {
					sb.WriteByte(' ')
				}
				writeArc(&sb, piece)
				piece.Start += piece.Sweep
			}
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writeArc(sb *strings.Builder, a ArcTo) {
	end := a.EndPoint()
	fmt.Fprintf(sb, "A%s %s 0 %s %s %s %s",
		num(a.RX), num(a.RY), flag(a.LargeArc()), flag(a.SweepPositive()), num(end.X), num(end.Y))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// num formats v with at most 4 decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
