package dml

import (
	"fmt"
	"log/slog"
	"strings"
)

// EMUPerPoint is the number of English Metric Units in one point.
const EMUPerPoint = 12700

// DefaultLineWidth is the width, in EMU, of a line that declares none
// (0.75pt).
const DefaultLineWidth = 9525

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapFlat ends the line exactly at its endpoint.
	CapFlat LineCap = iota
	// CapRound adds a half circle.
	CapRound
	// CapSquare adds a half square.
	CapSquare
)

// ParseLineCap parses the ln cap attribute ("flat", "rnd", "sq").
func ParseLineCap(s string) LineCap {
	switch s {
	case "rnd":
		return CapRound
	case "sq":
		return CapSquare
	}
	return CapFlat
}

// LineJoin specifies the shape of line joins. The zero value is round,
// the join Office draws when the markup declares none.
type LineJoin int

const (
	JoinRound LineJoin = iota
	JoinMiter
	JoinBevel
)

// ParseLineJoin parses the join element name ("round", "miter", "bevel").
func ParseLineJoin(s string) LineJoin {
	switch s {
	case "miter":
		return JoinMiter
	case "bevel":
		return JoinBevel
	}
	return JoinRound
}

// CompoundLine is the ln cmpd attribute.
type CompoundLine int

const (
	CompoundSingle CompoundLine = iota
	CompoundDouble
	CompoundThickThin
	CompoundThinThick
	CompoundTriple
)

// ParseCompoundLine parses "sng", "dbl", "thickThin", "thinThick" or "tri".
func ParseCompoundLine(s string) CompoundLine {
	switch s {
	case "dbl":
		return CompoundDouble
	case "thickThin":
		return CompoundThickThin
	case "thinThick":
		return CompoundThinThick
	case "tri":
		return CompoundTriple
	}
	return CompoundSingle
}

// LineEndType is the decoration drawn at a line end.
type LineEndType int

const (
	LineEndNone LineEndType = iota
	LineEndTriangle
	LineEndStealth
	LineEndDiamond
	LineEndOval
	LineEndArrow
)

// ParseLineEndType parses a headEnd/tailEnd type attribute.
func ParseLineEndType(s string) LineEndType {
	switch strings.ToLower(s) {
	case "triangle":
		return LineEndTriangle
	case "stealth":
		return LineEndStealth
	case "diamond":
		return LineEndDiamond
	case "oval":
		return LineEndOval
	case "arrow":
		return LineEndArrow
	}
	return LineEndNone
}

// LineEndSize is the w or len attribute of a line end. The zero value is
// medium.
type LineEndSize int

const (
	SizeMedium LineEndSize = iota
	SizeSmall
	SizeLarge
)

// ParseLineEndSize parses "sm", "med" or "lg".
func ParseLineEndSize(s string) LineEndSize {
	switch s {
	case "sm":
		return SizeSmall
	case "lg":
		return SizeLarge
	}
	return SizeMedium
}

// factor is the size as a multiple of the line width.
func (s LineEndSize) factor() float64 {
	switch s {
	case SizeSmall:
		return 2
	case SizeLarge:
		return 5
	}
	return 3
}

// LineEnd is a headEnd or tailEnd declaration.
type LineEnd struct {
	Type   LineEndType
	Width  LineEndSize
	Length LineEndSize
}

// Stroke is an ln declaration.
type Stroke struct {
	// Fill paints the line. nil inherits the lnRef style's paint.
	Fill Fill
	// Width is the line width in EMU. 0 inherits the style width, or
	// DefaultLineWidth without a style.
	Width int64
	// Dash is the preset dash. CustomDash, when non-empty, wins.
	Dash       PresetDash
	CustomDash []DashStop
	Cap        LineCap
	Join       LineJoin
	Compound   CompoundLine
	Head       *LineEnd
	Tail       *LineEnd
}

// WithWidth returns a copy of the Stroke with the given width in EMU.
func (s Stroke) WithWidth(w int64) Stroke {
	s.Width = w
	return s
}

// WithFill returns a copy of the Stroke with the given fill.
func (s Stroke) WithFill(f Fill) Stroke {
	s.Fill = f
	return s
}

// WithDash returns a copy of the Stroke with a preset dash.
func (s Stroke) WithDash(d PresetDash) Stroke {
	s.Dash = d
	s.CustomDash = nil
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

// ResolvedLineEnd is a line end with its size in EMU.
type ResolvedLineEnd struct {
	Type   LineEndType
	Width  float64
	Length float64
}

// ResolvedStroke is a stroke ready for a backend. Width and dash lengths
// are in EMU.
type ResolvedStroke struct {
	Paint    Paint
	Width    float64
	Dash     *Dash
	Cap      LineCap
	Join     LineJoin
	Compound CompoundLine
	Head     *ResolvedLineEnd
	Tail     *ResolvedLineEnd
}

// IsVisible reports whether the stroke paints anything.
func (s ResolvedStroke) IsVisible() bool {
	if s.Paint == nil {
		return false
	}
	_, none := s.Paint.(NoPaint)
	return !none && s.Width > 0
}

// ResolveStroke resolves a declared line. A nil stroke inherits the lnRef
// style entirely (index 0 yields an invisible NoPaint stroke). A declared
// stroke is authoritative except that a nil Fill or zero Width falls back
// to the referenced style.
func ResolveStroke(stroke *Stroke, theme *Theme, ref *StyleRef) (ResolvedStroke, error) {
	return resolveStroke(stroke, theme, ref, Logger())
}

func resolveStroke(stroke *Stroke, theme *Theme, ref *StyleRef, log *slog.Logger) (ResolvedStroke, error) {
	var style Stroke
	hasStyle := false
	if ref.active() {
		if theme == nil {
			return ResolvedStroke{}, fmt.Errorf("lnRef %d: %w", ref.Index, ErrNilTheme)
		}
		style, hasStyle = theme.Formats.lineStyle(ref.Index)
		if !hasStyle {
			log.Debug("dml: lnRef index outside the format scheme", "idx", ref.Index)
			if ref.Color != nil {
				style = Stroke{Fill: SolidFill{Color: Placeholder()}}
				hasStyle = true
			}
		}
	}

	var s Stroke
	switch {
	case stroke != nil:
		s = *stroke
		if s.Fill == nil && hasStyle {
			s.Fill = style.Fill
		}
		if s.Width == 0 && hasStyle {
			s.Width = style.Width
		}
	case hasStyle:
		s = style
	default:
		return ResolvedStroke{Paint: NoPaint{}}, nil
	}

	var paint Paint = NoPaint{}
	if s.Fill != nil {
		p, err := resolveFill(s.Fill, theme, ref.placeholder(), log)
		if err != nil {
			return ResolvedStroke{}, fmt.Errorf("line fill: %w", err)
		}
		paint = p
	}

	width := float64(s.Width)
	if s.Width <= 0 {
		width = DefaultLineWidth
	}

	unit := s.Dash.unitDash()
	if len(s.CustomDash) > 0 {
		unit = customUnitDash(s.CustomDash)
	}

	return ResolvedStroke{
		Paint:    paint,
		Width:    width,
		Dash:     unit.Scale(width),
		Cap:      s.Cap,
		Join:     s.Join,
		Compound: s.Compound,
		Head:     resolveLineEnd(s.Head, width),
		Tail:     resolveLineEnd(s.Tail, width),
	}, nil
}

func resolveLineEnd(e *LineEnd, width float64) *ResolvedLineEnd {
	if e == nil || e.Type == LineEndNone {
		return nil
	}
	return &ResolvedLineEnd{
		Type:   e.Type,
		Width:  e.Width.factor() * width,
		Length: e.Length.factor() * width,
	}
}
