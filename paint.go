package dml

import (
	"fmt"
	"log/slog"
	"sort"

	icolor "github.com/gogpu/dml/internal/color"
)

// Paint is a resolved fill or stroke paint.
// This is a sealed interface: NoPaint, SolidPaint, GradientPaint and
// PatternPaint are the only implementations. A nil Paint means
// "unresolved", which is distinct from NoPaint.
type Paint interface {
	paintMarker()
}

// NoPaint is an explicit instruction to paint nothing.
type NoPaint struct{}

func (NoPaint) paintMarker() {}

// SolidPaint paints with one color.
type SolidPaint struct {
	Color RGBA
}

func (SolidPaint) paintMarker() {}

// ColorStop is a resolved gradient stop.
type ColorStop struct {
	Position float64
	Color    RGBA
}

// GradientPaint is a resolved gradient. Stops keep the declared order.
type GradientPaint struct {
	Kind     GradientKind
	Path     PathShape
	Angle    float64
	Scaled   bool
	FillRect [4]int64
	Stops    []ColorStop
}

func (GradientPaint) paintMarker() {}

// ColorAt samples the gradient at t in [0,1], interpolating in linear
// light. Stops are ordered by position on a private copy; values outside
// the stop range take the nearest edge color.
func (g GradientPaint) ColorAt(t float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if len(g.Stops) == 1 {
		return g.Stops[0].Color
	}

	sorted := make([]ColorStop, len(g.Stops))
	copy(sorted, g.Stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	if t <= sorted[0].Position {
		return sorted[0].Color
	}
	last := sorted[len(sorted)-1]
	if t >= last.Position {
		return last.Color
	}

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Position > t
	})
	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Position == s1.Position {
		return s1.Color
	}
	local := (t - s1.Position) / (s2.Position - s1.Position)
	rgb := icolor.MixLinear(s1.Color.rgb(), s2.Color.rgb(), local)
	return fromRGB(rgb, s1.Color.A+(s2.Color.A-s1.Color.A)*local)
}

// PatternPaint is a resolved two-color pattern.
type PatternPaint struct {
	Preset string
	Fg     RGBA
	Bg     RGBA
}

func (PatternPaint) paintMarker() {}

// StyleRef is a reference into the theme's format scheme (fillRef, lnRef,
// effectRef, fontRef). Index 0 means "no inherited style". Color, when
// set, replaces the placeholder color (phClr) inside the referenced style.
type StyleRef struct {
	Index int
	Color *Color
}

func (r *StyleRef) active() bool {
	return r != nil && r.Index != 0
}

func (r *StyleRef) placeholder() *Color {
	if r == nil {
		return nil
	}
	return r.Color
}

// ResolveFill resolves a declared fill. When fill is nil the style
// reference is consulted: index 0 yields NoPaint, any other index
// resolves the theme's fill style with the reference color standing in
// for phClr.
func ResolveFill(fill Fill, theme *Theme, ref *StyleRef) (Paint, error) {
	return resolveFillRef(fill, theme, ref, Logger())
}

func resolveFillRef(fill Fill, theme *Theme, ref *StyleRef, log *slog.Logger) (Paint, error) {
	if fill != nil {
		return resolveFill(fill, theme, ref.placeholder(), log)
	}
	if !ref.active() {
		return NoPaint{}, nil
	}
	if theme == nil {
		return nil, fmt.Errorf("fillRef %d: %w", ref.Index, ErrNilTheme)
	}
	style, ok := theme.Formats.fillStyle(ref.Index)
	if !ok {
		log.Debug("dml: fillRef index outside the format scheme", "idx", ref.Index)
		if ref.Color == nil {
			return NoPaint{}, nil
		}
		style = SolidFill{Color: Placeholder()}
	}
	return resolveFill(style, theme, ref.Color, log)
}

func resolveFill(fill Fill, theme *Theme, placeholder *Color, log *slog.Logger) (Paint, error) {
	switch f := fill.(type) {
	case NoFill:
		return NoPaint{}, nil
	case SolidFill:
		c, err := resolveColor(f.Color, theme, placeholder, log)
		if err != nil {
			return nil, err
		}
		return SolidPaint{Color: c}, nil
	case GradientFill:
		return resolveGradient(f.Gradient, theme, placeholder, log)
	case PatternFill:
		fg, err := resolveColor(f.Pattern.Fg, theme, placeholder, log)
		if err != nil {
			return nil, fmt.Errorf("pattern foreground: %w", err)
		}
		bg, err := resolveColor(f.Pattern.Bg, theme, placeholder, log)
		if err != nil {
			return nil, fmt.Errorf("pattern background: %w", err)
		}
		return PatternPaint{Preset: f.Pattern.Preset, Fg: fg, Bg: bg}, nil
	}
	return NoPaint{}, nil
}

func resolveGradient(g Gradient, theme *Theme, placeholder *Color, log *slog.Logger) (Paint, error) {
	stops := make([]ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		c, err := resolveColor(s.Color, theme, placeholder, log)
		if err != nil {
			return nil, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		stops[i] = ColorStop{Position: s.Position, Color: c}
	}
	return GradientPaint{
		Kind:     g.Kind,
		Path:     g.Path,
		Angle:    g.Angle,
		Scaled:   g.Scaled,
		FillRect: g.FillRect,
		Stops:    stops,
	}, nil
}
