package dml

import (
	"fmt"
	"log/slog"
	"math"
)

// Effect is an entry of an effectLst.
// This is a sealed interface: OuterShadow, InnerShadow, Glow and SoftEdge
// are the only implementations.
type Effect interface {
	isEffect()
}

// OuterShadow is an outerShdw effect. Lengths are in EMU; Direction is in
// 1/60000 degree, clockwise from the positive x axis.
type OuterShadow struct {
	BlurRadius      int64
	Distance        int64
	Direction       int64
	Color           Color
	RotateWithShape bool
}

func (OuterShadow) isEffect() {}

// InnerShadow is an innerShdw effect.
type InnerShadow struct {
	BlurRadius int64
	Distance   int64
	Direction  int64
	Color      Color
}

func (InnerShadow) isEffect() {}

// Glow is a glow effect around the shape outline.
type Glow struct {
	Radius int64
	Color  Color
}

func (Glow) isEffect() {}

// SoftEdge feathers the shape edge by Radius EMU.
type SoftEdge struct {
	Radius int64
}

func (SoftEdge) isEffect() {}

// ResolvedEffect is a resolved effect.
// This is a sealed interface: ShadowEffect, GlowEffect and
// SoftEdgeEffect are the only implementations.
type ResolvedEffect interface {
	resolvedEffect()
}

// ShadowEffect is a resolved shadow. OffsetX and OffsetY are the EMU
// displacement derived from distance and direction.
type ShadowEffect struct {
	Inner           bool
	BlurRadius      float64
	OffsetX         float64
	OffsetY         float64
	Color           RGBA
	RotateWithShape bool
}

func (ShadowEffect) resolvedEffect() {}

// GlowEffect is a resolved glow.
type GlowEffect struct {
	Radius float64
	Color  RGBA
}

func (GlowEffect) resolvedEffect() {}

// SoftEdgeEffect is a resolved soft edge.
type SoftEdgeEffect struct {
	Radius float64
}

func (SoftEdgeEffect) resolvedEffect() {}

// ResolveEffects resolves a shape's effect list. A nil list inherits the
// effectRef style (index 0 inherits nothing); a non-nil empty list
// explicitly disables effects.
func ResolveEffects(effects []Effect, theme *Theme, ref *StyleRef) ([]ResolvedEffect, error) {
	return resolveEffects(effects, theme, ref, Logger())
}

func resolveEffects(effects []Effect, theme *Theme, ref *StyleRef, log *slog.Logger) ([]ResolvedEffect, error) {
	if effects == nil && ref.active() {
		if theme == nil {
			return nil, fmt.Errorf("effectRef %d: %w", ref.Index, ErrNilTheme)
		}
		style, ok := theme.Formats.effectStyle(ref.Index)
		if !ok {
			log.Debug("dml: effectRef index outside the format scheme", "idx", ref.Index)
		}
		effects = style
	}

	out := make([]ResolvedEffect, 0, len(effects))
	for i, e := range effects {
		r, err := resolveEffect(e, theme, ref.placeholder(), log)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func resolveEffect(e Effect, theme *Theme, placeholder *Color, log *slog.Logger) (ResolvedEffect, error) {
	switch eff := e.(type) {
	case OuterShadow:
		c, err := resolveColor(eff.Color, theme, placeholder, log)
		if err != nil {
			return nil, err
		}
		dx, dy := polarOffset(eff.Distance, eff.Direction)
		return ShadowEffect{
			BlurRadius:      nonNegative(eff.BlurRadius),
			OffsetX:         dx,
			OffsetY:         dy,
			Color:           c,
			RotateWithShape: eff.RotateWithShape,
		}, nil
	case InnerShadow:
		c, err := resolveColor(eff.Color, theme, placeholder, log)
		if err != nil {
			return nil, err
		}
		dx, dy := polarOffset(eff.Distance, eff.Direction)
		return ShadowEffect{
			Inner:      true,
			BlurRadius: nonNegative(eff.BlurRadius),
			OffsetX:    dx,
			OffsetY:    dy,
			Color:      c,
		}, nil
	case Glow:
		c, err := resolveColor(eff.Color, theme, placeholder, log)
		if err != nil {
			return nil, err
		}
		return GlowEffect{Radius: nonNegative(eff.Radius), Color: c}, nil
	case SoftEdge:
		return SoftEdgeEffect{Radius: nonNegative(eff.Radius)}, nil
	}
	return nil, nil
}

// polarOffset converts an EMU distance and a 1/60000 degree direction to
// an x/y displacement in y-down coordinates.
func polarOffset(dist, dir int64) (dx, dy float64) {
	sin, cos := math.Sincos(ooxmlAngle(float64(dir)))
	d := nonNegative(dist)
	return d * cos, d * sin
}

func nonNegative(v int64) float64 {
	if v < 0 {
		return 0
	}
	return float64(v)
}
