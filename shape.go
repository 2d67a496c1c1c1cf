package dml

import (
	"fmt"
	"log/slog"
)

// Geometry is a shape's declared outline.
// This is a sealed interface: PresetGeometry and CustomGeometry are the
// only implementations. A nil Geometry is treated as a rectangle.
type Geometry interface {
	isGeometry()
}

// PresetGeometry is a prstGeom reference.
type PresetGeometry struct {
	Name        string
	Adjustments Adjustments
}

func (PresetGeometry) isGeometry() {}

// CustomGeometry is a custGeom path with its declared coordinate space.
type CustomGeometry struct {
	Commands []PathCommand
	Space    Size
}

func (CustomGeometry) isGeometry() {}

// ShapeStyle holds a shape's references into the theme's style matrix.
type ShapeStyle struct {
	FillRef   StyleRef
	LineRef   StyleRef
	EffectRef StyleRef
	FontRef   StyleRef
}

// ShapeDescriptor is everything a document parser extracts for one shape.
// Fill, Stroke and Effects are the direct declarations; nil means "not
// declared" and defers to Style.
type ShapeDescriptor struct {
	Geometry Geometry
	Fill     Fill
	Stroke   *Stroke
	Effects  []Effect
	Style    *ShapeStyle
	Target   Rect
}

// ResolvedShape is the backend-ready description of one shape.
//
// Path stays in its declared space; ScaleX and ScaleY map it onto Target.
// FontColor is set when the style carries a fontRef color.
type ResolvedShape struct {
	Path      PathProgram
	ScaleX    float64
	ScaleY    float64
	Target    Rect
	Fill      Paint
	Stroke    ResolvedStroke
	Effects   []ResolvedEffect
	FontColor *RGBA
}

// Placement returns the matrix mapping Path onto Target.
func (r ResolvedShape) Placement() Matrix {
	return PlaceInRect(r.Path.Space, r.Target)
}

// PlacedPath returns Path in target coordinates.
func (r ResolvedShape) PlacedPath() PathProgram {
	return r.Path.Transform(r.Placement())
}

// ResolveShape resolves geometry, paint and effects for one shape.
//
// Malformed data degrades instead of failing: an unknown preset becomes a
// rectangle and unknown color names become black. Errors are returned
// only for contract violations.
func ResolveShape(desc ShapeDescriptor, opts ...Option) (ResolvedShape, error) {
	o := applyOptions(opts)
	return resolveShape(desc, o)
}

func resolveShape(desc ShapeDescriptor, o options) (ResolvedShape, error) {
	path := resolveGeometry(desc.Geometry, desc.Target, o.logger)
	sx, sy := path.ScaleTo(desc.Target)

	var style ShapeStyle
	if desc.Style != nil {
		style = *desc.Style
	}

	fill, err := resolveFillRef(desc.Fill, o.theme, &style.FillRef, o.logger)
	if err != nil {
		return ResolvedShape{}, fmt.Errorf("fill: %w", err)
	}
	stroke, err := resolveStroke(desc.Stroke, o.theme, &style.LineRef, o.logger)
	if err != nil {
		return ResolvedShape{}, fmt.Errorf("stroke: %w", err)
	}
	effects, err := resolveEffects(desc.Effects, o.theme, &style.EffectRef, o.logger)
	if err != nil {
		return ResolvedShape{}, fmt.Errorf("effects: %w", err)
	}

	var font *RGBA
	if style.FontRef.Color != nil {
		c, err := resolveColor(*style.FontRef.Color, o.theme, nil, o.logger)
		if err != nil {
			return ResolvedShape{}, fmt.Errorf("fontRef: %w", err)
		}
		font = &c
	}

	return ResolvedShape{
		Path:      path,
		ScaleX:    sx,
		ScaleY:    sy,
		Target:    desc.Target,
		Fill:      fill,
		Stroke:    stroke,
		Effects:   effects,
		FontColor: font,
	}, nil
}

// resolveGeometry builds the path. Presets are generated at the target
// size so their declared space equals the target; custom paths keep their
// own space.
func resolveGeometry(g Geometry, target Rect, log *slog.Logger) PathProgram {
	switch geom := g.(type) {
	case PresetGeometry:
		if p, ok := Generate(geom.Name, target.Width, target.Height, geom.Adjustments); ok {
			return p
		}
		log.Debug("dml: unknown preset geometry, using rect", "name", geom.Name)
	case CustomGeometry:
		return Interpret(geom.Commands, geom.Space)
	case nil:
	default:
		log.Warn("dml: unsupported geometry, using rect", "type", fmt.Sprintf("%T", g))
	}
	return rectProgram(target.Width, target.Height)
}
