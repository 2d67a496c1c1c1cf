// Package dml resolves DrawingML shape geometry and colors into an
// abstract, backend-neutral description.
//
// # Overview
//
// Office documents describe shapes by reference: a preset geometry name
// with adjust values, or a custom path in its own coordinate space; fills
// and lines built from theme colors with luminance, tint and alpha
// modifiers; and indices into the theme's style matrix. dml turns those
// references into concrete values: a PathProgram of segments, resolved
// RGBA paints, stroke parameters and effects. It never draws pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/dml"
//
//	rs, err := dml.ResolveShape(dml.ShapeDescriptor{
//		Geometry: dml.PresetGeometry{Name: "roundRect"},
//		Fill:     dml.SolidFill{Color: dml.Scheme("accent1").WithLumMod(75000)},
//		Target:   dml.Rect{Width: 200, Height: 100},
//	}, dml.WithTheme(theme))
//
//	// Hand rs.PlacedPath() and rs.Fill to the rendering backend.
//
// # Colors
//
// A Color is a base value (sRGB, scheme slot, system, preset, HSL or
// scRGB) plus Modifiers. ResolveColor applies them in a fixed order:
// lumMod and lumOff in HSL space, then tint, then shade, then alpha.
// Unknown names resolve to opaque black. The only error is ErrNilTheme,
// returned when a scheme color is resolved without a theme.
//
// # Geometry
//
// Preset shapes are generated at the frame size, so their declared space
// is the frame. Custom paths keep their declared space (21600×21600 when
// none is given); callers scale explicitly with PathProgram.ScaleTo or
// PlaceInRect. Arcs are kept as ArcTo segments and only converted on
// request: PathProgram.Cubics for curve-only backends, Flatten for
// polylines, SVGPathData for SVG output.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Positive angles turn clockwise, as in DrawingML
//
// # Concurrency
//
// Every function is pure over its inputs. A Theme may be shared by any
// number of goroutines as long as nobody mutates it; ResolveShapes uses
// that to resolve a batch on a worker pool.
package dml

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
