package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/dml"
)

var (
	galleryOutput  string
	galleryColumns int
	galleryCell    float64
	galleryWorkers int
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render every preset shape into one SVG, themed with style references",
	Args:  cobra.NoArgs,
	RunE:  runGallery,
}

func init() {
	galleryCmd.Flags().StringVarP(&galleryOutput, "output", "o", "gallery.svg", "Output file (- for stdout)")
	galleryCmd.Flags().IntVar(&galleryColumns, "columns", 8, "Shapes per row")
	galleryCmd.Flags().Float64Var(&galleryCell, "cell", 120, "Cell size")
	galleryCmd.Flags().IntVar(&galleryWorkers, "workers", 0, "Resolution workers (0 = GOMAXPROCS)")
}

func runGallery(cmd *cobra.Command, args []string) error {
	if galleryColumns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", galleryColumns)
	}

	types := dml.ShapeTypes()
	pad := galleryCell / 8
	descs := make([]dml.ShapeDescriptor, len(types))
	for i, t := range types {
		col, row := i%galleryColumns, i/galleryColumns
		accent := dml.Scheme(fmt.Sprintf("accent%d", i%6+1))
		descs[i] = dml.ShapeDescriptor{
			Geometry: dml.PresetGeometry{Name: t.String()},
			Style: &dml.ShapeStyle{
				// Odd rows use the gradient fill style of the theme.
				FillRef:   dml.StyleRef{Index: 1 + 2*(row%2), Color: &accent},
				LineRef:   dml.StyleRef{Index: 2, Color: ptr(accent.WithShade(50000))},
				EffectRef: dml.StyleRef{Index: 3, Color: ptr(dml.SRGB(0, 0, 0))},
			},
			Target: dml.Rect{
				X:      float64(col)*galleryCell + pad,
				Y:      float64(row)*galleryCell + pad,
				Width:  galleryCell - 2*pad,
				Height: galleryCell - 2*pad,
			},
		}
	}

	shapes, err := dml.ResolveShapes(context.Background(), descs, dml.WithWorkers(galleryWorkers))
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if galleryOutput != "-" {
		f, err := os.Create(galleryOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	rows := (len(types) + galleryColumns - 1) / galleryColumns
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`+"\n",
		float64(galleryColumns)*galleryCell, float64(rows)*galleryCell)
	w := &svgWriter{out: out}
	for _, rs := range shapes {
		w.shape(rs)
	}
	fmt.Fprintln(out, "</svg>")

	if galleryOutput != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "gallery of %d shapes saved to %s\n", len(types), galleryOutput)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

// svgWriter emits resolved shapes. It owns the id counter for gradient
// definitions, which the engine leaves to the caller.
type svgWriter struct {
	out    io.Writer
	nextID int
}

func writeShapeSVG(out io.Writer, rs dml.ResolvedShape) {
	w := &svgWriter{out: out}
	w.shape(rs)
}

func (w *svgWriter) shape(rs dml.ResolvedShape) {
	fill := w.paint(rs.Fill)
	stroke := "none"
	width := 0.0
	if rs.Stroke.IsVisible() {
		stroke = w.paint(rs.Stroke.Paint)
		width = rs.Stroke.Width / dml.EMUPerPoint
	}

	var extra strings.Builder
	if d := rs.Stroke.Dash; d.IsDashed() {
		scaled := d.Scale(1.0 / dml.EMUPerPoint)
		parts := make([]string, len(scaled.Array))
		for i, v := range scaled.Array {
			parts[i] = fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(&extra, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	for _, e := range rs.Effects {
		if s, ok := e.(dml.ShadowEffect); ok && !s.Inner {
			// EMU to SVG user units at 96 dpi.
			const emuPerPx = 9525
			fmt.Fprintf(&extra, ` style="filter: drop-shadow(%gpx %gpx %gpx %s)"`,
				math.Round(s.OffsetX/emuPerPx), math.Round(s.OffsetY/emuPerPx),
				math.Round(s.BlurRadius/emuPerPx), cssColor(s.Color))
		}
	}

	fmt.Fprintf(w.out, `<path d="%s" fill="%s" stroke="%s" stroke-width="%g"%s/>`+"\n",
		rs.PlacedPath().SVGPathData(), fill, stroke, width, extra.String())
}

// paint returns an SVG paint value, writing a gradient definition first
// when needed.
func (w *svgWriter) paint(p dml.Paint) string {
	switch v := p.(type) {
	case dml.SolidPaint:
		return cssColor(v.Color)
	case dml.GradientPaint:
		w.nextID++
		id := fmt.Sprintf("grad%d", w.nextID)
		if v.Kind == dml.GradientPath {
			fmt.Fprintf(w.out, `<defs><radialGradient id="%s">`, id)
		} else {
			x2 := 0.5 + 0.5*math.Cos(v.Angle*math.Pi/180)
			y2 := 0.5 + 0.5*math.Sin(v.Angle*math.Pi/180)
			fmt.Fprintf(w.out, `<defs><linearGradient id="%s" x1="%g" y1="%g" x2="%g" y2="%g">`,
				id, 1-x2, 1-y2, x2, y2)
		}
		for _, s := range v.Stops {
			fmt.Fprintf(w.out, `<stop offset="%g" stop-color="%s"/>`, s.Position, cssColor(s.Color))
		}
		if v.Kind == dml.GradientPath {
			fmt.Fprintln(w.out, `</radialGradient></defs>`)
		} else {
			fmt.Fprintln(w.out, `</linearGradient></defs>`)
		}
		return fmt.Sprintf("url(#%s)", id)
	case dml.PatternPaint:
		return cssColor(v.Fg)
	}
	return "none"
}

func cssColor(c dml.RGBA) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r, g, b, c.A)
}
