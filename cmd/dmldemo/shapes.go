package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/dml"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List registered preset shapes and their adjust defaults",
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	for _, t := range dml.ShapeTypes() {
		defs := t.Defaults()
		parts := make([]string, len(defs))
		for i, d := range defs {
			parts[i] = fmt.Sprintf("%s=%d", d.Name, d.Default)
		}
		fmt.Fprintf(out, "%-22s %s\n", t, strings.Join(parts, " "))
	}
}

var (
	presetWidth  float64
	presetHeight float64
	presetAdj    map[string]string
	presetFill   string
	presetSVG    bool
	presetFlat   float64
)

var presetCmd = &cobra.Command{
	Use:   "preset NAME",
	Short: "Generate a preset shape and print its SVG path data",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreset,
}

func init() {
	presetCmd.Flags().Float64Var(&presetWidth, "width", 200, "Frame width")
	presetCmd.Flags().Float64Var(&presetHeight, "height", 100, "Frame height")
	presetCmd.Flags().StringToStringVar(&presetAdj, "adj", nil, `Adjust values, e.g. --adj adj="val 25000"`)
	presetCmd.Flags().StringVar(&presetFill, "fill", "accent1", "Fill color (see the color command)")
	presetCmd.Flags().BoolVar(&presetSVG, "svg", false, "Print a complete SVG document")
	presetCmd.Flags().Float64Var(&presetFlat, "flatten", 0, "Print polylines flattened to this tolerance instead of path data")
}

func runPreset(cmd *cobra.Command, args []string) error {
	fill, err := parseColor(presetFill)
	if err != nil {
		return err
	}
	desc := dml.ShapeDescriptor{
		Geometry: dml.PresetGeometry{Name: args[0], Adjustments: dml.ParseAdjustments(presetAdj)},
		Fill:     dml.SolidFill{Color: fill},
		Stroke:   &dml.Stroke{Fill: dml.SolidFill{Color: dml.Scheme("tx1")}},
		Target:   dml.Rect{Width: presetWidth, Height: presetHeight},
	}
	rs, err := dml.ResolveShape(desc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if presetFlat > 0 {
		for _, line := range rs.Path.Flatten(presetFlat) {
			pts := make([]string, len(line))
			for i, pt := range line {
				pts[i] = fmt.Sprintf("%.4g,%.4g", pt.X, pt.Y)
			}
			fmt.Fprintln(out, strings.Join(pts, " "))
		}
		return nil
	}
	if !presetSVG {
		fmt.Fprintln(out, rs.Path.SVGPathData())
		return nil
	}
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`+"\n", presetWidth, presetHeight)
	writeShapeSVG(out, rs)
	fmt.Fprintln(out, "</svg>")
	return nil
}
