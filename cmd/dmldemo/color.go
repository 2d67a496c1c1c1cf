package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/dml"
)

var (
	colorLumMod   int64
	colorLumOff   int64
	colorTint     int64
	colorShade    int64
	colorAlpha    int64
	colorAlphaMod int64
)

var colorCmd = &cobra.Command{
	Use:   "color VALUE...",
	Short: "Resolve colors against the default theme",
	Long: `Resolve colors against the default Office theme.

VALUE is one of:
  #RRGGBB or RRGGBB       literal sRGB
  scheme:NAME             theme slot or alias (accent1, tx1, bg2, ...)
  preset:NAME             preset color (red, dkBlue, ltGray, ...)
  NAME                    scheme slot if it is one, otherwise preset
  sys:NAME                system color (window, windowText, ...)

Modifier flags take DrawingML units: 100000 = 100%.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runColor,
}

func init() {
	f := colorCmd.Flags()
	f.Int64Var(&colorLumMod, "lum-mod", 0, "Luminance multiplier")
	f.Int64Var(&colorLumOff, "lum-off", 0, "Luminance offset")
	f.Int64Var(&colorTint, "tint", 0, "Tint toward white")
	f.Int64Var(&colorShade, "shade", 0, "Shade toward black")
	f.Int64Var(&colorAlpha, "alpha", 0, "Opacity")
	f.Int64Var(&colorAlphaMod, "alpha-mod", 0, "Opacity multiplier")
}

func runColor(cmd *cobra.Command, args []string) error {
	theme := dml.DefaultTheme()
	out := cmd.OutOrStdout()

	for _, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return err
		}
		c = applyColorFlags(cmd, c)

		rgba, err := dml.ResolveColor(c, theme)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		r, g, b := rgba.RGB255()
		fmt.Fprintf(out, "%-20s #%s rgb(%d,%d,%d) alpha=%.3f\n", arg, rgba.Hex(), r, g, b, rgba.A)
	}
	return nil
}

func applyColorFlags(cmd *cobra.Command, c dml.Color) dml.Color {
	f := cmd.Flags()
	if f.Changed("lum-mod") {
		c = c.WithLumMod(colorLumMod)
	}
	if f.Changed("lum-off") {
		c = c.WithLumOff(colorLumOff)
	}
	if f.Changed("tint") {
		c = c.WithTint(colorTint)
	}
	if f.Changed("shade") {
		c = c.WithShade(colorShade)
	}
	if f.Changed("alpha") {
		c = c.WithAlpha(colorAlpha)
	}
	if f.Changed("alpha-mod") {
		c = c.WithAlphaMod(colorAlphaMod)
	}
	return c
}

// parseColor reads the VALUE syntax of the color command.
func parseColor(s string) (dml.Color, error) {
	kind, name, ok := strings.Cut(s, ":")
	if !ok {
		if rgb, ok := dml.ParseHex(s); ok {
			return dml.Color{Base: rgb}, nil
		}
		if _, ok := dml.ParseSchemeName(s); ok {
			return dml.Scheme(s), nil
		}
		return dml.Preset(s), nil
	}
	switch kind {
	case "scheme":
		return dml.Scheme(name), nil
	case "preset":
		return dml.Preset(name), nil
	case "sys":
		return dml.System(name), nil
	}
	return dml.Color{}, fmt.Errorf("unknown color kind %q in %q", kind, s)
}
