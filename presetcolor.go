package dml

import (
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// presetAbbrev are the prefixes DrawingML uses in place of the SVG
// "dark", "light" and "medium" color-name prefixes (dkBlue, ltGray, medPurple).
var presetAbbrev = []struct{ short, long string }{
	{"dk", "dark"},
	{"lt", "light"},
	{"med", "medium"},
}

// lookupPreset resolves an ST_PresetColorVal name through the SVG named
// color table.
func lookupPreset(name string) (RGBColor, bool) {
	key := foldName(expandPresetName(name))
	c, ok := colornames.Map[key]
	if !ok {
		return RGBColor{}, false
	}
	return RGBColor{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// expandPresetName rewrites a leading dk/lt/med abbreviation. The
// abbreviation only counts when followed by an upper-case letter, so
// "lime" and "medium..." are left alone.
func expandPresetName(name string) string {
	for _, a := range presetAbbrev {
		rest, ok := strings.CutPrefix(name, a.short)
		if !ok || rest == "" {
			continue
		}
		if r := []rune(rest)[0]; unicode.IsUpper(r) {
			return a.long + rest
		}
	}
	return name
}

// foldName case-folds a color name for table lookups.
func foldName(name string) string {
	return cases.Fold().String(name)
}
