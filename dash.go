package dml

import (
	"math"
	"strings"
)

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [4, 3] creates a pattern of 4 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	positive := false
	for _, l := range lengths {
		if l > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// DrawingML dash lengths are multiples of the line width, so resolution
// scales them by the width. A non-positive factor returns an unscaled copy.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d.Clone()
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// PresetDash is a DrawingML prstDash value.
type PresetDash int

const (
	DashSolid PresetDash = iota
	DashDot
	DashDash
	DashLargeDash
	DashDashDot
	DashLargeDashDot
	DashLargeDashDotDot
	DashSysDash
	DashSysDot
	DashSysDashDot
	DashSysDashDotDot
)

var presetDashNames = [...]string{
	DashSolid:           "solid",
	DashDot:             "dot",
	DashDash:            "dash",
	DashLargeDash:       "lgDash",
	DashDashDot:         "dashDot",
	DashLargeDashDot:    "lgDashDot",
	DashLargeDashDotDot: "lgDashDotDot",
	DashSysDash:         "sysDash",
	DashSysDot:          "sysDot",
	DashSysDashDot:      "sysDashDot",
	DashSysDashDotDot:   "sysDashDotDot",
}

// presetDashLengths are dash/gap lengths in multiples of the line width.
var presetDashLengths = [...][]float64{
	DashSolid:           nil,
	DashDot:             {1, 3},
	DashDash:            {4, 3},
	DashLargeDash:       {8, 3},
	DashDashDot:         {4, 3, 1, 3},
	DashLargeDashDot:    {8, 3, 1, 3},
	DashLargeDashDotDot: {8, 3, 1, 3, 1, 3},
	DashSysDash:         {3, 1},
	DashSysDot:          {1, 1},
	DashSysDashDot:      {3, 1, 1, 1},
	DashSysDashDotDot:   {3, 1, 1, 1, 1, 1},
}

// String returns the prstDash attribute value.
func (p PresetDash) String() string {
	if p < 0 || int(p) >= len(presetDashNames) {
		return "solid"
	}
	return presetDashNames[p]
}

// ParsePresetDash parses a prstDash value. Unknown values report false.
func ParsePresetDash(s string) (PresetDash, bool) {
	for i, name := range presetDashNames {
		if strings.EqualFold(name, s) {
			return PresetDash(i), true
		}
	}
	return DashSolid, false
}

// unitDash returns the pattern for one unit of line width.
func (p PresetDash) unitDash() *Dash {
	if p < 0 || int(p) >= len(presetDashLengths) {
		return nil
	}
	return NewDash(presetDashLengths[p]...)
}

// DashStop is one custDash entry: dash and space lengths in 1/100000 of
// the line width.
type DashStop struct {
	Dash  int64
	Space int64
}

// customUnitDash converts custDash stops to a unit-width pattern.
func customUnitDash(stops []DashStop) *Dash {
	lengths := make([]float64, 0, 2*len(stops))
	for _, s := range stops {
		lengths = append(lengths, float64(s.Dash)/FractionScale, float64(s.Space)/FractionScale)
	}
	return NewDash(lengths...)
}
