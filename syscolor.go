package dml

// systemColors are the Windows default values of the ST_SystemColorVal
// names, keyed by folded name.
var systemColors = func() map[string]RGBColor {
	table := map[string]string{
		"scrollBar":               "C8C8C8",
		"background":              "000000",
		"activeCaption":           "99B4D1",
		"inactiveCaption":         "BFCDDB",
		"menu":                    "F0F0F0",
		"window":                  "FFFFFF",
		"windowFrame":             "646464",
		"menuText":                "000000",
		"windowText":              "000000",
		"captionText":             "000000",
		"activeBorder":            "B4B4B4",
		"inactiveBorder":          "F4F7FC",
		"appWorkspace":            "ABABAB",
		"highlight":               "3399FF",
		"highlightText":           "FFFFFF",
		"btnFace":                 "F0F0F0",
		"btnShadow":               "A0A0A0",
		"grayText":                "6D6D6D",
		"btnText":                 "000000",
		"inactiveCaptionText":     "434E54",
		"btnHighlight":            "FFFFFF",
		"3dDkShadow":              "696969",
		"3dLight":                 "E3E3E3",
		"infoText":                "000000",
		"infoBk":                  "FFFFE1",
		"hotLight":                "0066CC",
		"gradientActiveCaption":   "B9D1EA",
		"gradientInactiveCaption": "D7E4F2",
		"menuHighlight":           "3399FF",
		"menuBar":                 "F0F0F0",
	}
	m := make(map[string]RGBColor, len(table))
	for name, hex := range table {
		m[foldName(name)] = mustHex(hex)
	}
	return m
}()

// lookupSystem resolves a sysClr: the built-in table first, then the
// element's lastClr.
func lookupSystem(s SystemColor) (RGBColor, bool) {
	if c, ok := systemColors[foldName(s.Name)]; ok {
		return c, true
	}
	if s.HasLastColor {
		return s.LastColor, true
	}
	return RGBColor{}, false
}
