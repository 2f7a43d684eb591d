// Package render holds what the drawing engines share.
package render

import "strings"

// named maps the CSS colour keywords most often used for charts to RGB hex.
var named = map[string]string{
	"black":     "000000",
	"white":     "FFFFFF",
	"gray":      "808080",
	"grey":      "808080",
	"red":       "FF0000",
	"green":     "008000",
	"blue":      "0000FF",
	"orange":    "FFA500",
	"purple":    "800080",
	"teal":      "008080",
	"navy":      "000080",
	"crimson":   "DC143C",
	"tomato":    "FF6347",
	"gold":      "FFD700",
	"steelblue": "4682B4",
	"skyblue":   "87CEEB",
	"seagreen":  "2E8B57",
	"slategray": "708090",
}

// Hex resolves a colour keyword or #RGB/#RRGGBB value to upper case RRGGBB
// without the leading '#'. ok is false when the colour is not recognised.
func Hex(color string) (hex string, ok bool) {
	c := strings.ToLower(strings.TrimSpace(color))
	if v, found := named[c]; found {
		return v, true
	}

	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 || strings.Trim(c, "0123456789abcdef") != "" {
		return "", false
	}
	return strings.ToUpper(c), true
}

// Primary returns the first usable colour of colors as #RRGGBB, or fallback.
func Primary(colors []string, fallback string) string {
	for _, c := range colors {
		if hex, ok := Hex(c); ok {
			return "#" + hex
		}
	}
	return fallback
}
