// Package render turns aggregated GitHub data into SVG badges.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTheme is used when no theme or an unknown theme is requested.
const DefaultTheme = "dark"

// maxLighten is the HSL lightness, in percentage points, added to the accent
// for the busiest day of the heatmap.
const maxLighten = 30.0

// Theme is a named 4-color palette applied to every badge.
type Theme struct {
	Name       string
	Background string
	Foreground string
	Accent     string
	Muted      string
}

var themes = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: "#0d1117",
		Foreground: "#c9d1d9",
		Accent:     "#58a6ff",
		Muted:      "#8b949e",
	},
	"light": {
		Name:       "light",
		Background: "#ffffff",
		Foreground: "#24292f",
		Accent:     "#0366d6",
		Muted:      "#6a737d",
	},
	"simple": {
		Name:       "simple",
		Background: "#f6f8fa",
		Foreground: "#24292f",
		Accent:     "#2ea44f",
		Muted:      "#6a737d",
	},
}

// LookupTheme returns the named theme, falling back to DefaultTheme.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	return []string{"dark", "light", "simple"}
}

// ZeroColor is the heatmap fill for a day without contributions.
func (t Theme) ZeroColor() string {
	if t.Background == "#ffffff" {
		return "#ebedf0"
	}
	return "#0b1220"
}

// CellColor is the heatmap fill for count on a calendar whose busiest day is maxCount.
// Non-zero counts lighten the accent proportionally, saturating at maxLighten.
func (t Theme) CellColor(count, maxCount int) string {
	if count <= 0 {
		return t.ZeroColor()
	}
	if maxCount < 1 {
		maxCount = 1
	}
	ratio := math.Min(1, float64(count)/float64(maxCount))
	return lighten(t.Accent, ratio*maxLighten)
}

// lighten raises the HSL lightness of hex by amount percentage points.
func lighten(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = math.Min(1, l+amount/100)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}
