// Package figure renders the review figures with gonum/plot: the stacked
// technique bar chart and the geographic log-frequency heatmap.
package figure

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Categorical returns n visually distinct series colours, evenly spaced
// around the HSL hue wheel. The same n always yields the same colours.
func Categorical(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		colors[i] = hslColor(float64(i)/float64(n), 0.65, 0.45)
	}
	return colors
}

// hslColor converts an HSL triple (all in 0..1, hue as a turn fraction)
// to RGBA via the hue-sector chroma form.
func hslColor(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))

	var r, g, b float64
	switch sector := int(h * 6); sector {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

// heatColorMaps are the continuous colour maps accepted by --cmap. All are
// perceptually ordered, unlike the jet-style maps they replace.
var heatColorMaps = map[string]func() palette.ColorMap{
	"kindlmann":          moreland.Kindlmann,
	"extended-kindlmann": moreland.ExtendedKindlmann,
	"blackbody":          moreland.BlackBody,
	"extended-blackbody": moreland.ExtendedBlackBody,
	"blue-red":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
}

// DefaultHeatColorMap is used when --cmap is not given.
const DefaultHeatColorMap = "kindlmann"

// HeatColorMap returns the named continuous colour map for the heat layer.
func HeatColorMap(name string) (palette.ColorMap, error) {
	f, ok := heatColorMaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colour map %q (available: %v)", name, HeatColorMapNames())
	}
	return f(), nil
}

// HeatColorMapNames lists the accepted --cmap values, sorted.
func HeatColorMapNames() []string {
	names := make([]string, 0, len(heatColorMaps))
	for name := range heatColorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
