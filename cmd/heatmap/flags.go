package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// parseFigSize parses a "width,height" pair of inches.
func parseFigSize(s string) (width, height vg.Length, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fig-size %q: want width,height", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("fig-size width %q: %w", parts[0], err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("fig-size height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("fig-size %q: dimensions must be positive", s)
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch, nil
}

// parseBins parses a "nx,ny" pair of bin counts.
func parseBins(s string) (nx, ny int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bins %q: want nx,ny", s)
	}
	nx, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bins nx %q: %w", parts[0], err)
	}
	ny, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bins ny %q: %w", parts[1], err)
	}
	if nx < 1 || ny < 1 {
		return 0, 0, fmt.Errorf("bins %q: counts must be at least 1", s)
	}
	return nx, ny, nil
}

// namedColours are the accepted coastline colours.
var namedColours = map[string]color.Color{
	"black":     color.Black,
	"grey":      color.Gray{Y: 0x80},
	"gray":      color.Gray{Y: 0x80},
	"darkgrey":  color.Gray{Y: 0x50},
	"darkgray":  color.Gray{Y: 0x50},
	"lightgrey": color.Gray{Y: 0xb0},
	"lightgray": color.Gray{Y: 0xb0},
	"white":     color.White,
}

func lookupColour(name string) (color.Color, error) {
	c, ok := namedColours[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

// pointsLength converts a line width in points to a vg length.
func pointsLength(pts float64) vg.Length {
	return vg.Points(pts)
}
