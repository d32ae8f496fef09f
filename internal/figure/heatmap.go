package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benthic-data/benthoviz/internal/survey"
)

// HeatMapOptions configures the geographic heatmap figure.
type HeatMapOptions struct {
	Title         string
	XLabel        string
	YLabel        string
	ColorMap      palette.ColorMap
	ColorBar      bool
	ColorBarLabel string
	MapColor      color.Color
	MapWidth      vg.Length
}

// DefaultHeatMapOptions mirrors the published figure's styling.
func DefaultHeatMapOptions() (HeatMapOptions, error) {
	cm, err := HeatColorMap(DefaultHeatColorMap)
	if err != nil {
		return HeatMapOptions{}, err
	}
	return HeatMapOptions{
		XLabel:        "Longitude",
		YLabel:        "Latitude",
		ColorMap:      cm,
		ColorBar:      true,
		ColorBarLabel: "Log Frequency",
		MapColor:      color.Gray{Y: 0x80},
		MapWidth:      vg.Points(0.75),
	}, nil
}

// WorldFigure is a heatmap plot plus an optional colour bar tile. It draws
// as a single canvas so Save treats it like any other figure.
type WorldFigure struct {
	main    *plot.Plot
	bar     *plot.Plot
	hasHeat bool
}

// colorBarFraction is the share of the canvas width given to the bar tile.
const colorBarFraction = 0.12

// HeatMapFigure composes the heat layer (omitted when the grid holds no
// observations, leaving a basemap-only figure) with coastline polylines on
// top and a colour bar at the right.
func HeatMapFigure(grid *survey.HeatGrid, bm *Basemap, o HeatMapOptions) (*WorldFigure, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	fig := &WorldFigure{main: p}

	if grid != nil && grid.Max() > 0 {
		fig.hasHeat = true
		if o.ColorMap == nil {
			return nil, fmt.Errorf("heat layer requires a colour map")
		}
		o.ColorMap.SetMin(0)
		o.ColorMap.SetMax(1)
		h := plotter.NewHeatMap(grid, o.ColorMap.Palette(255))
		p.Add(h)

		if o.ColorBar {
			// A single-cell grid has Min == Max, which the colour bar
			// plotter rejects; widen the range so the bar still draws.
			min, max := h.Min, h.Max
			if min == max {
				max = min + 1
			}
			o.ColorMap.SetMin(min)
			o.ColorMap.SetMax(max)
			bar := plot.New()
			bar.Add(&plotter.ColorBar{ColorMap: o.ColorMap, Vertical: true})
			bar.HideX()
			bar.Y.Label.Text = o.ColorBarLabel
			fig.bar = bar
		}
	}

	for _, seg := range bm.Segments() {
		xys := make(plotter.XYs, len(seg))
		for i, pt := range seg {
			xys[i] = plotter.XY{X: pt.Lon, Y: pt.Lat}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("coastline segment: %w", err)
		}
		line.Color = o.MapColor
		line.Width = o.MapWidth
		p.Add(line)
	}

	// Pin the axes to the basemap extent so runs with sparse data keep the
	// same frame.
	ext := bm.Extent()
	p.X.Min, p.X.Max = ext.MinLon, ext.MaxLon
	p.Y.Min, p.Y.Max = ext.MinLat, ext.MaxLat

	return fig, nil
}

// Draw renders the figure onto dc, splitting off a right-hand tile for the
// colour bar when one is present.
func (f *WorldFigure) Draw(dc draw.Canvas) {
	if f.bar == nil {
		f.main.Draw(dc)
		return
	}

	width := dc.Max.X - dc.Min.X
	barWidth := vg.Length(float64(width) * colorBarFraction)

	mainCanvas := draw.Crop(dc, 0, -barWidth, 0, 0)
	barCanvas := draw.Crop(dc, width-barWidth, 0, 0, 0)
	f.main.Draw(mainCanvas)
	f.bar.Draw(barCanvas)
}

// HasHeat reports whether a heat layer was rendered (false for an empty
// point set).
func (f *WorldFigure) HasHeat() bool { return f.hasHeat }
