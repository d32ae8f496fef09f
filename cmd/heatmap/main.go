// Command heatmap generates the geographic origin figure: a log-frequency
// heatmap of image-data collection sites over a world coastline basemap.
//
// Usage:
//
//	heatmap [flags] <input.csv> <output-dir>
//
// The input CSV must carry Latitude_rounded and Longitude_rounded columns.
// An input with no usable points still renders the basemap.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/benthic-data/benthoviz/internal/figure"
	"github.com/benthic-data/benthoviz/internal/fsutil"
	"github.com/benthic-data/benthoviz/internal/survey"
)

type config struct {
	input  string
	output string

	filename string
	format   string
	dpi      int
	figSize  string

	bins      string
	smoothing float64
	cmap      string
	basemap   string

	title          string
	xLabel         string
	yLabel         string
	colourBarLabel string
	noColourBar    bool
	edgeColour     string
	lineWidth      float64
}

func parseFlags() config {
	cfg := config{}

	flag.StringVar(&cfg.filename, "filename", "heatmap", "Name of the output image file, without extension")
	flag.StringVar(&cfg.format, "format", "png", "Output format: png, jpg, tiff, svg, pdf or eps")
	flag.IntVar(&cfg.dpi, "dpi", figure.DefaultDPI, "Resolution of raster output")
	flag.StringVar(&cfg.figSize, "fig-size", "10,6", "Figure size in inches as width,height")
	flag.StringVar(&cfg.bins, "bins", "100,100", "Number of heatmap bins as lon,lat")
	flag.Float64Var(&cfg.smoothing, "smoothing", 1.3, "Gaussian smoothing sigma, in bins; 0 disables")
	flag.StringVar(&cfg.cmap, "cmap", figure.DefaultHeatColorMap, fmt.Sprintf("Colour map for the heat layer (one of %v)", figure.HeatColorMapNames()))
	flag.StringVar(&cfg.basemap, "basemap", "", "Coastline CSV (segment,lat,lon) replacing the bundled low-resolution world map")
	flag.StringVar(&cfg.title, "title", "", "Title of the plot")
	flag.StringVar(&cfg.xLabel, "x-label", "Longitude", "Label for the x-axis")
	flag.StringVar(&cfg.yLabel, "y-label", "Latitude", "Label for the y-axis")
	flag.StringVar(&cfg.colourBarLabel, "colour-bar-label", "Log Frequency", "Label for the colour bar")
	flag.BoolVar(&cfg.noColourBar, "no-colour-bar", false, "Do not draw the colour bar")
	flag.StringVar(&cfg.edgeColour, "edgecolour", "grey", "Colour of the coastline (black, grey, darkgrey, lightgrey or white)")
	flag.Float64Var(&cfg.lineWidth, "linewidth", 0.75, "Width of the coastline, in points")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input.csv> <output-dir>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.input = flag.Arg(0)
	cfg.output = flag.Arg(1)
	return cfg
}

func main() {
	cfg := parseFlags()
	if err := run(cfg, fsutil.OSFileSystem{}); err != nil {
		log.Fatalf("heatmap: %v", err)
	}
}

func run(cfg config, fsys fsutil.FileSystem) error {
	width, height, err := parseFigSize(cfg.figSize)
	if err != nil {
		return err
	}
	nx, ny, err := parseBins(cfg.bins)
	if err != nil {
		return err
	}
	if cfg.smoothing < 0 {
		return fmt.Errorf("smoothing %g must not be negative", cfg.smoothing)
	}
	cm, err := figure.HeatColorMap(cfg.cmap)
	if err != nil {
		return err
	}
	edge, err := lookupColour(cfg.edgeColour)
	if err != nil {
		return err
	}

	points, skipped, err := survey.ReadGeoPoints(fsys, cfg.input)
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Printf("skipped %d invalid rows in %s", skipped, cfg.input)
	}

	bm, err := loadBasemap(fsys, cfg.basemap)
	if err != nil {
		return err
	}

	grid := survey.BinPoints(points, nx, ny, bm.Extent())
	grid.LogSmooth(cfg.smoothing)

	opts, err := figure.DefaultHeatMapOptions()
	if err != nil {
		return err
	}
	opts.Title = cfg.title
	opts.XLabel = cfg.xLabel
	opts.YLabel = cfg.yLabel
	opts.ColorMap = cm
	opts.ColorBar = !cfg.noColourBar
	opts.ColorBarLabel = cfg.colourBarLabel
	opts.MapColor = edge
	opts.MapWidth = pointsLength(cfg.lineWidth)

	fig, err := figure.HeatMapFigure(grid, bm, opts)
	if err != nil {
		return err
	}
	if !fig.HasHeat() {
		log.Printf("no usable points in %s; rendering basemap only", cfg.input)
	}

	outPath := filepath.Join(cfg.output, cfg.filename+"."+cfg.format)
	err = figure.Save(fsys, fig, outPath, figure.SaveOptions{
		Width:  width,
		Height: height,
		Format: cfg.format,
		DPI:    cfg.dpi,
	})
	if err != nil {
		return err
	}
	log.Printf("wrote %s (%d points over a %dx%d grid)", outPath, len(points), nx, ny)
	return nil
}

func loadBasemap(fsys fsutil.FileSystem, path string) (*figure.Basemap, error) {
	if path == "" {
		return figure.EmbeddedBasemap()
	}
	return figure.LoadBasemap(fsys, path)
}
