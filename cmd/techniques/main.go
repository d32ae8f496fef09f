// Command techniques generates the literature progression figure: a
// stacked bar chart of computer vision publications per year, subdivided
// by the techniques they apply.
//
// Usage:
//
//	techniques [flags] <input.csv> <output-dir>
//
// The input CSV must carry Year, Image_Processing, Machine_Learning and
// Deep_Learning columns. A publication using several techniques counts
// once under each.
package main

import (
	"flag"
	"fmt"
	"io"
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

	title       string
	xlabel      string
	ylabel      string
	legendTitle string

	noShowLegend  bool
	noPrintStats  bool
	afterYearOnly int
	htmlFile      string
}

func parseFlags() config {
	cfg := config{}

	flag.StringVar(&cfg.filename, "filename", "techniques", "Name of the output image file, without extension")
	flag.StringVar(&cfg.format, "format", "png", "Output format: png, jpg, tiff, svg, pdf or eps")
	flag.IntVar(&cfg.dpi, "dpi", figure.DefaultDPI, "Resolution of raster output")
	flag.StringVar(&cfg.figSize, "fig-size", "10,5", "Figure size in inches as width,height")
	flag.StringVar(&cfg.title, "title", "", "Title of the plot")
	flag.StringVar(&cfg.xlabel, "xlabel", "Year", "Label for the x-axis")
	flag.StringVar(&cfg.ylabel, "ylabel", "Number of Papers", "Label for the y-axis")
	flag.StringVar(&cfg.legendTitle, "legend-title", "Techniques", "Title of the legend")
	flag.BoolVar(&cfg.noShowLegend, "no-show-legend", false, "Do not show the legend on the plot")
	flag.BoolVar(&cfg.noPrintStats, "no-print-stats", false, "Do not print technique usage statistics")
	flag.IntVar(&cfg.afterYearOnly, "after-year-only", 0, "Restrict the printed statistics to years >= this")
	flag.StringVar(&cfg.htmlFile, "html", "", "Also write an interactive HTML chart under this name in the output directory")

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
	if err := run(cfg, fsutil.OSFileSystem{}, os.Stdout); err != nil {
		log.Fatalf("techniques: %v", err)
	}
}

func run(cfg config, fsys fsutil.FileSystem, stdout io.Writer) error {
	width, height, err := parseFigSize(cfg.figSize)
	if err != nil {
		return err
	}

	records, skipped, err := survey.ReadTechniques(fsys, cfg.input)
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Printf("skipped %d invalid rows in %s", skipped, cfg.input)
	}

	counts := survey.CountByYear(records)

	p, err := figure.StackedBars(counts, figure.BarChartOptions{
		Title:       cfg.title,
		XLabel:      cfg.xlabel,
		YLabel:      cfg.ylabel,
		LegendTitle: cfg.legendTitle,
		ShowLegend:  !cfg.noShowLegend,
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.output, cfg.filename+"."+cfg.format)
	err = figure.Save(fsys, p, outPath, figure.SaveOptions{
		Width:  width,
		Height: height,
		Format: cfg.format,
		DPI:    cfg.dpi,
	})
	if err != nil {
		return err
	}
	log.Printf("wrote %s (%d records, %d years)", outPath, len(records), len(counts.Years))

	if cfg.htmlFile != "" {
		htmlPath := filepath.Join(cfg.output, cfg.htmlFile)
		f, err := fsys.Create(htmlPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", htmlPath, err)
		}
		if err := figure.TechniquesHTML(counts, cfg.title, f); err != nil {
			f.Close()
			return fmt.Errorf("render %s: %w", htmlPath, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
		log.Printf("wrote %s", htmlPath)
	}

	if !cfg.noPrintStats {
		printStats(stdout, counts, cfg.afterYearOnly)
	}
	return nil
}

// printStats reports each technique's share of all technique uses, over
// the full aggregate or a recent window.
func printStats(w io.Writer, counts survey.TechniqueCounts, afterYearOnly int) {
	if afterYearOnly > 0 {
		counts = counts.After(afterYearOnly)
		fmt.Fprintf(w, "Stats after %d:\n", afterYearOnly)
	}

	pct := counts.Percentages()
	for t := 0; t < survey.NumTechniques; t++ {
		fmt.Fprintf(w, "Percentage of papers that used %s: %.2f%%\n", survey.TechniqueLabels[t], pct[t])
	}
}
