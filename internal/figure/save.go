package figure

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/benthic-data/benthoviz/internal/fsutil"
)

// Drawer is anything that can render itself onto a canvas; *plot.Plot and
// *WorldFigure both qualify.
type Drawer interface {
	Draw(draw.Canvas)
}

// SaveOptions selects the output geometry and encoding.
type SaveOptions struct {
	Width  vg.Length
	Height vg.Length
	Format string // png, jpg, jpeg, tif, tiff, svg, pdf, eps
	DPI    int    // raster formats only
}

// DefaultDPI matches the print resolution the review figures were
// published at.
const DefaultDPI = 300

// DefaultSaveOptions is a 10x6 inch raster at print resolution.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		Format: "png",
		DPI:    DefaultDPI,
	}
}

// Save renders fig and writes it to path, creating parent directories as
// needed and overwriting any existing file at that path.
func Save(fsys fsutil.FileSystem, fig Drawer, path string, o SaveOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(fig, o, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write renders fig to w in the requested format. Raster formats honour
// o.DPI; vector formats are resolution independent.
func Write(fig Drawer, o SaveOptions, w io.Writer) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("figure size %gx%g in must be positive", float64(o.Width/vg.Inch), float64(o.Height/vg.Inch))
	}

	switch format := strings.ToLower(o.Format); format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		dpi := o.DPI
		if dpi <= 0 {
			dpi = DefaultDPI
		}
		c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(dpi))
		fig.Draw(draw.New(c))

		var wt io.WriterTo
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
		_, err := wt.WriteTo(w)
		return err

	case "svg":
		c := vgsvg.New(o.Width, o.Height)
		fig.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err

	case "pdf":
		c := vgpdf.New(o.Width, o.Height)
		fig.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err

	case "eps":
		c := vgeps.New(o.Width, o.Height)
		fig.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err

	default:
		return fmt.Errorf("unsupported output format %q", o.Format)
	}
}
