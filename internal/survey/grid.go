package survey

import "math"

// Extent is a geographic bounding box in degrees.
type Extent struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// WorldExtent covers the full WGS 84 coordinate range.
func WorldExtent() Extent {
	return Extent{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}
}

// HeatGrid is a 2-D histogram of GeoPoints over an extent. Cells are
// row-major with rows spanning latitude south to north. It satisfies the
// Dims/Z/X/Y grid contract that gonum's heat map plotter consumes.
type HeatGrid struct {
	nx, ny int
	ext    Extent
	cells  []float64
}

// BinPoints histograms points into an nx by ny grid over ext. Points at
// identical coordinates accumulate in the same cell; points outside the
// extent are ignored. Zero points yields a valid all-zero grid.
func BinPoints(points []GeoPoint, nx, ny int, ext Extent) *HeatGrid {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	g := &HeatGrid{nx: nx, ny: ny, ext: ext, cells: make([]float64, nx*ny)}

	lonSpan := ext.MaxLon - ext.MinLon
	latSpan := ext.MaxLat - ext.MinLat
	if lonSpan <= 0 || latSpan <= 0 {
		return g
	}

	for _, p := range points {
		if p.Lon < ext.MinLon || p.Lon > ext.MaxLon || p.Lat < ext.MinLat || p.Lat > ext.MaxLat {
			continue
		}
		ix := int((p.Lon - ext.MinLon) / lonSpan * float64(nx))
		iy := int((p.Lat - ext.MinLat) / latSpan * float64(ny))
		// Points exactly on the max edge belong to the last cell.
		if ix == nx {
			ix = nx - 1
		}
		if iy == ny {
			iy = ny - 1
		}
		g.cells[iy*nx+ix]++
	}
	return g
}

// Dims returns the number of columns and rows.
func (g *HeatGrid) Dims() (c, r int) { return g.nx, g.ny }

// Z returns the value of the cell at column c, row r.
func (g *HeatGrid) Z(c, r int) float64 { return g.cells[r*g.nx+c] }

// X returns the longitude of the centre of column c.
func (g *HeatGrid) X(c int) float64 {
	w := (g.ext.MaxLon - g.ext.MinLon) / float64(g.nx)
	return g.ext.MinLon + (float64(c)+0.5)*w
}

// Y returns the latitude of the centre of row r.
func (g *HeatGrid) Y(r int) float64 {
	h := (g.ext.MaxLat - g.ext.MinLat) / float64(g.ny)
	return g.ext.MinLat + (float64(r)+0.5)*h
}

// Extent returns the grid's bounding box.
func (g *HeatGrid) Extent() Extent { return g.ext }

// Total returns the sum of all cell values.
func (g *HeatGrid) Total() float64 {
	total := 0.0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// Max returns the largest cell value.
func (g *HeatGrid) Max() float64 {
	max := 0.0
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// LogSmooth converts counts to log frequency and applies a gaussian blur
// with the given sigma. Cells with zero count map to zero rather than
// negative infinity, and the blur extends edges with their nearest value,
// so land-edge cells do not fade artificially.
func (g *HeatGrid) LogSmooth(sigma float64) {
	for i, v := range g.cells {
		if v > 0 {
			g.cells[i] = math.Log(v)
		} else {
			g.cells[i] = 0
		}
	}
	if sigma > 0 {
		g.cells = gaussianBlur(g.cells, g.nx, g.ny, sigma)
	}
}

// gaussianBlur applies a separable gaussian filter to a row-major nx by ny
// grid with nearest-edge extension. The kernel is truncated at 4 sigma.
func gaussianBlur(cells []float64, nx, ny int, sigma float64) []float64 {
	kernel := gaussianKernel(sigma)
	radius := (len(kernel) - 1) / 2

	clamp := func(i, n int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}

	// Horizontal pass.
	tmp := make([]float64, len(cells))
	for y := 0; y < ny; y++ {
		row := cells[y*nx : (y+1)*nx]
		out := tmp[y*nx : (y+1)*nx]
		for x := 0; x < nx; x++ {
			sum := 0.0
			for k, w := range kernel {
				sum += w * row[clamp(x+k-radius, nx)]
			}
			out[x] = sum
		}
	}

	// Vertical pass.
	out := make([]float64, len(cells))
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			sum := 0.0
			for k, w := range kernel {
				sum += w * tmp[clamp(y+k-radius, ny)*nx+x]
			}
			out[y*nx+x] = sum
		}
	}
	return out
}

// gaussianKernel returns a normalised 1-D gaussian of length 2*radius+1.
func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
