package figure

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benthic-data/benthoviz/internal/fsutil"
	"github.com/benthic-data/benthoviz/internal/survey"
)

// The bundled basemap is a very low resolution world coastline, enough to
// situate the heat layer. Pass --basemap with a higher-resolution export
// (same segment,lat,lon format, e.g. derived from Natural Earth) for
// publication-quality output.
//
//go:embed data/coastline110.csv
var basemapData embed.FS

const embeddedBasemapPath = "data/coastline110.csv"

// Basemap is a set of coastline polylines used as the rendering substrate
// for the heat overlay. Each segment is drawn as one line; closed segments
// repeat their first point.
type Basemap struct {
	segments [][]survey.GeoPoint
}

// EmbeddedBasemap returns the bundled low-resolution world coastline.
func EmbeddedBasemap() (*Basemap, error) {
	data, err := basemapData.ReadFile(embeddedBasemapPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded basemap: %w", err)
	}
	bm, err := parseBasemap(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("embedded basemap: %w", err)
	}
	return bm, nil
}

// LoadBasemap reads a user-supplied coastline file in the same format as
// the bundled one.
func LoadBasemap(fsys fsutil.FileSystem, path string) (*Basemap, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open basemap: %w", err)
	}
	defer f.Close()

	bm, err := parseBasemap(f)
	if err != nil {
		return nil, fmt.Errorf("basemap %s: %w", path, err)
	}
	return bm, nil
}

// parseBasemap reads segment,lat,lon rows. Rows sharing a segment value
// must be contiguous; a change of segment starts a new polyline.
func parseBasemap(r io.Reader) (*Basemap, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != 3 || strings.TrimSpace(header[0]) != "segment" ||
		strings.TrimSpace(header[1]) != "lat" || strings.TrimSpace(header[2]) != "lon" {
		return nil, fmt.Errorf("header %v: want segment,lat,lon", header)
	}

	bm := &Basemap{}
	current := ""
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad latitude %q", line, row[1])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad longitude %q", line, row[2])
		}
		p := survey.GeoPoint{Lat: lat, Lon: lon}
		if !p.Valid() {
			return nil, fmt.Errorf("line %d: coordinate (%g, %g) out of range", line, lat, lon)
		}

		if row[0] != current || len(bm.segments) == 0 {
			current = row[0]
			bm.segments = append(bm.segments, nil)
		}
		last := len(bm.segments) - 1
		bm.segments[last] = append(bm.segments[last], p)
	}

	if len(bm.segments) == 0 {
		return nil, fmt.Errorf("no coastline segments")
	}
	return bm, nil
}

// Segments returns the coastline polylines.
func (b *Basemap) Segments() [][]survey.GeoPoint { return b.segments }

// Extent returns the bounding box of all segments, which the heat grid is
// binned over so the two layers stay registered.
func (b *Basemap) Extent() survey.Extent {
	ext := survey.Extent{MinLon: 180, MaxLon: -180, MinLat: 90, MaxLat: -90}
	for _, seg := range b.segments {
		for _, p := range seg {
			if p.Lon < ext.MinLon {
				ext.MinLon = p.Lon
			}
			if p.Lon > ext.MaxLon {
				ext.MaxLon = p.Lon
			}
			if p.Lat < ext.MinLat {
				ext.MinLat = p.Lat
			}
			if p.Lat > ext.MaxLat {
				ext.MaxLat = p.Lat
			}
		}
	}
	return ext
}
