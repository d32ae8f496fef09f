package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benthic-data/benthoviz/internal/fsutil"
	"github.com/benthic-data/benthoviz/internal/monitoring"
)

// Column names expected in the lat/long CSV. The supplementary data ships
// coordinates rounded to protect sensitive survey sites, hence the names.
const (
	latColumn = "Latitude_rounded"
	lonColumn = "Longitude_rounded"
)

const yearColumn = "Year"

// ReadTechniques parses the techniques summary CSV at path. It returns the
// valid records and the number of rows skipped by validation. Rows with a
// non-integer field or an implausible year are skipped with a warning; a
// non-empty file where no row survives is an ErrBadRecord (the file is the
// wrong shape, not merely dirty).
func ReadTechniques(fsys fsutil.FileSystem, path string) ([]LiteratureRecord, int, error) {
	rows, header, err := readAll(fsys, path)
	if err != nil {
		return nil, 0, err
	}

	yearIdx, err := columnIndex(header, path, yearColumn)
	if err != nil {
		return nil, 0, err
	}
	var techIdx [NumTechniques]int
	for t, name := range techniqueColumns {
		techIdx[t], err = columnIndex(header, path, name)
		if err != nil {
			return nil, 0, err
		}
	}

	var records []LiteratureRecord
	skipped := 0
	for i, row := range rows {
		rec, reason := parseTechniquesRow(row, yearIdx, techIdx)
		if reason != "" {
			monitoring.Warnf("%s: skipping row %d: %s", path, i+2, reason)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 && len(rows) > 0 {
		return nil, skipped, fmt.Errorf("%s: %w: all %d rows failed validation", path, ErrBadRecord, len(rows))
	}
	return records, skipped, nil
}

func parseTechniquesRow(row []string, yearIdx int, techIdx [NumTechniques]int) (LiteratureRecord, string) {
	var rec LiteratureRecord

	year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
	if err != nil {
		return rec, fmt.Sprintf("year %q is not an integer", row[yearIdx])
	}
	if !PlausibleYear(year) {
		return rec, fmt.Sprintf("year %d outside plausible publication range", year)
	}
	rec.Year = year

	for t, idx := range techIdx {
		n, err := strconv.Atoi(strings.TrimSpace(row[idx]))
		if err != nil || n < 0 {
			return rec, fmt.Sprintf("%s value %q is not a non-negative integer", techniqueColumns[t], row[idx])
		}
		rec.Uses[t] = n
	}
	return rec, ""
}

// ReadGeoPoints parses the lat/long CSV at path. Invalid coordinates are
// skipped with a warning and counted; an empty result is not an error (the
// heatmap degrades to a basemap-only figure).
func ReadGeoPoints(fsys fsutil.FileSystem, path string) ([]GeoPoint, int, error) {
	rows, header, err := readAll(fsys, path)
	if err != nil {
		return nil, 0, err
	}

	latIdx, err := columnIndex(header, path, latColumn)
	if err != nil {
		return nil, 0, err
	}
	lonIdx, err := columnIndex(header, path, lonColumn)
	if err != nil {
		return nil, 0, err
	}

	var points []GeoPoint
	skipped := 0
	for i, row := range rows {
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
		if latErr != nil || lonErr != nil {
			monitoring.Warnf("%s: skipping row %d: non-numeric coordinate (%q, %q)", path, i+2, row[latIdx], row[lonIdx])
			skipped++
			continue
		}
		p := GeoPoint{Lat: lat, Lon: lon}
		if !p.Valid() {
			monitoring.Warnf("%s: skipping row %d: coordinate (%g, %g) out of range", path, i+2, lat, lon)
			skipped++
			continue
		}
		points = append(points, p)
	}
	return points, skipped, nil
}

// readAll opens path and returns its data rows and header. csv.Reader
// enforces a consistent field count per row, so ragged rows surface here as
// an ErrBadRecord rather than an index panic later.
func readAll(fsys fsutil.FileSystem, path string) (rows [][]string, header []string, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err = r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%s: %w: file is empty", path, ErrBadRecord)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, ErrBadRecord, err)
	}

	rows, err = r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, ErrBadRecord, err)
	}
	return rows, header, nil
}

// columnIndex resolves a required column by exact header name, in any
// position. There is no schema negotiation: a near-miss name is a missing
// column.
func columnIndex(header []string, path, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %w: %s", path, ErrMissingColumn, name)
}
