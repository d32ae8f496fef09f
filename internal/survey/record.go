// Package survey loads and aggregates the literature review datasets: the
// per-paper techniques summary and the image-data origin lat/long points.
package survey

import (
	"math"
	"time"
)

// Technique indices into LiteratureRecord.Uses and TechniqueCounts columns.
// The order is the CSV column order and is the render order for every
// figure, so reruns produce identical output.
const (
	ImageProcessing = iota
	MachineLearning
	DeepLearning
	NumTechniques
)

// TechniqueLabels are the display names for each technique category.
var TechniqueLabels = [NumTechniques]string{
	"Image Processing",
	"Machine Learning",
	"Deep Learning",
}

// techniqueColumns are the CSV header names for each technique category.
var techniqueColumns = [NumTechniques]string{
	"Image_Processing",
	"Machine_Learning",
	"Deep_Learning",
}

// LiteratureRecord is one row of the techniques summary CSV: a publication
// year and a usage count per technique category. A paper that applies
// several techniques counts once under each.
type LiteratureRecord struct {
	Year int
	Uses [NumTechniques]int
}

// minPlausibleYear is the lower bound for publication years. The reviewed
// corpus starts in the 1980s; anything earlier is a data entry error.
const minPlausibleYear = 1950

// maxPlausibleYear allows papers dated up to next year (in-press entries).
func maxPlausibleYear() int {
	return time.Now().Year() + 1
}

// PlausibleYear reports whether year falls in the accepted publication range.
func PlausibleYear(year int) bool {
	return year >= minPlausibleYear && year <= maxPlausibleYear()
}

// GeoPoint is one row of the lat/long CSV: the geographic origin of a
// training image dataset.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point is a finite WGS 84 coordinate.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) ||
		math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}
