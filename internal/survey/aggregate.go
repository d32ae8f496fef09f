package survey

import "gonum.org/v1/gonum/floats"

// TechniqueCounts is the per-year, per-category aggregate consumed by the
// renderers. Years form a dense ascending axis from the earliest to the
// latest observed year; a (year, technique) pair with no papers holds an
// explicit zero so bar groups stay aligned across categories.
type TechniqueCounts struct {
	Years  []int
	Counts [][NumTechniques]int // Counts[i][t] is the tally for Years[i]
}

// CountByYear aggregates records into TechniqueCounts. The zero value is
// returned for an empty record set.
func CountByYear(records []LiteratureRecord) TechniqueCounts {
	if len(records) == 0 {
		return TechniqueCounts{}
	}

	minYear, maxYear := records[0].Year, records[0].Year
	for _, r := range records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}

	tc := TechniqueCounts{
		Years:  make([]int, maxYear-minYear+1),
		Counts: make([][NumTechniques]int, maxYear-minYear+1),
	}
	for i := range tc.Years {
		tc.Years[i] = minYear + i
	}
	for _, r := range records {
		i := r.Year - minYear
		for t := 0; t < NumTechniques; t++ {
			tc.Counts[i][t] += r.Uses[t]
		}
	}
	return tc
}

// After returns the aggregate restricted to years >= year. Used for the
// recent-statistics window; the full aggregate is still what gets plotted.
func (tc TechniqueCounts) After(year int) TechniqueCounts {
	for i, y := range tc.Years {
		if y >= year {
			return TechniqueCounts{Years: tc.Years[i:], Counts: tc.Counts[i:]}
		}
	}
	return TechniqueCounts{}
}

// YearTotal returns the summed technique uses for the year at index i.
func (tc TechniqueCounts) YearTotal(i int) int {
	total := 0
	for t := 0; t < NumTechniques; t++ {
		total += tc.Counts[i][t]
	}
	return total
}

// TechniqueTotal returns the total uses of technique t across all years.
func (tc TechniqueCounts) TechniqueTotal(t int) int {
	total := 0
	for i := range tc.Counts {
		total += tc.Counts[i][t]
	}
	return total
}

// Total returns the grand total of technique uses.
func (tc TechniqueCounts) Total() int {
	total := 0
	for t := 0; t < NumTechniques; t++ {
		total += tc.TechniqueTotal(t)
	}
	return total
}

// Values returns the per-year counts for technique t as floats, in year
// order, ready for a plotter series.
func (tc TechniqueCounts) Values(t int) []float64 {
	vals := make([]float64, len(tc.Counts))
	for i := range tc.Counts {
		vals[i] = float64(tc.Counts[i][t])
	}
	return vals
}

// Percentages returns each technique's share of the grand total, in
// percent. All zeros when the aggregate is empty.
func (tc TechniqueCounts) Percentages() [NumTechniques]float64 {
	var pct [NumTechniques]float64

	totals := make([]float64, NumTechniques)
	for t := 0; t < NumTechniques; t++ {
		totals[t] = float64(tc.TechniqueTotal(t))
	}
	grand := floats.Sum(totals)
	if grand == 0 {
		return pct
	}
	for t := 0; t < NumTechniques; t++ {
		pct[t] = totals[t] / grand * 100
	}
	return pct
}
