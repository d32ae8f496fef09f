package survey

import (
	"math"
	"reflect"
	"testing"
)

func rec(year int, ip, ml, dl int) LiteratureRecord {
	return LiteratureRecord{Year: year, Uses: [NumTechniques]int{ip, ml, dl}}
}

func TestCountByYear(t *testing.T) {
	records := []LiteratureRecord{
		rec(2018, 1, 0, 1),
		rec(2018, 1, 0, 0),
		rec(2019, 0, 1, 0),
	}

	tc := CountByYear(records)

	if !reflect.DeepEqual(tc.Years, []int{2018, 2019}) {
		t.Fatalf("Years = %v", tc.Years)
	}
	if tc.Counts[0] != [NumTechniques]int{2, 0, 1} {
		t.Errorf("2018 counts = %v, want [2 0 1]", tc.Counts[0])
	}
	if tc.Counts[1] != [NumTechniques]int{0, 1, 0} {
		t.Errorf("2019 counts = %v, want [0 1 0]", tc.Counts[1])
	}
}

func TestCountByYearDenseAxis(t *testing.T) {
	// A gap year must appear with explicit zeros, not be omitted.
	tc := CountByYear([]LiteratureRecord{
		rec(2015, 1, 0, 0),
		rec(2017, 0, 0, 1),
	})

	if !reflect.DeepEqual(tc.Years, []int{2015, 2016, 2017}) {
		t.Fatalf("Years = %v, want dense 2015..2017", tc.Years)
	}
	if tc.Counts[1] != [NumTechniques]int{} {
		t.Errorf("gap year counts = %v, want zeros", tc.Counts[1])
	}
}

func TestCountByYearSumsMatchRecords(t *testing.T) {
	records := []LiteratureRecord{
		rec(2016, 1, 1, 0),
		rec(2016, 0, 1, 1),
		rec(2017, 1, 0, 1),
		rec(2018, 0, 0, 1),
	}
	tc := CountByYear(records)

	// Per-year totals must equal the summed uses of records from that year.
	perYear := map[int]int{}
	grand := 0
	for _, r := range records {
		for t := 0; t < NumTechniques; t++ {
			perYear[r.Year] += r.Uses[t]
			grand += r.Uses[t]
		}
	}
	for i, y := range tc.Years {
		if tc.YearTotal(i) != perYear[y] {
			t.Errorf("YearTotal(%d) = %d, want %d", y, tc.YearTotal(i), perYear[y])
		}
	}
	if tc.Total() != grand {
		t.Errorf("Total = %d, want %d", tc.Total(), grand)
	}
}

func TestCountByYearDeterministic(t *testing.T) {
	records := []LiteratureRecord{
		rec(2019, 0, 1, 1),
		rec(2016, 1, 0, 0),
		rec(2018, 0, 0, 1),
	}
	a := CountByYear(records)

	// Reversed input order must produce the identical aggregate.
	reversed := []LiteratureRecord{records[2], records[1], records[0]}
	b := CountByYear(reversed)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregate depends on input order: %+v vs %+v", a, b)
	}
}

func TestCountByYearEmpty(t *testing.T) {
	tc := CountByYear(nil)
	if len(tc.Years) != 0 || tc.Total() != 0 {
		t.Errorf("empty input produced %+v", tc)
	}
}

func TestAfter(t *testing.T) {
	tc := CountByYear([]LiteratureRecord{
		rec(2015, 1, 0, 0),
		rec(2018, 0, 1, 0),
		rec(2020, 0, 0, 1),
	})

	testCases := []struct {
		name      string
		year      int
		wantYears []int
	}{
		{"mid_range", 2018, []int{2018, 2019, 2020}},
		{"before_first", 2000, []int{2015, 2016, 2017, 2018, 2019, 2020}},
		{"between_years", 2019, []int{2019, 2020}},
		{"after_last", 2021, nil},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			got := tc.After(c.year)
			if !reflect.DeepEqual(got.Years, c.wantYears) {
				t.Errorf("After(%d).Years = %v, want %v", c.year, got.Years, c.wantYears)
			}
			if len(got.Years) != len(got.Counts) {
				t.Errorf("Years/Counts length mismatch: %d vs %d", len(got.Years), len(got.Counts))
			}
		})
	}
}

func TestPercentages(t *testing.T) {
	tc := CountByYear([]LiteratureRecord{
		rec(2018, 2, 1, 1),
		rec(2019, 0, 1, 3),
	})

	pct := tc.Percentages()
	want := [NumTechniques]float64{25, 25, 50}
	for t2 := 0; t2 < NumTechniques; t2++ {
		if math.Abs(pct[t2]-want[t2]) > 1e-9 {
			t.Errorf("Percentages[%d] = %g, want %g", t2, pct[t2], want[t2])
		}
	}

	sum := 0.0
	for _, p := range pct {
		sum += p
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %g, want 100", sum)
	}
}

func TestPercentagesEmpty(t *testing.T) {
	pct := TechniqueCounts{}.Percentages()
	if pct != ([NumTechniques]float64{}) {
		t.Errorf("empty aggregate percentages = %v, want zeros", pct)
	}
}

func TestValues(t *testing.T) {
	tc := CountByYear([]LiteratureRecord{
		rec(2018, 2, 0, 0),
		rec(2019, 1, 0, 0),
	})
	got := tc.Values(ImageProcessing)
	if !reflect.DeepEqual(got, []float64{2, 1}) {
		t.Errorf("Values = %v, want [2 1]", got)
	}
}
