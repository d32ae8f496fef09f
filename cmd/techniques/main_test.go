package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/benthic-data/benthoviz/internal/fsutil"
	"github.com/benthic-data/benthoviz/internal/monitoring"
	"github.com/benthic-data/benthoviz/internal/survey"
)

func testConfig() config {
	return config{
		input:       "techniques.csv",
		output:      "out",
		filename:    "techniques",
		format:      "png",
		dpi:         96,
		figSize:     "4,2",
		xlabel:      "Year",
		ylabel:      "Number of Papers",
		legendTitle: "Techniques",
	}
}

func seedFS(t *testing.T, contents string) *fsutil.MemoryFileSystem {
	t.Helper()
	m := fsutil.NewMemoryFileSystem()
	if err := m.WriteFile("techniques.csv", []byte(contents), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return m
}

const validCSV = "Year,Image_Processing,Machine_Learning,Deep_Learning\n" +
	"2018,1,0,0\n" +
	"2018,1,0,0\n" +
	"2019,0,1,0\n"

func TestRunWritesFigure(t *testing.T) {
	monitoring.SetWarnf(nil)
	m := seedFS(t, validCSV)

	var stdout bytes.Buffer
	if err := run(testConfig(), m, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := m.ReadFile("out/techniques.png")
	if err != nil {
		t.Fatalf("output figure missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	// Two IP uses of three total and one ML use.
	out := stdout.String()
	if !strings.Contains(out, "Image Processing: 66.67%") {
		t.Errorf("stats missing image processing share:\n%s", out)
	}
	if !strings.Contains(out, "Machine Learning: 33.33%") {
		t.Errorf("stats missing machine learning share:\n%s", out)
	}
}

func TestRunNoStats(t *testing.T) {
	monitoring.SetWarnf(nil)
	m := seedFS(t, validCSV)

	cfg := testConfig()
	cfg.noPrintStats = true

	var stdout bytes.Buffer
	if err := run(cfg, m, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stats output, got:\n%s", stdout.String())
	}
}

func TestRunAfterYearOnly(t *testing.T) {
	monitoring.SetWarnf(nil)
	m := seedFS(t, validCSV)

	cfg := testConfig()
	cfg.afterYearOnly = 2019

	var stdout bytes.Buffer
	if err := run(cfg, m, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Stats after 2019:") {
		t.Errorf("missing window header:\n%s", out)
	}
	if !strings.Contains(out, "Machine Learning: 100.00%") {
		t.Errorf("window not applied:\n%s", out)
	}
}

func TestRunMissingColumnWritesNothing(t *testing.T) {
	monitoring.SetWarnf(nil)
	m := seedFS(t, "Year,Image_Processing,Machine_Learning\n2018,1,0\n")

	err := run(testConfig(), m, &bytes.Buffer{})
	if !errors.Is(err, survey.ErrMissingColumn) {
		t.Fatalf("got error %v, want ErrMissingColumn", err)
	}
	if m.Exists("out/techniques.png") {
		t.Error("output file written despite a parse error")
	}
}

func TestRunMissingInput(t *testing.T) {
	m := fsutil.NewMemoryFileSystem()
	if err := run(testConfig(), m, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if m.Exists("out/techniques.png") {
		t.Error("output file written despite a missing input")
	}
}

func TestRunWritesHTML(t *testing.T) {
	monitoring.SetWarnf(nil)
	m := seedFS(t, validCSV)

	cfg := testConfig()
	cfg.htmlFile = "techniques.html"
	cfg.noPrintStats = true

	if err := run(cfg, m, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := m.ReadFile("out/techniques.html")
	if err != nil {
		t.Fatalf("HTML output missing: %v", err)
	}
	if !bytes.Contains(data, []byte("Machine Learning")) {
		t.Error("HTML output lacks the series labels")
	}
}

func TestParseFigSize(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantW     vg.Length
		wantH     vg.Length
		expectErr bool
	}{
		{"default", "10,5", 10 * vg.Inch, 5 * vg.Inch, false},
		{"with_spaces", " 8 , 4 ", 8 * vg.Inch, 4 * vg.Inch, false},
		{"fractional", "7.5,3.5", 7.5 * vg.Inch, 3.5 * vg.Inch, false},
		{"missing_height", "10", 0, 0, true},
		{"too_many_parts", "10,5,2", 0, 0, true},
		{"non_numeric", "wide,tall", 0, 0, true},
		{"zero_dimension", "0,5", 0, 0, true},
		{"negative_dimension", "10,-5", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := parseFigSize(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFigSize(%q): %v", tc.input, err)
			}
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("parseFigSize(%q) = (%v, %v), want (%v, %v)", tc.input, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}
