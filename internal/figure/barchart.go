package figure

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benthic-data/benthoviz/internal/survey"
)

// BarChartOptions configures the stacked technique bar chart. Each option
// is independent of the others.
type BarChartOptions struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	ShowLegend  bool
}

// DefaultBarChartOptions mirrors the published figure's styling.
func DefaultBarChartOptions() BarChartOptions {
	return BarChartOptions{
		XLabel:      "Year",
		YLabel:      "Number of Papers",
		LegendTitle: "Techniques",
		ShowLegend:  true,
	}
}

// StackedBars builds the per-year technique bar chart, one stacked series
// per category in the fixed category order.
func StackedBars(tc survey.TechniqueCounts, o BarChartOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	// An empty aggregate (header-only CSV) renders as bare axes.
	if len(tc.Years) == 0 {
		return p, nil
	}

	colors := Categorical(survey.NumTechniques)
	width := barWidth(len(tc.Years))

	var prev *plotter.BarChart
	var bars []*plotter.BarChart
	for t := 0; t < survey.NumTechniques; t++ {
		b, err := plotter.NewBarChart(plotter.Values(tc.Values(t)), width)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", survey.TechniqueLabels[t], err)
		}
		b.Color = colors[t]
		b.LineStyle.Width = 0
		if prev != nil {
			b.StackOn(prev)
		}
		p.Add(b)
		bars = append(bars, b)
		prev = b
	}

	labels := make([]string, len(tc.Years))
	for i, y := range tc.Years {
		labels[i] = strconv.Itoa(y)
	}
	p.NominalX(labels...)
	if len(labels) > 25 {
		p.X.Tick.Label.Rotation = -1.2
		p.X.Tick.Label.XAlign = draw.XLeft
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	if o.ShowLegend {
		if o.LegendTitle != "" {
			p.Legend.Add(o.LegendTitle, blankThumbnail{})
		}
		for t, b := range bars {
			p.Legend.Add(survey.TechniqueLabels[t], b)
		}
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
	}

	return p, nil
}

// barWidth scales bars to the year count so short and long time axes both
// fill the frame without overlapping groups.
func barWidth(years int) vg.Length {
	if years < 1 {
		years = 1
	}
	w := vg.Points(420 / float64(years))
	if w > vg.Points(36) {
		return vg.Points(36)
	}
	if w < vg.Points(3) {
		return vg.Points(3)
	}
	return w
}

// blankThumbnail renders nothing; it turns a legend entry into a heading.
type blankThumbnail struct{}

func (blankThumbnail) Thumbnail(*draw.Canvas) {}
