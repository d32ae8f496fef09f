package figure

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/benthic-data/benthoviz/internal/survey"
)

// TechniquesHTML writes an interactive stacked bar chart of the aggregate
// to w, for browsing alongside the static figure. Series share one stack
// so the interactive view matches the published chart.
func TechniquesHTML(tc survey.TechniqueCounts, title string, w io.Writer) error {
	years := make([]string, len(tc.Years))
	for i, y := range tc.Years {
		years[i] = strconv.Itoa(y)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Papers"}),
	)
	bar.SetXAxis(years)

	for t := 0; t < survey.NumTechniques; t++ {
		vals := tc.Values(t)
		data := make([]opts.BarData, len(vals))
		for i, v := range vals {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(survey.TechniqueLabels[t], data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "techniques"}))
	}

	return bar.Render(w)
}
