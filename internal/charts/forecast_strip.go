package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"breathewatch/internal/models"
)

// ForecastStripSnippet renders the multi-day forecast as a grouped bar
// chart, one series per pollutant that has projections
func (g *Generator) ForecastStripSnippet(data *models.AirQuality) (string, error) {
	if data == nil {
		return "", fmt.Errorf("data cannot be nil")
	}
	if len(data.Forecast) == 0 {
		return "", fmt.Errorf("no forecast data available")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "700px",
			Height: "320px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Forecast",
			Subtitle: "Projected daily pollutant averages",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Day",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Average",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	days := make([]string, len(data.Forecast))
	for i, day := range data.Forecast {
		days[i] = day.Day
	}
	bar.SetXAxis(days)

	for _, p := range models.Pollutants {
		series := make([]opts.BarData, len(data.Forecast))
		present := false
		for i, day := range data.Forecast {
			if avg := day.Averages[p]; avg != nil {
				series[i] = opts.BarData{Value: *avg}
				present = true
			} else {
				series[i] = opts.BarData{Value: nil}
			}
		}
		if present {
			bar.AddSeries(string(p), series)
		}
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render forecast chart: %w", err)
	}

	return buf.String(), nil
}
