package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"breathewatch/internal/aqi"
	"breathewatch/internal/models"
)

// GenerateForecastPNG writes a bar chart of the projected dominant
// pollutant averages to forecast.png in the output directory and
// returns the file path. Used by snapshot export.
func (g *Generator) GenerateForecastPNG(data *models.AirQuality) (string, error) {
	if data == nil {
		return "", fmt.Errorf("data cannot be nil")
	}
	if len(data.Forecast) == 0 {
		return "", fmt.Errorf("no forecast data available")
	}

	pollutant := dominantForecastPollutant(data)
	if pollutant == "" {
		return "", fmt.Errorf("forecast has no projected averages")
	}

	var bars []chart.Value
	for _, day := range data.Forecast {
		avg := day.Averages[pollutant]
		if avg == nil {
			continue
		}
		value := *avg
		if value < 1 {
			value = 1 // zero-height bars render as missing
		}
		level := aqi.Classify(avg)
		bars = append(bars, chart.Value{
			Value: value,
			Label: day.Day,
			Style: chart.Style{
				FillColor:   hexToColor(level.Level.Color()),
				StrokeColor: hexToColor(level.Level.Color()),
			},
		})
	}

	if len(bars) == 0 {
		return "", fmt.Errorf("forecast has no projected averages")
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Projected %s Averages", pollutant.DisplayName()),
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   70,
				Right:  40,
				Bottom: 60,
			},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		Height:   360,
		Width:    640,
		BarWidth: 120,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Average",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
	}

	filename := filepath.Join(g.outputDir, "forecast.png")
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render forecast chart: %w", err)
	}

	return filename, nil
}

// dominantForecastPollutant picks the station's dominant pollutant when
// it has projections, otherwise the first pollutant that does
func dominantForecastPollutant(data *models.AirQuality) models.Pollutant {
	candidates := make([]models.Pollutant, 0, len(models.Pollutants)+1)
	if data.Dominant != "" {
		candidates = append(candidates, models.Pollutant(data.Dominant))
	}
	candidates = append(candidates, models.Pollutants...)

	for _, p := range candidates {
		for _, day := range data.Forecast {
			if day.Averages[p] != nil {
				return p
			}
		}
	}
	return ""
}

// hexToColor converts a #rrggbb string to a drawing color
func hexToColor(hex string) drawing.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return drawing.ColorBlack
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return drawing.ColorBlack
	}
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
