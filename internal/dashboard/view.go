package dashboard

import (
	"html/template"

	"breathewatch/internal/aqi"
	"breathewatch/internal/models"
)

// View is the explicit view-model record for one rendered dashboard.
// All page state lives here instead of in ambient variables.
type View struct {
	Query      string
	Place      string
	Index      *float64
	Assessment aqi.Assessment
	Cigarettes int
	Readings   []PollutantRow
	Forecast   []models.ForecastDay
	Advisories []models.Advisory
	Favorites  []string
	IsFavorite bool
	Err        string

	GeneratedAt string
	Version     string

	// Rendered fragments injected by the builder
	GaugeHTML    template.HTML
	BarsHTML     template.HTML
	ForecastHTML template.HTML
	GuidanceHTML template.HTML
}

// PollutantRow is one row of the pollutant table
type PollutantRow struct {
	Key      models.Pollutant
	Name     string
	Value    *float64
	Reported bool
}

// HasIndex reports whether the station provided an aggregate reading
func (v *View) HasIndex() bool {
	return v.Index != nil
}
