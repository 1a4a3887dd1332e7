package models

import "time"

// Pollutant identifies a substance measured by monitoring stations
type Pollutant string

const (
	PM25 Pollutant = "pm25"
	PM10 Pollutant = "pm10"
	NO2  Pollutant = "no2"
	SO2  Pollutant = "so2"
	CO   Pollutant = "co"
	O3   Pollutant = "o3"
)

// Pollutants lists all tracked pollutants in display order
var Pollutants = []Pollutant{PM25, PM10, NO2, SO2, CO, O3}

// DisplayName returns the human-readable name of the pollutant
func (p Pollutant) DisplayName() string {
	switch p {
	case PM25:
		return "Fine Particulate (PM2.5)"
	case PM10:
		return "Coarse Particulate (PM10)"
	case NO2:
		return "Nitrogen Dioxide (NO₂)"
	case SO2:
		return "Sulfur Dioxide (SO₂)"
	case CO:
		return "Carbon Monoxide (CO)"
	case O3:
		return "Ozone (O₃)"
	default:
		return string(p)
	}
}

// AirQuality represents normalized air quality data for one place.
// Index and pollutant readings are nil when the station did not report
// them, which is distinct from a zero reading.
type AirQuality struct {
	Index     *float64               `json:"index"`
	Place     string                 `json:"place"`
	Dominant  string                 `json:"dominant_pollutant,omitempty"`
	Readings  map[Pollutant]*float64 `json:"readings"`
	Forecast  []ForecastDay          `json:"forecast,omitempty"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// ForecastDay holds projected daily averages per pollutant for one
// calendar day (YYYY-MM-DD)
type ForecastDay struct {
	Day      string                 `json:"day"`
	Averages map[Pollutant]*float64 `json:"averages"`
}

// Advisory represents one agency bulletin from the advisories feed
type Advisory struct {
	Title     string    `json:"title"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published"`
}
