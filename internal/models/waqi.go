package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FeedEnvelope represents the top-level WAQI feed response. Data is a
// station payload when Status is "ok" and a bare error string otherwise.
type FeedEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// ErrorMessage extracts the provider error string from a non-ok envelope
func (e *FeedEnvelope) ErrorMessage() string {
	var msg string
	if err := json.Unmarshal(e.Data, &msg); err != nil || msg == "" {
		return "unknown provider error"
	}
	return msg
}

// FeedData represents the WAQI station payload
type FeedData struct {
	AQI         FlexFloat `json:"aqi"`
	StationID   int       `json:"idx"`
	DominentPol string    `json:"dominentpol"`

	City struct {
		Name string    `json:"name"`
		Geo  []float64 `json:"geo"`
	} `json:"city"`

	IAQI map[string]struct {
		V FlexFloat `json:"v"`
	} `json:"iaqi"`

	Time struct {
		S string `json:"s"`
	} `json:"time"`

	Forecast struct {
		Daily map[string][]DailyProjection `json:"daily"`
	} `json:"forecast"`
}

// DailyProjection is one day of projected values for a single pollutant
type DailyProjection struct {
	Day string    `json:"day"`
	Avg FlexFloat `json:"avg"`
	Max FlexFloat `json:"max"`
	Min FlexFloat `json:"min"`
}

// FlexFloat is an optional numeric value tolerant of the loose typing in
// the feed: numbers, numeric strings, "-", null, and absent fields all
// parse without error. Anything non-numeric decodes as "no reading".
type FlexFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Value = 0
	f.Valid = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Quoted values: the feed sometimes reports "75" or "-"
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.Value = v
			f.Valid = true
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as an optional pointer, nil when no reading
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
