package fetchers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"breathewatch/internal/models"
)

func TestNewDataFetcher(t *testing.T) {
	fetcher := NewDataFetcher("https://api.example.com/feed", "token")
	if fetcher == nil {
		t.Fatal("NewDataFetcher returned nil")
	}
	if fetcher.client == nil {
		t.Error("HTTP client not initialized")
	}
	if fetcher.parser == nil {
		t.Error("RSS parser not initialized")
	}
	if fetcher.limiter == nil {
		t.Error("Rate limiter not initialized")
	}
}

func TestFetchCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("token"); got != "test-token" {
			t.Errorf("Expected token query param, got %q", got)
		}
		if !strings.HasPrefix(r.URL.Path, "/feed/shanghai/") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"data": {
				"aqi": 75,
				"city": {"name": "Shanghai"},
				"dominentpol": "pm25",
				"iaqi": {"pm25": {"v": 75}, "pm10": {"v": 45}}
			}
		}`))
	}))
	defer server.Close()

	fetcher := NewDataFetcher(server.URL+"/feed", "test-token")
	aq, err := fetcher.FetchCity(context.Background(), "shanghai")
	if err != nil {
		t.Fatalf("FetchCity failed: %v", err)
	}

	if aq.Index == nil || *aq.Index != 75 {
		t.Errorf("Expected index 75, got %v", aq.Index)
	}
	if aq.Place != "Shanghai" {
		t.Errorf("Expected place 'Shanghai', got %q", aq.Place)
	}
	if aq.Readings[models.PM25] == nil || *aq.Readings[models.PM25] != 75 {
		t.Errorf("Expected pm25 reading 75, got %v", aq.Readings[models.PM25])
	}
	if aq.Readings[models.O3] != nil {
		t.Error("Expected unreported o3 to be nil")
	}
}

func TestFetchGeoQueryFormat(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "ok", "data": {"aqi": 20, "city": {"name": "Nearby"}}}`))
	}))
	defer server.Close()

	fetcher := NewDataFetcher(server.URL+"/feed", "t")
	if _, err := fetcher.FetchGeo(context.Background(), 31.2, 121.4); err != nil {
		t.Fatalf("FetchGeo failed: %v", err)
	}

	if !strings.Contains(gotPath, "geo:31.2;121.4") {
		t.Errorf("Expected geo:<lat>;<lon> path segment, got %q", gotPath)
	}
}

func TestFetchStationProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "data": "Unknown station"}`))
	}))
	defer server.Close()

	fetcher := NewDataFetcher(server.URL+"/feed", "t")
	_, err := fetcher.FetchCity(context.Background(), "atlantis")
	if err == nil {
		t.Fatal("Expected error for provider rejection")
	}
	if !strings.Contains(err.Error(), "Unknown station") {
		t.Errorf("Expected provider message in error, got: %v", err)
	}
}

func TestFetchStationHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewDataFetcher(server.URL+"/feed", "t")
	fetcher.client.SetRetryCount(0)
	if _, err := fetcher.FetchCity(context.Background(), "paris"); err == nil {
		t.Fatal("Expected error for HTTP 503")
	}
}

func TestNormalizeForecast(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	payload := `{
		"aqi": 75,
		"city": {"name": "Shanghai"},
		"forecast": {
			"daily": {
				"pm25": [
					{"day": "2026-08-28", "avg": 99},
					{"day": "2026-08-29", "avg": 80},
					{"day": "2026-08-29", "avg": 81},
					{"day": "2026-08-30", "avg": 70},
					{"day": "2026-08-31", "avg": 60},
					{"day": "2026-09-01", "avg": 50}
				],
				"o3": [
					{"day": "2026-08-29", "avg": 30}
				]
			}
		}
	}`

	var data models.FeedData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("Failed to parse payload: %v", err)
	}

	forecast := normalizeForecast(&data, now)

	if len(forecast) != 3 {
		t.Fatalf("Expected 3 forecast days, got %d", len(forecast))
	}
	if forecast[0].Day != "2026-08-29" {
		t.Errorf("Expected first day 2026-08-29, got %s", forecast[0].Day)
	}
	if forecast[2].Day != "2026-08-31" {
		t.Errorf("Expected last kept day 2026-08-31, got %s", forecast[2].Day)
	}

	// Past days dropped
	for _, day := range forecast {
		if day.Day < "2026-08-29" {
			t.Errorf("Past day %s should have been dropped", day.Day)
		}
	}

	// Duplicate day entries keep the first projection
	if avg := forecast[0].Averages[models.PM25]; avg == nil || *avg != 80 {
		t.Errorf("Expected pm25 avg 80 for duplicated day, got %v", avg)
	}
	if avg := forecast[0].Averages[models.O3]; avg == nil || *avg != 30 {
		t.Errorf("Expected o3 avg 30 merged into same day, got %v", avg)
	}
}

func TestNormalizeFeedNoReading(t *testing.T) {
	var data models.FeedData
	if err := json.Unmarshal([]byte(`{"aqi": "-", "city": {"name": "Quiet Town"}}`), &data); err != nil {
		t.Fatalf("Failed to parse payload: %v", err)
	}

	aq := normalizeFeed(&data, time.Now())
	if aq.Index != nil {
		t.Errorf("Expected nil index for '-' reading, got %v", *aq.Index)
	}
	for _, p := range models.Pollutants {
		if aq.Readings[p] != nil {
			t.Errorf("Expected nil reading for %s", p)
		}
	}
}

func TestFetchAdvisories(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Air Quality Advisories</title>
    <item>
      <title>Action Day declared for ozone</title>
      <link>https://alerts.example.com/1</link>
      <pubDate>Fri, 28 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Particulates advisory lifted</title>
      <link>https://alerts.example.com/2</link>
      <pubDate>Sat, 29 Aug 2026 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer server.Close()

	fetcher := NewDataFetcher("https://unused.example.com/feed", "t")
	advisories, err := fetcher.FetchAdvisories(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchAdvisories failed: %v", err)
	}

	if len(advisories) != 2 {
		t.Fatalf("Expected 2 advisories, got %d", len(advisories))
	}
	// Newest first
	if advisories[0].Title != "Particulates advisory lifted" {
		t.Errorf("Expected newest advisory first, got %q", advisories[0].Title)
	}
}

func TestFetchAdvisoriesEmptyURL(t *testing.T) {
	fetcher := NewDataFetcher("https://unused.example.com/feed", "t")
	advisories, err := fetcher.FetchAdvisories(context.Background(), "")
	if err != nil {
		t.Errorf("Empty URL should not error, got: %v", err)
	}
	if advisories != nil {
		t.Errorf("Expected nil advisories for empty URL, got %v", advisories)
	}
}
