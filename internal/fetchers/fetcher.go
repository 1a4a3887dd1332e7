package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"breathewatch/internal/logger"
	"breathewatch/internal/models"
)

// maxForecastDays caps the forecast strip
const maxForecastDays = 3

// maxAdvisories caps the advisories strip
const maxAdvisories = 5

// DataFetcher handles fetching data from the air quality provider and
// the agency advisories feed
type DataFetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	limiter *rate.Limiter
	feedURL string
	token   string
	log     *logger.Logger
}

// NewDataFetcher creates a new data fetcher instance
func NewDataFetcher(feedURL, token string) *DataFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &DataFetcher{
		client:  client,
		parser:  gofeed.NewParser(),
		limiter: rate.NewLimiter(rate.Every(time.Second), 4),
		feedURL: feedURL,
		token:   token,
		log:     logger.WithComponent("fetchers"),
	}
}

// FetchCity fetches air quality data for a place name query
func (f *DataFetcher) FetchCity(ctx context.Context, query string) (*models.AirQuality, error) {
	return f.fetchStation(ctx, url.PathEscape(query))
}

// FetchGeo fetches air quality data for the station nearest a coordinate pair
func (f *DataFetcher) FetchGeo(ctx context.Context, lat, lon float64) (*models.AirQuality, error) {
	return f.fetchStation(ctx, fmt.Sprintf("geo:%g;%g", lat, lon))
}

// fetchStation queries the provider feed for one station identifier
func (f *DataFetcher) fetchStation(ctx context.Context, station string) (*models.AirQuality, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("token", f.token).
		Get(f.feedURL + "/" + station + "/")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch air quality feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("air quality API returned status %d", resp.StatusCode())
	}

	var envelope models.FeedEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse air quality response: %w", err)
	}

	if envelope.Status != "ok" {
		return nil, fmt.Errorf("air quality provider rejected query %q: %s", station, envelope.ErrorMessage())
	}

	var data models.FeedData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse station payload: %w", err)
	}

	return normalizeFeed(&data, time.Now()), nil
}

// FetchAdvisories fetches agency bulletins from an RSS feed. An empty
// URL disables the strip.
func (f *DataFetcher) FetchAdvisories(ctx context.Context, rssURL string) ([]models.Advisory, error) {
	if rssURL == "" {
		return nil, nil
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(rssURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisories feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("advisories feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse advisories feed: %w", err)
	}

	var advisories []models.Advisory
	for _, item := range feed.Items {
		adv := models.Advisory{
			Title: item.Title,
			Link:  item.Link,
		}
		if item.PublishedParsed != nil {
			adv.Published = *item.PublishedParsed
		}
		advisories = append(advisories, adv)
	}

	sort.Slice(advisories, func(i, j int) bool {
		return advisories[i].Published.After(advisories[j].Published)
	})

	if len(advisories) > maxAdvisories {
		advisories = advisories[:maxAdvisories]
	}

	return advisories, nil
}

// normalizeFeed shapes the loosely-typed provider payload into the
// strongly-typed view data used by the rest of the service
func normalizeFeed(data *models.FeedData, now time.Time) *models.AirQuality {
	aq := &models.AirQuality{
		Index:     data.AQI.Ptr(),
		Place:     data.City.Name,
		Dominant:  data.DominentPol,
		Readings:  make(map[models.Pollutant]*float64, len(models.Pollutants)),
		FetchedAt: now,
	}

	for _, p := range models.Pollutants {
		if reading, ok := data.IAQI[string(p)]; ok {
			aq.Readings[p] = reading.V.Ptr()
		} else {
			aq.Readings[p] = nil
		}
	}

	aq.Forecast = normalizeForecast(data, now)
	return aq
}

// normalizeForecast merges the per-pollutant daily projections into
// per-day entries: today onward, deduplicated by day, at most three days
func normalizeForecast(data *models.FeedData, now time.Time) []models.ForecastDay {
	today := now.Format("2006-01-02")

	byDay := make(map[string]map[models.Pollutant]*float64)
	for _, p := range models.Pollutants {
		projections, ok := data.Forecast.Daily[string(p)]
		if !ok {
			continue
		}
		for _, proj := range projections {
			if proj.Day == "" || proj.Day < today {
				continue
			}
			if byDay[proj.Day] == nil {
				byDay[proj.Day] = make(map[models.Pollutant]*float64)
			}
			// First projection wins for a duplicated day
			if _, dup := byDay[proj.Day][p]; !dup {
				byDay[proj.Day][p] = proj.Avg.Ptr()
			}
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}

	forecast := make([]models.ForecastDay, 0, len(days))
	for _, day := range days {
		forecast = append(forecast, models.ForecastDay{Day: day, Averages: byDay[day]})
	}
	return forecast
}
