package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the air quality dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Air quality data provider (WAQI-compatible feed API)
	AQIFeedURL  string `env:"AQI_FEED_URL,default=https://api.waqi.info/feed"`
	AQIAPIToken string `env:"AQI_API_TOKEN,default=demo"`

	// Agency advisories RSS feed (empty disables the advisories strip)
	AdvisoriesRSSURL string `env:"ADVISORIES_RSS_URL,default=https://feeds.airnowapi.org/rss/actionday/140.xml"`

	// Dashboard configuration
	DefaultCity string `env:"DEFAULT_CITY,default=shanghai"`

	// Storage configuration
	Deployment string `env:"DEPLOYMENT,default=local"`
	DataDir    string `env:"DATA_DIR,default=./data"`
	GCSBucket  string `env:"GCS_BUCKET"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
