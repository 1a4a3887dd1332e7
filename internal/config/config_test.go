package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(cfg *Config) {
				if cfg.Port != "8982" {
					t.Errorf("Expected default Port to be '8982', got '%s'", cfg.Port)
				}
				if cfg.AQIFeedURL != "https://api.waqi.info/feed" {
					t.Errorf("Expected default AQIFeedURL, got '%s'", cfg.AQIFeedURL)
				}
				if cfg.AQIAPIToken != "demo" {
					t.Errorf("Expected default AQIAPIToken to be 'demo', got '%s'", cfg.AQIAPIToken)
				}
				if cfg.DefaultCity != "shanghai" {
					t.Errorf("Expected default DefaultCity to be 'shanghai', got '%s'", cfg.DefaultCity)
				}
				if cfg.Deployment != "local" {
					t.Errorf("Expected default Deployment to be 'local', got '%s'", cfg.Deployment)
				}
				if cfg.DataDir != "./data" {
					t.Errorf("Expected default DataDir to be './data', got '%s'", cfg.DataDir)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "text" {
					t.Errorf("Expected default LogFormat to be 'text', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"PORT":               "9100",
				"AQI_FEED_URL":       "https://aqi.example.com/feed",
				"AQI_API_TOKEN":      "secret-token",
				"ADVISORIES_RSS_URL": "https://alerts.example.com/rss",
				"DEFAULT_CITY":       "paris",
				"DEPLOYMENT":         "gcs",
				"DATA_DIR":           "/var/lib/breathewatch",
				"GCS_BUCKET":         "test-bucket",
				"ENVIRONMENT":        "production",
				"LOG_LEVEL":          "debug",
				"LOG_FORMAT":         "json",
			},
			validate: func(cfg *Config) {
				if cfg.Port != "9100" {
					t.Errorf("Expected Port to be '9100', got '%s'", cfg.Port)
				}
				if cfg.AQIFeedURL != "https://aqi.example.com/feed" {
					t.Errorf("Expected custom AQIFeedURL, got '%s'", cfg.AQIFeedURL)
				}
				if cfg.AQIAPIToken != "secret-token" {
					t.Errorf("Expected AQIAPIToken to be 'secret-token', got '%s'", cfg.AQIAPIToken)
				}
				if cfg.AdvisoriesRSSURL != "https://alerts.example.com/rss" {
					t.Errorf("Expected custom AdvisoriesRSSURL, got '%s'", cfg.AdvisoriesRSSURL)
				}
				if cfg.DefaultCity != "paris" {
					t.Errorf("Expected DefaultCity to be 'paris', got '%s'", cfg.DefaultCity)
				}
				if cfg.Deployment != "gcs" {
					t.Errorf("Expected Deployment to be 'gcs', got '%s'", cfg.Deployment)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if cfg.Environment != "production" {
					t.Errorf("Expected Environment to be 'production', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("Expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load(context.Background())
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			tt.validate(cfg)

			clearEnv()
		})
	}
}

func TestLoadWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// envconfig does not use the context for cancellation
	cfg, err := Load(ctx)
	if err != nil {
		t.Errorf("Expected no error with cancelled context, got: %v", err)
	}
	if cfg == nil {
		t.Error("Expected config to be loaded even with cancelled context")
	}
}

// Helper function to clear relevant environment variables
func clearEnv() {
	envVars := []string{
		"PORT", "AQI_FEED_URL", "AQI_API_TOKEN", "ADVISORIES_RSS_URL",
		"DEFAULT_CITY", "DEPLOYMENT", "DATA_DIR", "GCS_BUCKET",
		"ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}
