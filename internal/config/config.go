package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates the ambient settings of a collection run. Pipeline
// tunables such as counts and weights are compiled in and live elsewhere.
type Config struct {
	Logging LoggingConfig
	Tracing TracingConfig
	Sources SourcesConfig
	Output  OutputConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// TracingConfig controls OpenTelemetry export.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Environment string
}

// SourcesConfig describes how the live review sources are reached.
type SourcesConfig struct {
	HTTPTimeout      time.Duration
	AppStoreBaseURL  string
	PlayStoreBaseURL string
	Country          string
	Language         string
}

// OutputConfig locates the merged dataset.
type OutputConfig struct {
	Path string
}

const (
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultServiceName      = "bankreviews-collect"
	defaultTracingEndpoint  = "http://localhost:14268/api/traces"
	defaultHTTPTimeout      = 10 * time.Second
	defaultAppStoreBaseURL  = "https://itunes.apple.com"
	defaultPlayStoreBaseURL = "https://play.google.com"
	defaultCountry          = "vn"
	defaultLanguage         = "vi"
	defaultOutputPath       = "data/processed/merged_all_reviews.csv"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		Tracing: TracingConfig{
			Enabled:     parseBoolWithDefault("TRACING_ENABLED", false),
			Endpoint:    valueOrDefault("TRACING_ENDPOINT", defaultTracingEndpoint),
			ServiceName: valueOrDefault("TRACING_SERVICE_NAME", defaultServiceName),
			Environment: valueOrDefault("TRACING_ENVIRONMENT", "local"),
		},
		Sources: SourcesConfig{
			HTTPTimeout:      defaultHTTPTimeout,
			AppStoreBaseURL:  valueOrDefault("APPSTORE_BASE_URL", defaultAppStoreBaseURL),
			PlayStoreBaseURL: valueOrDefault("PLAYSTORE_BASE_URL", defaultPlayStoreBaseURL),
			Country:          valueOrDefault("STORE_COUNTRY", defaultCountry),
			Language:         valueOrDefault("STORE_LANGUAGE", defaultLanguage),
		},
		Output: OutputConfig{
			Path: valueOrDefault("OUTPUT_PATH", defaultOutputPath),
		},
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", d)
		}
		cfg.Sources.HTTPTimeout = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
