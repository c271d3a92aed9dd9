package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds all service settings, populated from environment variables.
type AppConfig struct {
	Port        string
	MetricsAddr string
	LogLevel    string
	LogFormat   string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Forward geocoding (Nominatim-compatible).
	GeocodeBaseURL   string
	GeocodeCountries []string
	GeocodeCacheSize int

	// Reverse geocoding (BigDataCloud-compatible).
	ReverseGeocodeBaseURL string

	// Weather provider (Open-Meteo-compatible).
	WeatherBaseURL  string
	WeatherTimezone string

	// RefreshInterval re-fetches observations for live sessions in the
	// background. Zero disables the job.
	RefreshInterval time.Duration

	// Session retention.
	SessionMax    int           // max live sessions (0 = unlimited)
	SessionMaxAge time.Duration // idle age before eviction (0 = unlimited)
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        getenvDefault("PORT", "8080"),
		MetricsAddr: getenvDefault("METRICS_ADDR", ":9090"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		LogFormat:   getenvDefault("LOG_FORMAT", "json"),

		GeocodeBaseURL:        os.Getenv("GEOCODE_BASE_URL"),
		GeocodeCacheSize:      getenvInt("GEOCODE_CACHE_SIZE", 1000),
		ReverseGeocodeBaseURL: os.Getenv("REVERSE_GEOCODE_BASE_URL"),
		WeatherBaseURL:        os.Getenv("WEATHER_BASE_URL"),
		WeatherTimezone:       getenvDefault("WEATHER_TIMEZONE", "America/Indiana/Indianapolis"),

		SessionMax: getenvInt("SESSION_MAX", 10000),
	}

	// Country scope for city search; the deployment targets the US and Canada.
	countries := getenvDefault("GEOCODE_COUNTRIES", "us,ca")
	for _, c := range strings.Split(countries, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			cfg.GeocodeCountries = append(cfg.GeocodeCountries, strings.ToLower(c))
		}
	}
	if len(cfg.GeocodeCountries) == 0 {
		return nil, fmt.Errorf("GEOCODE_COUNTRIES must name at least one country code")
	}

	httpTimeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = httpTimeout

	refresh, err := getenvDuration("REFRESH_INTERVAL", "0s")
	if err != nil {
		return nil, err
	}
	if refresh < 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	cfg.RefreshInterval = refresh

	maxAge, err := getenvDuration("SESSION_MAX_AGE", "24h")
	if err != nil {
		return nil, err
	}
	cfg.SessionMaxAge = maxAge

	if cfg.GeocodeCacheSize <= 0 {
		return nil, fmt.Errorf("GEOCODE_CACHE_SIZE must be positive")
	}
	if _, err := time.LoadLocation(cfg.WeatherTimezone); err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Timezone returns the parsed deployment time zone. Load has already
// validated the name.
func (c *AppConfig) Timezone() *time.Location {
	loc, err := time.LoadLocation(c.WeatherTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
