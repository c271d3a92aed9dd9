package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, []string{"us", "ca"}, cfg.GeocodeCountries)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
	assert.Equal(t, "America/Indiana/Indianapolis", cfg.WeatherTimezone)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, 10000, cfg.SessionMax)
	assert.Equal(t, 24*time.Hour, cfg.SessionMaxAge)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("METRICS_ADDR", ":9191")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("GEOCODE_COUNTRIES", "US, CA , mx")
	t.Setenv("GEOCODE_CACHE_SIZE", "50")
	t.Setenv("WEATHER_TIMEZONE", "America/Chicago")
	t.Setenv("REFRESH_INTERVAL", "15m")
	t.Setenv("SESSION_MAX", "100")
	t.Setenv("SESSION_MAX_AGE", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":9191", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, []string{"us", "ca", "mx"}, cfg.GeocodeCountries)
	assert.Equal(t, 50, cfg.GeocodeCacheSize)
	assert.Equal(t, "America/Chicago", cfg.WeatherTimezone)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 100, cfg.SessionMax)
	assert.Equal(t, time.Hour, cfg.SessionMaxAge)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timezone", "WEATHER_TIMEZONE", "Mars/Olympus_Mons"},
		{"bad refresh interval", "REFRESH_INTERVAL", "often"},
		{"negative refresh interval", "REFRESH_INTERVAL", "-5m"},
		{"bad http timeout", "HTTP_TIMEOUT", "soon"},
		{"empty country list", "GEOCODE_COUNTRIES", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestTimezone(t *testing.T) {
	cfg := &AppConfig{WeatherTimezone: "America/Indiana/Indianapolis"}
	loc := cfg.Timezone()
	require.NotNil(t, loc)
	assert.Equal(t, "America/Indiana/Indianapolis", loc.String())
}
