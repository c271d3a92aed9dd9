package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/JavaFXpert/fish-bite-predictor/internal/observability"
	"github.com/JavaFXpert/fish-bite-predictor/internal/resilient"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

const defaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements weather.Provider against the Open-Meteo
// forecast API. Open-Meteo needs no API key; units and time zone are fixed
// by the request so downstream derivation is deterministic.
type OpenMeteoProvider struct {
	name     string
	baseURL  string
	timezone string
	httpCfg  resilient.ClientConfig
	circuit  *gobreaker.CircuitBreaker
	metrics  *observability.Metrics
}

// NewOpenMeteoProvider creates the provider. baseURL may be empty to use the
// public API endpoint. timezone is the IANA zone sent with every request so
// the hourly series is bucketed consistently for the deployment region.
func NewOpenMeteoProvider(client *http.Client, baseURL, timezone string, metrics *observability.Metrics) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = defaultOpenMeteoURL
	}
	return &OpenMeteoProvider{
		name:     "openmeteo",
		baseURL:  baseURL,
		timezone: timezone,
		httpCfg: resilient.ClientConfig{
			Client:  client,
			Backoff: resilient.DefaultBackoff,
		},
		circuit: resilient.NewBreaker("openmeteo"),
		metrics: metrics,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Fetch retrieves current conditions plus the hourly surface pressure series
// for the given coordinates.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, coords weather.Coordinates) (weather.Reading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", coords.Lat))
		values.Set("longitude", fmt.Sprintf("%f", coords.Lon))
		values.Set("current", "temperature_2m,precipitation,cloud_cover,wind_speed_10m,surface_pressure")
		values.Set("hourly", "surface_pressure")
		values.Set("timezone", p.timezone)
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
		values.Set("precipitation_unit", "inch")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	start := time.Now()
	resp, err := resilient.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	p.metrics.WeatherDuration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.WeatherFetches.WithLabelValues(p.name, "error").Inc()
		return weather.Reading{}, fmt.Errorf("openmeteo request: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Time            string  `json:"time"`
			Temperature2m   float64 `json:"temperature_2m"`
			Precipitation   float64 `json:"precipitation"`
			CloudCover      float64 `json:"cloud_cover"`
			WindSpeed10m    float64 `json:"wind_speed_10m"`
			SurfacePressure float64 `json:"surface_pressure"`
		} `json:"current"`
		Hourly struct {
			SurfacePressure []float64 `json:"surface_pressure"`
		} `json:"hourly"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		p.metrics.WeatherFetches.WithLabelValues(p.name, "error").Inc()
		return weather.Reading{}, fmt.Errorf("openmeteo decode: %w", err)
	}

	// Current time arrives zone-local without an offset, e.g. "2026-08-31T14:45".
	ts, err := time.Parse("2006-01-02T15:04", payload.Current.Time)
	if err != nil {
		ts = time.Now().UTC()
	}

	p.metrics.WeatherFetches.WithLabelValues(p.name, "success").Inc()

	return weather.Reading{
		ProviderName:      p.name,
		Timestamp:         ts,
		AirTempF:          payload.Current.Temperature2m,
		PrecipIn:          payload.Current.Precipitation,
		CloudCoverPct:     payload.Current.CloudCover,
		WindSpeedMph:      payload.Current.WindSpeed10m,
		PressureHpa:       payload.Current.SurfacePressure,
		HourlyPressureHpa: payload.Hourly.SurfacePressure,
	}, nil
}
