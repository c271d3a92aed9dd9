package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/JavaFXpert/fish-bite-predictor/internal/observability"
	"github.com/JavaFXpert/fish-bite-predictor/internal/resilient"
)

const defaultBigDataCloudURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// BigDataCloudClient implements Reverse against the BigDataCloud free
// reverse-geocoding endpoint (no API key required).
type BigDataCloudClient struct {
	baseURL string
	httpCfg resilient.ClientConfig
	circuit *gobreaker.CircuitBreaker
	metrics *observability.Metrics
}

// NewBigDataCloudClient creates a reverse geocoder. baseURL may be empty to
// use the public endpoint.
func NewBigDataCloudClient(client *http.Client, baseURL string, metrics *observability.Metrics) *BigDataCloudClient {
	if baseURL == "" {
		baseURL = defaultBigDataCloudURL
	}
	return &BigDataCloudClient{
		baseURL: baseURL,
		httpCfg: resilient.ClientConfig{
			Client:  client,
			Backoff: resilient.DefaultBackoff,
		},
		circuit: resilient.NewBreaker("bigdatacloud"),
		metrics: metrics,
	}
}

// Lookup resolves coordinates to a locality and region. Callers treat any
// failure as non-fatal and fall back to a coordinate label.
func (c *BigDataCloudClient) Lookup(ctx context.Context, lat, lon float64) (Place, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("localityLanguage", "en")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := resilient.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("reverse", "error").Inc()
		return Place{}, fmt.Errorf("bigdatacloud request: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Locality             string `json:"locality"`
		City                 string `json:"city"`
		PrincipalSubdivision string `json:"principalSubdivision"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("reverse", "error").Inc()
		return Place{}, fmt.Errorf("bigdatacloud decode: %w", err)
	}

	locality := payload.Locality
	if locality == "" {
		locality = payload.City
	}
	if locality == "" {
		c.metrics.GeocodeRequests.WithLabelValues("reverse", "empty").Inc()
		return Place{}, fmt.Errorf("bigdatacloud: no locality for %.4f,%.4f", lat, lon)
	}

	c.metrics.GeocodeRequests.WithLabelValues("reverse", "success").Inc()
	return Place{
		Locality: locality,
		Region:   payload.PrincipalSubdivision,
	}, nil
}
