package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/JavaFXpert/fish-bite-predictor/internal/observability"
	"github.com/JavaFXpert/fish-bite-predictor/internal/resilient"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// NominatimClient implements Forward against the OpenStreetMap Nominatim
// search API. Searches are restricted to the deployment's country scope.
type NominatimClient struct {
	baseURL   string
	countries []string
	httpCfg   resilient.ClientConfig
	circuit   *gobreaker.CircuitBreaker
	metrics   *observability.Metrics
}

// NewNominatimClient creates a forward geocoder. baseURL may be empty to use
// the public endpoint; countries is the countrycodes scope (e.g. us, ca).
func NewNominatimClient(client *http.Client, baseURL string, countries []string, metrics *observability.Metrics) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &NominatimClient{
		baseURL:   baseURL,
		countries: countries,
		httpCfg: resilient.ClientConfig{
			Client:  client,
			Backoff: resilient.DefaultBackoff,
		},
		circuit: resilient.NewBreaker("nominatim"),
		metrics: metrics,
	}
}

// Search returns candidates for the query, ordered by the provider's own
// relevance ranking. An empty result set returns ErrNoResults.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("format", "json")
		values.Set("limit", "5")
		if len(c.countries) > 0 {
			values.Set("countrycodes", strings.Join(c.countries, ","))
		}

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		// Nominatim usage policy requires an identifying User-Agent.
		req.Header.Set("User-Agent", "fish-bite-predictor")
		return req, nil
	}

	resp, err := resilient.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("forward", "error").Inc()
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	// Nominatim returns lat/lon as strings.
	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("forward", "error").Inc()
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}

	if len(payload) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("forward", "empty").Inc()
		return nil, ErrNoResults
	}

	candidates := make([]Candidate, 0, len(payload))
	for _, item := range payload {
		lat, errLat := strconv.ParseFloat(item.Lat, 64)
		lon, errLon := strconv.ParseFloat(item.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Lat:         lat,
			Lon:         lon,
			DisplayName: item.DisplayName,
		})
	}
	if len(candidates) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("forward", "empty").Inc()
		return nil, ErrNoResults
	}

	c.metrics.GeocodeRequests.WithLabelValues("forward", "success").Inc()
	return candidates, nil
}
