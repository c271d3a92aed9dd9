package weather

import "context"

// Provider abstracts a current-conditions data source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, coords Coordinates) (Reading, error)
}
