// Package geocode provides forward (place name → coordinates) and reverse
// (coordinates → place name) geocoding against external providers.
package geocode

import (
	"context"
	"errors"
)

// ErrNoResults is returned when a forward search succeeds at the transport
// level but matches no place. Distinct from transport failure so callers can
// tell "city not found" from "provider down".
var ErrNoResults = errors.New("no matching locations")

// Candidate is one forward-geocoding match.
type Candidate struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Place is a reverse-geocoding result.
type Place struct {
	Locality string
	Region   string
}

// Forward converts a free-text place name to coordinate candidates, ordered
// by the provider's own relevance.
type Forward interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Reverse converts coordinates to a human-readable place.
type Reverse interface {
	Lookup(ctx context.Context, lat, lon float64) (Place, error)
}

// Geocoder bundles both directions.
type Geocoder interface {
	Forward
	Reverse
}

// Combine joins independent forward and reverse implementations into a
// single Geocoder.
func Combine(f Forward, r Reverse) Geocoder {
	return combined{Forward: f, Reverse: r}
}

type combined struct {
	Forward
	Reverse
}
