package weather

import (
	"fmt"
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees. Values come
// from the geocoder or the client's device location and are passed through
// without validation.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Label renders the coordinate fallback used when reverse geocoding fails.
func (c Coordinates) Label() string {
	return fmt.Sprintf("Latitude: %.2f, Longitude: %.2f", c.Lat, c.Lon)
}

// Reading is the raw payload a provider returns for one fetch: current
// conditions plus the hourly surface pressure series for the day so far.
// Units are fixed by the provider request: °F, mph, inches, hPa.
type Reading struct {
	ProviderName string
	Timestamp    time.Time

	AirTempF      float64
	PrecipIn      float64
	CloudCoverPct float64
	WindSpeedMph  float64
	PressureHpa   float64

	// HourlyPressureHpa is indexed from the start of the day and includes
	// the current hour as its final element.
	HourlyPressureHpa []float64
}

// Observation is the derived, immutable view scoring consumes. It is built
// wholesale from one successful Reading and replaces any previous
// observation for the session.
type Observation struct {
	Coords Coordinates `json:"coords"`

	AirTempF          float64 `json:"airTempF"`
	WaterTempF        float64 `json:"waterTempF"`
	PressureHpa       float64 `json:"pressureHpa"`
	PressureChangeHpa float64 `json:"pressureChangeHpa"`
	WindSpeedMph      float64 `json:"windSpeedMph"`
	PrecipIn          float64 `json:"precipIn"`
	CloudCoverPct     float64 `json:"cloudCoverPct"`

	FetchedAt time.Time `json:"fetchedAt"`
}
