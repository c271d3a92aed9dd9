// Package advisor orchestrates location resolution, observation fetching,
// and condition scoring over per-session state.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JavaFXpert/fish-bite-predictor/internal/geocode"
	"github.com/JavaFXpert/fish-bite-predictor/internal/observability"
	"github.com/JavaFXpert/fish-bite-predictor/internal/predictor"
	"github.com/JavaFXpert/fish-bite-predictor/internal/session"
	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

var (
	// ErrEmptyQuery rejects a blank city search before any network call.
	ErrEmptyQuery = errors.New("city query must not be empty")

	// ErrUnknownSpecies is returned for a species ID missing from the catalog.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrWeatherFetch wraps any transport or parse failure from the weather
	// provider. The previous observation is left untouched when it occurs.
	ErrWeatherFetch = errors.New("weather fetch failed")
)

// View is the full presentation payload for a session: what the UI renders
// after any interaction. Summary and Prediction are nil before the first
// successful fetch.
type View struct {
	SessionID  string                `json:"sessionId"`
	SpeciesID  string                `json:"species"`
	Location   string                `json:"location,omitempty"`
	Summary    *predictor.Summary    `json:"summary,omitempty"`
	Prediction *predictor.Prediction `json:"prediction,omitempty"`
}

// Service wires the geocoder, weather provider, and session store together.
type Service struct {
	store    *session.Store
	provider weather.Provider
	geocoder geocode.Geocoder
	tz       *time.Location
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewService creates the advisor service. tz is the deployment time zone
// used for the calendar-driven water temperature estimate.
func NewService(
	store *session.Store,
	provider weather.Provider,
	geocoder geocode.Geocoder,
	tz *time.Location,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		store:    store,
		provider: provider,
		geocoder: geocoder,
		tz:       tz,
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateSession registers a new session with the default species.
func (s *Service) CreateSession() View {
	sess := s.store.Create()
	s.metrics.SessionsActive.Set(float64(s.store.Len()))
	return s.view(sess)
}

// ResolveCoordinates accepts client-obtained device coordinates, fetches an
// observation for them, labels the location via reverse geocoding (falling
// back to a coordinate string), and scores the current species.
func (s *Service) ResolveCoordinates(ctx context.Context, sessionID string, coords weather.Coordinates) (View, error) {
	sess, err := s.store.Update(sessionID, func(sess *session.Session) error {
		obs, err := s.fetch(ctx, coords)
		if err != nil {
			return err
		}
		sess.Observation = &obs
		sess.LocationLabel = s.resolveLabel(ctx, coords)
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// ResolveCity resolves a typed place name through the forward geocoder,
// takes the provider's top candidate, and fetches an observation for it.
// The candidate's display name is used verbatim as the location label.
func (s *Service) ResolveCity(ctx context.Context, sessionID, query string) (View, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return View{}, ErrEmptyQuery
	}

	candidates, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return View{}, err
	}
	if len(candidates) == 0 {
		return View{}, geocode.ErrNoResults
	}
	top := candidates[0]
	coords := weather.Coordinates{Lat: top.Lat, Lon: top.Lon}

	sess, err := s.store.Update(sessionID, func(sess *session.Session) error {
		obs, err := s.fetch(ctx, coords)
		if err != nil {
			return err
		}
		sess.Observation = &obs
		sess.LocationLabel = top.DisplayName
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// SelectSpecies records a species selection. When an observation is already
// present the new species is re-scored immediately against it with no
// network activity; before the first fetch the selection is recorded and the
// returned view carries no prediction.
func (s *Service) SelectSpecies(ctx context.Context, sessionID, speciesID string) (View, error) {
	if _, ok := species.Get(speciesID); !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownSpecies, speciesID)
	}

	sess, err := s.store.Update(sessionID, func(sess *session.Session) error {
		sess.SpeciesID = speciesID
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// Prediction returns the current view for a session.
func (s *Service) Prediction(ctx context.Context, sessionID string) (View, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	return s.view(sess), nil
}

// RefreshAll re-fetches the observation for every session that has resolved
// coordinates. Failures are logged and skipped; the previous observation is
// kept. Used by the background refresh job.
func (s *Service) RefreshAll(ctx context.Context) {
	for _, sess := range s.store.All() {
		if sess.Observation == nil {
			continue
		}
		coords := sess.Observation.Coords

		_, err := s.store.Update(sess.ID, func(sess *session.Session) error {
			obs, err := s.fetch(ctx, coords)
			if err != nil {
				return err
			}
			sess.Observation = &obs
			return nil
		})
		if err != nil {
			s.logger.Warn("background refresh failed",
				"session_id", sess.ID,
				"lat", coords.Lat,
				"lon", coords.Lon,
				"error", err,
			)
		}
	}
}

// fetch retrieves a reading and derives the observation. Any failure is
// reported as ErrWeatherFetch; no partial observation is ever produced.
func (s *Service) fetch(ctx context.Context, coords weather.Coordinates) (weather.Observation, error) {
	reading, err := s.provider.Fetch(ctx, coords)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("%w: %v", ErrWeatherFetch, err)
	}
	return weather.Derive(reading, coords, s.tz), nil
}

// resolveLabel reverse-geocodes coordinates into "Locality, Region". The
// fallback on any failure is the coordinate string; reverse geocoding never
// fails an operation.
func (s *Service) resolveLabel(ctx context.Context, coords weather.Coordinates) string {
	place, err := s.geocoder.Lookup(ctx, coords.Lat, coords.Lon)
	if err != nil {
		s.logger.Warn("reverse geocoding failed",
			"lat", coords.Lat,
			"lon", coords.Lon,
			"error", err,
		)
		return coords.Label()
	}
	if place.Region == "" {
		return place.Locality
	}
	return place.Locality + ", " + place.Region
}

// view assembles the presentation payload. Scoring runs only when an
// observation exists.
func (s *Service) view(sess session.Session) View {
	v := View{
		SessionID: sess.ID,
		SpeciesID: sess.SpeciesID,
		Location:  sess.LocationLabel,
	}
	if sess.Observation == nil {
		return v
	}

	sp, ok := species.Get(sess.SpeciesID)
	if !ok {
		// Catalog is validated at startup; a stored unknown ID cannot happen
		// through SelectSpecies.
		return v
	}

	summary := predictor.Summarize(*sess.Observation)
	prediction := predictor.Score(*sess.Observation, sp)
	s.metrics.PredictionsComputed.Inc()

	v.Summary = &summary
	v.Prediction = &prediction
	return v
}
