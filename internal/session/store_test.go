package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore(0, 0)

	created := s.Create()
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, species.DefaultID, created.SpeciesID)
	assert.Nil(t, created.Observation)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(0, 0)
	_, err := s.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	s := NewStore(0, 0)
	created := s.Create()

	obs := weather.Observation{AirTempF: 70}
	updated, err := s.Update(created.ID, func(sess *Session) error {
		sess.Observation = &obs
		sess.LocationLabel = "Indianapolis, Indiana"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, &obs, updated.Observation)
	assert.Equal(t, "Indianapolis, Indiana", updated.LocationLabel)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStore_UpdateErrorDiscardsChanges(t *testing.T) {
	s := NewStore(0, 0)
	created := s.Create()

	obs := weather.Observation{AirTempF: 70}
	_, err := s.Update(created.ID, func(sess *Session) error {
		sess.Observation = &obs
		return nil
	})
	require.NoError(t, err)

	// A failing update must leave the previously stored state intact.
	_, err = s.Update(created.ID, func(sess *Session) error {
		sess.Observation = &weather.Observation{AirTempF: 999}
		sess.SpeciesID = "catfish"
		return errors.New("fetch failed")
	})
	require.Error(t, err)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, &obs, got.Observation)
	assert.Equal(t, species.DefaultID, got.SpeciesID)
}

func TestStore_UpdateUnknown(t *testing.T) {
	s := NewStore(0, 0)
	_, err := s.Update("nope", func(*Session) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RetentionByCount(t *testing.T) {
	s := NewStore(2, 0)

	first := s.Create()
	time.Sleep(time.Millisecond)
	second := s.Create()
	time.Sleep(time.Millisecond)
	third := s.Create()

	assert.Equal(t, 2, s.Len())
	_, err := s.Get(first.ID)
	assert.ErrorIs(t, err, ErrNotFound, "oldest session is evicted")
	_, err = s.Get(second.ID)
	assert.NoError(t, err)
	_, err = s.Get(third.ID)
	assert.NoError(t, err)
}

func TestStore_All(t *testing.T) {
	s := NewStore(0, 0)
	s.Create()
	s.Create()
	assert.Len(t, s.All(), 2)
}
