// Package session holds per-client advisor state: the selected species and
// the last fetched observation. One observation exists per session and is
// replaced wholesale by each successful fetch.
package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is one client's state.
type Session struct {
	ID            string               `json:"id"`
	SpeciesID     string               `json:"species"`
	Observation   *weather.Observation `json:"observation,omitempty"`
	LocationLabel string               `json:"locationLabel,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type tracked struct {
	mu      sync.Mutex // serializes fetches for this session
	session Session

	// touched is the UpdatedAt unix-nano timestamp, readable by retention
	// sweeps without taking mu (which may be held across a fetch).
	touched atomic.Int64
}

// Store is a concurrency-safe in-memory session store with count and age
// retention, in the same spirit as a snapshot history store.
type Store struct {
	mu   sync.RWMutex
	data map[string]*tracked

	maxSessions int           // 0 = unlimited
	maxAge      time.Duration // 0 = unlimited; measured from UpdatedAt
}

// NewStore creates a Store with optional limits.
func NewStore(maxSessions int, maxAge time.Duration) *Store {
	return &Store{
		data:        make(map[string]*tracked),
		maxSessions: maxSessions,
		maxAge:      maxAge,
	}
}

// Create registers a new session with the default species selected.
func (s *Store) Create() Session {
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.NewString(),
		SpeciesID: species.DefaultID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	t := &tracked{session: sess}
	t.touched.Store(now.UnixNano())
	s.data[sess.ID] = t
	return sess
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.data[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session, nil
}

// Update runs fn under the session's own lock and persists the mutated
// session afterwards. Because the lock is per session and held for the whole
// callback, two concurrent fetches for the same session serialize: the later
// caller sees the earlier result and its own write lands last.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.RLock()
	t, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	working := t.session
	if err := fn(&working); err != nil {
		return Session{}, err
	}
	working.UpdatedAt = time.Now().UTC()
	t.session = working
	t.touched.Store(working.UpdatedAt.UnixNano())
	return working, nil
}

// All returns a copy of every live session.
func (s *Store) All() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Session, 0, len(s.data))
	for _, t := range s.data {
		t.mu.Lock()
		out = append(out, t.session)
		t.mu.Unlock()
	}
	return out
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// pruneLocked enforces retention. Caller holds s.mu. Reads the atomic
// touched timestamps rather than the sessions themselves so a session whose
// lock is held across a fetch never blocks creation.
func (s *Store) pruneLocked(now time.Time) {
	if s.maxAge > 0 {
		cutoff := now.Add(-s.maxAge).UnixNano()
		for id, t := range s.data {
			if t.touched.Load() < cutoff {
				delete(s.data, id)
			}
		}
	}

	// Evict least recently updated sessions over the cap.
	if s.maxSessions > 0 {
		for len(s.data) >= s.maxSessions {
			var oldestID string
			var oldest int64
			for id, t := range s.data {
				if ts := t.touched.Load(); oldestID == "" || ts < oldest {
					oldestID = id
					oldest = ts
				}
			}
			delete(s.data, oldestID)
		}
	}
}
