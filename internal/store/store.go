// Package store contains the persistence layer for the Trip Journal API.
// The trip collection lives in memory and is mirrored to a single JSON file,
// rewritten in full on every mutation. No business logic lives here — only
// collection bookkeeping and file I/O.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clemv/trip-journal/internal/domain"
)

// DefaultPersistTimeout bounds the durable write when the caller does not
// configure one. A stalled filesystem fails the request instead of hanging it.
const DefaultPersistTimeout = 5 * time.Second

// TripStore defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete file-backed
// implementation, which allows the service to be unit-tested with a mock.
type TripStore interface {
	// Create assigns a fresh unique id, forces isFavorite to false, appends
	// the trip to the collection, persists, and returns the stored record.
	// Returns domain.ErrPersistence if the durable write fails; the
	// collection is unchanged in that case.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by id.
	// Returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips in insertion order (oldest first).
	List(ctx context.Context) ([]domain.Trip, error)

	// ToggleFavorite flips the isFavorite flag of the trip with the given id,
	// persists, and returns the updated record.
	// Returns domain.ErrNotFound if the trip does not exist and
	// domain.ErrPersistence if the durable write fails; the collection is
	// unchanged in either case.
	ToggleFavorite(ctx context.Context, id string) (domain.Trip, error)
}

// fileStore is the JSON-file-backed implementation of TripStore.
//
// The mutex serializes the read-modify-write-persist cycle: net/http serves
// each request on its own goroutine, so without it two concurrent toggles
// could interleave and lose an update. Mutations build the next slice first
// and only swap it in after the file write succeeds, so the in-memory
// collection never diverges from disk.
type fileStore struct {
	path           string
	persistTimeout time.Duration

	mu    sync.Mutex
	trips []domain.Trip
}

// Open returns a TripStore backed by the JSON file at path.
//
// If the file does not exist the store starts empty; the first mutation
// creates it (and any missing parent directories). If the file exists but
// cannot be read or parsed, the store also starts empty — a warning is
// logged, the corrupt file is left in place, and the next mutation
// overwrites it. A load problem is never fatal.
func Open(path string, persistTimeout time.Duration) TripStore {
	if persistTimeout <= 0 {
		persistTimeout = DefaultPersistTimeout
	}
	s := &fileStore{path: path, persistTimeout: persistTimeout}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: nothing to load.
	case err != nil:
		slog.Warn("trips file unreadable, starting empty", "path", path, "error", err)
	default:
		if err := json.Unmarshal(data, &s.trips); err != nil {
			slog.Warn("trips file corrupt, starting empty", "path", path, "error", err)
			s.trips = nil
		}
	}

	return s
}

// Create appends a new trip and persists the collection.
func (s *fileStore) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip.ID = uuid.NewString()
	trip.IsFavorite = false

	next := append(slices.Clone(s.trips), trip)
	if err := s.persist(ctx, next); err != nil {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Create: %w", err)
	}
	s.trips = next

	return trip, nil
}

// GetByID retrieves a trip by id. Lookup is a linear scan — fine at the
// scale of a personal trip journal.
func (s *fileStore) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("store.TripStore.GetByID: %w", domain.ErrNotFound)
}

// List returns a copy of the collection in insertion order.
func (s *fileStore) List(ctx context.Context) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.trips), nil
}

// ToggleFavorite flips isFavorite on the trip with the given id and persists.
func (s *fileStore) ToggleFavorite(ctx context.Context, id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.trips, func(t domain.Trip) bool { return t.ID == id })
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.ToggleFavorite: %w", domain.ErrNotFound)
	}

	next := slices.Clone(s.trips)
	next[idx].IsFavorite = !next[idx].IsFavorite
	if err := s.persist(ctx, next); err != nil {
		return domain.Trip{}, fmt.Errorf("store.TripStore.ToggleFavorite: %w", err)
	}
	s.trips = next

	return next[idx], nil
}

// persist serializes trips and rewrites the data file. Must be called with
// s.mu held. The write runs on its own goroutine so a stalled filesystem
// fails the request after persistTimeout instead of blocking it forever;
// a timed-out write may still land later, which is safe because
// writeFileAtomic replaces the file in one rename and the slice it
// serialized was already fully built.
func (s *fileStore) persist(ctx context.Context, trips []domain.Trip) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", domain.ErrPersistence, err)
	}

	done := make(chan error, 1)
	go func() { done <- writeFileAtomic(s.path, data) }()

	timer := time.NewTimer(s.persistTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrPersistence, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("%w: write timed out after %s", domain.ErrPersistence, s.persistTimeout)
	}
}

// writeFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a truncated file even if
// the process crashes mid-write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".trips-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
