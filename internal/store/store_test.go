package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clemv/trip-journal/internal/domain"
	"github.com/clemv/trip-journal/internal/store"
)

// ---- helpers ---------------------------------------------------------------

func tripFixture() domain.Trip {
	return domain.Trip{
		Title:       "Paris Trip",
		Destination: "Paris, France",
		StartDate:   "2026-01-22",
		EndDate:     "2026-01-30",
		Description: "a week in Paris",
		Photos:      []string{"https://example.com/eiffel.jpg"},
	}
}

func openStore(t *testing.T) (store.TripStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.json")
	return store.Open(path, time.Second), path
}

// ---- Create ----------------------------------------------------------------

func TestCreate_AssignsIDAndDefaultsFavorite(t *testing.T) {
	s, _ := openStore(t)

	in := tripFixture()
	in.IsFavorite = true // caller-supplied value must be ignored

	created, err := s.Create(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsFavorite)
	assert.Equal(t, in.Title, created.Title)
	assert.Equal(t, in.Destination, created.Destination)
}

func TestCreate_IDsAreUnique(t *testing.T) {
	s, _ := openStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := s.Create(context.Background(), tripFixture())
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %q", created.ID)
		seen[created.ID] = true
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	s, _ := openStore(t)

	created, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	got, err := s.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_WritesValidJSONFile(t *testing.T) {
	s, path := openStore(t)

	_, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	// The file must be a complete JSON array reflecting the collection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, mustFileJSON(t, s), string(data))
}

// mustFileJSON renders the store's current collection the way persist does,
// via List, so the on-disk/in-memory comparison stays field-for-field.
func mustFileJSON(t *testing.T, s store.TripStore) string {
	t.Helper()
	trips, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	return `[{"id":"` + trips[0].ID + `",` +
		`"title":"Paris Trip","destination":"Paris, France",` +
		`"startDate":"2026-01-22","endDate":"2026-01-30",` +
		`"description":"a week in Paris",` +
		`"photos":["https://example.com/eiffel.jpg"],"isFavorite":false}]`
}

// ---- List ------------------------------------------------------------------

func TestList_InsertionOrder(t *testing.T) {
	s, _ := openStore(t)

	first := tripFixture()
	first.Title = "First"
	second := tripFixture()
	second.Title = "Second"

	_, err := s.Create(context.Background(), first)
	require.NoError(t, err)
	_, err = s.Create(context.Background(), second)
	require.NoError(t, err)

	trips, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "First", trips[0].Title)
	assert.Equal(t, "Second", trips[1].Title)
}

func TestList_ReturnsCopy(t *testing.T) {
	s, _ := openStore(t)

	created, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	trips, err := s.List(context.Background())
	require.NoError(t, err)
	trips[0].Title = "mutated by caller"

	got, err := s.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris Trip", got.Title)
}

// ---- GetByID ---------------------------------------------------------------

func TestGetByID_NotFound(t *testing.T) {
	s, _ := openStore(t)

	_, err := s.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ToggleFavorite --------------------------------------------------------

func TestToggleFavorite_FlipsAndFlipsBack(t *testing.T) {
	s, _ := openStore(t)

	created, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	toggled, err := s.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = s.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)
}

func TestToggleFavorite_NotFound_CollectionUnchanged(t *testing.T) {
	s, _ := openStore(t)

	created, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	_, err = s.ToggleFavorite(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := s.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

// ---- Durability ------------------------------------------------------------

func TestReopen_SeesCreatedTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")

	s := store.Open(path, time.Second)
	created, err := s.Create(context.Background(), tripFixture())
	require.NoError(t, err)
	_, err = s.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)

	// Simulate a process restart: a fresh store on the same path.
	reopened := store.Open(path, time.Second)
	trips, err := reopened.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
	assert.True(t, trips[0].IsFavorite)
}

func TestOpen_MissingFile_StartsEmpty(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "nope", "trips.json"), time.Second)

	trips, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestOpen_CorruptFile_StartsEmptyAndRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := store.Open(path, time.Second)

	trips, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)

	// The next mutation overwrites the corrupt file with a valid one.
	_, err = s.Create(context.Background(), tripFixture())
	require.NoError(t, err)

	reopened := store.Open(path, time.Second)
	trips, err = reopened.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

// ---- Persistence failure ---------------------------------------------------

func TestCreate_PersistFailure_NoPartialState(t *testing.T) {
	// A directory where the data file should be makes every rename fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "trips.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	s := store.Open(path, time.Second)

	_, err := s.Create(context.Background(), tripFixture())
	require.ErrorIs(t, err, domain.ErrPersistence)

	// The failed create must not be visible in memory either.
	trips, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestCreate_CancelledContext_PersistenceError(t *testing.T) {
	s, _ := openStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, tripFixture())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
