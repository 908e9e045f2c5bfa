// Package testutil provides shared helpers for integration-style tests.
// Unlike the usual database fixtures, everything here runs on a temp
// directory, so no environment setup is needed and tests never skip.
package testutil

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/clemv/trip-journal/internal/handler"
	"github.com/clemv/trip-journal/internal/service"
	"github.com/clemv/trip-journal/internal/store"
)

// NewStore opens a TripStore backed by a fresh file under t.TempDir().
// The directory (and therefore the data file) is removed automatically when
// the test and all its subtests finish.
func NewStore(t *testing.T) store.TripStore {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "trips.json"), time.Second)
}

// NewServer wires the full production stack — file store, trip service,
// handlers — behind an httptest.Server. Use it to exercise the client
// package against real routing and persistence instead of canned responses.
// The server is closed automatically when the test finishes.
func NewServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := handler.NewServer(service.NewTripService(NewStore(t)))
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}
