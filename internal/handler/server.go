// Package handler implements the HTTP handlers for the Trip Journal API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, auth.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clemv/trip-journal/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	ToggleFavorite(ctx context.Context, id string) (domain.Trip, error)
}

// Server holds the dependencies shared by all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer) *Server {
	return &Server{trips: trips}
}

// Routes registers every API endpoint on a fresh chi router.
// Wire it in main.go via r.Mount("/", server.Routes()).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Post("/auth/login", s.Login)
	r.Post("/auth/register", s.Register)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/{id}", s.GetTrip)
		r.Patch("/{id}/favorite", s.ToggleFavorite)
	})

	// Unknown routes get the same JSON body the mobile client expects
	// everywhere else, not chi's plain-text default.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})

	return r
}
