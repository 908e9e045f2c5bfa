package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clemv/trip-journal/internal/domain"
)

// createTripRequest is the accepted POST /trips payload. The id and
// isFavorite fields are intentionally absent — the store owns both.
type createTripRequest struct {
	Title       string           `json:"title"`
	Destination string           `json:"destination"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Photos      []string         `json:"photos"`
	Location    *domain.Location `json:"location"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Image:       req.Image,
		Photos:      req.Photos,
		Location:    req.Location,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, unwrapMessage(err))
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips. The full collection is returned in insertion
// order; filtering and favorites views are client-side concerns.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if trips == nil {
		trips = []domain.Trip{} // JSON [] rather than null
	}
	writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Trip not found")
			return
		}
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ToggleFavorite handles PATCH /trips/{id}/favorite. No request body; the
// flag is flipped server-side and the updated trip returned.
func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.ToggleFavorite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Trip not found")
			return
		}
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// serverError logs the underlying failure (including persistence errors)
// and returns an opaque 500 body. Internal detail never reaches the client.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
