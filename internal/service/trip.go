// Package service contains the business logic for the Trip Journal API.
// Services validate inputs, enforce business rules, and orchestrate store
// calls. No file I/O lives here — services depend on the store interface,
// not its implementation.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clemv/trip-journal/internal/domain"
	"github.com/clemv/trip-journal/internal/store"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	store store.TripStore
}

// NewTripService constructs a TripService backed by the provided TripStore.
func NewTripService(s store.TripStore) *TripService {
	return &TripService{store: s}
}

// Create validates and persists a new trip. The store assigns the id and
// forces isFavorite to false, so any caller-supplied values for those fields
// are ignored.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.store.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by id.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips in insertion order.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// ToggleFavorite flips the favorite flag on an existing trip.
func (s *TripService) ToggleFavorite(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.store.ToggleFavorite(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.ToggleFavorite: %w", err)
	}
	return trip, nil
}

// validateTrip enforces the create-time rules: title and destination must be
// non-blank, both dates must be present and ISO formatted.
//
// End-before-start is deliberately NOT rejected: date ordering is a client
// convention ("City, Country" style, same as the destination format) and the
// mobile clients in the field already send trips the server must keep
// accepting.
func validateTrip(t domain.Trip) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if err := validateDate("startDate", t.StartDate); err != nil {
		return err
	}
	return validateDate("endDate", t.EndDate)
}

// validateDate checks that value is a calendar date in YYYY-MM-DD form.
func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", domain.ErrValidation, field)
	}
	return nil
}
