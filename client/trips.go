package client

import (
	"context"
	"net/http"
	"net/url"
)

// Location is an optional geographic point attached to a trip.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip is a journaled trip as returned by the server.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Photos      []string  `json:"photos,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
	Location    *Location `json:"location,omitempty"`
}

// NewTrip is the create payload. The server assigns the id and sets
// isFavorite to false.
type NewTrip struct {
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Photos      []string  `json:"photos,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// ListTrips returns every trip in insertion order (oldest first).
func (c *Client) ListTrips(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	if err := c.do(ctx, http.MethodGet, "/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip returns the trip with the given id.
func (c *Client) GetTrip(ctx context.Context, id string) (Trip, error) {
	var trip Trip
	if err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(id), nil, &trip); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

// CreateTrip creates a new trip and returns it with the server-assigned id.
func (c *Client) CreateTrip(ctx context.Context, trip NewTrip) (Trip, error) {
	var created Trip
	if err := c.do(ctx, http.MethodPost, "/trips", trip, &created); err != nil {
		return Trip{}, err
	}
	return created, nil
}

// ToggleFavorite flips the favorite flag on the trip with the given id and
// returns the updated trip.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (Trip, error) {
	var trip Trip
	if err := c.do(ctx, http.MethodPatch, "/trips/"+url.PathEscape(id)+"/favorite", nil, &trip); err != nil {
		return Trip{}, err
	}
	return trip, nil
}
