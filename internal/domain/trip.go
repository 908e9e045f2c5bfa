// Package domain contains the core data types for the Trip Journal API.
// This package has zero external dependencies and is imported by every other
// internal package (store, service, handler).
package domain

// Location is an optional geographic point attached to a trip.
// No current operation reads it; it is stored and returned verbatim.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip represents a single journaled trip. It is the sole persisted entity.
// Dates are ISO "YYYY-MM-DD" strings, stored exactly as the client sent them.
// JSON field names are camelCase to match the mobile client's wire format.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"` // remote URL or a symbolic key the client resolves
	Photos      []string  `json:"photos,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
	Location    *Location `json:"location,omitempty"`
}
