package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// trip does not exist in the collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed date).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrPersistence is returned by the store when the durable write of the trip
// collection fails or times out. The in-memory collection is left unchanged
// in that case. Handlers should map this to HTTP 500.
var ErrPersistence = errors.New("persistence error")
