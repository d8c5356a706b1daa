package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousRecord indicates a lookup matched more than one record.
	ErrAmbiguousRecord = errors.New("ambiguous record")

	// ErrMalformedCatalog indicates the catalog document could not be parsed.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrCatalogUnavailable indicates the catalog could not be retrieved.
	// The session falls back to an empty collection; filters and sorting
	// remain operable on zero records.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
