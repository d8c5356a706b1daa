package driving

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// CatalogService owns the loaded catalog for a session.
type CatalogService interface {
	// Load (re)loads the catalog from its source and recomputes facets.
	// On failure the service substitutes an empty catalog so filters and
	// sorting remain operable, and returns the error for display.
	Load(ctx context.Context) error

	// Client returns the client name from the catalog document.
	Client() string

	// Records returns the loaded record collection. Callers must treat the
	// returned records as read-only.
	Records() []domain.Record

	// Facets returns the filter choices computed at the last load.
	Facets() domain.Facets

	// LoadErr returns the error from the last load, or nil.
	LoadErr() error

	// Find locates a single record by exact path, falling back to filename.
	Find(pathOrName string) (domain.Record, error)
}
