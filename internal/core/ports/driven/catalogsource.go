package driven

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// CatalogSource retrieves the catalog document produced by the scanner.
// A source performs a single retrieval per Load call; there is no retry
// policy, so a failed load is terminal until a fresh load is triggered.
type CatalogSource interface {
	// Load retrieves and parses the catalog.
	Load(ctx context.Context) (*domain.Catalog, error)

	// Describe returns a human-readable location for logs and errors.
	Describe() string
}
