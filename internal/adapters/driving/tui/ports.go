// Package tui provides an interactive terminal user interface for docdex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides access to the loaded record collection and its facets.
	Catalog driving.CatalogService

	// Query runs the filter/search/sort pipeline.
	Query driving.QueryService

	// Projection shapes records for detail display.
	Projection driving.ProjectionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	query driving.QueryService,
	projection driving.ProjectionService,
) *Ports {
	return &Ports{
		Catalog:    catalog,
		Query:      query,
		Projection: projection,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Projection == nil {
		return ErrMissingProjectionService
	}
	return nil
}
