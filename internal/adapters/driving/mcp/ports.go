package mcp

import (
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides access to the loaded record collection and its facets.
	Catalog driving.CatalogService

	// Query runs the filter/search/sort pipeline.
	Query driving.QueryService

	// Projection shapes records for detail display.
	Projection driving.ProjectionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	// Projection is optional; get_record falls back to the raw record.
	return nil
}
