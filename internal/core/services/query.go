package services

import (
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService runs the filter/search/sort pipeline over a record
// collection. It is stateless: every Run recomputes the result collection
// in full from the source collection.
type QueryService struct{}

// NewQueryService creates a new query service.
func NewQueryService() *QueryService {
	return &QueryService{}
}

// Run applies the selection's predicates and search term, then sorts the
// survivors under the sort spec. Filtering happens strictly before sorting,
// predicate order never affects the outcome, and neither the source slice
// nor its records are modified.
func (s *QueryService) Run(
	records []domain.Record, sel domain.Selection, spec domain.SortSpec,
) []domain.Record {
	logger.Section("Query Execution")
	logger.Debug("Selection: %s", sel.Describe())
	logger.Debug("Sort: key=%s descending=%t", spec.Key, spec.Descending)

	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	logger.Debug("Filtered: %d of %d records", len(filtered), len(records))

	return domain.SortRecords(filtered, spec)
}
