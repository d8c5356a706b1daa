package driving

import (
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// QueryService derives an ordered result collection from a source collection,
// a filter selection, and a sort spec.
type QueryService interface {
	// Run recomputes the result collection in full: filter and search first,
	// then a stable sort. Pure; the same inputs always yield the same
	// output, and the source slice and its records are never mutated.
	Run(records []domain.Record, sel domain.Selection, spec domain.SortSpec) []domain.Record
}
