package tui

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// MockCatalogService is a test double for driving.CatalogService.
type MockCatalogService struct {
	ClientName string
	Recs       []domain.Record
	Fcts       domain.Facets
	Err        error
	LoadCalls  int
}

func (m *MockCatalogService) Load(_ context.Context) error {
	m.LoadCalls++
	return m.Err
}

func (m *MockCatalogService) Client() string           { return m.ClientName }
func (m *MockCatalogService) Records() []domain.Record { return m.Recs }
func (m *MockCatalogService) Facets() domain.Facets    { return m.Fcts }
func (m *MockCatalogService) LoadErr() error           { return m.Err }

func (m *MockCatalogService) Find(pathOrName string) (domain.Record, error) {
	for _, r := range m.Recs {
		if r.String(domain.FieldPath) == pathOrName ||
			r.String(domain.FieldFilename) == pathOrName {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MockQueryService is a test double for driving.QueryService that counts runs.
type MockQueryService struct {
	RunCalls int
}

func (m *MockQueryService) Run(
	records []domain.Record, sel domain.Selection, spec domain.SortSpec,
) []domain.Record {
	m.RunCalls++
	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return domain.SortRecords(filtered, spec)
}

// MockProjectionService is a test double for driving.ProjectionService.
type MockProjectionService struct {
	ProjectCalls int
}

func (m *MockProjectionService) Project(r domain.Record) *driving.Projection {
	m.ProjectCalls++
	return &driving.Projection{
		Filename: r.String(domain.FieldFilename),
		Path:     r.String(domain.FieldPath),
		Summary:  r.String(domain.FieldSummary),
	}
}
