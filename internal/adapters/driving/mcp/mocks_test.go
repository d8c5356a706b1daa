package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// mockCatalogService implements driving.CatalogService for tests.
type mockCatalogService struct {
	client  string
	records []domain.Record
	facets  domain.Facets
	loadErr error
}

var _ driving.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) Load(_ context.Context) error { return m.loadErr }
func (m *mockCatalogService) Client() string               { return m.client }
func (m *mockCatalogService) Records() []domain.Record     { return m.records }
func (m *mockCatalogService) Facets() domain.Facets        { return m.facets }
func (m *mockCatalogService) LoadErr() error               { return m.loadErr }

func (m *mockCatalogService) Find(pathOrName string) (domain.Record, error) {
	for _, r := range m.records {
		if r.String(domain.FieldPath) == pathOrName ||
			r.String(domain.FieldFilename) == pathOrName {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, pathOrName)
}

// mockQueryService implements driving.QueryService for tests.
type mockQueryService struct{}

var _ driving.QueryService = (*mockQueryService)(nil)

func (m *mockQueryService) Run(
	records []domain.Record, sel domain.Selection, spec domain.SortSpec,
) []domain.Record {
	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return domain.SortRecords(filtered, spec)
}

func mcpTestPorts() *Ports {
	return &Ports{
		Catalog: &mockCatalogService{
			client: "acme",
			records: []domain.Record{
				{
					domain.FieldFilename:  "invoice.pdf",
					domain.FieldPath:      "finance/invoice.pdf",
					domain.FieldExtension: "pdf",
					domain.FieldSummary:   "Quarterly invoice",
				},
				{
					domain.FieldFilename:  "guide.docx",
					domain.FieldPath:      "docs/guide.docx",
					domain.FieldExtension: "docx",
					domain.FieldSummary:   "Setup guide",
				},
			},
			facets: domain.Facets{Extensions: []string{"docx", "pdf"}},
		},
		Query: &mockQueryService{},
	}
}
