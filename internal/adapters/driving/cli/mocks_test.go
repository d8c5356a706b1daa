package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/core/services"
)

// mockCatalogService is a test double for driving.CatalogService.
type mockCatalogService struct {
	client  string
	records []domain.Record
	facets  domain.Facets
	loadErr error
}

func (m *mockCatalogService) Load(_ context.Context) error { return m.loadErr }
func (m *mockCatalogService) Client() string               { return m.client }
func (m *mockCatalogService) Records() []domain.Record     { return m.records }
func (m *mockCatalogService) Facets() domain.Facets        { return m.facets }
func (m *mockCatalogService) LoadErr() error               { return m.loadErr }

func (m *mockCatalogService) Find(pathOrName string) (domain.Record, error) {
	var match domain.Record
	for _, r := range m.records {
		if r.String(domain.FieldPath) == pathOrName {
			return r, nil
		}
		if r.String(domain.FieldFilename) == pathOrName {
			if match != nil {
				return nil, domain.ErrAmbiguousRecord
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, pathOrName)
	}
	return match, nil
}

func testRecords() []domain.Record {
	return []domain.Record{
		{
			domain.FieldFilename:  "invoice.pdf",
			domain.FieldPath:      "finance/invoice.pdf",
			domain.FieldExtension: "pdf",
			domain.FieldTag:       "finance",
			domain.FieldSummary:   "Quarterly invoice",
			domain.FieldModules:   []any{"billing"},
		},
		{
			domain.FieldFilename:  "guide.docx",
			domain.FieldPath:      "docs/guide.docx",
			domain.FieldExtension: "docx",
			domain.FieldTag:       "manual",
			domain.FieldSummary:   "Setup guide",
		},
	}
}

// setupTestServices injects stub services and returns a cleanup restoring
// the uninitialised state.
func setupTestServices() func() {
	catalog := &mockCatalogService{
		client:  "acme",
		records: testRecords(),
		facets: domain.Facets{
			Extensions: []string{"docx", "pdf"},
			Tags:       []string{"finance", "manual"},
			Modules:    []string{"billing"},
		},
	}
	SetServices(catalog, services.NewQueryService(), services.NewProjectionService())

	return func() {
		SetServices(nil, nil, nil)
		resetQueryFlags()
	}
}

// resetQueryFlags clears the package-level flag values between tests.
func resetQueryFlags() {
	queryExtension = ""
	queryTag = ""
	queryContentType = ""
	queryProcessStep = ""
	queryLanguage = ""
	queryHasImages = ""
	queryModules = nil
	querySearch = ""
	querySortKey = domain.DefaultSort().Key
	querySortDesc = false
	queryJSON = false
	facetsJSON = false
	showJSON = false
}

var _ driving.CatalogService = (*mockCatalogService)(nil)
