package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService owns the loaded catalog for a session. Records are
// immutable once loaded; a reload replaces the whole collection and
// recomputes the facets. Facets are NOT recomputed on filter or sort
// changes, only here.
type CatalogService struct {
	source   driven.CatalogSource
	collator *collate.Collator

	mu      sync.RWMutex
	client  string
	records []domain.Record
	facets  domain.Facets
	loadErr error
}

// NewCatalogService creates a catalog service reading from source. The
// locale tag (BCP 47, e.g. "es" or "pt-BR") controls the alphabetic order
// of facet values; an empty or unparseable locale falls back to the root
// collation, which is plain lexicographic.
func NewCatalogService(source driven.CatalogSource, locale string) *CatalogService {
	tag := language.Und
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			logger.Warn("Invalid locale %q, using default collation: %v", locale, err)
		} else {
			tag = parsed
		}
	}

	return &CatalogService{
		source:   source,
		collator: collate.New(tag),
		records:  []domain.Record{},
	}
}

// Load retrieves the catalog and recomputes the facets. On failure the
// previous catalog is discarded and an empty one takes its place, so the
// session keeps working on zero records; the error is retained for display
// via LoadErr and also returned.
func (s *CatalogService) Load(ctx context.Context) error {
	logger.Section("Catalog Load")
	logger.Debug("Source: %s", s.source.Describe())

	catalog, err := s.source.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.client = ""
		s.records = []domain.Record{}
		s.facets = domain.Facets{}
		s.loadErr = fmt.Errorf("load catalog from %s: %w", s.source.Describe(), err)
		logger.Warn("Catalog load failed: %v", err)
		return s.loadErr
	}

	s.client = catalog.Client
	s.records = catalog.Records
	s.facets = s.extractFacets(catalog.Records)
	s.loadErr = nil
	logger.Info("Loaded %d records for client %q", len(s.records), s.client)

	return nil
}

// Client returns the client name from the catalog document.
func (s *CatalogService) Client() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// Records returns the loaded record collection. The returned records are
// read-only; loads replace the collection wholesale rather than mutating it.
func (s *CatalogService) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Facets returns the filter choices computed at the last load.
func (s *CatalogService) Facets() domain.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.facets
}

// LoadErr returns the error from the last load, or nil.
func (s *CatalogService) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Find locates a single record by exact path, falling back to filename.
// A filename shared by several records is ambiguous.
func (s *CatalogService) Find(pathOrName string) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.String(domain.FieldPath) == pathOrName {
			return r, nil
		}
	}

	var match domain.Record
	for _, r := range s.records {
		if r.String(domain.FieldFilename) != pathOrName {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: filename %q matches multiple records", domain.ErrAmbiguousRecord, pathOrName)
		}
		match = r
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, pathOrName)
	}
	return match, nil
}

// extractFacets computes the distinct-value sets for every filter dimension.
func (s *CatalogService) extractFacets(records []domain.Record) domain.Facets {
	return domain.Facets{
		Extensions:   s.distinct(records, domain.FieldExtension),
		Tags:         s.distinct(records, domain.FieldTag),
		ContentTypes: s.distinct(records, domain.FieldContentType),
		ProcessSteps: s.distinct(records, domain.FieldProcessStep),
		Languages:    s.distinct(records, domain.FieldLanguage),
		Modules:      s.distinctModules(records),
	}
}

// distinct collects the non-empty raw values of a single-valued field,
// deduplicated and collated alphabetically.
func (s *CatalogService) distinct(records []domain.Record, field string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		v := r.String(field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	s.collator.SortStrings(values)
	return values
}

// distinctModules collects the union of every record's module list.
func (s *CatalogService) distinctModules(records []domain.Record) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		for _, m := range r.Strings(domain.FieldModules) {
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			values = append(values, m)
		}
	}
	s.collator.SortStrings(values)
	return values
}
