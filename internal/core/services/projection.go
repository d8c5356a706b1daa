package services

import (
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// Ensure ProjectionService implements the interface.
var _ driving.ProjectionService = (*ProjectionService)(nil)

// ProjectionService builds display projections for single records.
type ProjectionService struct{}

// NewProjectionService creates a new projection service.
func NewProjectionService() *ProjectionService {
	return &ProjectionService{}
}

// badgeFields is the badge row, in display order.
var badgeFields = []struct {
	Label string
	Field string
}{
	{"Extension", domain.FieldExtension},
	{"Tag", domain.FieldTag},
	{"Content type", domain.FieldContentType},
	{"Process step", domain.FieldProcessStep},
	{"Language", domain.FieldLanguage},
	{"Has images", domain.FieldHasImages},
}

// metadataFields is the fixed, predetermined label order of the metadata
// list. Every label renders regardless of field presence.
var metadataFields = []struct {
	Label string
	Field string
}{
	{"Size (KB)", domain.FieldSizeKB},
	{"Pages", domain.FieldPageCount},
	{"Words", domain.FieldWordCount},
	{"Tables", domain.FieldTablesCount},
	{"Complexity", domain.FieldComplexity},
	{"Created", domain.FieldCreated},
	{"Modified", domain.FieldModified},
	{"Domain", domain.FieldDomain},
	{"Version", domain.FieldVersion},
}

// Project maps one record into its display projection.
func (s *ProjectionService) Project(r domain.Record) *driving.Projection {
	p := &driving.Projection{
		Filename: r.String(domain.FieldFilename),
		Path:     r.String(domain.FieldPath),
		Summary:  r.String(domain.FieldSummary),
		Modules:  r.Strings(domain.FieldModules),
	}

	for _, bf := range badgeFields {
		// Only emptiness suppresses a badge; "0" and "false" are real values.
		if value := r.String(bf.Field); value != "" {
			p.Badges = append(p.Badges, driving.Badge{Label: bf.Label, Value: value})
		}
	}

	p.Metadata = make([]driving.MetadataField, 0, len(metadataFields))
	for _, mf := range metadataFields {
		p.Metadata = append(p.Metadata, driving.MetadataField{
			Label: mf.Label,
			Value: r.String(mf.Field),
		})
	}

	return p
}
