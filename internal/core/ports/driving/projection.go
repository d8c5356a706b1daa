package driving

import (
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// ProjectionService maps one record into its display-ready projection.
type ProjectionService interface {
	// Project builds the projection on demand. Projections are derived
	// values and are not retained between selections.
	Project(r domain.Record) *Projection
}

// Projection is the display-oriented view of a single record.
type Projection struct {
	// Filename is the record's file name.
	Filename string

	// Path is the record's full path.
	Path string

	// Summary is the extracted text snippet.
	Summary string

	// Badges are (label, value) pairs for the record's classification
	// fields. Pairs whose value is empty are omitted; "0" and "false" are
	// real values and stay.
	Badges []Badge

	// Modules is the chip list of mentioned modules, in record order.
	Modules []string

	// Metadata is the auxiliary field list in a fixed label order. Absent
	// fields keep their slot with an empty value.
	Metadata []MetadataField
}

// Badge is one (label, value) classification pair.
type Badge struct {
	Label string
	Value string
}

// MetadataField is one (label, value) pair in the fixed metadata list.
type MetadataField struct {
	Label string
	Value string
}
