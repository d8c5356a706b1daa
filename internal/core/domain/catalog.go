package domain

import (
	"encoding/json"
	"fmt"
)

// Catalog is one scanner output document: the client the scan ran for and
// the flat record collection. Records are read-only for the lifetime of a
// session; a reload replaces the whole catalog.
type Catalog struct {
	// Client is the name of the client the scan ran for.
	Client string `json:"cliente"`

	// Records is the flat file-metadata collection.
	Records []Record `json:"files"`
}

// ParseCatalog decodes a scanner catalog document. A document that is not
// valid JSON or does not define an object is a malformed catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if c.Records == nil {
		c.Records = []Record{}
	}
	return &c, nil
}
