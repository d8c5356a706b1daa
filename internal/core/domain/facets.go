package domain

// Facets holds the distinct values available per filter dimension, computed
// once per catalog load. Values are the raw string forms present in the
// records, sorted alphabetically. The implicit leading "no constraint"
// option on single-valued dimensions is the presentation layer's to render;
// Facets carries only real values. Modules has no "no constraint" entry
// because module selection is additive via multi-select.
type Facets struct {
	Extensions   []string
	Tags         []string
	ContentTypes []string
	ProcessSteps []string
	Languages    []string
	Modules      []string
}

// IsEmpty reports whether no dimension has any value, which is the case for
// an empty or failed catalog load.
func (f Facets) IsEmpty() bool {
	return len(f.Extensions) == 0 && len(f.Tags) == 0 &&
		len(f.ContentTypes) == 0 && len(f.ProcessSteps) == 0 &&
		len(f.Languages) == 0 && len(f.Modules) == 0
}
