package domain

import "sort"

// SortSpec selects the sort key and direction. Exactly one spec is active at
// a time; changing it replaces the prior one outright.
type SortSpec struct {
	Key        string
	Descending bool
}

// SortKeys are the fields offered for sorting, in menu order.
var SortKeys = []string{
	FieldFilename,
	FieldExtension,
	FieldTag,
	FieldProcessStep,
	FieldLanguage,
	FieldSizeKB,
	FieldPageCount,
	FieldModified,
}

// DefaultSort is the ordering applied before the user picks one.
func DefaultSort() SortSpec {
	return SortSpec{Key: FieldFilename}
}

// Toggle applies the header-click rule: selecting the already-active key
// while ascending flips to descending; any other selection resets to that
// key ascending.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key == key && !s.Descending {
		return SortSpec{Key: key, Descending: true}
	}
	return SortSpec{Key: key}
}

// Less compares two records under this spec. The key is the lower-cased
// string form of the field, so comparison is always lexicographic: numeric
// fields sort by their string form ("10" before "2" before "9"), and missing
// fields compare as the empty string.
func (s SortSpec) Less(a, b Record) bool {
	av, bv := a.Fold(s.Key), b.Fold(s.Key)
	if s.Descending {
		return av > bv
	}
	return av < bv
}

// SortRecords returns a sorted copy of records. The sort is stable: records
// with equal keys keep their relative order from the input, which is the
// only deterministic tie-break. The input slice is never modified.
func SortRecords(records []Record, spec SortSpec) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return spec.Less(out[i], out[j])
	})
	return out
}
