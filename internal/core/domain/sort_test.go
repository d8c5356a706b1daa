package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func named(names ...string) []Record {
	out := make([]Record, len(names))
	for i, n := range names {
		out[i] = Record{FieldFilename: n}
	}
	return out
}

func filenames(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String(FieldFilename)
	}
	return out
}

// TestSortRecords_Lexicographic tests that numeric strings sort as text
func TestSortRecords_Lexicographic(t *testing.T) {
	records := []Record{
		{FieldFilename: "a", FieldPageCount: "9"},
		{FieldFilename: "b", FieldPageCount: "10"},
		{FieldFilename: "c", FieldPageCount: "2"},
	}

	sorted := SortRecords(records, SortSpec{Key: FieldPageCount})

	// "10" < "2" < "9" as strings.
	assert.Equal(t, []string{"b", "c", "a"}, filenames(sorted))
}

// TestSortRecords_CaseInsensitive tests case folding of the sort key
func TestSortRecords_CaseInsensitive(t *testing.T) {
	sorted := SortRecords(named("banana", "Apple", "cherry"), DefaultSort())
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, filenames(sorted))
}

// TestSortRecords_Descending tests direction inversion
func TestSortRecords_Descending(t *testing.T) {
	sorted := SortRecords(named("a", "c", "b"), SortSpec{Key: FieldFilename, Descending: true})
	assert.Equal(t, []string{"c", "b", "a"}, filenames(sorted))
}

// TestSortRecords_StableOnEqualKeys tests that ties keep input order
func TestSortRecords_StableOnEqualKeys(t *testing.T) {
	records := []Record{
		{FieldFilename: "first", FieldTag: "x"},
		{FieldFilename: "second", FieldTag: "x"},
		{FieldFilename: "third", FieldTag: "x"},
	}

	sorted := SortRecords(records, SortSpec{Key: FieldTag})
	assert.Equal(t, []string{"first", "second", "third"}, filenames(sorted))
}

// TestSortRecords_MissingKeySortsAsEmpty tests absent-field ordering
func TestSortRecords_MissingKeySortsAsEmpty(t *testing.T) {
	records := []Record{
		{FieldFilename: "has-tag", FieldTag: "a"},
		{FieldFilename: "no-tag"},
	}

	sorted := SortRecords(records, SortSpec{Key: FieldTag})
	assert.Equal(t, []string{"no-tag", "has-tag"}, filenames(sorted))
}

// TestSortRecords_DoesNotMutateInput tests the copy-then-sort contract
func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	records := named("c", "a", "b")

	_ = SortRecords(records, DefaultSort())

	assert.Equal(t, []string{"c", "a", "b"}, filenames(records))
}

func TestDefaultSort(t *testing.T) {
	assert.Equal(t, SortSpec{Key: FieldFilename}, DefaultSort())
}

// TestSortSpec_Toggle tests the header-click direction rule
func TestSortSpec_Toggle(t *testing.T) {
	spec := DefaultSort()

	// Same key ascending flips to descending.
	spec = spec.Toggle(FieldFilename)
	assert.Equal(t, SortSpec{Key: FieldFilename, Descending: true}, spec)

	// Same key descending resets to ascending.
	spec = spec.Toggle(FieldFilename)
	assert.Equal(t, SortSpec{Key: FieldFilename}, spec)

	// A different key always starts ascending.
	spec = SortSpec{Key: FieldFilename, Descending: true}
	spec = spec.Toggle(FieldSizeKB)
	assert.Equal(t, SortSpec{Key: FieldSizeKB}, spec)
}

func TestSortKeys_ContainsDefault(t *testing.T) {
	assert.Contains(t, SortKeys, DefaultSort().Key)
}
