package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one file-metadata entry from a scanner catalog, decoded straight
// from JSON. There is no fixed schema beyond the fields the engine reads;
// any field may be absent and absence is treated as an empty value, never
// an error. Records are immutable after load: accessors never modify the map.
type Record map[string]any

// Field keys the engine reads from a record.
const (
	FieldFilename    = "filename"
	FieldPath        = "path"
	FieldExtension   = "extension"
	FieldTag         = "tag"
	FieldContentType = "content_type"
	FieldProcessStep = "process_step"
	FieldLanguage    = "language"
	FieldSummary     = "summary"
	FieldModules     = "modules"
	FieldHasImages   = "has_images"
	FieldSizeKB      = "size_kb"
	FieldPageCount   = "page_count"
	FieldWordCount   = "word_count"
	FieldTablesCount = "tables_count"
	FieldComplexity  = "complexity"
	FieldCreated     = "created"
	FieldModified    = "modified"
	FieldDomain      = "domain"
	FieldVersion     = "version"
)

// String returns the canonical string form of a field with original casing
// preserved. Absent or nil fields return "". Integral JSON numbers render
// without a trailing ".0".
func (r Record) String(field string) string {
	return stringify(r[field])
}

// Fold returns the lower-cased string form of a field, the comparison key
// used by sorting and search.
func (r Record) Fold(field string) string {
	return strings.ToLower(r.String(field))
}

// Strings returns a list-valued field as a string slice in insertion order.
// Scalar values yield a one-element slice; absent fields yield nil. Empty
// elements are dropped.
func (r Record) Strings(field string) []string {
	switch val := r[field].(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := stringify(val); s != "" {
			return []string{s}
		}
		return nil
	}
}

// Truthy coerces a field to a boolean. Absent, nil, false, zero, the empty
// string, and empty lists are false; everything else is true.
func (r Record) Truthy(field string) bool {
	switch val := r[field].(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	default:
		return true
	}
}

// SearchBlob builds the lower-cased text the search matcher scans:
// filename, summary, tag, content type, process step, language, and the
// module list joined by spaces.
func (r Record) SearchBlob() string {
	parts := []string{
		r.String(FieldFilename),
		r.String(FieldSummary),
		r.String(FieldTag),
		r.String(FieldContentType),
		r.String(FieldProcessStep),
		r.String(FieldLanguage),
		strings.Join(r.Strings(FieldModules), " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// stringify converts a decoded JSON value to its canonical string form.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
