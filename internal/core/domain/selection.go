package domain

import (
	"fmt"
	"strings"
)

// HasImagesFilter is the tri-state has-images dimension: unconstrained,
// require the flag, or require its absence.
type HasImagesFilter string

const (
	HasImagesAny HasImagesFilter = ""
	HasImagesYes HasImagesFilter = "yes"
	HasImagesNo  HasImagesFilter = "no"
)

// Selection is the full set of active filter constraints plus the free-text
// search term. The zero value imposes no constraints. A Selection is an
// immutable-per-update value: views build a new one and hand it to the
// query pipeline rather than mutating shared state.
type Selection struct {
	// Single-valued dimensions. Empty means no constraint; a set value must
	// match the record's raw field exactly (case-sensitive).
	Extension   string
	Tag         string
	ContentType string
	ProcessStep string
	Language    string

	// HasImages constrains the record's boolean flag after truthy coercion.
	HasImages HasImagesFilter

	// Modules is the required module set. A record passes when every entry
	// is present in its module list; extra modules on the record are fine.
	Modules []string

	// Search is the free-text term, matched as a case-insensitive substring
	// of the record's search blob.
	Search string
}

// Matches reports whether a record satisfies every active constraint.
// Predicates combine by logical AND and have no side effects.
func (s Selection) Matches(r Record) bool {
	return matchField(r, FieldExtension, s.Extension) &&
		matchField(r, FieldTag, s.Tag) &&
		matchField(r, FieldContentType, s.ContentType) &&
		matchField(r, FieldProcessStep, s.ProcessStep) &&
		matchField(r, FieldLanguage, s.Language) &&
		s.matchHasImages(r) &&
		s.matchModules(r) &&
		s.matchSearch(r)
}

// HasConstraints reports whether any dimension or the search term is set.
func (s Selection) HasConstraints() bool {
	return s.Extension != "" || s.Tag != "" || s.ContentType != "" ||
		s.ProcessStep != "" || s.Language != "" || s.HasImages != HasImagesAny ||
		len(s.Modules) > 0 || strings.TrimSpace(s.Search) != ""
}

// Describe returns a short human-readable summary of the active constraints,
// for status bars and verbose logs.
func (s Selection) Describe() string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+"="+value)
		}
	}
	add("ext", s.Extension)
	add("tag", s.Tag)
	add("type", s.ContentType)
	add("step", s.ProcessStep)
	add("lang", s.Language)
	add("images", string(s.HasImages))
	if len(s.Modules) > 0 {
		parts = append(parts, "modules="+strings.Join(s.Modules, "+"))
	}
	if term := strings.TrimSpace(s.Search); term != "" {
		parts = append(parts, fmt.Sprintf("search=%q", term))
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, " ")
}

// matchField passes when the dimension is unconstrained or the record's raw
// string form equals the selection exactly. This is deliberately
// case-sensitive; only the free-text search folds case.
func matchField(r Record, field, want string) bool {
	if want == "" {
		return true
	}
	return r.String(field) == want
}

func (s Selection) matchHasImages(r Record) bool {
	if s.HasImages == HasImagesAny {
		return true
	}
	return r.Truthy(FieldHasImages) == (s.HasImages == HasImagesYes)
}

// matchModules is a subset test: every required module must be present in
// the record's module list.
func (s Selection) matchModules(r Record) bool {
	if len(s.Modules) == 0 {
		return true
	}
	have := make(map[string]bool, len(s.Modules))
	for _, m := range r.Strings(FieldModules) {
		have[m] = true
	}
	for _, required := range s.Modules {
		if !have[required] {
			return false
		}
	}
	return true
}

func (s Selection) matchSearch(r Record) bool {
	term := strings.ToLower(strings.TrimSpace(s.Search))
	if term == "" {
		return true
	}
	return strings.Contains(r.SearchBlob(), term)
}
