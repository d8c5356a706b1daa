// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowser is the filterable, searchable record list.
	ViewBrowser ViewType = iota
	// ViewDetails shows the projection for a single record.
	ViewDetails
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowser:
		return "browser"
	case ViewDetails:
		return "details"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CatalogLoaded carries the result of a catalog (re)load.
type CatalogLoaded struct {
	Client  string
	Records []domain.Record
	Facets  domain.Facets
	Err     error
}

// CatalogChanged signals the catalog file changed on disk.
// The file watcher sends it; the app responds by reloading.
type CatalogChanged struct{}

// SearchDebounced fires after the search debounce delay. Seq identifies the
// keystroke that scheduled it; the browser drops stale sequences so a burst
// of edits collapses to a single query run.
type SearchDebounced struct {
	Seq int
}

// RecordSelected signals a record was chosen for the details view.
type RecordSelected struct {
	Record domain.Record
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
