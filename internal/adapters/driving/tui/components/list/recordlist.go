// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// RecordList displays query results in a navigable list.
type RecordList struct {
	records  []domain.Record
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		records:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No matching records")
	}

	lines := make([]string, 0, len(r.records)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Records (%d)", len(r.records)))
	lines = append(lines, header, "")

	// Each record takes two lines (name row + summary preview)
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.records) {
		end = len(r.records)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, r.records[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single record with a summary preview line.
func (r *RecordList) renderRecord(index int, rec domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := rec.String(domain.FieldFilename)
	if name == "" {
		name = rec.String(domain.FieldPath)
	}
	if name == "" {
		name = "(unnamed)"
	}

	maxNameLen := r.width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	name = truncate(name, maxNameLen)

	// Right column: extension and tag, when present
	var marks []string
	if ext := rec.String(domain.FieldExtension); ext != "" {
		marks = append(marks, ext)
	}
	if tag := rec.String(domain.FieldTag); tag != "" {
		marks = append(marks, tag)
	}
	mark := strings.Join(marks, " · ")

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, mark))
	} else {
		nameLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
			r.styles.Muted.Render(mark)
	}

	preview := rec.String(domain.FieldSummary)
	maxPreviewLen := r.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	preview = truncate(preview, maxPreviewLen)
	previewLine := r.styles.Muted.Render("    " + preview)

	return nameLine + "\n" + previewLine
}

// truncate shortens s to at most max runes. Catalog text is arbitrary
// UTF-8, so slicing happens on runes to avoid splitting a sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// SetRecords updates the record list and resets the selection.
func (r *RecordList) SetRecords(records []domain.Record) {
	r.records = records
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.Record {
	return r.records
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() domain.Record {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}
