// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Bar displays catalog/query status and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	client      string
	resultCount int
	totalCount  int
	filters     string
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders counts and state.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return "loading catalog..."
	case StateError:
		return "error: " + s.message
	default:
		parts := []string{fmt.Sprintf("%d/%d records", s.resultCount, s.totalCount)}
		if s.client != "" {
			parts = append(parts, s.client)
		}
		if s.filters != "" {
			parts = append(parts, s.filters)
		}
		return strings.Join(parts, " │ ")
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	hints := make([]string, 0, 4)
	for _, b := range s.keymap.BrowserHelp() {
		hints = append(hints, renderHint(b))
	}
	return strings.Join(hints, "  ")
}

func renderHint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("[%s] %s", h.Key, h.Desc)
}

// SetState sets the display state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// SetMessage sets the status message (shown in the error state).
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// SetClient sets the catalog client name.
func (s *Bar) SetClient(client string) {
	s.client = client
}

// SetCounts sets the result and total record counts.
func (s *Bar) SetCounts(results, total int) {
	s.resultCount = results
	s.totalCount = total
}

// SetFilters sets the active filter description.
func (s *Bar) SetFilters(filters string) {
	s.filters = filters
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}
