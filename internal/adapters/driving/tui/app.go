package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/views/browser"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/views/details"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// browserView is the record browsing view component.
	browserView *browser.View

	// detailsView is the record details view component.
	detailsView *details.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	browserView := browser.NewView(s, km, ports.Catalog, ports.Query)
	detailsView := details.NewView(s)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		browserView: browserView,
		detailsView: detailsView,
		currentView: messages.ViewBrowser,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.browserView.WithContext(ctx)
	return a
}

// SetSearchDebounce overrides the search debounce delay.
func (a *App) SetSearchDebounce(d time.Duration) {
	a.browserView.SetDebounce(d)
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docdex - Catalog Browser"),
		a.browserView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.browserView.SetDimensions(msg.Width, msg.Height)
		a.detailsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewBrowser:
			a.browserView, cmd = a.browserView.Update(msg)
			a.err = a.browserView.Err()
			return a, cmd

		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes back to the browser
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewBrowser
			}
			return a, nil
		}
		return a, nil

	// Catalog and search messages belong to the browser regardless of
	// which view is visible: a reload triggered by the file watcher must
	// land even while details are shown.
	case messages.CatalogLoaded, messages.CatalogChanged, messages.SearchDebounced:
		a.browserView, cmd = a.browserView.Update(msg)
		a.err = a.browserView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.RecordSelected:
		if msg.Record != nil {
			a.detailsView.SetProjection(a.ports.Projection.Project(msg.Record))
			a.currentView = messages.ViewDetails
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewBrowser:
			a.browserView, cmd = a.browserView.Update(msg)
		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
		case messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewBrowser:
		a.browserView, cmd = a.browserView.Update(msg)
	case messages.ViewDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBrowser:
		return a.browserView.View()
	case messages.ViewDetails:
		return a.detailsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.browserView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  j/k, ↑/↓    Move through records
  enter       Open record details
  esc         Back / close overlay
  ctrl+c, q   Quit

Filters:
  e           Cycle extension
  t           Cycle tag
  c           Cycle content type
  p           Cycle process step
  l           Cycle language
  i           Cycle has-images (any/yes/no)
  m           Pick required modules
  x           Clear all filters

Search & sort:
  /           Focus search input
  o           Open sort menu (enter flips direction)
  r           Reload catalog

[esc] back to browser`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Browser returns the browser view (for testing).
func (a *App) Browser() *browser.View {
	return a.browserView
}

// Details returns the details view (for testing).
func (a *App) Details() *details.View {
	return a.detailsView
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browserView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
