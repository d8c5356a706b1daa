package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Catalog: &MockCatalogService{
			ClientName: "acme",
			Recs: []domain.Record{
				{domain.FieldFilename: "a.pdf", domain.FieldPath: "docs/a.pdf"},
			},
		},
		Query:      &MockQueryService{},
		Projection: &MockProjectionService{},
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts()
	ports.Catalog = nil

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApp_MissingQuery(t *testing.T) {
	ports := newTestPorts()
	ports.Query = nil

	_, err := NewApp(ports)
	assert.ErrorIs(t, err, ErrMissingQueryService)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	result := app.WithContext(context.Background())

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// TestApp_RecordSelected tests navigation to the details view
func TestApp_RecordSelected(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	rec := domain.Record{domain.FieldFilename: "a.pdf", domain.FieldPath: "docs/a.pdf"}
	app.Update(messages.RecordSelected{Record: rec})

	assert.Equal(t, messages.ViewDetails, app.CurrentView())
	projection := ports.Projection.(*MockProjectionService)
	assert.Equal(t, 1, projection.ProjectCalls)
	require.NotNil(t, app.Details().Projection())
	assert.Equal(t, "a.pdf", app.Details().Projection().Filename)
}

func TestApp_RecordSelected_NilRecordIgnored(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	app.Update(messages.RecordSelected{Record: nil})

	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
}

// TestApp_ViewChanged tests view switching
func TestApp_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewBrowser})
	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
}

// TestApp_HelpEscReturnsToBrowser tests leaving the help view
func TestApp_HelpEscReturnsToBrowser(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
}

// TestApp_CatalogChangedReachesBrowserFromDetails tests that watcher reloads
// land regardless of the visible view
func TestApp_CatalogChangedReachesBrowserFromDetails(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewDetails})

	_, cmd := app.Update(messages.CatalogChanged{})

	// The browser schedules a reload command even while details are shown.
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, ports.Catalog.(*MockCatalogService).LoadCalls)
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()
	assert.Contains(t, view, "Cycle extension")
	assert.Contains(t, view, "Focus search")
}
