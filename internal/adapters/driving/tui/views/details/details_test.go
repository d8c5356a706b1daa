package details

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

func sampleProjection() *driving.Projection {
	return &driving.Projection{
		Filename: "handbook.pdf",
		Path:     "docs/handbook.pdf",
		Summary:  "Employee handbook covering onboarding and conduct.",
		Badges: []driving.Badge{
			{Label: "Extension", Value: "pdf"},
			{Label: "Language", Value: "en"},
			{Label: "Has images", Value: "false"},
		},
		Modules: []string{"hr", "onboarding"},
		Metadata: []driving.MetadataField{
			{Label: "Size (KB)", Value: "480"},
			{Label: "Pages", Value: ""},
		},
	}
}

func readyView() *View {
	v := NewView(nil)
	v.SetDimensions(100, 30)
	return v
}

func TestView_RendersProjection(t *testing.T) {
	v := readyView()
	v.SetProjection(sampleProjection())

	out := v.View()

	assert.Contains(t, out, "handbook.pdf")
	assert.Contains(t, out, "docs/handbook.pdf")
	assert.Contains(t, out, "Employee handbook")
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "hr")
	assert.Contains(t, out, "onboarding")
	assert.Contains(t, out, "Size (KB)")
	assert.Contains(t, out, "480")
}

// TestView_FalsyBadgeValuesRender verifies "false" badges are shown
func TestView_FalsyBadgeValuesRender(t *testing.T) {
	v := readyView()
	v.SetProjection(sampleProjection())

	assert.Contains(t, v.View(), "false")
}

// TestView_EmptyMetadataSlotsKeepTheirLabel tests absent fields render a
// placeholder under their fixed label
func TestView_EmptyMetadataSlotsKeepTheirLabel(t *testing.T) {
	v := readyView()
	v.SetProjection(sampleProjection())

	out := v.View()
	assert.Contains(t, out, "Pages")
	assert.Contains(t, out, "—")
}

func TestView_NoProjection(t *testing.T) {
	v := readyView()

	assert.Contains(t, v.View(), "No record selected")
}

func TestView_Error(t *testing.T) {
	v := readyView()
	v.SetError(errors.New("lookup failed"))

	assert.Contains(t, v.View(), "lookup failed")
}

// TestView_EscReturnsToBrowser tests back navigation
func TestView_EscReturnsToBrowser(t *testing.T) {
	v := readyView()
	v.SetProjection(sampleProjection())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewBrowser, msg.View)
}

func TestView_ScrollBounds(t *testing.T) {
	v := readyView()
	v.SetProjection(sampleProjection())

	// Scrolling up at the top stays at offset zero.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, v.scrollOffset)

	// Scrolling down never exceeds the content length.
	for i := 0; i < 100; i++ {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	assert.LessOrEqual(t, v.scrollOffset, v.maxScrollOffset())
}

// TestView_SetProjectionResetsState tests a new selection clears scroll/error
func TestView_SetProjectionResetsState(t *testing.T) {
	v := readyView()
	v.SetError(errors.New("stale"))
	v.scrollOffset = 5

	v.SetProjection(sampleProjection())

	assert.NoError(t, v.Err())
	assert.Equal(t, 0, v.scrollOffset)
}
