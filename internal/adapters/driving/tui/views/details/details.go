// Package details provides the record details view component for the TUI.
package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// View is the record details view.
type View struct {
	styles *styles.Styles

	projection   *driving.Projection
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new record details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetProjection sets the projected record to display.
func (v *View) SetProjection(p *driving.Projection) {
	v.projection = p
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the record details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewBrowser}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	lines := v.buildContent()
	maxOffset := len(lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.projection == nil {
		return nil
	}

	var lines []string

	if len(v.projection.Badges) > 0 {
		badges := make([]string, 0, len(v.projection.Badges))
		for _, b := range v.projection.Badges {
			badges = append(badges,
				v.styles.Badge.Render(fmt.Sprintf("%s %s", b.Label, b.Value)))
		}
		lines = append(lines, strings.Join(badges, " "), "")
	}

	if v.projection.Path != "" {
		lines = append(lines, v.styles.Muted.Render(v.projection.Path), "")
	}

	if v.projection.Summary != "" {
		lines = append(lines, wrapText(v.projection.Summary, v.contentWidth())...)
		lines = append(lines, "")
	}

	if len(v.projection.Modules) > 0 {
		chips := make([]string, 0, len(v.projection.Modules))
		for _, m := range v.projection.Modules {
			chips = append(chips, v.styles.Chip.Render(m))
		}
		lines = append(lines,
			v.styles.Subtitle.Render("Modules"),
			strings.Join(chips, " "),
			"")
	}

	if len(v.projection.Metadata) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Metadata"))
		for _, field := range v.projection.Metadata {
			value := field.Value
			if value == "" {
				value = "—"
			}
			lines = append(lines, fmt.Sprintf("  %-12s %s",
				v.styles.Muted.Render(field.Label+":"), value))
		}
	}

	return lines
}

// contentWidth returns the usable content width.
func (v *View) contentWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// wrapText wraps text at word boundaries to the given width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)

	return lines
}

// View renders the record details view.
func (v *View) View() string {
	var b strings.Builder

	title := "Record Details"
	if v.projection != nil && v.projection.Filename != "" {
		title = v.projection.Filename
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.projection == nil {
		b.WriteString(v.styles.Muted.Render("No record selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Projection returns the current projection.
func (v *View) Projection() *driving.Projection {
	return v.projection
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
