// Package browser provides the record browsing view: filter bar, debounced
// search input, and the query result list.
package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// DefaultDebounce is the trailing-edge delay applied to search keystrokes.
const DefaultDebounce = 250 * time.Millisecond

// overlayMode identifies the active modal overlay, if any.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayModules
	overlaySort
)

// View is the record browser.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecordList
	statusbar *status.Bar

	catalog driving.CatalogService
	query   driving.QueryService
	ctx     context.Context

	selection domain.Selection
	sortSpec  domain.SortSpec
	facets    domain.Facets
	results   []domain.Record

	// debounce state: each search keystroke bumps searchSeq and schedules a
	// tick carrying it; only the tick whose sequence is still current runs
	// the pipeline, so a burst of edits collapses to one execution.
	debounce  time.Duration
	searchSeq int

	overlay         overlayMode
	overlaySelected int
	moduleChecks    map[string]bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new browser view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	query driving.QueryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewRecordList(s),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		query:     query,
		ctx:       context.Background(),
		sortSpec:  domain.DefaultSort(),
		debounce:  DefaultDebounce,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetDebounce overrides the search debounce delay.
func (v *View) SetDebounce(d time.Duration) {
	if d > 0 {
		v.debounce = d
	}
}

// Init initialises the view and triggers the initial catalog load.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return tea.Batch(v.input.Init(), v.loadCatalog())
}

// loadCatalog returns a command that (re)loads the catalog.
func (v *View) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		err := v.catalog.Load(v.ctx)
		return messages.CatalogLoaded{
			Client:  v.catalog.Client(),
			Records: v.catalog.Records(),
			Facets:  v.catalog.Facets(),
			Err:     err,
		}
	}
}

// Update handles messages for the browser view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CatalogLoaded:
		v.facets = msg.Facets
		v.err = msg.Err
		v.rerun()
		return v, nil

	case messages.CatalogChanged:
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadCatalog()

	case messages.SearchDebounced:
		if msg.Seq != v.searchSeq {
			// A newer keystroke superseded this tick.
			return v, nil
		}
		v.selection.Search = v.input.Value()
		v.rerun()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.overlay != overlayNone {
		return v.handleOverlayKey(msg)
	}

	if v.input.Focused() {
		return v.handleSearchKey(msg)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, tea.Quit

	case keymap.Matches(msg.String(), v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(msg.String(), v.keymap.FocusSearch):
		return v, v.input.Focus()

	case keymap.Matches(msg.String(), v.keymap.ClearFilters):
		v.selection = domain.Selection{}
		v.input.SetValue("")
		v.searchSeq++ // invalidate any pending debounce tick
		v.rerun()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Reload):
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadCatalog()

	case keymap.Matches(msg.String(), v.keymap.Modules):
		v.openModuleOverlay()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Sort):
		v.overlay = overlaySort
		v.overlaySelected = 0
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Select):
		if rec := v.list.SelectedRecord(); rec != nil {
			return v, func() tea.Msg {
				return messages.RecordSelected{Record: rec}
			}
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
		return v, nil
	}

	// Filter cycling keys
	switch msg.String() {
	case "e":
		v.selection.Extension = cycleValue(v.selection.Extension, v.facets.Extensions)
	case "t":
		v.selection.Tag = cycleValue(v.selection.Tag, v.facets.Tags)
	case "c":
		v.selection.ContentType = cycleValue(v.selection.ContentType, v.facets.ContentTypes)
	case "p":
		v.selection.ProcessStep = cycleValue(v.selection.ProcessStep, v.facets.ProcessSteps)
	case "l":
		v.selection.Language = cycleValue(v.selection.Language, v.facets.Languages)
	case "i":
		v.selection.HasImages = cycleHasImages(v.selection.HasImages)
	default:
		return v, nil
	}
	v.rerun()
	return v, nil
}

// handleSearchKey processes keys while the search input has focus.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		// Invalidate any pending debounce tick so the abandoned term
		// is never applied.
		v.input.Blur()
		v.searchSeq++
		return v, nil
	case tea.KeyEnter:
		// Apply immediately, superseding any pending debounce tick.
		v.input.Blur()
		v.searchSeq++
		v.selection.Search = v.input.Value()
		v.rerun()
		return v, nil
	default:
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.scheduleSearch())
	}
	return v, cmd
}

// scheduleSearch arms the trailing-edge debounce timer. Each keystroke
// supersedes the pending tick via the sequence counter.
func (v *View) scheduleSearch() tea.Cmd {
	v.searchSeq++
	seq := v.searchSeq
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return messages.SearchDebounced{Seq: seq}
	})
}

// handleOverlayKey processes keys while an overlay is open.
func (v *View) handleOverlayKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	items := v.overlayItems()

	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		v.overlay = overlayNone
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.overlaySelected > 0 {
			v.overlaySelected--
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.overlaySelected < len(items)-1 {
			v.overlaySelected++
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Toggle):
		if v.overlay == overlayModules && v.overlaySelected < len(items) {
			name := items[v.overlaySelected]
			v.moduleChecks[name] = !v.moduleChecks[name]
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Select):
		return v.applyOverlay(items)
	}

	return v, nil
}

// applyOverlay commits the overlay selection and reruns the query.
func (v *View) applyOverlay(items []string) (*View, tea.Cmd) {
	switch v.overlay {
	case overlayModules:
		var required []string
		for _, m := range v.facets.Modules {
			if v.moduleChecks[m] {
				required = append(required, m)
			}
		}
		v.selection.Modules = required

	case overlaySort:
		if v.overlaySelected < len(items) {
			v.sortSpec = v.sortSpec.Toggle(items[v.overlaySelected])
		}

	case overlayNone:
	}

	v.overlay = overlayNone
	v.rerun()
	return v, nil
}

// overlayItems returns the entries of the active overlay.
func (v *View) overlayItems() []string {
	switch v.overlay {
	case overlayModules:
		return v.facets.Modules
	case overlaySort:
		return domain.SortKeys
	default:
		return nil
	}
}

// openModuleOverlay seeds the checkbox state from the current selection.
func (v *View) openModuleOverlay() {
	v.overlay = overlayModules
	v.overlaySelected = 0
	v.moduleChecks = make(map[string]bool, len(v.selection.Modules))
	for _, m := range v.selection.Modules {
		v.moduleChecks[m] = true
	}
}

// rerun recomputes the result collection from the full source collection
// and refreshes the status bar.
func (v *View) rerun() {
	records := v.catalog.Records()
	v.results = v.query.Run(records, v.selection, v.sortSpec)
	v.list.SetRecords(v.results)

	v.statusbar.SetClient(v.catalog.Client())
	v.statusbar.SetCounts(len(v.results), len(records))
	if v.selection.HasConstraints() {
		v.statusbar.SetFilters(v.selection.Describe())
	} else {
		v.statusbar.SetFilters("")
	}

	if v.err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.err.Error())
	} else {
		v.statusbar.SetState(status.StateReady)
	}
}

// cycleValue steps a single-valued dimension through its facet values:
// unconstrained, each value in facet order, then unconstrained again.
func cycleValue(current string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	if current == "" {
		return values[0]
	}
	for i, val := range values {
		if val == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return ""
}

// cycleHasImages steps the tri-state flag: any, yes, no.
func cycleHasImages(current domain.HasImagesFilter) domain.HasImagesFilter {
	switch current {
	case domain.HasImagesAny:
		return domain.HasImagesYes
	case domain.HasImagesYes:
		return domain.HasImagesNo
	default:
		return domain.HasImagesAny
	}
}

// View renders the browser view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := v.styles.Title.Render("docdex")
	if client := v.catalog.Client(); client != "" {
		header += v.styles.Muted.Render(" — " + client)
	}
	sections = append(sections, header, "")

	sections = append(sections, v.renderFilterBar(), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections,
			v.styles.Error.Render("Failed to load catalog: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	if v.overlay != overlayNone {
		sections = append(sections, "", v.renderOverlay())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilterBar renders one slot per filter dimension plus the sort spec.
func (v *View) renderFilterBar() string {
	slot := func(key, label, value string) string {
		if value == "" {
			value = "*"
		}
		text := fmt.Sprintf("[%s] %s:%s", key, label, value)
		if value != "*" {
			return v.styles.FilterActive.Render(text)
		}
		return v.styles.Muted.Render(text)
	}

	modules := "*"
	if len(v.selection.Modules) > 0 {
		modules = strings.Join(v.selection.Modules, "+")
	}

	direction := "asc"
	if v.sortSpec.Descending {
		direction = "desc"
	}

	slots := []string{
		slot("e", "ext", v.selection.Extension),
		slot("t", "tag", v.selection.Tag),
		slot("c", "type", v.selection.ContentType),
		slot("p", "step", v.selection.ProcessStep),
		slot("l", "lang", v.selection.Language),
		slot("i", "img", string(v.selection.HasImages)),
		slot("m", "mods", modules),
		v.styles.Muted.Render(fmt.Sprintf("[o] sort:%s %s", v.sortSpec.Key, direction)),
	}

	return strings.Join(slots, "  ")
}

// renderOverlay renders the module picker or sort menu.
func (v *View) renderOverlay() string {
	items := v.overlayItems()
	var title string
	switch v.overlay {
	case overlayModules:
		title = "Required modules"
	case overlaySort:
		title = "Sort by"
	case overlayNone:
		return ""
	}

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, v.styles.Subtitle.Render(title))

	if len(items) == 0 {
		lines = append(lines, v.styles.Muted.Render("  (no values)"))
	}

	for i, item := range items {
		indicator := "  "
		if i == v.overlaySelected {
			indicator = "> "
		}

		label := item
		switch v.overlay {
		case overlayModules:
			box := "[ ]"
			if v.moduleChecks[item] {
				box = "[x]"
			}
			label = box + " " + item
		case overlaySort:
			if item == v.sortSpec.Key {
				if v.sortSpec.Descending {
					label += " ↓"
				} else {
					label += " ↑"
				}
			}
		case overlayNone:
		}

		if i == v.overlaySelected {
			lines = append(lines, v.styles.Selected.Render(indicator+label))
		} else {
			lines = append(lines, v.styles.Normal.Render(indicator+label))
		}
	}

	lines = append(lines, "",
		v.styles.Help.Render("[↑/↓] navigate  [space] toggle  [enter] apply  [esc] cancel"))

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12) // header, filter bar, input, status
	v.statusbar.SetWidth(width)
}

// Selection returns the current filter selection.
func (v *View) Selection() domain.Selection {
	return v.selection
}

// SortSpec returns the current sort specification.
func (v *View) SortSpec() domain.SortSpec {
	return v.sortSpec
}

// Results returns the current result collection.
func (v *View) Results() []domain.Record {
	return v.results
}

// SearchSeq returns the current debounce sequence number.
func (v *View) SearchSeq() int {
	return v.searchSeq
}

// SelectedRecord returns the record under the cursor, or nil.
func (v *View) SelectedRecord() domain.Record {
	return v.list.SelectedRecord()
}

// SearchFocused returns whether the search input has focus.
func (v *View) SearchFocused() bool {
	return v.input.Focused()
}

// OverlayOpen reports whether a modal overlay is active.
func (v *View) OverlayOpen() bool {
	return v.overlay != overlayNone
}

// Err returns the last load error, if any.
func (v *View) Err() error {
	return v.err
}
