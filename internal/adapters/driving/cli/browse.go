package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive catalog browser",
	Long: `Launch the interactive terminal user interface for docdex.

The browser shows the catalog records with a filter bar, debounced search,
and a details page per record. When the catalog is a local file, changes on
disk reload it automatically.

Controls:
  ↑/k, ↓/j - Navigate records
  enter    - Open details
  /        - Focus search
  e/t/c/p/l/i - Cycle filters
  m        - Pick required modules
  o        - Sort menu
  x        - Clear filters
  r        - Reload catalog
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(catalogService, queryService, projectionService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if configStore != nil {
		if ms := configStore.GetInt(configfile.KeySearchDebounceMS); ms > 0 {
			app.SetSearchDebounce(time.Duration(ms) * time.Millisecond)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Watch local catalog files for changes. The watcher pushes a reload
	// message into the running program; HTTP catalogs reload on demand only.
	if fileSource != nil {
		watchCtx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			if err := fileSource.Watch(watchCtx, func() {
				p.Send(messages.CatalogChanged{})
			}); err != nil {
				logger.Warn("catalog watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
