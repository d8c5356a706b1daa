// Package cli implements the command-line driving adapter for docdex.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	catalogfile "github.com/custodia-labs/docdex-cli/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/catalog/httpsource"
	configfile "github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/core/services"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// version is the application version, set at build time via ldflags.
var version = "0.1.0-dev"

// Persistent flag values.
var (
	configDirFlag string
	catalogFlag   string
	verboseFlag   bool
)

// Package-level services, wired in initServices and overridable by tests.
var (
	catalogService    driving.CatalogService
	queryService      driving.QueryService
	projectionService driving.ProjectionService
	configStore       driven.ConfigStore

	// fileSource is non-nil when the catalog comes from a local file,
	// which makes it watchable for live reload.
	fileSource *catalogfile.Source
)

var rootCmd = &cobra.Command{
	Use:   "docdex",
	Short: "Browse and query document catalogs",
	Long: `docdex is a terminal browser for document catalogs.

It loads a catalog of file metadata records from a local JSON file or an
HTTP endpoint and lets you filter, search, sort, and inspect the records
interactively or from scripts.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "",
		"config directory (default ~/.docdex)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "",
		"catalog file path or URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging")
}

// SetServices injects service implementations, replacing the default wiring.
// Used by tests and by embedders that construct their own stack.
func SetServices(
	catalog driving.CatalogService,
	query driving.QueryService,
	projection driving.ProjectionService,
) {
	catalogService = catalog
	queryService = query
	projectionService = projection
}

// initServices builds the default service stack unless one was injected.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if catalogService != nil && queryService != nil && projectionService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store

	if !verboseFlag && store.GetBool(configfile.KeyVerbose) {
		logger.SetVerbose(true)
	}

	source, err := resolveCatalogSource(store)
	if err != nil {
		return err
	}
	logger.Debug("catalog source: %s", source.Describe())

	locale := store.GetString(configfile.KeyLocale)
	catalogService = services.NewCatalogService(source, locale)
	queryService = services.NewQueryService()
	projectionService = services.NewProjectionService()

	return nil
}

// resolveCatalogSource picks the catalog source from the --catalog flag or,
// failing that, the config file. URL values go over HTTP, anything else is
// treated as a local file path.
func resolveCatalogSource(store driven.ConfigStore) (driven.CatalogSource, error) {
	location := catalogFlag
	if location == "" {
		location = store.GetString(configfile.KeyCatalogURL)
	}
	if location == "" {
		location = store.GetString(configfile.KeyCatalogPath)
	}
	if location == "" {
		return nil, fmt.Errorf(
			"no catalog configured: pass --catalog or set %s/%s in %s",
			configfile.KeyCatalogPath, configfile.KeyCatalogURL, store.Path())
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		fileSource = nil
		return httpsource.NewSource(location), nil
	}

	fileSource = catalogfile.NewSource(location)
	return fileSource, nil
}
