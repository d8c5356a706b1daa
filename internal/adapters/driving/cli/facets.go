package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var facetsJSON bool

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List distinct filter values in the catalog",
	Long: `Prints the distinct values for every filterable dimension of the
catalog: extensions, tags, content types, process steps, languages, and
modules. These are the values the browse and query filters accept.`,
	RunE: runFacets,
}

func init() {
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "output facets as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	facets := catalogService.Facets()

	if facetsJSON {
		data, err := json.MarshalIndent(facets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal facets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	groups := []struct {
		name   string
		values []string
	}{
		{"Extensions", facets.Extensions},
		{"Tags", facets.Tags},
		{"Content types", facets.ContentTypes},
		{"Process steps", facets.ProcessSteps},
		{"Languages", facets.Languages},
		{"Modules", facets.Modules},
	}

	for _, g := range groups {
		if len(g.values) == 0 {
			cmd.Printf("%s: (none)\n", g.name)
			continue
		}
		cmd.Printf("%s: %s\n", g.name, strings.Join(g.values, ", "))
	}

	return nil
}
