package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

var (
	queryExtension   string
	queryTag         string
	queryContentType string
	queryProcessStep string
	queryLanguage    string
	queryHasImages   string
	queryModules     []string
	querySearch      string
	querySortKey     string
	querySortDesc    bool
	queryJSON        bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter, search, and sort catalog records",
	Long: `Runs the query pipeline against the catalog and prints the results.

Filters combine with AND semantics: a record must satisfy every constraint
to appear. String filters match exactly; --modules requires every listed
module; --search matches a lowercase substring across filename, summary,
tag, content type, process step, language, and modules.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryExtension, "extension", "", "filter by file extension")
	queryCmd.Flags().StringVar(&queryTag, "tag", "", "filter by tag")
	queryCmd.Flags().StringVar(&queryContentType, "content-type", "", "filter by content type")
	queryCmd.Flags().StringVar(&queryProcessStep, "process-step", "", "filter by process step")
	queryCmd.Flags().StringVar(&queryLanguage, "language", "", "filter by language")
	queryCmd.Flags().StringVar(&queryHasImages, "has-images", "", "filter by image presence (yes|no)")
	queryCmd.Flags().StringSliceVar(&queryModules, "modules", nil, "require all listed modules")
	queryCmd.Flags().StringVarP(&querySearch, "search", "s", "", "substring search")
	queryCmd.Flags().StringVar(&querySortKey, "sort", domain.DefaultSort().Key, "sort key")
	queryCmd.Flags().BoolVar(&querySortDesc, "desc", false, "sort descending")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, _ []string) error {
	if catalogService == nil || queryService == nil {
		return errors.New("catalog services not configured")
	}

	sel, err := buildSelection()
	if err != nil {
		return err
	}

	spec, err := buildSortSpec()
	if err != nil {
		return err
	}

	if err := catalogService.Load(cmd.Context()); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	results := queryService.Run(catalogService.Records(), sel, spec)

	if queryJSON {
		return outputQueryJSON(cmd, results)
	}

	return outputQueryTable(cmd, results)
}

// buildSelection converts the query flags into a filter selection.
func buildSelection() (domain.Selection, error) {
	sel := domain.Selection{
		Extension:   queryExtension,
		Tag:         queryTag,
		ContentType: queryContentType,
		ProcessStep: queryProcessStep,
		Language:    queryLanguage,
		Modules:     queryModules,
		Search:      querySearch,
	}

	switch queryHasImages {
	case "":
		sel.HasImages = domain.HasImagesAny
	case "yes":
		sel.HasImages = domain.HasImagesYes
	case "no":
		sel.HasImages = domain.HasImagesNo
	default:
		return sel, fmt.Errorf("%w: --has-images must be yes or no, got %q",
			domain.ErrInvalidInput, queryHasImages)
	}

	return sel, nil
}

// buildSortSpec validates the sort flags against the known sort keys.
func buildSortSpec() (domain.SortSpec, error) {
	for _, key := range domain.SortKeys {
		if key == querySortKey {
			return domain.SortSpec{Key: querySortKey, Descending: querySortDesc}, nil
		}
	}
	return domain.SortSpec{}, fmt.Errorf("%w: unknown sort key %q (valid: %s)",
		domain.ErrInvalidInput, querySortKey, strings.Join(domain.SortKeys, ", "))
}

func outputQueryJSON(cmd *cobra.Command, results []domain.Record) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, results []domain.Record) error {
	if len(results) == 0 {
		cmd.Println("No records matched.")
		return nil
	}

	width := terminalWidth()
	nameWidth := 32
	summaryWidth := width - nameWidth - 24
	if summaryWidth < 16 {
		summaryWidth = 16
	}

	cmd.Printf("%-*s %-10s %-12s %s\n", nameWidth, "FILENAME", "EXT", "TAG", "SUMMARY")
	for _, rec := range results {
		cmd.Printf("%-*s %-10s %-12s %s\n",
			nameWidth, truncate(rec.String(domain.FieldFilename), nameWidth),
			truncate(rec.String(domain.FieldExtension), 10),
			truncate(rec.String(domain.FieldTag), 12),
			truncate(rec.String(domain.FieldSummary), summaryWidth))
	}
	cmd.Println()
	cmd.Printf("%d record(s)\n", len(results))

	return nil
}

// terminalWidth returns the current terminal width, defaulting to 100 when
// stdout is not a terminal (pipes, CI).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		return w
	}
	return 100
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
