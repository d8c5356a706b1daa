package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [path-or-filename]",
	Short: "Show the details of a single record",
	Long: `Looks up a record by its path or, when unambiguous, by its filename,
and prints its projected details: badges, summary, modules, and metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the raw record as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil || projectionService == nil {
		return errors.New("catalog services not configured")
	}

	if err := catalogService.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	rec, err := catalogService.Find(args[0])
	if err != nil {
		return fmt.Errorf("show %q: %w", args[0], err)
	}

	if showJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	p := projectionService.Project(rec)

	cmd.Println(p.Filename)
	if p.Path != "" {
		cmd.Println(p.Path)
	}
	cmd.Println()

	if len(p.Badges) > 0 {
		badges := make([]string, 0, len(p.Badges))
		for _, b := range p.Badges {
			badges = append(badges, fmt.Sprintf("[%s: %s]", b.Label, b.Value))
		}
		cmd.Println(strings.Join(badges, " "))
		cmd.Println()
	}

	if p.Summary != "" {
		cmd.Println(p.Summary)
		cmd.Println()
	}

	if len(p.Modules) > 0 {
		cmd.Printf("Modules: %s\n\n", strings.Join(p.Modules, ", "))
	}

	cmd.Println("Metadata:")
	for _, field := range p.Metadata {
		value := field.Value
		if value == "" {
			value = "-"
		}
		cmd.Printf("  %-12s %s\n", field.Label+":", value)
	}

	return nil
}
