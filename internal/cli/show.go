package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
)

// maxSuggestions caps the similar names offered when show finds nothing.
const maxSuggestions = 5

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single variety",
	Long: `Display every field of a variety.

The name is matched case-insensitively against the whole variety name.
Variety names are not unique; every match is shown.

Examples:
  daylily show "Stella de Oro"
  daylily show stella de oro
  daylily show "Happy Returns" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))

	records, ok := loadRecords()
	if !ok {
		return nil
	}

	var spec filter.Spec
	spec.Name = filter.Text{Query: filter.Some(name), Mode: filter.Exact}
	matches := filter.Apply(records, spec)
	if len(matches) == 0 {
		ExitVarietyNotFound(name, suggestNames(records, name))
		return nil
	}

	if GetJSONOutput() {
		data, err := json.Marshal(matches)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for i, d := range matches {
		if i > 0 {
			fmt.Println()
		}
		printVariety(d)
	}
	return nil
}

// printVariety prints a variety as labelled fields.
func printVariety(d *model.Daylily) {
	fmt.Println(d.Name)
	if sub := d.Subtitle(); sub != "" {
		fmt.Println(sub)
	}
	fmt.Println(strings.Repeat("-", max(len(d.Name), 20)))

	fields := d.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label)+1)
	}
	for _, f := range fields {
		fmt.Printf("%-*s  %s\n", width, f.Label+":", f.Value)
	}

	fmt.Println()
	fmt.Printf("Image:   %s\n", model.ImagePath(d.ImageURL))
	if d.URL != "" {
		fmt.Printf("Source:  %s\n", d.URL)
	}
}

// suggestNames returns up to maxSuggestions names containing any word of
// name, in dataset order.
func suggestNames(records []*model.Daylily, name string) []string {
	var names []string
	for _, word := range strings.Fields(name) {
		var spec filter.Spec
		spec.Name.SetText(word)
		for _, d := range filter.Apply(records, spec) {
			if len(names) == maxSuggestions {
				return names
			}
			if !containsFold(names, d.Name) {
				names = append(names, d.Name)
			}
		}
	}
	return names
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
