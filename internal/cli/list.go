package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/page"
)

var (
	listPage     int
	listPageSize int
	listAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List varieties matching a filter",
	Long: `List varieties that match every given filter, one page at a time.

Pages hold --page-size varieties (default: page_size from the config, 20).
Use --page to move through them or --all to print every match.

` + filterHelp + `

Examples:
  daylily list
  daylily list --name stella --rebloom
  daylily list --ploidy tetraploid --bloom-size-min 6
  daylily list --season Early --season Early-Mid --page 2
  daylily list --year-start 1990 --year-end 2000 --json
  daylily list --expr 'scape_height_num > 30 && branches_num >= 4' --all`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number (starting at 1)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Varieties per page (default: config page_size)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Print every matching variety")
	rootCmd.AddCommand(listCmd)
}

// listResult is the --json output of list.
type listResult struct {
	Items    []*model.Daylily `json:"items"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
	HasMore  bool             `json:"has_more"`
}

func runList(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec()
	if err != nil {
		exitFilterError(err)
		return nil
	}

	size := listPageSize
	if size == 0 {
		size = runCtx.Config.PageSize
	}
	if size < 1 {
		ExitValidationError(fmt.Sprintf("invalid --page-size: %d (must be at least 1)", listPageSize),
			map[string]interface{}{"flag": "page-size"})
		return nil
	}
	if listPage < 1 {
		ExitValidationError(fmt.Sprintf("invalid --page: %d (must be at least 1)", listPage),
			map[string]interface{}{"flag": "page"})
		return nil
	}

	records, ok := loadRecords()
	if !ok {
		return nil
	}

	filtered := filter.Apply(records, spec)
	result := listResult{
		Items:    page.Window(filtered, listPage, size),
		Page:     listPage,
		PageSize: size,
		Total:    len(filtered),
		HasMore:  page.HasMore(filtered, listPage, size),
	}
	if listAll {
		result.Items = filtered
		result.Page = 1
		result.PageSize = len(filtered)
		result.HasMore = false
	}

	if GetJSONOutput() {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(result.Items) == 0 {
		switch {
		case result.Total > 0:
			fmt.Printf("No varieties on page %d (%d page(s) available)\n", listPage, page.Pages(result.Total, size))
		case spec.IsDefault():
			fmt.Println("No varieties found")
		default:
			fmt.Println("No varieties match the current filters")
		}
		return nil
	}

	printVarietyTable(result.Items)

	if !IsQuiet() {
		fmt.Printf("\nShowing %d of %d variety(ies)", len(result.Items), result.Total)
		if active := spec.Active(); len(active) > 0 {
			fmt.Printf(" filtered by %s", strings.Join(active, ", "))
		}
		fmt.Println()
		if result.HasMore {
			fmt.Printf("More available: use --page %d or --all\n", listPage+1)
		}
	}

	return nil
}

// printVarietyTable prints varieties as a fixed-width table.
func printVarietyTable(records []*model.Daylily) {
	columns := []struct {
		header string
		value  func(*model.Daylily) string
	}{
		{"Name", func(d *model.Daylily) string { return d.Name }},
		{"Hybridizer", func(d *model.Daylily) string { return d.Hybridizer }},
		{"Year", func(d *model.Daylily) string { return d.Year }},
		{"Ploidy", func(d *model.Daylily) string { return d.Ploidy }},
		{"Season", func(d *model.Daylily) string { return d.BloomSeason }},
	}

	// Calculate column widths
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = utf8.RuneCountInString(col.header)
		for _, d := range records {
			if n := utf8.RuneCountInString(col.value(d)); n > widths[i] {
				widths[i] = n
			}
		}
		// Cap column widths for readability
		if widths[i] > 40 {
			widths[i] = 40
		}
	}

	// Print header
	headerParts := make([]string, len(columns))
	separatorParts := make([]string, len(columns))
	for i, col := range columns {
		headerParts[i] = fmt.Sprintf("%-*s", widths[i], col.header)
		separatorParts[i] = strings.Repeat("-", widths[i])
	}
	fmt.Println(strings.TrimRight(strings.Join(headerParts, "  "), " "))
	fmt.Println(strings.Join(separatorParts, "  "))

	// Print records
	for _, d := range records {
		rowParts := make([]string, len(columns))
		for i, col := range columns {
			rowParts[i] = fmt.Sprintf("%-*s", widths[i], truncateCell(col.value(d), widths[i]))
		}
		fmt.Println(strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

// truncateCell shortens s to width runes, ending in "...". fmt pads by
// runes, so widths are counted the same way.
func truncateCell(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
