package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/filter"
	"github.com/user/daylily/internal/model"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Summarize the dataset by filter dimension",
	Long: `Count varieties per ploidy, bloom season and foliage type, count the
rebloomers, and show the range of introduction years and bloom sizes.

The filter flags of list narrow the varieties before they are counted.

` + filterHelp + `

Examples:
  daylily facets
  daylily facets --hybridizer stout
  daylily facets --rebloom --json`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

func init() {
	addFilterFlags(facetsCmd)
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec()
	if err != nil {
		exitFilterError(err)
		return nil
	}

	records, ok := loadRecords()
	if !ok {
		return nil
	}

	facets := filter.Summarize(filter.Apply(records, spec))

	if GetJSONOutput() {
		data, err := json.Marshal(facets)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Varieties:   %d\n", facets.Total)
	fmt.Printf("Rebloomers:  %d\n", facets.Rebloom)
	if facets.YearRange != nil {
		fmt.Printf("Years:       %d - %d\n", facets.YearRange.Min, facets.YearRange.Max)
	}
	if facets.BloomSizeMin != nil && facets.BloomSizeMax != nil {
		fmt.Printf("Bloom size:  %s - %s inches\n", formatInches(*facets.BloomSizeMin), formatInches(*facets.BloomSizeMax))
	}

	printCounts("Ploidy", facets.Ploidy, model.Ploidies)
	printCounts("Bloom season", facets.BloomSeason, model.BloomSeasons)
	printCounts("Foliage type", facets.FoliageType, model.FoliageTypes)
	return nil
}

// printCounts prints one facet's counts, known options first in their usual
// order, then any other values alphabetically.
func printCounts(title string, counts map[string]int, known []string) {
	if len(counts) == 0 {
		return
	}

	keys := orderedKeys(counts, known)
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-*s  %d\n", width, k, counts[k])
	}
}

func orderedKeys(counts map[string]int, known []string) []string {
	keys := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(known))
	for _, k := range known {
		seen[k] = true
		if counts[k] > 0 {
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func formatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
