package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/curate"
	"github.com/user/daylily/internal/model"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Look up a variety in the published dataset or the master list",
	Long: `Find a variety by name for curation.

The published dataset is searched first, then the master list
(curate.master in the config, or $DAYLILY_MASTER). Names match
case-insensitively with whitespace collapsed. When nothing matches,
up to five similar master names are suggested.

Examples:
  daylily find "Stella de Oro"
  daylily find happy returns --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

// findResult is the --json output of find.
type findResult struct {
	Variety   *model.Daylily `json:"variety"`
	Published bool           `json:"published"`
}

func runFind(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	c := newCurator()

	d, published, err := c.Find(name)
	if err != nil {
		if errors.Is(err, model.ErrVarietyNotFound) {
			similar, _ := c.Similar(name)
			ExitVarietyNotFound(name, similar)
			return nil
		}
		ExitWithError(1, ErrCodeDataset, err.Error(), map[string]interface{}{"name": name})
		return nil
	}

	if GetJSONOutput() {
		data, err := json.Marshal(findResult{Variety: d, Published: published})
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printVariety(d)
	fmt.Println()
	if published {
		fmt.Println("Status:  published")
	} else {
		fmt.Println("Status:  not published (in master list)")
	}
	return nil
}

// newCurator builds a curator over the resolved dataset and config.
func newCurator() *curate.Curator {
	return curate.New(runCtx.DataPath, runCtx.Config.Curate, logger)
}
