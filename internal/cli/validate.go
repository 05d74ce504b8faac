package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every dataset line against the record schema",
	Long: `Validate the dataset without loading it into the gallery.

Every non-blank line must be a JSON object with the required record fields
as strings. All problems are reported, not just the first.

Exit codes:
  0  the dataset is valid
  1  the dataset could not be read
  2  one or more lines are invalid

Examples:
  daylily validate
  daylily validate --data data/varieties_master.jsonl
  daylily validate --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateResult is the --json output of validate.
type validateResult struct {
	Path   string                    `json:"path"`
	Valid  bool                      `json:"valid"`
	Errors []storage.ValidationError `json:"errors"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := runCtx.RequireData(); err != nil {
		ExitDatasetError(err, runCtx.DataPath)
		return nil
	}

	problems, err := storage.NewDataset(runCtx.DataPath).Validate()
	if err != nil {
		ExitDatasetError(err, runCtx.DataPath)
		return nil
	}
	logger.Debug("dataset validated",
		zap.String("path", runCtx.DataPath),
		zap.Int("problems", len(problems)))

	if GetJSONOutput() {
		result := validateResult{
			Path:   runCtx.DataPath,
			Valid:  len(problems) == 0,
			Errors: problems,
		}
		if result.Errors == nil {
			result.Errors = []storage.ValidationError{}
		}
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		if len(problems) > 0 {
			Exit(2)
		}
		return nil
	}

	if len(problems) == 0 {
		if !IsQuiet() {
			fmt.Printf("%s: valid\n", runCtx.DataPath)
		}
		return nil
	}

	for _, p := range problems {
		fmt.Println(p.String())
	}
	ExitValidationError(
		fmt.Sprintf("%d problem(s) in %s", len(problems), runCtx.DataPath),
		map[string]interface{}{"path": runCtx.DataPath, "problems": len(problems)})
	return nil
}
