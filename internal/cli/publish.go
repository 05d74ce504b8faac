package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/daylily/internal/curate"
)

var publishCmd = &cobra.Command{
	Use:   "publish <name>...",
	Short: "Add master varieties to the published dataset",
	Long: `Copy varieties from the master list into the published dataset.

Each variety needs a name, hybridizer and year. Its scrape timestamp is
dropped and its image is copied from curate.images to curate.assets; when
no image can be found the placeholder image is used. All changes are
written in one atomic rewrite of the dataset.

Quote names that contain spaces.

Examples:
  daylily publish "Stella de Oro"
  daylily publish "Happy Returns" "Moon River" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

var unpublishCmd = &cobra.Command{
	Use:   "unpublish <name>...",
	Short: "Remove varieties from the published dataset",
	Long: `Remove varieties from the published dataset and delete their images
from curate.assets. Shared placeholder images are never deleted.

Quote names that contain spaces.

Examples:
  daylily unpublish "Stella de Oro"
  daylily unpublish "Happy Returns" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnpublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(unpublishCmd)
}

// curationResult is one name's outcome in the --json output.
type curationResult struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// curationOutput is the --json output of publish and unpublish.
type curationOutput struct {
	Changed int              `json:"changed"`
	Results []curationResult `json:"results"`
}

func runPublish(cmd *cobra.Command, args []string) error {
	report, err := newCurator().Publish(args...)
	if err != nil {
		ExitDatasetError(err, runCtx.DataPath)
		return nil
	}
	return printReport(report, "Published")
}

func runUnpublish(cmd *cobra.Command, args []string) error {
	report, err := newCurator().Unpublish(args...)
	if err != nil {
		ExitDatasetError(err, runCtx.DataPath)
		return nil
	}
	return printReport(report, "Unpublished")
}

// printReport prints a curation report and exits 1 if any name failed.
func printReport(report curate.Report, verb string) error {
	failed := len(report.Results) - report.Changed()

	if GetJSONOutput() {
		out := curationOutput{Changed: report.Changed(), Results: make([]curationResult, 0, len(report.Results))}
		for _, res := range report.Results {
			r := curationResult{Name: res.Name, Image: res.Image, OK: res.Err == nil}
			if res.Err != nil {
				r.Code = errorCode(res.Err)
				r.Error = res.Err.Error()
			}
			out.Results = append(out.Results, r)
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		if failed > 0 {
			Exit(1)
		}
		return nil
	}

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", res.Name, res.Err)
			continue
		}
		if IsQuiet() {
			continue
		}
		if res.Image != "" {
			fmt.Printf("%s %s (image: %s)\n", verb, res.Name, res.Image)
		} else {
			fmt.Printf("%s %s\n", verb, res.Name)
		}
	}

	if failed > 0 {
		Exit(1)
	}
	return nil
}
