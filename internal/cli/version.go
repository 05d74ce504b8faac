package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// versionCmd runs before config resolution (see setup), so it works
// even when daylily.yaml is broken.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daylily build",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionInfo{Version: Version, Commit: GitCommit, Date: BuildDate}

	if GetJSONOutput() {
		data, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("daylily version %s\n", info.Version)
	if IsVerbose() {
		fmt.Printf("  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
			info.Commit, info.Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
