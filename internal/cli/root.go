// Package cli provides the command-line interface for daylily.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/logging"
	"github.com/user/daylily/internal/resolve"
)

// Global flags
var (
	jsonOutput bool
	quiet      bool
	verbose    bool
	configPath string
	dataPath   string
)

// Per-invocation state set up in PersistentPreRunE
var (
	runCtx *resolve.Context
	logger = zap.NewNop()
)

// errReported is returned once an error has already been written with
// ExitWithError, so Execute does not print it again.
var errReported = errors.New("error already reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "daylily",
	Short: "Browse and filter a daylily variety gallery",
	Long: `Daylily loads a newline-delimited JSON dataset of daylily varieties and
lets you narrow it with a multi-criteria filter, page through the results,
and open a detail view for any variety.

Running daylily with no command opens the interactive gallery.

Features:
  - Filters: name, hybridizer, year, ploidy, bloom size, scape height,
    branches, bud count, bloom season, rebloom, foliage type, expressions
  - Paged results with "load more"
  - Scripting commands with JSON output
  - Curation of the published dataset from a master list`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal: the hooks refer back to rootCmd.
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRun = teardown
	rootCmd.RunE = runBrowse

	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: daylily.yaml found from the working directory)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Dataset file (default: $DAYLILY_DATA, config, or data/varieties.jsonl)")
}

// setup resolves the config and dataset and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	rc, err := resolve.Resolve(configPath, dataPath)
	if err != nil {
		ExitWithError(1, ErrCodeConfig, err.Error(), map[string]interface{}{"config": configPath})
		return errReported
	}
	runCtx = rc

	l, err := logging.New(logging.Options{
		Config:      rc.Config.Logging,
		Verbose:     verbose,
		Interactive: isInteractive(cmd),
	})
	if err != nil {
		ExitWithError(1, ErrCodeConfig, err.Error(), nil)
		return errReported
	}
	logger = l
	logger.Debug("context resolved",
		zap.String("config", rc.ConfigPath),
		zap.String("data", rc.DataPath))
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	_ = logger.Sync()
}

// isInteractive reports whether cmd draws the terminal gallery.
func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == browseCmd
}

// ExitCode is used to communicate exit codes for testing
var ExitCode int

// ExitFunc is the function called to exit the program
// Can be overridden for testing
var ExitFunc = os.Exit

// Exit sets the exit code and calls the exit function
func Exit(code int) {
	ExitCode = code
	ExitFunc(code)
}

// GetJSONOutput returns whether JSON output is enabled
func GetJSONOutput() bool {
	return jsonOutput
}

// IsQuiet returns whether quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
