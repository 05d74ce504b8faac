package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/testutil"
)

// setupTestEnv creates a temp directory, changes into it and mocks the exit
// function. Environment overrides are cleared for the test.
func setupTestEnv(t *testing.T) (tempDir string, cleanup func()) {
	t.Helper()
	tempDir = t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(tempDir)

	for _, key := range []string{"DAYLILY_DATA", "DAYLILY_PAGE_SIZE", "DAYLILY_THEME", "DAYLILY_LOG_LEVEL", "DAYLILY_MASTER"} {
		t.Setenv(key, "")
	}

	// Mock the exit function to capture exit code instead of exiting
	origExitFunc := ExitFunc
	ExitFunc = func(code int) {
		ExitCode = code
		// Don't actually exit in tests
	}
	ExitCode = 0 // Reset exit code
	resetFlags()

	cleanup = func() {
		os.Chdir(origDir)
		ExitFunc = origExitFunc
		ExitCode = 0
		resetFlags()
	}
	return tempDir, cleanup
}

// setupTestDataset is setupTestEnv plus data/varieties.jsonl holding records.
func setupTestDataset(t *testing.T, records []*model.Daylily) (tempDir string, cleanup func()) {
	t.Helper()
	tempDir, cleanup = setupTestEnv(t)
	testutil.WriteDataset(t, tempDir, filepath.Join("data", "varieties.jsonl"), records)
	return tempDir, cleanup
}

// resetFlags resets all command flags to their default values.
func resetFlags() {
	// Global flags
	jsonOutput = false
	quiet = false
	verbose = false
	configPath = ""
	dataPath = ""
	// Filter flags (list, facets)
	resetFilterFlags()
	// List command flags
	listPage = 1
	listPageSize = 0
	listAll = false
	// Browse command flags
	browseWatch = false
	browseTheme = ""
}

// runCLI executes rootCmd with args and returns what it wrote to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var err error
	out := testutil.CaptureStdout(t, func() {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	})
	return out, err
}

// decodeJSONError parses a structured error printed with --json.
func decodeJSONError(t *testing.T, out string) JSONError {
	t.Helper()
	var resp JSONError
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON error, got %q: %v", out, err)
	}
	return resp
}
