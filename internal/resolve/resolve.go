// Package resolve works out which config file and dataset a command uses.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/daylily/internal/config"
	"github.com/user/daylily/internal/model"
)

// DefaultDataPath is the dataset location relative to a project directory.
var DefaultDataPath = filepath.Join("data", "varieties.jsonl")

// Context holds the resolved runtime context for daylily commands.
type Context struct {
	ConfigPath string // config file used (may not exist)
	Config     *config.Config
	DataPath   string // published dataset
}

// Resolve builds the context from flags, environment and config.
//
// The config file is the --config flag, or daylily.yaml found by walking up
// from the working directory. The dataset is, in order: the --data flag,
// $DAYLILY_DATA, the config's data key, data/varieties.jsonl found by
// walking up, or data/varieties.jsonl in the working directory.
func Resolve(configFlag, dataFlag string) (*Context, error) {
	ctx := &Context{ConfigPath: configFlag}
	if ctx.ConfigPath == "" {
		ctx.ConfigPath = FindConfig()
	}

	var cfg *config.Config
	var err error
	if ctx.ConfigPath != "" {
		cfg, err = config.Load(ctx.ConfigPath)
	} else {
		cfg, err = config.LoadDefaults()
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", ctx.ConfigPath, err)
	}
	ctx.Config = cfg

	switch {
	case dataFlag != "":
		ctx.DataPath = dataFlag
	case cfg.Data != "":
		ctx.DataPath = cfg.Data
	default:
		ctx.DataPath = FindData()
		if ctx.DataPath == "" {
			ctx.DataPath = DefaultDataPath
		}
	}

	return ctx, nil
}

// RequireData returns ErrNoDataset when the resolved dataset does not exist.
func (c *Context) RequireData() error {
	if info, err := os.Stat(c.DataPath); err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", model.ErrNoDataset, c.DataPath)
	}
	return nil
}

// FindConfig returns the path to daylily.yaml in the current directory or
// a parent. Returns empty string if not found.
func FindConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findFrom(dir, config.FileName)
}

// FindData returns the path to data/varieties.jsonl in the current
// directory or a parent. Returns empty string if not found.
func FindData() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findFrom(dir, DefaultDataPath)
}

// findFrom searches for the relative file rel starting from startDir and
// walking up to the root.
func findFrom(startDir, rel string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
