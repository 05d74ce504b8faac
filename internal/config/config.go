// Package config loads daylily settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/daylily/internal/page"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "daylily.yaml"

// Themes accepted by the terminal gallery.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists the accepted theme values.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all daylily settings.
type Config struct {
	// Data is the published dataset. Empty means discover data/varieties.jsonl.
	Data     string        `yaml:"data"`
	PageSize int           `yaml:"page_size"`
	Theme    string        `yaml:"theme"`
	Watch    bool          `yaml:"watch"`
	Logging  LoggingConfig `yaml:"logging"`
	Curate   CurateConfig  `yaml:"curate"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: stderr for commands, discarded for the gallery
}

// CurateConfig locates the inputs of the publish workflow.
type CurateConfig struct {
	Master string `yaml:"master"` // full scraped dataset
	Images string `yaml:"images"` // scraped image folder
	Assets string `yaml:"assets"` // published image folder
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize: page.DefaultPageSize,
		Theme:    ThemeAuto,
		Logging: LoggingConfig{
			Level: "info",
		},
		Curate: CurateConfig{
			Master: "data/varieties_master.jsonl",
			Images: "data/images",
			Assets: "assets/daylilies",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases. Relative
// paths in the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		cfg.resolvePaths(filepath.Dir(path))
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefaults returns the defaults with environment overrides applied,
// for runs without a config file.
func LoadDefaults() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{&c.Data, &c.Logging.File, &c.Curate.Master, &c.Curate.Images, &c.Curate.Assets} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("DAYLILY_DATA"); path != "" {
		c.Data = path
	}
	if size := os.Getenv("DAYLILY_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.PageSize = n
		}
	}
	if theme := os.Getenv("DAYLILY_THEME"); theme != "" {
		c.Theme = strings.ToLower(theme)
	}
	if level := os.Getenv("DAYLILY_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if path := os.Getenv("DAYLILY_MASTER"); path != "" {
		c.Curate.Master = path
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("invalid page_size: %d (must be at least 1)", c.PageSize)
	}
	if !contains(ValidThemes, c.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
