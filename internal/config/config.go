package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the configuration format version written by Init.
const CurrentVersion = "1.0"

// Config represents the navbuilder configuration file.
type Config struct {
	Version    string           `yaml:"version"`
	Sidebars   string           `yaml:"sidebars"`       // Sidebar description file (.yaml, .yml, .json)
	Docs       string           `yaml:"docs,omitempty"` // Docs directory; enables reference checks and autogenerated items
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Watch      WatchConfig      `yaml:"watch,omitempty"`
	Metrics    MetricsConfig    `yaml:"metrics,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Formats   []Format `yaml:"formats"`
}

// ValidationConfig tunes how strictly sidebars are checked.
type ValidationConfig struct {
	AllowEmptyCategories bool `yaml:"allow_empty_categories"` // Accept categories without items and link
	StrictDuplicates     bool `yaml:"strict_duplicates"`      // Duplicate sibling references fail the build
	RequireResolvable    bool `yaml:"require_resolvable"`     // Every reference must exist in docs
}

// WatchConfig represents watch mode configuration
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Go duration, e.g. "300ms"
}

// DebounceDuration returns the parsed debounce interval.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// MetricsConfig represents Prometheus exposition configuration (watch mode).
type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr,omitempty"` // e.g. ":9090"; empty disables the listener
	Path       string `yaml:"path,omitempty"`
}

// Load loads a configuration file. Relative paths inside the file are
// resolved against the directory holding it.
func Load(configPath string) (*Config, error) {
	loadEnvFiles(filepath.Dir(configPath))

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyDefaults(&config); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	config.resolvePaths(filepath.Dir(configPath))

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Sidebars = abs(c.Sidebars)
	c.Docs = abs(c.Docs)
	c.Output.Directory = abs(c.Output.Directory)
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Version:  CurrentVersion,
		Sidebars: "sidebars.yaml",
		Docs:     "docs",
		Output: OutputConfig{
			Directory: "./build/navigation",
			Formats:   []Format{FormatJSON, FormatHugo},
		},
		Validation: ValidationConfig{
			RequireResolvable: true,
		},
		Watch: WatchConfig{Debounce: DefaultDebounce.String()},
		Metrics: MetricsConfig{
			ListenAddr: "${NAVBUILDER_METRICS_ADDR}",
			Path:       DefaultMetricsPath,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
