package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ValidateConfig validates the complete configuration and reports every
// problem found as one joined error.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	return errors.Join(
		cv.validateVersion(),
		cv.validateSidebars(),
		cv.validateValidation(),
		cv.validateOutput(),
		cv.validateWatch(),
		cv.validateMetrics(),
	)
}

func (cv *configurationValidator) validateVersion() error {
	if !strings.HasPrefix(cv.config.Version, "1.") {
		return fmt.Errorf("unsupported configuration version: %s (expected %s)", cv.config.Version, CurrentVersion)
	}
	return nil
}

func (cv *configurationValidator) validateSidebars() error {
	if cv.config.Sidebars == "" {
		return errors.New("sidebars: a sidebar description file is required")
	}
	switch strings.ToLower(filepath.Ext(cv.config.Sidebars)) {
	case ".yaml", ".yml", ".json":
		return nil
	default:
		return fmt.Errorf("sidebars: %s must be a .yaml, .yml or .json file", cv.config.Sidebars)
	}
}

func (cv *configurationValidator) validateValidation() error {
	if cv.config.Validation.RequireResolvable && cv.config.Docs == "" {
		return errors.New("validation.require_resolvable needs docs to be set")
	}
	return nil
}

func (cv *configurationValidator) validateOutput() error {
	for _, f := range cv.config.Output.Formats {
		if NormalizeFormat(string(f)) == "" {
			return fmt.Errorf("output.formats: unknown format %q", f)
		}
	}
	if cv.config.Docs != "" && filepath.Clean(cv.config.Docs) == filepath.Clean(cv.config.Output.Directory) {
		return errors.New("output.directory must differ from docs")
	}
	return nil
}

func (cv *configurationValidator) validateWatch() error {
	if cv.config.Watch.Debounce == "" {
		return nil
	}
	d, err := time.ParseDuration(cv.config.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("watch.debounce: %w", err)
	}
	if d <= 0 {
		return errors.New("watch.debounce must be positive")
	}
	return nil
}

func (cv *configurationValidator) validateMetrics() error {
	if cv.config.Metrics.Path != "" && !strings.HasPrefix(cv.config.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /: %s", cv.config.Metrics.Path)
	}
	return nil
}
