package config

import "fmt"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []Format{FormatJSON}
		return nil
	}
	seen := make(map[Format]bool, len(cfg.Output.Formats))
	formats := make([]Format, 0, len(cfg.Output.Formats))
	for _, f := range cfg.Output.Formats {
		n := NormalizeFormat(string(f))
		if n == "" {
			return fmt.Errorf("unknown output format %q (supported: json, yaml, hugo)", f)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		formats = append(formats, n)
	}
	cfg.Output.Formats = formats
	return nil
}

// VersionDefaultApplier fills the format version.
type VersionDefaultApplier struct{}

func (v *VersionDefaultApplier) Domain() string { return "version" }

func (v *VersionDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	return nil
}

// WatchDefaultApplier handles watch and metrics defaults.
type WatchDefaultApplier struct{}

func (w *WatchDefaultApplier) Domain() string { return "watch" }

func (w *WatchDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultDebounce.String()
	}
	if cfg.Metrics.ListenAddr != "" && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	return nil
}

// DefaultApplierChain runs appliers in order.
type DefaultApplierChain struct {
	appliers []DefaultApplier
}

// NewDefaultApplier returns the standard applier chain.
func NewDefaultApplier() *DefaultApplierChain {
	return &DefaultApplierChain{appliers: []DefaultApplier{
		&VersionDefaultApplier{},
		&OutputDefaultApplier{},
		&WatchDefaultApplier{},
	}}
}

// ApplyDefaults applies every domain in order and stops at the first error.
func (c *DefaultApplierChain) ApplyDefaults(cfg *Config) error {
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("%s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}

func applyDefaults(config *Config) error {
	return NewDefaultApplier().ApplyDefaults(config)
}
