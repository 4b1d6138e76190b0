package config

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by Load when the configuration file is missing.
var ErrNotFound = errors.New("configuration file not found")

// Format is an export format for built sidebars.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHugo Format = "hugo"
)

// AllFormats lists the supported formats in their canonical order.
var AllFormats = []Format{FormatJSON, FormatYAML, FormatHugo}

// NormalizeFormat case-folds s and returns the matching Format, or "".
func NormalizeFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats {
		if f == known {
			return f
		}
	}
	return ""
}

const (
	DefaultOutputDirectory = "./build/navigation"
	DefaultDebounce        = 300 * time.Millisecond
	DefaultMetricsPath     = "/metrics"
)
