package generate

import (
	"time"

	"git.home.luguber.info/inful/navbuilder/internal/diagnostics"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// Status represents the outcome of a generation run.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusWarning  Status = "warning"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// IsSuccess returns true if sidebars were built, with or without warnings.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess || s == StatusWarning
}

func (s Status) outcome() metrics.BuildOutcome {
	switch s {
	case StatusSuccess:
		return metrics.OutcomeSuccess
	case StatusWarning:
		return metrics.OutcomeWarning
	case StatusCanceled:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}

// Result contains the outcome of a generation run.
type Result struct {
	RunID  string
	Status Status

	// Sidebars is nil when the build failed.
	Sidebars *navtree.Sidebars
	Trees    []TreeSummary
	Warnings []*navtree.DuplicateReferenceWarning

	// Diagnostics holds every issue found, errors included.
	Diagnostics *diagnostics.Result

	// Files lists export outputs in configured format order.
	Files []File

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// TreeSummary is the name and node count of one built sidebar.
type TreeSummary struct {
	Name  string
	Nodes int
}

// File is one export output.
type File struct {
	Format      string
	Path        string
	Fingerprint string
	Written     bool // false when the existing file already had this content
}

// WrittenCount returns the number of files written in this run.
func (r *Result) WrittenCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Written {
			n++
		}
	}
	return n
}
