// Package diagnostics turns sidebar build and verification results into
// lint-style issues and formats them for the terminal or for tooling.
package diagnostics

import "strings"

// Severity indicates the importance level of an issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that do not block a build.
	SeverityWarning
	// SeverityError indicates issues that prevent sidebars from being exported.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Label returns the lower-case name used for metric labels.
func (s Severity) Label() string { return strings.ToLower(s.String()) }

// Rule identifiers.
const (
	RuleMalformedNode       = "malformed-node"
	RuleEmptyTree           = "empty-tree"
	RuleCyclicReference     = "cyclic-reference"
	RuleDuplicateReference  = "duplicate-reference"
	RuleUnresolvedReference = "unresolved-reference"
	RuleDescription         = "description"
)

// Issue is a single problem found in a sidebar description.
type Issue struct {
	Severity Severity
	Rule     string // Rule identifier (e.g., "duplicate-reference")
	Path     string // Node path such as docs[1].items[0]; empty for file-level issues
	Message  string
	Fix      string // Suggested fix, optional
}

// Result contains all issues found while checking a description.
type Result struct {
	Source   string // Description file
	Sidebars int
	Nodes    int
	Issues   []Issue
}

// Add appends issues to the result.
func (r *Result) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// InfoCount returns the number of info-level issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}
