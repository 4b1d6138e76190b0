package diagnostics

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats diagnostics for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	ew := &errWriter{w: w}

	ew.printf("Validating sidebars in: %s\n", result.Source)
	ew.println(strings.Repeat("━", 60))
	ew.println()

	for _, issue := range result.Issues {
		f.formatIssue(ew, issue)
		ew.println()
	}

	ew.println(strings.Repeat("━", 60))
	ew.printf("Results:\n")
	ew.printf("  %d sidebar%s, %d node%s\n", result.Sidebars, pluralize(result.Sidebars), result.Nodes, pluralize(result.Nodes))
	if n := result.ErrorCount(); n > 0 {
		ew.printf("  %d error%s (blocks export)\n", n, pluralize(n))
	}
	if n := result.WarningCount(); n > 0 {
		ew.printf("  %d warning%s (should fix)\n", n, pluralize(n))
	}
	if n := result.InfoCount(); n > 0 {
		ew.printf("  %d info\n", n)
	}
	ew.println()

	switch {
	case result.HasErrors():
		ew.println("✗ Sidebars have errors and cannot be exported.")
	case result.WarningCount() > 0:
		ew.println("⚠ Sidebars have warnings. Consider fixing before publishing.")
	default:
		ew.println("✓ All sidebars are valid.")
	}
	return ew.err
}

func (f *TextFormatter) formatIssue(ew *errWriter, issue Issue) {
	var icon string
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	case SeverityInfo:
		icon = "ℹ"
	}

	location := issue.Path
	if location == "" {
		location = "(description)"
	}
	ew.printf("%s %s [%s]\n", icon, location, issue.Rule)
	ew.printf("  %s: %s\n", issue.Severity, issue.Message)
	if issue.Fix != "" {
		ew.printf("  Fix: %s\n", issue.Fix)
	}
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *errWriter) println(args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintln(e.w, args...)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	Sidebars     int         `json:"sidebars"`
	Nodes        int         `json:"nodes"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	output := JSONOutput{
		Source:       result.Source,
		Sidebars:     result.Sidebars,
		Nodes:        result.Nodes,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			Severity: issue.Severity.String(),
			Rule:     issue.Rule,
			Path:     issue.Path,
			Message:  issue.Message,
			Fix:      issue.Fix,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
