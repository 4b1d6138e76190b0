package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	switch GetCategory(err) {
	case CategoryValidation:
		return 2 // Invalid sidebar
	case CategoryReference:
		return 3 // Unknown documents
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem, CategoryExport:
		return 11 // Output error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var ne *NavError
	if !stderrors.As(err, &ne) {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return ne.Error()
	}

	msg := ne.Message
	switch ne.Category {
	case CategoryConfig, CategoryValidation, CategoryReference:
	default:
		msg = fmt.Sprintf("%s: %s", ne.Category, ne.Message)
	}
	// The cause carries the node path, keep it even in short form.
	if ne.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, ne.Cause)
	}
	return msg
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	cat := GetCategory(err)
	return cat == CategoryInternal || cat == CategoryRuntime
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	var ne *NavError
	if stderrors.As(err, &ne) {
		attrs := []slog.Attr{
			slog.String("category", string(ne.Category)),
		}
		for k, v := range ne.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		a.logger.LogAttrs(context.Background(), a.slogLevel(ne.Severity), ne.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevel converts NavError severity to slog level.
func (a *CLIErrorAdapter) slogLevel(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
