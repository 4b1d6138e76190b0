// Package errors provides a lightweight structured error type (NavError)
// for category-based classification in the CLI and the generation service.
package errors

import (
	stderrors "errors"
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryReference  ErrorCategory = "reference"

	// Generation and I/O errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryExport     ErrorCategory = "export"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// NavError is a structured error with category, severity and context
type NavError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for NavError
type ContextFields map[string]any

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping
func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *NavError) WithContext(key string, value any) *NavError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new NavError
func New(category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new NavError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	return GetCategory(err) == category
}

// GetCategory extracts the category from an error chain. Sidebar structure
// errors from navtree count as validation, unresolved references as
// reference; anything else unclassified is internal.
func GetCategory(err error) ErrorCategory {
	var ne *NavError
	if stderrors.As(err, &ne) {
		return ne.Category
	}
	if stderrors.Is(err, navtree.ErrInvalidTree) {
		return CategoryValidation
	}
	if len(navtree.UnresolvedRefs(err)) > 0 {
		return CategoryReference
	}
	return CategoryInternal
}
