package errors

import "fmt"

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *NavError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *NavError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *NavError {
	return New(CategoryValidation, SeverityFatal, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Sidebar errors

func DescriptionInvalid(path string, cause error) *NavError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "sidebar description invalid").
		WithContext("path", path)
}

func SidebarInvalid(cause error) *NavError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "sidebar rejected")
}

func UnresolvedReferences(count int, cause error) *NavError {
	return Wrap(cause, CategoryReference, SeverityFatal, "sidebar references unknown documents").
		WithContext("count", count)
}

// I/O errors

func FileSystem(operation, path string, cause error) *NavError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func ExportFailed(format string, cause error) *NavError {
	return Wrap(cause, CategoryExport, SeverityFatal, "export failed").
		WithContext("format", format)
}

// Internal errors

func InternalError(message string, cause error) *NavError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

// Runtime errors

func Canceled(cause error) *NavError {
	return Wrap(cause, CategoryRuntime, SeverityWarning, "generation canceled")
}
