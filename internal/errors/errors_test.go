package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

func TestNavError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NavError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestNavError_WithContext(t *testing.T) {
	err := New(CategoryFileSystem, SeverityError, "write failed").
		WithContext("path", "site/sidebars.json").
		WithContext("operation", "write")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["path"] != "site/sidebars.json" {
		t.Errorf("Context[path] = %v, want site/sidebars.json", err.Context["path"])
	}
	if err.Context["operation"] != "write" {
		t.Errorf("Context[operation] = %v, want write", err.Context["operation"])
	}
}

func TestGetCategory(t *testing.T) {
	_, _, treeErr := navtree.NewBuilder().Build("docs", nil)
	tree, _, _ := navtree.NewBuilder().Build("docs", []navtree.Item{navtree.DocItem("gone")})
	refErr := navtree.Verify(tree, navtree.ResolverFunc(func(navtree.DocumentRef) bool { return false }))

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"nav error", New(CategoryConfig, SeverityFatal, "x"), CategoryConfig},
		{"wrapped nav error", fmt.Errorf("outer: %w", ConfigNotFound("x.yaml")), CategoryConfig},
		{"empty tree", treeErr, CategoryValidation},
		{"unresolved refs", refErr, CategoryReference},
		{"plain error", stdErrors.New("boom"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := GetCategory(test.err); got != test.category {
				t.Errorf("GetCategory() = %v, want %v", got, test.category)
			}
			if !IsCategory(test.err, test.category) {
				t.Errorf("IsCategory(%v) = false", test.category)
			}
		})
	}
}

func TestConvenienceFunctions(t *testing.T) {
	cause := stdErrors.New("cause")

	tests := []struct {
		name     string
		err      *NavError
		category ErrorCategory
	}{
		{"ConfigNotFound", ConfigNotFound("navbuilder.yaml"), CategoryConfig},
		{"ConfigInvalid", ConfigInvalid("navbuilder.yaml", cause), CategoryConfig},
		{"ValidationFailed", ValidationFailed("sidebars", "required"), CategoryValidation},
		{"DescriptionInvalid", DescriptionInvalid("sidebars.yaml", cause), CategoryValidation},
		{"SidebarInvalid", SidebarInvalid(cause), CategoryValidation},
		{"UnresolvedReferences", UnresolvedReferences(2, cause), CategoryReference},
		{"FileSystem", FileSystem("write", "out.json", cause), CategoryFileSystem},
		{"ExportFailed", ExportFailed("hugo", cause), CategoryExport},
		{"InternalError", InternalError("oops", cause), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %v, want %v", test.err.Category, test.category)
			}
			if test.err.Severity != SeverityFatal {
				t.Errorf("Severity = %v, want fatal", test.err.Severity)
			}
		})
	}
}

func TestCLIErrorAdapter(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	_, _, treeErr := navtree.NewBuilder().Build("docs", []navtree.Item{navtree.CategoryItem("")})
	sidebarErr := SidebarInvalid(treeErr)

	if code := adapter.ExitCodeFor(nil); code != 0 {
		t.Errorf("ExitCodeFor(nil) = %d, want 0", code)
	}
	if code := adapter.ExitCodeFor(sidebarErr); code != 2 {
		t.Errorf("ExitCodeFor(sidebar) = %d, want 2", code)
	}
	if code := adapter.ExitCodeFor(ConfigNotFound("x")); code != 7 {
		t.Errorf("ExitCodeFor(config) = %d, want 7", code)
	}
	if code := adapter.ExitCodeFor(stdErrors.New("boom")); code != 10 {
		t.Errorf("ExitCodeFor(plain) = %d, want 10", code)
	}

	msg := adapter.FormatError(sidebarErr)
	want := "sidebar rejected: malformed node at docs[0]: label: category label is required"
	if msg != want {
		t.Errorf("FormatError() = %q, want %q", msg, want)
	}
	if got := adapter.FormatError(ExportFailed("hugo", stdErrors.New("disk full"))); got != "export: export failed: disk full" {
		t.Errorf("FormatError(export) = %q", got)
	}
	if got := adapter.FormatError(stdErrors.New("boom")); got != "Error: boom" {
		t.Errorf("FormatError(plain) = %q", got)
	}
}

func TestCanceled(t *testing.T) {
	err := Canceled(context.Canceled)
	if err.Category != CategoryRuntime {
		t.Errorf("Category = %v, want runtime", err.Category)
	}
	if !stdErrors.Is(err, context.Canceled) {
		t.Error("Canceled should wrap context.Canceled")
	}
	if code := NewCLIErrorAdapter(false, nil).ExitCodeFor(err); code != 12 {
		t.Errorf("ExitCodeFor(canceled) = %d, want 12", code)
	}
}
