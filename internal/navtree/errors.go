package navtree

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is matched (errors.Is) by every structural build error.
var ErrInvalidTree = errors.New("invalid sidebar")

// MalformedNodeError reports an item that does not have the required shape.
type MalformedNodeError struct {
	Path   NodePath
	Field  string // offending field, empty when the whole item is wrong
	Reason string
}

func (e *MalformedNodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed node at %s: %s: %s", e.Path, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed node at %s: %s", e.Path, e.Reason)
}

func (e *MalformedNodeError) Is(target error) bool { return target == ErrInvalidTree }

// EmptyTreeError reports a sidebar whose root sequence has no entries.
type EmptyTreeError struct {
	Sidebar string
}

func (e *EmptyTreeError) Error() string {
	return fmt.Sprintf("sidebar %q has no entries", e.Sidebar)
}

func (e *EmptyTreeError) Is(target error) bool { return target == ErrInvalidTree }

// CyclicReferenceError reports an expansion that re-enters a source already
// being expanded higher up the same branch.
type CyclicReferenceError struct {
	Path  NodePath
	Chain []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic reference at %s: %v", e.Path, e.Chain)
}

func (e *CyclicReferenceError) Is(target error) bool { return target == ErrInvalidTree }

// DuplicateReferenceWarning reports a document referenced more than once in
// the same sibling list. It is informational unless the builder is strict.
type DuplicateReferenceWarning struct {
	Path  NodePath // the repeated occurrence
	First NodePath // the earlier occurrence
	Ref   DocumentRef
}

func (w *DuplicateReferenceWarning) Error() string {
	return fmt.Sprintf("duplicate reference %q at %s (first at %s)", w.Ref, w.Path, w.First)
}

// UnresolvedReferenceError reports a document reference that the Resolver
// passed to Verify does not know.
type UnresolvedReferenceError struct {
	Path NodePath
	Ref  DocumentRef
	Link bool // the reference is a category landing link
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Link {
		return fmt.Sprintf("unresolved category link %q at %s", e.Ref, e.Path)
	}
	return fmt.Sprintf("unresolved document %q at %s", e.Ref, e.Path)
}
