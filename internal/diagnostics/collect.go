package diagnostics

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// FromWarnings converts duplicate reference warnings into warning issues.
func FromWarnings(warnings []*navtree.DuplicateReferenceWarning) []Issue {
	issues := make([]Issue, 0, len(warnings))
	for _, w := range warnings {
		issues = append(issues, duplicateIssue(w, SeverityWarning))
	}
	return issues
}

// FromError classifies a build or verification error. Joined verification
// errors yield one issue per unresolved reference.
func FromError(err error) []Issue {
	if err == nil {
		return nil
	}
	if refs := navtree.UnresolvedRefs(err); len(refs) > 0 {
		issues := make([]Issue, 0, len(refs))
		for _, u := range refs {
			kind := "document"
			if u.Link {
				kind = "category link"
			}
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     RuleUnresolvedReference,
				Path:     u.Path.String(),
				Message:  fmt.Sprintf("%s %q does not exist in the docs directory", kind, u.Ref),
				Fix:      "Create the document, fix the id, or remove the entry",
			})
		}
		return issues
	}

	var (
		malformed *navtree.MalformedNodeError
		empty     *navtree.EmptyTreeError
		cyclic    *navtree.CyclicReferenceError
		dup       *navtree.DuplicateReferenceWarning
	)
	switch {
	case errors.As(err, &malformed):
		msg := malformed.Reason
		if malformed.Field != "" {
			msg = malformed.Field + ": " + msg
		}
		return []Issue{{Severity: SeverityError, Rule: RuleMalformedNode, Path: malformed.Path.String(), Message: msg}}
	case errors.As(err, &empty):
		return []Issue{{
			Severity: SeverityError,
			Rule:     RuleEmptyTree,
			Path:     empty.Sidebar,
			Message:  "sidebar has no entries",
			Fix:      "Add at least one document or category",
		}}
	case errors.As(err, &cyclic):
		return []Issue{{
			Severity: SeverityError,
			Rule:     RuleCyclicReference,
			Path:     cyclic.Path.String(),
			Message:  fmt.Sprintf("autogenerated directories re-enter themselves: %v", cyclic.Chain),
		}}
	case errors.As(err, &dup):
		return []Issue{duplicateIssue(dup, SeverityError)}
	default:
		return []Issue{{Severity: SeverityError, Rule: RuleDescription, Message: err.Error()}}
	}
}

func duplicateIssue(w *navtree.DuplicateReferenceWarning, sev Severity) Issue {
	return Issue{
		Severity: sev,
		Rule:     RuleDuplicateReference,
		Path:     w.Path.String(),
		Message:  fmt.Sprintf("%q is already listed at %s", w.Ref, w.First),
		Fix:      "Remove one of the entries",
	}
}
