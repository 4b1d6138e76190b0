package navtree

import "errors"

// Resolver answers whether a document reference names an existing document.
type Resolver interface {
	Resolve(ref DocumentRef) bool
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ref DocumentRef) bool

func (f ResolverFunc) Resolve(ref DocumentRef) bool { return f(ref) }

// Verify checks every document reference in t against r. It reports all
// unresolved references as a joined error of *UnresolvedReferenceError.
func Verify(t *Tree, r Resolver) error {
	var errs []error
	_ = Walk(t, func(p NodePath, n Node) error {
		switch v := n.(type) {
		case *Doc:
			if !r.Resolve(v.id) {
				errs = append(errs, &UnresolvedReferenceError{Path: p, Ref: v.id})
			}
		case *Category:
			if v.link != "" && !r.Resolve(v.link) {
				errs = append(errs, &UnresolvedReferenceError{Path: p, Ref: v.link, Link: true})
			}
		}
		return nil
	})
	return errors.Join(errs...)
}

// VerifyAll runs Verify on every tree in s.
func VerifyAll(s *Sidebars, r Resolver) error {
	var errs []error
	for _, t := range s.trees {
		if err := Verify(t, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// UnresolvedRefs flattens the result of Verify or VerifyAll.
func UnresolvedRefs(err error) []*UnresolvedReferenceError {
	var out []*UnresolvedReferenceError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if u, ok := e.(*UnresolvedReferenceError); ok {
			out = append(out, u)
			return
		}
		if j, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range j.Unwrap() {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
