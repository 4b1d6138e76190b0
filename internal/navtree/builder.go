package navtree

import (
	"fmt"
	"slices"
	"strings"
)

// Expander turns an autogenerated item into concrete items, typically by
// listing a docs directory. The returned items may themselves contain
// categories or further autogenerated entries.
type Expander interface {
	Autogenerate(dirName string) ([]Item, error)
}

// Option configures a Builder.
type Option func(*Builder)

// WithExpander enables autogenerated items.
func WithExpander(e Expander) Option {
	return func(b *Builder) { b.expander = e }
}

// WithAllowEmptyCategories accepts categories that end up with neither items
// nor a landing link.
func WithAllowEmptyCategories(allow bool) Option {
	return func(b *Builder) { b.allowEmpty = allow }
}

// WithStrictDuplicates turns duplicate sibling references into build errors.
func WithStrictDuplicates(strict bool) Option {
	return func(b *Builder) { b.strictDuplicates = strict }
}

// Builder validates descriptions and materializes trees. A Builder holds
// only configuration and can be reused; every Build call is independent.
type Builder struct {
	expander         Expander
	allowEmpty       bool
	strictDuplicates bool
}

// NewBuilder returns a builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates items and returns the sidebar tree named name.
//
// Paths in returned errors and warnings index into the description, so
// disabled entries still count.
func (b *Builder) Build(name string, items []Item) (*Tree, []*DuplicateReferenceWarning, error) {
	st := &buildState{b: b}
	nodes, err := st.list(NodePath{Sidebar: name}, items, siblings{})
	if err != nil {
		return nil, nil, err
	}
	if len(nodes) == 0 {
		return nil, nil, &EmptyTreeError{Sidebar: name}
	}
	return &Tree{name: name, nodes: nodes}, st.warnings, nil
}

// BuildAll builds every sidebar of d in order and stops at the first error.
func (b *Builder) BuildAll(d *Description) (*Sidebars, []*DuplicateReferenceWarning, error) {
	if d == nil || len(d.Sidebars) == 0 {
		return nil, nil, fmt.Errorf("%w: description defines no sidebars", ErrInvalidTree)
	}
	out := &Sidebars{trees: make([]*Tree, 0, len(d.Sidebars))}
	var warnings []*DuplicateReferenceWarning
	for _, spec := range d.Sidebars {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, nil, fmt.Errorf("%w: sidebar name must not be empty", ErrInvalidTree)
		}
		t, w, err := b.Build(spec.Name, spec.Items)
		if err != nil {
			return nil, nil, err
		}
		out.trees = append(out.trees, t)
		warnings = append(warnings, w...)
	}
	return out, warnings, nil
}

type buildState struct {
	b         *Builder
	expanding []string
	warnings  []*DuplicateReferenceWarning
}

// siblings tracks references seen in one item list. A category link counts
// as a member of the category's own item list.
type siblings map[DocumentRef]NodePath

func (st *buildState) list(parent NodePath, items []Item, seen siblings) ([]Node, error) {
	nodes := make([]Node, 0, len(items))
	for i, it := range items {
		var err error
		nodes, err = st.item(parent.Child(i), it, nodes, seen)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (st *buildState) item(p NodePath, it Item, nodes []Node, seen siblings) ([]Node, error) {
	if it.cycle != nil {
		return nil, &CyclicReferenceError{Path: p, Chain: slices.Clone(it.cycle)}
	}
	if it.problem != "" {
		return nil, &MalformedNodeError{Path: p, Field: it.problemField, Reason: it.problem}
	}
	if it.Disabled {
		return nodes, nil
	}

	switch it.Type {
	case ItemDoc:
		if strings.TrimSpace(it.ID) == "" {
			return nil, &MalformedNodeError{Path: p, Field: "id", Reason: "document id must not be empty"}
		}
		ref := DocumentRef(it.ID)
		if err := st.note(seen, ref, p); err != nil {
			return nil, err
		}
		return append(nodes, &Doc{id: ref, label: it.Label}), nil

	case ItemCategory:
		c, err := st.category(p, it)
		if err != nil {
			return nil, err
		}
		return append(nodes, c), nil

	case ItemAutogenerated:
		return st.autogenerate(p, it, nodes, seen)

	default:
		return nil, &MalformedNodeError{Path: p, Field: "type", Reason: fmt.Sprintf("unknown item type %q", it.Type)}
	}
}

func (st *buildState) category(p NodePath, it Item) (*Category, error) {
	label := strings.TrimSpace(it.Label)
	if label == "" {
		return nil, &MalformedNodeError{Path: p, Field: "label", Reason: "category label is required"}
	}
	if it.Items == nil {
		return nil, &MalformedNodeError{Path: p, Field: "items", Reason: fmt.Sprintf("category %q has no items list", label)}
	}

	c := &Category{label: label, collapsed: true}
	seen := siblings{}
	if it.Collapsed != nil {
		c.collapsed = *it.Collapsed
	}
	if it.Link != nil {
		if it.Link.Type != "" && it.Link.Type != "doc" {
			return nil, &MalformedNodeError{Path: p, Field: "link", Reason: fmt.Sprintf("unsupported link type %q", it.Link.Type)}
		}
		if strings.TrimSpace(it.Link.ID) == "" {
			return nil, &MalformedNodeError{Path: p, Field: "link", Reason: "link document id must not be empty"}
		}
		c.link = DocumentRef(it.Link.ID)
		if err := st.note(seen, c.link, p); err != nil {
			return nil, err
		}
	}

	children, err := st.list(p, it.Items, seen)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 && c.link == "" && !st.b.allowEmpty {
		return nil, &MalformedNodeError{Path: p, Field: "items", Reason: fmt.Sprintf("category %q has neither items nor a link", label)}
	}
	c.items = children
	return c, nil
}

func (st *buildState) autogenerate(p NodePath, it Item, nodes []Node, seen siblings) ([]Node, error) {
	dir := strings.TrimSpace(it.DirName)
	if dir == "" {
		return nil, &MalformedNodeError{Path: p, Field: "dirName", Reason: "autogenerated item needs a directory"}
	}
	if st.b.expander == nil {
		return nil, &MalformedNodeError{Path: p, Reason: fmt.Sprintf("autogenerated item %q requires a document store", dir)}
	}
	if slices.Contains(st.expanding, dir) {
		chain := append(slices.Clone(st.expanding), dir)
		return nil, &CyclicReferenceError{Path: p, Chain: chain}
	}

	expanded, err := st.b.expander.Autogenerate(dir)
	if err != nil {
		return nil, fmt.Errorf("autogenerate %q at %s: %w", dir, p, err)
	}

	st.expanding = append(st.expanding, dir)
	defer func() { st.expanding = st.expanding[:len(st.expanding)-1] }()

	for j, sub := range expanded {
		nodes, err = st.item(p.Child(j), sub, nodes, seen)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (st *buildState) note(seen siblings, ref DocumentRef, p NodePath) error {
	first, dup := seen[ref]
	if !dup {
		seen[ref] = p
		return nil
	}
	w := &DuplicateReferenceWarning{Path: p, First: first, Ref: ref}
	if st.b.strictDuplicates {
		return fmt.Errorf("%w: %w", ErrInvalidTree, w)
	}
	st.warnings = append(st.warnings, w)
	return nil
}
