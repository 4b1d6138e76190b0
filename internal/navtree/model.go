package navtree

// DocumentRef names a content document resolved elsewhere (for example
// "accessing-data/index"). It is opaque to this package.
type DocumentRef string

// NodeKind discriminates the Node variants.
type NodeKind int

const (
	KindDoc NodeKind = iota + 1
	KindCategory
)

// String returns the kind name used in diagnostics and exports.
func (k NodeKind) String() string {
	switch k {
	case KindDoc:
		return "doc"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Node is one entry of a sidebar: either a *Doc or a *Category.
// The set is closed; switch on Kind() or on the concrete type.
type Node interface {
	Kind() NodeKind
	node()
}

// Doc is a leaf pointing at a single document.
type Doc struct {
	id    DocumentRef
	label string
}

func (*Doc) Kind() NodeKind { return KindDoc }
func (*Doc) node()          {}

// ID returns the referenced document.
func (d *Doc) ID() DocumentRef { return d.id }

// Label returns the display label override, empty when the renderer should
// use the document's own title.
func (d *Doc) Label() string { return d.label }

// Category is a labeled, collapsible group of nodes.
type Category struct {
	label     string
	collapsed bool
	link      DocumentRef
	items     []Node
}

func (*Category) Kind() NodeKind { return KindCategory }
func (*Category) node()          {}

// Label returns the category display label (never empty).
func (c *Category) Label() string { return c.label }

// Collapsed reports whether the category renders collapsed initially.
func (c *Category) Collapsed() bool { return c.collapsed }

// Link returns the landing page of the category, if any.
func (c *Category) Link() (DocumentRef, bool) {
	return c.link, c.link != ""
}

// Items returns a copy of the child nodes in display order.
func (c *Category) Items() []Node {
	return cloneNodes(c.items)
}

// Len returns the number of direct children.
func (c *Category) Len() int { return len(c.items) }

// Tree is a complete, validated sidebar.
type Tree struct {
	name  string
	nodes []Node
}

// Name returns the sidebar name (for example "docs").
func (t *Tree) Name() string { return t.name }

// Nodes returns a copy of the root sequence in display order.
func (t *Tree) Nodes() []Node {
	return cloneNodes(t.nodes)
}

// Count returns the total number of nodes in the tree, categories included.
func (t *Tree) Count() int {
	n := 0
	_ = Walk(t, func(NodePath, Node) error {
		n++
		return nil
	})
	return n
}

// Sidebars is an ordered set of trees built from one Description.
type Sidebars struct {
	trees []*Tree
}

// Trees returns the sidebars in description order.
func (s *Sidebars) Trees() []*Tree {
	out := make([]*Tree, len(s.trees))
	copy(out, s.trees)
	return out
}

// Get returns the sidebar with the given name.
func (s *Sidebars) Get(name string) (*Tree, bool) {
	for _, t := range s.trees {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}
