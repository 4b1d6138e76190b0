package navtree

// WalkFunc is called for every node in pre-order. Returning an error stops
// the walk and the error is returned from Walk.
type WalkFunc func(path NodePath, n Node) error

// Walk visits every node of t in display order, parents before children.
// Paths index into the built tree.
func Walk(t *Tree, fn WalkFunc) error {
	return walkNodes(NodePath{Sidebar: t.name}, t.nodes, fn)
}

func walkNodes(parent NodePath, nodes []Node, fn WalkFunc) error {
	for i, n := range nodes {
		p := parent.Child(i)
		if err := fn(p, n); err != nil {
			return err
		}
		if c, ok := n.(*Category); ok {
			if err := walkNodes(p, c.items, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Refs returns every document referenced by t (docs and category links) in
// walk order, duplicates included.
func Refs(t *Tree) []DocumentRef {
	var refs []DocumentRef
	_ = Walk(t, func(_ NodePath, n Node) error {
		switch v := n.(type) {
		case *Doc:
			refs = append(refs, v.id)
		case *Category:
			if v.link != "" {
				refs = append(refs, v.link)
			}
		}
		return nil
	})
	return refs
}
