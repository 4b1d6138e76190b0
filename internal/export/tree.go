package export

import "git.home.luguber.info/inful/navbuilder/internal/navtree"

// Document is the serialized form of every sidebar, in description order.
type Document struct {
	Sidebars []Sidebar `json:"sidebars" yaml:"sidebars"`
}

// Sidebar is one named tree.
type Sidebar struct {
	Name  string `json:"name" yaml:"name"`
	Items []Node `json:"items" yaml:"items"`
}

// Node is a doc or category entry. Categories always carry Collapsed; docs
// carry ID.
type Node struct {
	Type      string `json:"type" yaml:"type"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Label     string `json:"label" yaml:"label"`
	Collapsed *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
	Items     []Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// NewDocument converts built sidebars into their serializable shape.
func NewDocument(s *navtree.Sidebars, l Labeler) Document {
	trees := s.Trees()
	doc := Document{Sidebars: make([]Sidebar, 0, len(trees))}
	for _, t := range trees {
		doc.Sidebars = append(doc.Sidebars, Sidebar{Name: t.Name(), Items: convert(t.Nodes(), l)})
	}
	return doc
}

func convert(nodes []navtree.Node, l Labeler) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *navtree.Doc:
			out = append(out, Node{Type: "doc", ID: string(v.ID()), Label: docLabel(v, l)})
		case *navtree.Category:
			collapsed := v.Collapsed()
			node := Node{Type: "category", Label: v.Label(), Collapsed: &collapsed}
			if link, ok := v.Link(); ok {
				node.Link = string(link)
			}
			node.Items = convert(v.Items(), l)
			out = append(out, node)
		}
	}
	return out
}
