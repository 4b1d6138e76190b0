package export

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// Menus is a Hugo site configuration fragment holding one menu per sidebar.
type Menus struct {
	Menus map[string][]MenuEntry `yaml:"menus"`
}

// MenuEntry is a Hugo menu entry. Nesting is expressed through Parent.
type MenuEntry struct {
	Identifier string         `yaml:"identifier"`
	Name       string         `yaml:"name"`
	PageRef    string         `yaml:"pageRef,omitempty"`
	Parent     string         `yaml:"parent,omitempty"`
	Weight     int            `yaml:"weight"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// weightStep leaves room for hand-written entries between generated ones.
const weightStep = 10

// NewMenus flattens every sidebar into Hugo menu entries in walk order.
func NewMenus(s *navtree.Sidebars, l Labeler) Menus {
	m := Menus{Menus: make(map[string][]MenuEntry)}
	for _, t := range s.Trees() {
		entries := make([]MenuEntry, 0, t.Count())
		_ = navtree.Walk(t, func(p navtree.NodePath, n navtree.Node) error {
			e := MenuEntry{
				Identifier: menuIdentifier(p.Sidebar, p.Indexes),
				Weight:     (p.Indexes[len(p.Indexes)-1] + 1) * weightStep,
			}
			if p.Depth() > 1 {
				e.Parent = menuIdentifier(p.Sidebar, p.Indexes[:len(p.Indexes)-1])
			}
			switch v := n.(type) {
			case *navtree.Doc:
				e.Name = docLabel(v, l)
				e.PageRef = pageRef(v.ID())
			case *navtree.Category:
				e.Name = v.Label()
				if link, ok := v.Link(); ok {
					e.PageRef = pageRef(link)
				}
				e.Params = map[string]any{"collapsed": v.Collapsed()}
			}
			entries = append(entries, e)
			return nil
		})
		m.Menus[t.Name()] = entries
	}
	return m
}

// menuIdentifier derives a stable identifier from the node position, so the
// same document may appear in several categories.
func menuIdentifier(sidebar string, indexes []int) string {
	var b strings.Builder
	b.WriteString(sidebar)
	for _, i := range indexes {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func pageRef(ref navtree.DocumentRef) string {
	return "/" + strings.TrimPrefix(string(ref), "/")
}
