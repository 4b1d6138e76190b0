package navtree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawItem is the mapping form of an item.
type rawItem struct {
	Type      string    `yaml:"type"`
	ID        string    `yaml:"id"`
	Label     string    `yaml:"label"`
	Link      yaml.Node `yaml:"link"`
	Collapsed *bool     `yaml:"collapsed"`
	Items     yaml.Node `yaml:"items"`
	DirName   string    `yaml:"dirName"`
}

// UnmarshalYAML decodes an item from either a bare document id or a mapping.
// It never fails on content: shape problems are recorded on the item and
// reported by the builder together with the node path.
//
// yaml.v3 does not call unmarshalers for null values, so null entries are
// only recognised as disabled inside a Description or a category item list.
func (it *Item) UnmarshalYAML(n *yaml.Node) error {
	*it = (&decoder{}).item(n)
	return nil
}

// UnmarshalYAML decodes a mapping of sidebar name to item list, keeping the
// order of the mapping.
func (d *Description) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of sidebar names to item lists", n.Line)
	}
	dec := &decoder{}
	seen := make(map[string]int, len(n.Content)/2)
	d.Sidebars = make([]SidebarSpec, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		name := key.Value
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("line %d: sidebar %q already defined on line %d", key.Line, name, prev)
		}
		seen[name] = key.Line

		spec := SidebarSpec{Name: name}
		switch {
		case val.Kind == yaml.SequenceNode:
			spec.Items = dec.list(val)
		case val.ShortTag() == "!!null":
			spec.Items = []Item{}
		default:
			return fmt.Errorf("line %d: sidebar %q: expected a list of items", val.Line, name)
		}
		d.Sidebars = append(d.Sidebars, spec)
	}
	if dec.aliased > maxAliasedItems {
		return fmt.Errorf("excessive aliasing: aliases expand to more than %d items", maxAliasedItems)
	}
	return nil
}

// maxAliasedItems bounds the number of items produced by alias expansion in
// one description.
const maxAliasedItems = 10000

// decoder walks item nodes. Aliases are expanded in place; re-entering a
// node that is still being decoded is recorded as a cycle on the item.
type decoder struct {
	active  []*yaml.Node // alias targets and mappings on the current branch
	depth   int          // number of aliases on the current branch
	aliased int          // items decoded inside alias expansions
}

func (d *decoder) list(n *yaml.Node) []Item {
	items := make([]Item, 0, len(n.Content))
	for _, c := range n.Content {
		items = append(items, d.item(c))
	}
	return items
}

func (d *decoder) item(n *yaml.Node) Item {
	if d.depth > 0 {
		d.aliased++
		if d.aliased > maxAliasedItems {
			return invalidItem("", fmt.Sprintf("line %d: aliases expand to more than %d items", n.Line, maxAliasedItems))
		}
	}

	switch n.Kind {
	case yaml.AliasNode:
		return d.alias(n)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return DisabledItem()
		case "!!str":
			return DocItem(n.Value)
		default:
			return invalidItem("", fmt.Sprintf("line %d: expected a document id or an item mapping, got %s", n.Line, n.ShortTag()))
		}
	case yaml.MappingNode:
		if d.onBranch(n) {
			return cyclicItem(d.chain(n))
		}
		d.active = append(d.active, n)
		defer d.pop()
		return d.mapping(n)
	default:
		return invalidItem("", fmt.Sprintf("line %d: expected a document id or an item mapping", n.Line))
	}
}

func (d *decoder) alias(n *yaml.Node) Item {
	target := n.Alias
	if target == nil {
		return invalidItem("", fmt.Sprintf("line %d: unknown anchor %q", n.Line, n.Value))
	}
	if d.onBranch(target) {
		return cyclicItem(d.chain(target))
	}
	d.active = append(d.active, target)
	d.depth++
	defer func() {
		d.depth--
		d.pop()
	}()
	if target.Kind == yaml.MappingNode {
		return d.mapping(target)
	}
	return d.item(target)
}

func (d *decoder) pop() { d.active = d.active[:len(d.active)-1] }

func (d *decoder) onBranch(n *yaml.Node) bool {
	for _, a := range d.active {
		if a == n {
			return true
		}
	}
	return false
}

// chain lists the anchors from the first occurrence of n on the branch down
// to its re-entry.
func (d *decoder) chain(n *yaml.Node) []string {
	var chain []string
	from := false
	for _, a := range d.active {
		if a == n {
			from = true
		}
		if from && a.Anchor != "" {
			chain = append(chain, a.Anchor)
		}
	}
	return append(chain, anchorName(n))
}

func anchorName(n *yaml.Node) string {
	if n.Anchor != "" {
		return n.Anchor
	}
	return fmt.Sprintf("line %d", n.Line)
}

func (d *decoder) mapping(n *yaml.Node) Item {
	var raw rawItem
	if err := n.Decode(&raw); err != nil {
		return invalidItem("", err.Error())
	}

	typ := ItemType(raw.Type)
	if typ == "" {
		switch {
		case raw.Items.Kind != 0:
			typ = ItemCategory
		case raw.DirName != "":
			typ = ItemAutogenerated
		case raw.ID != "":
			typ = ItemDoc
		default:
			return invalidItem("type", fmt.Sprintf("line %d: cannot infer item type, set type or items or id", n.Line))
		}
	}

	switch typ {
	case ItemDoc:
		return Item{Type: ItemDoc, ID: raw.ID, Label: raw.Label}
	case ItemAutogenerated:
		return AutogeneratedItem(raw.DirName)
	case ItemCategory:
		it := Item{Type: ItemCategory, Label: raw.Label, Collapsed: raw.Collapsed}
		switch {
		case raw.Items.Kind == 0, raw.Items.ShortTag() == "!!null":
			// missing
		case raw.Items.Kind == yaml.SequenceNode:
			it.Items = d.list(&raw.Items)
		default:
			return invalidItem("items", fmt.Sprintf("line %d: items must be a list", raw.Items.Line))
		}
		link, problem := decodeLink(&raw.Link)
		if problem != "" {
			return invalidItem("link", problem)
		}
		it.Link = link
		return it
	default:
		return invalidItem("type", fmt.Sprintf("line %d: unknown item type %q", n.Line, raw.Type))
	}
}

func decodeLink(n *yaml.Node) (*Link, string) {
	switch {
	case n.Kind == 0, n.ShortTag() == "!!null":
		return nil, ""
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str":
		return &Link{Type: "doc", ID: n.Value}, ""
	case n.Kind == yaml.MappingNode:
		var l struct {
			Type string `yaml:"type"`
			ID   string `yaml:"id"`
		}
		if err := n.Decode(&l); err != nil {
			return nil, err.Error()
		}
		return &Link{Type: l.Type, ID: l.ID}, ""
	default:
		return nil, fmt.Sprintf("line %d: link must be a document id or a {type, id} mapping", n.Line)
	}
}

func invalidItem(field, reason string) Item {
	return Item{problem: reason, problemField: field}
}

func cyclicItem(chain []string) Item {
	return Item{problem: "alias refers back to an enclosing item", cycle: chain}
}
