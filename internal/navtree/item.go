package navtree

// ItemType selects how an Item is materialized.
type ItemType string

const (
	ItemDoc           ItemType = "doc"
	ItemCategory      ItemType = "category"
	ItemAutogenerated ItemType = "autogenerated"
)

// Item is one entry of a sidebar description, before validation.
//
// Items are usually decoded from YAML or JSON (see UnmarshalYAML), but the
// constructors below build them directly for programmatic use and tests.
// A nil Items slice on a category means the field is missing, an empty
// non-nil slice means it was given as [].
type Item struct {
	Type      ItemType
	ID        string // doc: referenced document
	Label     string // category label, or doc label override
	Link      *Link  // category landing page
	Collapsed *bool  // category; nil means default (collapsed)
	Items     []Item // category children
	DirName   string // autogenerated: directory to expand
	Disabled  bool   // entry is excluded from the sidebar

	// set while decoding when the source had the wrong shape
	problem      string
	problemField string
	cycle        []string // anchors of a self-referencing alias
}

// Link is a category landing page descriptor.
type Link struct {
	Type string // "doc" or empty
	ID   string
}

// DocItem returns a bare document reference entry.
func DocItem(id string) Item {
	return Item{Type: ItemDoc, ID: id}
}

// LabeledDocItem returns a document entry with a display label override.
func LabeledDocItem(id, label string) Item {
	return Item{Type: ItemDoc, ID: id, Label: label}
}

// CategoryItem returns a category entry. Without children the category has
// an empty, present item list.
func CategoryItem(label string, items ...Item) Item {
	if items == nil {
		items = []Item{}
	}
	return Item{Type: ItemCategory, Label: label, Items: items}
}

// AutogeneratedItem returns an entry expanded from a directory by the
// builder's Expander.
func AutogeneratedItem(dirName string) Item {
	return Item{Type: ItemAutogenerated, DirName: dirName}
}

// DisabledItem returns an entry that is skipped when building.
func DisabledItem() Item {
	return Item{Disabled: true}
}

// WithLink returns a copy of the category item with a landing document.
func (it Item) WithLink(id string) Item {
	it.Link = &Link{Type: "doc", ID: id}
	return it
}

// WithCollapsed returns a copy of the item with an explicit collapsed state.
func (it Item) WithCollapsed(collapsed bool) Item {
	it.Collapsed = &collapsed
	return it
}

// SidebarSpec is the description of one named sidebar.
type SidebarSpec struct {
	Name  string
	Items []Item
}

// Description is an ordered set of sidebar descriptions, as found in one
// sidebars file.
type Description struct {
	Sidebars []SidebarSpec
}
