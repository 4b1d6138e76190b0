package docstore

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

type entry struct {
	name     string
	position *float64
	item     navtree.Item
}

// Autogenerate lists dirName (slash separated, "." for the root) as sidebar
// items. Documents become doc items; subdirectories become categories whose
// index document, if any, is used as the category link.
//
// Entries with a position (sidebar_position, or _category_ position) come
// first in ascending order, the rest follow sorted by name.
func (s *Store) Autogenerate(dirName string) ([]navtree.Item, error) {
	dir := path.Clean(strings.Trim(dirName, "/"))
	if dir == "." {
		dir = ""
	}
	if !s.hasDir(dir) {
		return nil, fmt.Errorf("%w: %q", ErrDirNotFound, dirName)
	}
	return s.items(dir, ""), nil
}

func (s *Store) hasDir(dir string) bool {
	if len(s.byDir[dir]) > 0 {
		return true
	}
	_, ok := s.subdirs[dir]
	return ok
}

// items lists dir, leaving out the document skip.
func (s *Store) items(dir string, skip navtree.DocumentRef) []navtree.Item {
	var entries []entry
	for _, d := range s.byDir[dir] {
		if d.ID == skip {
			continue
		}
		entries = append(entries, entry{name: d.Name, position: d.Position, item: navtree.DocItem(string(d.ID))})
	}
	for sub := range s.subdirs[dir] {
		entries = append(entries, s.categoryEntry(sub))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.position != nil && b.position != nil:
			if *a.position != *b.position {
				return *a.position < *b.position
			}
		case a.position != nil:
			return true
		case b.position != nil:
			return false
		}
		return a.name < b.name
	})

	items := make([]navtree.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.item)
	}
	return items
}

func (s *Store) categoryEntry(dir string) entry {
	meta := s.categories[dir]
	base := path.Base(dir)

	var link navtree.DocumentRef
	var position *float64
	if meta.Link != nil && meta.Link.ID != "" {
		link = navtree.DocumentRef(meta.Link.ID)
	} else if idx := s.indexDoc(dir); idx != nil {
		link = idx.ID
		position = idx.Position
	}
	if meta.Position != nil {
		position = meta.Position
	}

	label := meta.Label
	if label == "" {
		label = labelFromDir(base)
	}

	item := navtree.CategoryItem(label, s.items(dir, link)...)
	if link != "" {
		item = item.WithLink(string(link))
	}
	if meta.Collapsed != nil {
		item = item.WithCollapsed(*meta.Collapsed)
	}
	return entry{name: base, position: position, item: item}
}

// indexDoc returns the landing document of dir: index, readme, or the
// document named like the directory.
func (s *Store) indexDoc(dir string) *Document {
	candidates := []string{"index", "readme", strings.ToLower(path.Base(dir))}
	for _, want := range candidates {
		for _, d := range s.byDir[dir] {
			if strings.ToLower(d.Name) == want {
				return d
			}
		}
	}
	return nil
}

// labelFromDir turns a directory name like "accessing-data" into
// "Accessing Data".
func labelFromDir(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}
