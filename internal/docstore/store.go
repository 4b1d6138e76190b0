// Package docstore indexes a Markdown docs directory so sidebars can resolve
// document references, label documents and expand autogenerated items.
package docstore

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// Document is one indexed Markdown file.
type Document struct {
	ID       navtree.DocumentRef
	Path     string   // slash separated, relative to the store root
	Dir      string   // slash separated directory, "" for the root
	Name     string   // file name without extension
	Title    string   // sidebar_label, title, first H1 or Name
	Position *float64 // sidebar_position from frontmatter
}

// Store is an immutable index of a docs directory.
type Store struct {
	root       string
	docs       map[navtree.DocumentRef]*Document
	byDir      map[string][]*Document
	subdirs    map[string]map[string]struct{}
	categories map[string]categoryMeta
}

// Open walks root and indexes every .md and .mdx file. Hidden entries and
// entries starting with an underscore are skipped; _category_ files are read
// as category metadata.
func Open(root string) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDocsDirNotFound, root)
	}

	s := &Store{
		root:       root,
		docs:       make(map[navtree.DocumentRef]*Document),
		byDir:      make(map[string][]*Document),
		subdirs:    make(map[string]map[string]struct{}),
		categories: make(map[string]categoryMeta),
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if isCategoryFile(name) {
			return s.addCategory(p, rel)
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || !IsDocFile(name) {
			return nil
		}
		return s.addDoc(p, rel)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocsDirWalkFailed, root, err)
	}

	slog.Debug("Indexed docs directory", logfields.Path(root), logfields.Count(len(s.docs)))
	return s, nil
}

// IsDocFile returns true if the file name has a Markdown extension.
func IsDocFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

func (s *Store) addDoc(abs, rel string) error {
	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileReadFailed, rel, err)
	}
	raw, body, err := splitFrontmatter(content)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFrontmatterInvalid, rel, err)
	}
	fm, err := parseFrontmatter(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFrontmatterInvalid, rel, err)
	}

	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))

	local := name
	if fm.ID != "" {
		local = fm.ID
	}
	id := navtree.DocumentRef(path.Join(dir, local))

	if prev, ok := s.docs[id]; ok {
		return fmt.Errorf("%w: %q from %s and %s", ErrDuplicateDocID, id, prev.Path, rel)
	}

	doc := &Document{
		ID:       id,
		Path:     rel,
		Dir:      dir,
		Name:     name,
		Title:    documentTitle(fm, body, name),
		Position: fm.SidebarPosition,
	}
	s.docs[id] = doc
	s.byDir[dir] = append(s.byDir[dir], doc)
	s.registerDir(dir)
	return nil
}

// registerDir records dir and all of its ancestors as parent/child pairs.
func (s *Store) registerDir(dir string) {
	for dir != "" {
		parent := path.Dir(dir)
		if parent == "." {
			parent = ""
		}
		children, ok := s.subdirs[parent]
		if !ok {
			children = make(map[string]struct{})
			s.subdirs[parent] = children
		}
		if _, seen := children[dir]; seen {
			return
		}
		children[dir] = struct{}{}
		dir = parent
	}
}

func documentTitle(fm frontmatter, body []byte, name string) string {
	switch {
	case fm.SidebarLabel != "":
		return fm.SidebarLabel
	case fm.Title != "":
		return fm.Title
	}
	if h := firstHeading(body); h != "" {
		return h
	}
	return name
}

// Root returns the directory the store was opened on.
func (s *Store) Root() string { return s.root }

// Len returns the number of indexed documents.
func (s *Store) Len() int { return len(s.docs) }

// Resolve reports whether ref names an indexed document.
func (s *Store) Resolve(ref navtree.DocumentRef) bool {
	_, ok := s.docs[ref]
	return ok
}

// Title returns the display title of ref.
func (s *Store) Title(ref navtree.DocumentRef) (string, bool) {
	d, ok := s.docs[ref]
	if !ok {
		return "", false
	}
	return d.Title, true
}

// Lookup returns a copy of the indexed document.
func (s *Store) Lookup(ref navtree.DocumentRef) (Document, bool) {
	d, ok := s.docs[ref]
	if !ok {
		return Document{}, false
	}
	return *d, true
}

// Docs returns all documents ordered by path.
func (s *Store) Docs() []Document {
	out := make([]Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
