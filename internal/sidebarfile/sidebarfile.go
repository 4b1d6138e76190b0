// Package sidebarfile reads sidebar descriptions from YAML or JSON files.
package sidebarfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// ErrUnsupportedFormat is returned for files that are not .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported sidebar file format")

// ErrEmptyFile is returned when the file holds no document at all.
var ErrEmptyFile = errors.New("sidebar file is empty")

// Load reads and decodes the description at path.
func Load(path string) (*navtree.Description, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidebar file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a description from YAML or JSON content.
func Parse(data []byte) (*navtree.Description, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}
	var d navtree.Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if d.Sidebars == nil {
		// comments only
		return nil, ErrEmptyFile
	}
	return &d, nil
}

// Example is a starter description written by `navbuilder init`.
const Example = `# Sidebar description. Each key is a sidebar; entries are document ids
# or categories. A null entry (~) is skipped.
docs:
  - index
  - type: category
    label: Getting Started
    link:
      type: doc
      id: getting-started/index
    collapsed: true
    items:
      - getting-started/installation
      - getting-started/configuration
  - type: category
    label: Guides
    items:
      - type: autogenerated
        dirName: guides
  - release-notes
`
