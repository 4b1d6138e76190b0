// Package export renders built sidebars into files a static-site generator
// consumes: a JSON or YAML tree, or Hugo menu entries.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
)

// Supported format names.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHugo = "hugo"
)

// ErrUnknownFormat is returned for a format name Render does not know.
var ErrUnknownFormat = errors.New("unknown export format")

// Labeler supplies display labels for documents. *docstore.Store satisfies it.
type Labeler interface {
	Title(ref navtree.DocumentRef) (string, bool)
}

// FileName returns the output file name used for format.
func FileName(format string) (string, error) {
	switch format {
	case FormatJSON:
		return "sidebars.json", nil
	case FormatYAML:
		return "sidebars.yaml", nil
	case FormatHugo:
		return "menus.yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Render serializes s in the given format. A nil Labeler labels documents
// by their id.
func Render(format string, s *navtree.Sidebars, l Labeler) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(NewDocument(s, l), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(NewDocument(s, l))
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	case FormatHugo:
		data, err := yaml.Marshal(NewMenus(s, l))
		if err != nil {
			return nil, fmt.Errorf("marshal hugo menus: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func docLabel(d *navtree.Doc, l Labeler) string {
	if d.Label() != "" {
		return d.Label()
	}
	if l != nil {
		if title, ok := l.Title(d.ID()); ok && title != "" {
			return title
		}
	}
	return string(d.ID())
}
