package docstore

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

var errUnclosedFrontmatter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// splitFrontmatter separates a leading `---` delimited YAML block from the
// Markdown body. Documents without one return nil frontmatter.
func splitFrontmatter(content []byte) (fm []byte, body []byte, err error) {
	nl := []byte("\n")
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = []byte("\r\n")
	} else if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, nil
	}

	rest := content[3+len(nl):]
	closing := append([]byte("---"), nl...)
	if bytes.HasPrefix(rest, closing) {
		return []byte{}, rest[len(closing):], nil
	}

	marker := append(append([]byte{}, nl...), closing...)
	idx := bytes.Index(rest, marker)
	if idx < 0 {
		// a closing delimiter on the last line without trailing newline
		tail := append(append([]byte{}, nl...), []byte("---")...)
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)], nil, nil
		}
		return nil, nil, errUnclosedFrontmatter
	}
	return rest[:idx+len(nl)], rest[idx+len(marker):], nil
}

// frontmatter holds the fields the store reads from a document.
type frontmatter struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	SidebarLabel    string   `yaml:"sidebar_label"`
	SidebarPosition *float64 `yaml:"sidebar_position"`
}

func parseFrontmatter(raw []byte) (frontmatter, error) {
	var fm frontmatter
	if len(bytes.TrimSpace(raw)) == 0 {
		return fm, nil
	}
	err := yaml.Unmarshal(raw, &fm)
	return fm, err
}
