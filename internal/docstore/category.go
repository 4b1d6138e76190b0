package docstore

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// categoryMeta is the content of a _category_.yml, _category_.yaml or
// _category_.json file.
type categoryMeta struct {
	Label     string   `yaml:"label"`
	Position  *float64 `yaml:"position"`
	Collapsed *bool    `yaml:"collapsed"`
	Link      *struct {
		Type string `yaml:"type"`
		ID   string `yaml:"id"`
	} `yaml:"link"`
}

func isCategoryFile(name string) bool {
	switch name {
	case "_category_.yml", "_category_.yaml", "_category_.json":
		return true
	default:
		return false
	}
}

func (s *Store) addCategory(abs, rel string) error {
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileReadFailed, rel, err)
	}
	var meta categoryMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFrontmatterInvalid, rel, err)
	}
	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	s.categories[dir] = meta
	return nil
}
