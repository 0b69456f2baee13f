package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a single YAML level descriptor.
func LoadFile(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("level: reading %s: %w", path, err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("level: parsing %s: %w", path, err)
	}

	if d.ID == "" {
		d.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("level: %s: %w", path, err)
	}

	return d, nil
}

// LoadDir recursively loads every YAML level file under root.
// Results are sorted by ID for deterministic campaign ordering.
func LoadDir(root string) ([]Descriptor, error) {
	var levels []Descriptor

	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		d, loadErr := LoadFile(path)
		if loadErr != nil {
			return loadErr
		}
		levels = append(levels, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking %s: %w", root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}
