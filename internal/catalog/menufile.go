package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/foodhub/internal/model"
)

// ErrNoMenu is returned by LoadFile when the path does not exist.
var ErrNoMenu = errors.New("menu file not found")

// LoadFile reads a menu from a YAML (.yaml/.yml) or JSON (.json) file.
// The file holds a list of items; the result is validated like New.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoMenu, path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	var items []model.MenuItem
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if items, err = parseYAML(b); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported menu format %q (want .yaml, .yml or .json)", ext)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu %s: no items", path)
	}
	return New(items)
}

// Open loads path when set, or the built-in menu otherwise.
func Open(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func parseYAML(b []byte) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := yaml.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return items, nil
}
