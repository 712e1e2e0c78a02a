// Package catalog holds the static, in-memory menu the storefront sells from.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/idilsaglam/foodhub/internal/model"
)

// AllCategories is the pseudo-category that matches every item.
const AllCategories = "All"

//go:embed menu.yaml
var defaultMenu []byte

// Catalog is an immutable list of menu items indexed by id.
type Catalog struct {
	items []model.MenuItem
	byID  map[string]int
}

// New validates items and builds a Catalog. Order is preserved.
func New(items []model.MenuItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]model.MenuItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		switch {
		case it.ID == "":
			return nil, fmt.Errorf("item %d: empty id", i+1)
		case strings.TrimSpace(it.Name) == "":
			return nil, fmt.Errorf("item %q: empty name", it.ID)
		case strings.TrimSpace(it.Category) == "":
			return nil, fmt.Errorf("item %q: empty category", it.ID)
		case !it.Price.IsPositive():
			return nil, fmt.Errorf("item %q: price must be positive, got %s", it.ID, it.Price)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Default returns the built-in menu.
func Default() *Catalog {
	items, err := parseYAML(defaultMenu)
	if err != nil {
		panic("catalog: embedded menu: " + err.Error())
	}
	c, err := New(items)
	if err != nil {
		panic("catalog: embedded menu: " + err.Error())
	}
	return c
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id string) (model.MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.MenuItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of every item in menu order.
func (c *Catalog) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// Categories returns "All" followed by each distinct category in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Filter returns the items in category; "All" (or empty) returns everything.
func (c *Catalog) Filter(category string) []model.MenuItem {
	if category == "" || category == AllCategories {
		return c.Items()
	}
	var out []model.MenuItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Search matches query case-insensitively against name, description and category.
func (c *Catalog) Search(query string) []model.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Items()
	}
	var out []model.MenuItem
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
		}
	}
	return out
}
