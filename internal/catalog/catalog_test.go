package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/foodhub/internal/model"
)

func TestDefaultMenu(t *testing.T) {
	c := Default()
	require.Equal(t, 4, c.Len())

	burger, ok := c.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Classic Burger", burger.Name)
	assert.Equal(t, "12.99", burger.Price.StringFixed(2))
	assert.Equal(t, "Burgers", burger.Category)

	_, ok = c.Lookup("99")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	got := Default().Categories()
	assert.Equal(t, []string{"All", "Burgers", "Pizza", "Sushi", "Salads"}, got)
}

func TestFilterAndSearch(t *testing.T) {
	c := Default()

	assert.Len(t, c.Filter(AllCategories), 4)
	assert.Len(t, c.Filter(""), 4)

	pizza := c.Filter("Pizza")
	require.Len(t, pizza, 1)
	assert.Equal(t, "2", pizza[0].ID)

	assert.Empty(t, c.Filter("Desserts"))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"burger", []string{"1"}},
		{"AVOCADO", []string{"3", "4"}},
		{"salads", []string{"4"}},
		{"tacos", nil},
	}
	for _, tt := range tests {
		var ids []string
		for _, it := range c.Search(tt.query) {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, tt.want, ids, "Search(%q)", tt.query)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := Default()
	items := c.Items()
	items[0].Name = "changed"
	it, _ := c.Lookup("1")
	assert.Equal(t, "Classic Burger", it.Name)
}

func TestNewValidation(t *testing.T) {
	price := decimal.RequireFromString("1.50")
	tests := []struct {
		name  string
		items []model.MenuItem
	}{
		{"empty id", []model.MenuItem{{Name: "a", Category: "c", Price: price}}},
		{"empty name", []model.MenuItem{{ID: "1", Category: "c", Price: price}}},
		{"empty category", []model.MenuItem{{ID: "1", Name: "a", Price: price}}},
		{"zero price", []model.MenuItem{{ID: "1", Name: "a", Category: "c"}}},
		{"negative price", []model.MenuItem{{ID: "1", Name: "a", Category: "c", Price: decimal.NewFromInt(-2)}}},
		{"duplicate id", []model.MenuItem{
			{ID: "1", Name: "a", Category: "c", Price: price},
			{ID: "1", Name: "b", Category: "c", Price: price},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- id: t1
  name: Taco
  description: Corn tortilla
  price: 3.50
  category: Mexican
`), 0o644))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	taco, ok := c.Lookup("t1")
	require.True(t, ok)
	assert.True(t, taco.Price.Equal(decimal.RequireFromString("3.5")))

	jsonPath := filepath.Join(dir, "menu.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[
		{"id":"j1","name":"Ramen","description":"Tonkotsu","price":"13.25","category":"Noodles"},
		{"id":"j2","name":"Gyoza","description":"Pan fried","price":6,"category":"Sides"}
	]`), 0o644))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Noodles", "Sides"}, c.Categories())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrNoMenu)

	txtPath := filepath.Join(dir, "menu.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))
	_, err = LoadFile(txtPath)
	assert.Error(t, err)

	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte(`[]`), 0o644))
	_, err = LoadFile(emptyPath)
	assert.Error(t, err)
}

func TestOpenFallsBackToDefault(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}
