package storefront

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/ui"
)

func TestDelegateTruncatesByDisplayWidth(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	tests := []struct {
		name string
		desc string
	}{
		{"accented", "Crème brûlée à la vanille et caramel"},
		{"wide", "抹茶アイスクリームと白玉"},
		{"ascii", "Juicy beef patty with fresh lettuce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := foodItem{
				item: model.MenuItem{
					ID: "1", Name: "Dessert", Category: "Sweets",
					Description: tt.desc, Price: decimal.RequireFromString("6.50"),
				},
				currency: "$",
			}
			l := list.New([]list.Item{it}, foodDelegate{}, 14, 10)

			var buf bytes.Buffer
			foodDelegate{}.Render(&buf, l, 0, it)
			out := buf.String()
			require.True(t, utf8.ValidString(out), "invalid UTF-8: %q", out)

			lines := strings.Split(out, "\n")
			require.Len(t, lines, 2)
			desc := strings.TrimPrefix(lines[1], "  ")
			assert.LessOrEqual(t, lipgloss.Width(desc), 10)
			assert.True(t, strings.HasSuffix(desc, "..."), "got %q", desc)
		})
	}
}

func TestDelegateKeepsShortDescription(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	it := foodItem{item: model.MenuItem{
		ID: "1", Name: "Tea", Category: "Drinks",
		Description: "Thé vert", Price: decimal.RequireFromString("2"),
	}, currency: "$"}
	l := list.New([]list.Item{it}, foodDelegate{}, 40, 10)

	var buf bytes.Buffer
	foodDelegate{}.Render(&buf, l, 0, it)
	assert.Contains(t, buf.String(), "Thé vert")
	assert.NotContains(t, buf.String(), "...")
}
