package storefront

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/ui"
)

// foodItem adapts a MenuItem to bubbles/list.Item
type foodItem struct {
	item     model.MenuItem
	currency string
}

func (f foodItem) Title() string       { return f.item.Name }
func (f foodItem) Description() string { return f.item.Description }
func (f foodItem) FilterValue() string {
	return f.item.Name + " " + f.item.Category + " " + f.item.Description
}

func toListItems(items []model.MenuItem, currency string) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, foodItem{item: it, currency: currency})
	}
	return out
}

// foodDelegate renders a two-line card: name, category badge and price,
// then the description.
type foodDelegate struct{}

func (d foodDelegate) Height() int                               { return 2 }
func (d foodDelegate) Spacing() int                              { return 1 }
func (d foodDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d foodDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	f, ok := li.(foodItem)
	if !ok {
		return
	}
	t := ui.Current()

	name := f.item.Name
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
		name = t.Title.Render(name)
	}
	price := t.Price.Render(model.FormatPrice(f.currency, f.item.Price))
	badge := t.Muted.Render("[" + f.item.Category + "]")

	desc := f.item.Description
	if width := m.Width() - 4; width > 3 && ansi.StringWidth(desc) > width {
		desc = ansi.Truncate(desc, width, "...")
	}

	fmt.Fprintf(w, "%s%s %s  %s\n", prefix, name, badge, price)
	fmt.Fprint(w, "  "+t.Muted.Render(desc))
}
