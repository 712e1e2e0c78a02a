package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/order"
	"github.com/idilsaglam/foodhub/internal/ui"
)

var stepIcons = map[model.Status]string{
	model.StatusPreparing: "◷",
	model.StatusReady:     "▣",
	model.StatusOnTheWay:  "➜",
	model.StatusDelivered: "◉",
}

func (m Model) View() string {
	sections := []string{m.headerView(), m.hero, m.tabsView()}
	if m.pane == paneCart {
		sections = append(sections, m.cartView())
	} else {
		sections = append(sections, m.menu.View())
	}
	if m.order != nil {
		sections = append(sections, m.trackerView())
	}
	if m.toast != nil {
		sections = append(sections, m.toastView())
	}
	sections = append(sections, m.helpView())
	return strings.Join(sections, "\n")
}

func (m Model) headerView() string {
	t := ui.Current()
	left := t.Title.Render("FoodHub") + "  " + t.Muted.Render("/ Search for dishes...")
	right := "Cart"
	if n := m.cart.Count(); n > 0 {
		right += " " + t.Badge.Render(fmt.Sprint(n))
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) tabsView() string {
	t := ui.Current()
	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.tab {
			tabs[i] = t.Selected.Render(" " + c + " ")
		} else {
			tabs[i] = t.Muted.Render(" " + c + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) cartView() string {
	t := ui.Current()
	entries := m.cart.Entries()
	lines := []string{t.Title.Render("Your Cart")}
	if len(entries) == 0 {
		lines = append(lines, t.Muted.Render("Your cart is empty"))
		return ui.Panel(lines)
	}

	nameW := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Item.Name); w > nameW {
			nameW = w
		}
	}
	for i, e := range entries {
		prefix := "  "
		if i == m.cartIndex {
			prefix = t.Selected.Render(">") + " "
		}
		name := lipgloss.NewStyle().Width(nameW).Render(e.Item.Name)
		lines = append(lines, fmt.Sprintf("%s%s  x%-3d %s",
			prefix, name, e.Quantity,
			t.Price.Render(model.FormatPrice(m.currency, e.LineTotal())),
		))
	}
	lines = append(lines,
		t.Muted.Render(strings.Repeat("─", nameW+16)),
		"Subtotal: "+t.Price.Render(model.FormatPrice(m.currency, m.cart.Subtotal())),
	)
	return ui.Panel(lines)
}

func (m Model) trackerView() string {
	t := ui.Current()
	o := m.order

	title := t.Title.Render("Order #" + o.ID)
	if o.EstimatedTime != "" {
		title += "  " + t.Muted.Render("Est. "+o.EstimatedTime)
	}

	steps := order.Steps(o.Status)
	cols := make([]string, len(steps))
	for i, s := range steps {
		icon := stepIcons[s.Status]
		switch {
		case s.Completed && !s.Current:
			cols[i] = t.Success.Render(t.SymDone + " " + s.Label)
		case s.Current && !o.Status.Terminal():
			cols[i] = t.Accent.Render(icon+" "+s.Label) + " " + m.spinner.View()
		case s.Current:
			cols[i] = t.Success.Render(icon + " " + s.Label)
		default:
			cols[i] = t.Muted.Render(icon + " " + s.Label)
		}
	}

	barWidth := m.width - 16
	if barWidth > 48 {
		barWidth = 48
	}
	return ui.Panel([]string{
		title,
		strings.Join(cols, "   "),
		ui.ProgressBar(order.Progress(o.Status), barWidth),
	})
}

func (m Model) toastView() string {
	t := ui.Current()
	return t.Success.Render(t.SymOK+" "+m.toast.Title) + "  " + m.toast.Description
}

func (m Model) helpView() string {
	bindings := m.keys.menuHelp()
	if m.pane == paneCart {
		bindings = m.keys.cartHelp()
	}
	return m.help.ShortHelpView(bindings)
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
