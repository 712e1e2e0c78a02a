package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/foodhub/internal/catalog"
	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/ui"
)

func newMenuCmd(a *app) *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu",
		Example: `  foodhub menu
  foodhub menu --category Pizza
  foodhub menu --search avocado`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printMenu(category, search)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", catalog.AllCategories, "only show this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show dishes matching this text")
	return cmd
}

func (a *app) printMenu(category, search string) error {
	items := a.catalog.Filter(category)
	if len(items) == 0 {
		return usagef("no such category %q (have: %s)", category, strings.Join(a.catalog.Categories(), ", "))
	}
	if search != "" {
		matches := map[string]bool{}
		for _, it := range a.catalog.Search(search) {
			matches[it.ID] = true
		}
		kept := items[:0]
		for _, it := range items {
			if matches[it.ID] {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	if len(items) == 0 {
		ui.Muted(a.stdout, fmt.Sprintf("No dishes match %q.", search))
		return nil
	}

	t := ui.Current()
	lines := []string{t.Title.Render("Popular Dishes") + "  " + t.Muted.Render(fmt.Sprintf("(%s)", category))}
	for _, it := range items {
		lines = append(lines, menuLine(it, a.cfg.Currency))
		lines = append(lines, "     "+t.Muted.Render(it.Description))
	}
	fmt.Fprintln(a.stdout, ui.Panel(lines))
	return nil
}

func menuLine(it model.MenuItem, currency string) string {
	t := ui.Current()
	return fmt.Sprintf("%-4s %s %s  %s",
		it.ID,
		it.Name,
		t.Muted.Render("["+it.Category+"]"),
		t.Price.Render(model.FormatPrice(currency, it.Price)),
	)
}
