// Package cart tracks the user's in-progress selection before checkout.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/foodhub/internal/model"
)

// Lookup resolves menu item ids. *catalog.Catalog satisfies it.
type Lookup interface {
	Lookup(id string) (model.MenuItem, bool)
}

// Cart maps item ids to quantities and keeps insertion order for display.
// All operations are synchronous and never fail; bad input is a no-op.
type Cart struct {
	menu    Lookup
	entries []model.CartEntry
}

func New(menu Lookup) *Cart {
	return &Cart{menu: menu}
}

func (c *Cart) index(id string) int {
	for i, e := range c.entries {
		if e.Item.ID == id {
			return i
		}
	}
	return -1
}

// Add increments the quantity of id, or inserts it at quantity 1.
// Ids unknown to the menu are ignored; the returned bool reports whether anything changed.
func (c *Cart) Add(id string) (model.MenuItem, bool) {
	item, ok := c.menu.Lookup(id)
	if !ok {
		return model.MenuItem{}, false
	}
	if i := c.index(id); i >= 0 {
		c.entries[i].Quantity++
		return item, true
	}
	c.entries = append(c.entries, model.CartEntry{Item: item, Quantity: 1})
	return item, true
}

// UpdateQuantity sets the quantity of an existing entry. n <= 0 removes it.
func (c *Cart) UpdateQuantity(id string, n int) {
	if n <= 0 {
		c.Remove(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.entries[i].Quantity = n
	}
}

func (c *Cart) Remove(id string) {
	if i := c.index(id); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}
}

// Quantity returns the quantity held for id, 0 if absent.
func (c *Cart) Quantity(id string) int {
	if i := c.index(id); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// Entries returns a copy of the display list.
func (c *Cart) Entries() []model.CartEntry {
	out := make([]model.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int    { return len(c.entries) }
func (c *Cart) Empty() bool { return len(c.entries) == 0 }

// Count is the total number of units across entries (the header badge).
func (c *Cart) Count() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

// Checkout returns a snapshot of the entries and clears the cart.
// An empty cart is left untouched and ok is false.
func (c *Cart) Checkout() (snapshot []model.CartEntry, ok bool) {
	if c.Empty() {
		return nil, false
	}
	snapshot = c.entries
	c.entries = nil
	return snapshot, true
}
