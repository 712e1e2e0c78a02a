package model

import "github.com/shopspring/decimal"

// MenuItem is one orderable dish. Catalog entries are immutable once loaded.
type MenuItem struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Image       string          `json:"image" yaml:"image"`
	Category    string          `json:"category" yaml:"category"`
}

// CartEntry is a menu item plus how many of it the user wants.
// Quantity is always >= 1 while the entry exists.
type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// LineTotal is price times quantity.
func (e CartEntry) LineTotal() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// FormatPrice renders a price the way the storefront shows it, e.g. "$12.99".
func FormatPrice(symbol string, p decimal.Decimal) string {
	return symbol + p.StringFixed(2)
}
