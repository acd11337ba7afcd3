package domain

import (
	catalog "github.com/lisbeauty/storefront/internal/catalog/domain"
)

// LineItem is one cart row: a snapshot of the product at the time it was
// added, plus a quantity of at least 1. Because the snapshot is a copy,
// later catalog edits do not change cart prices. The embedded product keeps
// the stored JSON flat, matching the legacy cart records.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantidade"`
}

// Subtotal is price times quantity in minor units.
func (li *LineItem) Subtotal() int64 {
	return li.Product.Price * int64(li.Quantity)
}

// Total sums all line subtotals in minor units.
func Total(items []LineItem) int64 {
	var total int64
	for i := range items {
		total += items[i].Subtotal()
	}
	return total
}

// Count sums quantities across lines, the number shown on the cart badge.
func Count(items []LineItem) int {
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count
}

// CartRepository defines the contract for cart persistence.
type CartRepository interface {
	Items() []LineItem
	Save(items []LineItem) error
}
