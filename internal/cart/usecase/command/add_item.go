package command

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/cart/domain"
	catalog "github.com/lisbeauty/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add one unit of a product
type AddItemCommand struct {
	ProductID string
}

// AddItemHandler handles cart additions
type AddItemHandler struct {
	cart    domain.CartRepository
	catalog catalog.ProductRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cart domain.CartRepository, cat catalog.ProductRepository) *AddItemHandler {
	return &AddItemHandler{cart: cart, catalog: cat}
}

// Handle adds one unit of the product. An existing line for the same id is
// incremented; otherwise a new line with quantity 1 stores a snapshot of
// the product as it is right now.
func (h *AddItemHandler) Handle(cmd AddItemCommand) ([]domain.LineItem, error) {
	product, ok := h.catalog.FindByID(cmd.ProductID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}

	items := h.cart.Items()
	found := false
	for i := range items {
		if items[i].Product.ID == cmd.ProductID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.LineItem{Product: *product, Quantity: 1})
	}

	if err := h.cart.Save(items); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return items, nil
}
