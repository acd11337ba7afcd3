package command

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to drop a cart line
type RemoveItemCommand struct {
	ProductID string
}

// RemoveItemHandler handles cart removals
type RemoveItemHandler struct {
	cart domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(cart domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{cart: cart}
}

// Handle drops the line matching the product id. Absent ids are a no-op.
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) ([]domain.LineItem, error) {
	items := h.cart.Items()
	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != cmd.ProductID {
			kept = append(kept, item)
		}
	}

	if err := h.cart.Save(kept); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return kept, nil
}
