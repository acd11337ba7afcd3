package command

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/cart/domain"
)

// SetQuantityCommand represents the command to set a line's quantity
type SetQuantityCommand struct {
	ProductID string
	Quantity  int
}

// SetQuantityHandler handles quantity updates
type SetQuantityHandler struct {
	cart domain.CartRepository
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(cart domain.CartRepository) *SetQuantityHandler {
	return &SetQuantityHandler{cart: cart}
}

// Handle sets the stored quantity. A quantity of zero or less removes the
// line; a zero quantity is never stored.
func (h *SetQuantityHandler) Handle(cmd SetQuantityCommand) ([]domain.LineItem, error) {
	items := h.cart.Items()
	out := items[:0]
	for _, item := range items {
		if item.Product.ID == cmd.ProductID {
			if cmd.Quantity <= 0 {
				continue
			}
			item.Quantity = cmd.Quantity
		}
		out = append(out, item)
	}

	if err := h.cart.Save(out); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return out, nil
}
