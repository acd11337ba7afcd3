package command

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/cart/domain"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct{}

// ClearCartHandler handles cart clearing
type ClearCartHandler struct {
	cart domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(cart domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{cart: cart}
}

// Handle empties the cart. Checkout uses this after orders are recorded.
func (h *ClearCartHandler) Handle(ClearCartCommand) error {
	if err := h.cart.Save([]domain.LineItem{}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
