package query

import (
	"github.com/lisbeauty/storefront/internal/cart/domain"
)

// CartView is the cart with its derived totals.
type CartView struct {
	Items []domain.LineItem `json:"items"`
	Total int64             `json:"total"`
	Count int               `json:"count"`
}

// GetCartQuery represents the query for the current cart
type GetCartQuery struct{}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	cart domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cart domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{cart: cart}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(GetCartQuery) CartView {
	items := h.cart.Items()
	if items == nil {
		items = []domain.LineItem{}
	}
	return CartView{
		Items: items,
		Total: domain.Total(items),
		Count: domain.Count(items),
	}
}
