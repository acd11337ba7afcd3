package query

import (
	"sort"

	"github.com/lisbeauty/storefront/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders
type ListOrdersQuery struct {
	Status domain.Status // optional filter
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Handle returns orders newest first, optionally filtered by status.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) []domain.Order {
	all := h.orders.FindAll()
	out := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
