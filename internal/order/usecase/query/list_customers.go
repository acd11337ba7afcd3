package query

import (
	"github.com/lisbeauty/storefront/internal/order/domain"
)

// ListCustomersQuery represents the query to list customers
type ListCustomersQuery struct {
	ActiveOnly bool
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	customers domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(customers domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{customers: customers}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) []domain.Customer {
	all := h.customers.FindAll()
	if !q.ActiveOnly {
		return all
	}
	out := make([]domain.Customer, 0, len(all))
	for _, c := range all {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}
