package query

import (
	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list and filter the catalog
type ListProductsQuery struct {
	Filter domain.Filter
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) []domain.Product {
	return domain.Query(h.repo.FindAll(), q.Filter)
}
