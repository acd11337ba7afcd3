package query

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch one product by id
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, ok := h.repo.FindByID(q.ID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}
	return product, nil
}
