package command

import (
	"context"
	"fmt"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// RecordViewCommand represents a detail-page view of a product
type RecordViewCommand struct {
	ID string
}

// RecordViewHandler increments the click counter on detail views
type RecordViewHandler struct {
	repo domain.ProductRepository
}

// NewRecordViewHandler creates a new record view handler
func NewRecordViewHandler(repo domain.ProductRepository) *RecordViewHandler {
	return &RecordViewHandler{repo: repo}
}

// Handle increments the product's click count and returns the record.
func (h *RecordViewHandler) Handle(ctx context.Context, cmd RecordViewCommand) (*domain.Product, error) {
	product, ok := findProduct(ctx, h.repo, cmd.ID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}

	product.Clicks++

	if err := updateProduct(ctx, h.repo, product); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}

	return product, nil
}
