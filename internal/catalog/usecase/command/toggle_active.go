package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// ToggleActiveCommand represents the command to flip a product's active flag
type ToggleActiveCommand struct {
	ID string
}

// ToggleActiveHandler handles product activation toggle command
type ToggleActiveHandler struct {
	repo domain.ProductRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.ProductRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command. Applying it twice restores the
// original flag.
func (h *ToggleActiveHandler) Handle(ctx context.Context, cmd ToggleActiveCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, ok := findProduct(ctx, h.repo, cmd.ID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}

	product.Active = !product.Active
	product.UpdatedAt = time.Now()

	if err := updateProduct(ctx, h.repo, product); err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}

	return product, nil
}
