package command

import (
	"context"
	"fmt"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("invalid product id")
	}

	if _, ok := findProduct(ctx, h.repo, cmd.ID); !ok {
		return fmt.Errorf("product not found")
	}

	if err := deleteProduct(ctx, h.repo, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
