package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product. Zero
// fields are left unchanged; the id itself is immutable.
type UpdateProductCommand struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Image       string
	Category    string
	Subcategory string
	Tags        []string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, ok := findProduct(ctx, h.repo, cmd.ID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if cmd.Price > 0 {
		product.Price = cmd.Price
	}
	if cmd.Image != "" {
		product.Image = cmd.Image
	}
	if cmd.Category != "" {
		product.Category = cmd.Category
	}
	if cmd.Subcategory != "" {
		product.Subcategory = cmd.Subcategory
	}
	if cmd.Tags != nil {
		product.Tags = cmd.Tags
	}

	if err := validateProductFields(product.Name, product.Category, product.Price, product.Description); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()

	if err := updateProduct(ctx, h.repo, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
