package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// DuplicateProductCommand represents the command to clone a product
type DuplicateProductCommand struct {
	ID string
}

// DuplicateProductHandler handles product duplication command
type DuplicateProductHandler struct {
	repo domain.ProductRepository
}

// NewDuplicateProductHandler creates a new duplicate product handler
func NewDuplicateProductHandler(repo domain.ProductRepository) *DuplicateProductHandler {
	return &DuplicateProductHandler{repo: repo}
}

// Handle clones a product under a new id. The copy starts with zero clicks,
// a fresh creation timestamp and a copy marker appended to the name.
func (h *DuplicateProductHandler) Handle(ctx context.Context, cmd DuplicateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	original, ok := findProduct(ctx, h.repo, cmd.ID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}

	now := time.Now()
	copy := *original
	copy.ID = uuid.NewString()
	copy.Name = fmt.Sprintf("%s (Cópia)", original.Name)
	copy.Clicks = 0
	copy.CreatedAt = now
	copy.UpdatedAt = now
	copy.Tags = append([]string(nil), original.Tags...)

	if err := createProduct(ctx, h.repo, &copy); err != nil {
		return nil, fmt.Errorf("failed to duplicate product: %w", err)
	}

	return &copy, nil
}
