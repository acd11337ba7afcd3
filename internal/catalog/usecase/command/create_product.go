package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Price       int64
	Image       string
	Category    string
	Subcategory string
	Tags        []string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. New products start active
// with zero clicks and a server-assigned id and timestamp.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if err := validateProductFields(cmd.Name, cmd.Category, cmd.Price, cmd.Description); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Image:       imageOrPlaceholder(cmd.Image),
		Category:    cmd.Category,
		Subcategory: cmd.Subcategory,
		Tags:        cmd.Tags,
		Clicks:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
		Active:      true,
	}

	if err := createProduct(ctx, h.repo, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func validateProductFields(name, category string, price int64, description string) error {
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if len([]rune(name)) < 3 {
		return fmt.Errorf("product name must have at least 3 characters")
	}
	if category == "" {
		return fmt.Errorf("category is required")
	}
	if price <= 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	if len([]rune(description)) > 500 {
		return fmt.Errorf("description too long (max 500 characters)")
	}
	return nil
}

func imageOrPlaceholder(image string) string {
	if image == "" {
		return "../img/placeholder.jpg"
	}
	return image
}
