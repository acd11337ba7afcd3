package query

import (
	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// ListSubcategoriesQuery lists the distinct subcategories of a category
type ListSubcategoriesQuery struct {
	Category string
}

// ListSubcategoriesHandler handles subcategory listing
type ListSubcategoriesHandler struct {
	repo domain.ProductRepository
}

// NewListSubcategoriesHandler creates a new list subcategories handler
func NewListSubcategoriesHandler(repo domain.ProductRepository) *ListSubcategoriesHandler {
	return &ListSubcategoriesHandler{repo: repo}
}

// Handle executes the list subcategories query
func (h *ListSubcategoriesHandler) Handle(q ListSubcategoriesQuery) []string {
	return domain.Subcategories(h.repo.FindAll(), q.Category)
}
