package command

import (
	"context"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

// The helpers below route repository calls through the context-aware
// variants when the repository implements them. Plain repositories keep
// working unchanged.

func createProduct(ctx context.Context, repo domain.ProductRepository, product *domain.Product) error {
	if cr, ok := repo.(domain.ContextProductRepository); ok {
		return cr.CreateWithContext(ctx, product)
	}
	return repo.Create(product)
}

func findProduct(ctx context.Context, repo domain.ProductRepository, id string) (*domain.Product, bool) {
	if cr, ok := repo.(domain.ContextProductRepository); ok {
		return cr.FindByIDWithContext(ctx, id)
	}
	return repo.FindByID(id)
}

func updateProduct(ctx context.Context, repo domain.ProductRepository, product *domain.Product) error {
	if cr, ok := repo.(domain.ContextProductRepository); ok {
		return cr.UpdateWithContext(ctx, product)
	}
	return repo.Update(product)
}

func deleteProduct(ctx context.Context, repo domain.ProductRepository, id string) error {
	if cr, ok := repo.(domain.ContextProductRepository); ok {
		return cr.DeleteWithContext(ctx, id)
	}
	return repo.Delete(id)
}
