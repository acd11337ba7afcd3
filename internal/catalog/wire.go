//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/lisbeauty/storefront/internal/catalog/delivery/http"
	"github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/internal/catalog/repository"
	"github.com/lisbeauty/storefront/pkg/store"
)

// ProvideProductRepository provides the catalog repository
func ProvideProductRepository(s store.Store) domain.ProductRepository {
	return repository.NewStoreProductRepository(s)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all
// dependencies
func InitializeHTTPHandler(s store.Store) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}
