package repository

import (
	"sync"

	"github.com/lisbeauty/storefront/internal/cart/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

// StoreCartRepository persists the cart line items as one JSON list in the
// durable store.
type StoreCartRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreCartRepository(s store.Store) *StoreCartRepository {
	return &StoreCartRepository{store: s}
}

func (r *StoreCartRepository) Items() []domain.LineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.LineItem
	store.Load(r.store, store.KeyCart, &items)
	return items
}

func (r *StoreCartRepository) Save(items []domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Save(r.store, store.KeyCart, items)
}
