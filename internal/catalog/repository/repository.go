package repository

import (
	"sync"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

// StoreProductRepository persists the catalog as one JSON list in the
// durable store. Mutations load the list, apply the change and re-save the
// whole list synchronously. The mutex serializes writers within this
// process; writers in other processes sharing the store remain
// last-write-wins.
type StoreProductRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreProductRepository(s store.Store) *StoreProductRepository {
	return &StoreProductRepository{store: s}
}

// EnsureSeed inserts the demo catalog when the products key is empty.
func (r *StoreProductRepository) EnsureSeed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.Get(store.KeyProducts); ok {
		return nil
	}
	return r.save(domain.SeedProducts())
}

func (r *StoreProductRepository) load() []domain.Product {
	var products []domain.Product
	store.Load(r.store, store.KeyProducts, &products)
	return products
}

func (r *StoreProductRepository) save(products []domain.Product) error {
	return store.Save(r.store, store.KeyProducts, products)
}

func (r *StoreProductRepository) FindAll() []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *StoreProductRepository) FindByID(id string) (*domain.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

func (r *StoreProductRepository) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := append(r.load(), *product)
	return r.save(products)
}

// Update replaces the record with a matching id. Absent ids are a no-op.
func (r *StoreProductRepository) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := r.load()
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			return r.save(products)
		}
	}
	return nil
}

// Delete filters the record out of the list. Absent ids are a no-op.
func (r *StoreProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := r.load()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}
	return r.save(kept)
}

func (r *StoreProductRepository) Count() int {
	return len(r.FindAll())
}

func (r *StoreProductRepository) CountActive() int {
	count := 0
	for _, p := range r.FindAll() {
		if p.Active {
			count++
		}
	}
	return count
}
