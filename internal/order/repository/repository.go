package repository

import (
	"sync"
	"time"

	"github.com/lisbeauty/storefront/internal/order/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

// StoreOrderRepository persists orders as one JSON list in the durable
// store.
type StoreOrderRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreOrderRepository(s store.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: s}
}

// EnsureSeed inserts demo orders when the orders key is empty.
func (r *StoreOrderRepository) EnsureSeed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.Get(store.KeyOrders); ok {
		return nil
	}
	return r.save(domain.SeedOrders(time.Now()))
}

func (r *StoreOrderRepository) load() []domain.Order {
	var orders []domain.Order
	store.Load(r.store, store.KeyOrders, &orders)
	return orders
}

func (r *StoreOrderRepository) save(orders []domain.Order) error {
	return store.Save(r.store, store.KeyOrders, orders)
}

func (r *StoreOrderRepository) FindAll() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *StoreOrderRepository) FindByID(id string) (*domain.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.load() {
		if o.ID == id {
			return &o, true
		}
	}
	return nil, false
}

func (r *StoreOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(append(r.load(), *order))
}

func (r *StoreOrderRepository) Update(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := r.load()
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			return r.save(orders)
		}
	}
	return nil
}

func (r *StoreOrderRepository) Count() int {
	return len(r.FindAll())
}
