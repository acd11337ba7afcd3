package repository

import (
	"sync"
	"time"

	"github.com/lisbeauty/storefront/internal/order/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

// StoreCustomerRepository persists customers as one JSON list in the
// durable store.
type StoreCustomerRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreCustomerRepository(s store.Store) *StoreCustomerRepository {
	return &StoreCustomerRepository{store: s}
}

// EnsureSeed inserts demo customers when the customers key is empty.
func (r *StoreCustomerRepository) EnsureSeed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.Get(store.KeyCustomers); ok {
		return nil
	}
	return r.save(domain.SeedCustomers(time.Now()))
}

func (r *StoreCustomerRepository) load() []domain.Customer {
	var customers []domain.Customer
	store.Load(r.store, store.KeyCustomers, &customers)
	return customers
}

func (r *StoreCustomerRepository) save(customers []domain.Customer) error {
	return store.Save(r.store, store.KeyCustomers, customers)
}

func (r *StoreCustomerRepository) FindAll() []domain.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *StoreCustomerRepository) FindByPhone(phone string) (*domain.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.load() {
		if c.Phone == phone {
			return &c, true
		}
	}
	return nil, false
}

func (r *StoreCustomerRepository) Create(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(append(r.load(), *customer))
}

func (r *StoreCustomerRepository) Update(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customers := r.load()
	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = *customer
			return r.save(customers)
		}
	}
	return nil
}

func (r *StoreCustomerRepository) Count() int {
	return len(r.FindAll())
}
