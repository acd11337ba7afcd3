package repository

import (
	"sync"
	"time"

	"github.com/lisbeauty/storefront/internal/admin/domain"
	"github.com/lisbeauty/storefront/pkg/auth"
	"github.com/lisbeauty/storefront/pkg/store"
)

// StoreAccountRepository persists admin accounts as one JSON list in the
// durable store.
type StoreAccountRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreAccountRepository(s store.Store) *StoreAccountRepository {
	return &StoreAccountRepository{store: s}
}

// EnsureSeed inserts the default admins when the admins key is empty.
func (r *StoreAccountRepository) EnsureSeed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.Get(store.KeyAdmins); ok {
		return nil
	}
	accounts, err := domain.SeedAccounts(time.Now(), auth.HashPassword)
	if err != nil {
		return err
	}
	return r.save(accounts)
}

func (r *StoreAccountRepository) load() []domain.Account {
	var accounts []domain.Account
	store.Load(r.store, store.KeyAdmins, &accounts)
	return accounts
}

func (r *StoreAccountRepository) save(accounts []domain.Account) error {
	return store.Save(r.store, store.KeyAdmins, accounts)
}

func (r *StoreAccountRepository) FindAll() []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *StoreAccountRepository) FindByID(id string) (*domain.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.load() {
		if a.ID == id {
			return &a, true
		}
	}
	return nil, false
}

func (r *StoreAccountRepository) FindByEmail(email string) (*domain.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.load() {
		if a.Email == email {
			return &a, true
		}
	}
	return nil, false
}

func (r *StoreAccountRepository) Create(account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(append(r.load(), *account))
}

func (r *StoreAccountRepository) Update(account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts := r.load()
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = *account
			return r.save(accounts)
		}
	}
	return nil
}
