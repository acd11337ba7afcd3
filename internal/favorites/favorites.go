// Package favorites owns the set of favorited product ids. Membership is a
// plain id list in the durable store; toggling twice is a no-op.
package favorites

import (
	"fmt"
	"sync"

	"github.com/lisbeauty/storefront/pkg/store"
)

// Repository persists the favorites id set.
type Repository interface {
	IDs() []string
	Save(ids []string) error
}

// StoreRepository keeps the favorites list under the favorites key.
type StoreRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	store.Load(r.store, store.KeyFavorites, &ids)
	return ids
}

func (r *StoreRepository) Save(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Save(r.store, store.KeyFavorites, ids)
}

// Service exposes the favorites operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the current membership.
func (s *Service) List() []string {
	ids := s.repo.IDs()
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// Contains reports whether the product id is favorited.
func (s *Service) Contains(productID string) bool {
	for _, id := range s.repo.IDs() {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle adds the id if absent and removes it if present, returning the
// resulting membership state.
func (s *Service) Toggle(productID string) (bool, error) {
	ids := s.repo.IDs()
	kept := ids[:0]
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, productID)
	}

	if err := s.repo.Save(kept); err != nil {
		return removed, fmt.Errorf("failed to save favorites: %w", err)
	}
	return !removed, nil
}
