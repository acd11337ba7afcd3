package repository

import (
	"encoding/json"

	"github.com/lisbeauty/storefront/internal/admin/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

// ScopedSessionStore keeps the session record in the durable or session
// storage scope, chosen per login by the remember-me flag. A corrupt
// session record reads as signed out.
type ScopedSessionStore struct {
	scopes *store.Scoped
}

func NewScopedSessionStore(scopes *store.Scoped) *ScopedSessionStore {
	return &ScopedSessionStore{scopes: scopes}
}

func (s *ScopedSessionStore) Current() (*domain.Session, bool) {
	raw, ok := s.scopes.Get(store.KeySession)
	if !ok {
		return nil, false
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (s *ScopedSessionStore) Put(session *domain.Session, remember bool) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.scopes.Set(store.KeySession, raw, remember)
}

func (s *ScopedSessionStore) Clear() {
	s.scopes.Remove(store.KeySession)
}
