package query

import (
	"fmt"

	"github.com/lisbeauty/storefront/internal/admin/domain"
)

// GetSessionQuery represents the query for the active session
type GetSessionQuery struct{}

// GetSessionHandler handles get session query
type GetSessionHandler struct {
	sessions domain.SessionStore
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(sessions domain.SessionStore) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

// Handle returns the active session or an error when signed out.
func (h *GetSessionHandler) Handle(GetSessionQuery) (*domain.Session, error) {
	session, ok := h.sessions.Current()
	if !ok {
		return nil, fmt.Errorf("not signed in")
	}
	return session, nil
}
