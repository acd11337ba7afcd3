package command

import (
	"github.com/lisbeauty/storefront/internal/admin/domain"
)

// LogoutCommand represents the command to sign out
type LogoutCommand struct{}

// LogoutHandler handles logout
type LogoutHandler struct {
	sessions domain.SessionStore
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions domain.SessionStore) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// Handle removes the session from both storage scopes unconditionally.
func (h *LogoutHandler) Handle(LogoutCommand) {
	h.sessions.Clear()
}
