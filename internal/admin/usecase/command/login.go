package command

import (
	"fmt"
	"time"

	"github.com/lisbeauty/storefront/internal/admin/domain"
	"github.com/lisbeauty/storefront/pkg/auth"
)

// LoginCommand represents the command to sign an admin in
type LoginCommand struct {
	Email    string
	Password string
	Remember bool
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

// LoginHandler handles the login command
type LoginHandler struct {
	repo     domain.AccountRepository
	sessions domain.SessionStore
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(repo domain.AccountRepository, sessions domain.SessionStore) *LoginHandler {
	return &LoginHandler{repo: repo, sessions: sessions}
}

// Handle authenticates by exact email match plus password hash comparison
// against an active account. On success the session snapshot goes to the
// scope picked by the remember flag and the account's last login is
// stamped.
func (h *LoginHandler) Handle(cmd LoginCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	account, ok := h.repo.FindByEmail(cmd.Email)
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !account.Active {
		return nil, fmt.Errorf("account is deactivated")
	}
	if !auth.CheckPassword(account.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	session := &domain.Session{
		AccountID: account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
		LoginTime: now,
		Token:     token,
	}
	if err := h.sessions.Put(session, cmd.Remember); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	account.LastLogin = &now
	if err := h.repo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return &LoginResponse{Token: token, Session: session}, nil
}
