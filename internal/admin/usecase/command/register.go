package command

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/lisbeauty/storefront/internal/admin/domain"
	"github.com/lisbeauty/storefront/pkg/auth"
)

// AccessCode gates self-service admin registration.
const AccessCode = "LISBEAUTY2025"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^9\d{8}$`)
)

// RegisterCommand represents the command to create an admin account
type RegisterCommand struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            string
	AccessCode      string
}

// RegisterHandler handles admin registration
type RegisterHandler struct {
	repo domain.AccountRepository
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(repo domain.AccountRepository) *RegisterHandler {
	return &RegisterHandler{repo: repo}
}

// Handle validates the form and creates the account with a hashed password.
func (h *RegisterHandler) Handle(cmd RegisterCommand) (*domain.Account, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	if cmd.AccessCode != AccessCode {
		return nil, fmt.Errorf("invalid access code")
	}
	if _, exists := h.repo.FindByEmail(cmd.Email); exists {
		return nil, fmt.Errorf("email is already registered")
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Password:  hash,
		Role:      cmd.Role,
		CreatedAt: time.Now(),
		Active:    true,
	}

	if err := h.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func validate(cmd RegisterCommand) error {
	if cmd.FirstName == "" || cmd.LastName == "" || cmd.Email == "" ||
		cmd.Phone == "" || cmd.Password == "" || cmd.Role == "" || cmd.AccessCode == "" {
		return fmt.Errorf("all fields are required")
	}
	if !emailPattern.MatchString(cmd.Email) {
		return fmt.Errorf("invalid email")
	}
	if !phonePattern.MatchString(cmd.Phone) {
		return fmt.Errorf("phone must have 9 digits and start with 9")
	}
	if len(cmd.Password) < 8 {
		return fmt.Errorf("password must have at least 8 characters")
	}
	if cmd.Password != cmd.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
