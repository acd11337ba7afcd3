package domain

import "time"

// Role types
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Account is an admin panel account. Email is unique. Password holds a
// bcrypt hash; the JSON field names match the legacy stored records.
type Account struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	Active    bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
}

// Session is the snapshot written on login. Presence of a session record in
// either storage scope is what marks an admin as signed in; the token
// carries the same identity for the HTTP layer.
type Session struct {
	AccountID string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
	Token     string    `json:"token,omitempty"`
}

// AccountRepository defines the contract for admin account data access.
type AccountRepository interface {
	FindAll() []Account
	FindByID(id string) (*Account, bool)
	FindByEmail(email string) (*Account, bool)
	Create(account *Account) error
	Update(account *Account) error
}

// SessionStore persists the current session in one of the two storage
// scopes.
type SessionStore interface {
	// Current returns the active session, durable scope winning over
	// session scope when both are set.
	Current() (*Session, bool)
	// Put writes the session to the durable scope when remember is true,
	// otherwise to the session scope.
	Put(session *Session, remember bool) error
	// Clear removes the session from both scopes unconditionally.
	Clear()
}
