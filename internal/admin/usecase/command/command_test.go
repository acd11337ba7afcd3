package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisbeauty/storefront/internal/admin/repository"
	"github.com/lisbeauty/storefront/pkg/store"
)

type adminFixture struct {
	accounts *repository.StoreAccountRepository
	sessions *repository.ScopedSessionStore
	durable  *store.Memory
	session  *store.Memory
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	durable := store.NewMemory()
	session := store.NewMemory()

	accounts := repository.NewStoreAccountRepository(durable)
	require.NoError(t, accounts.EnsureSeed())

	return &adminFixture{
		accounts: accounts,
		sessions: repository.NewScopedSessionStore(store.NewScoped(durable, session)),
		durable:  durable,
		session:  session,
	}
}

func TestLoginWithSeededAccount(t *testing.T) {
	f := newAdminFixture(t)
	handler := NewLoginHandler(f.accounts, f.sessions)

	response, err := handler.Handle(LoginCommand{
		Email:    "elisabete@lisbeauty.ao",
		Password: "123456",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Elisabete", response.Session.FirstName)

	current, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "elisabete@lisbeauty.ao", current.Email)
}

func TestLoginWrongPasswordLeavesNoSession(t *testing.T) {
	f := newAdminFixture(t)
	handler := NewLoginHandler(f.accounts, f.sessions)

	_, err := handler.Handle(LoginCommand{
		Email:    "elisabete@lisbeauty.ao",
		Password: "wrong-password",
	})
	assert.EqualError(t, err, "invalid credentials")

	_, ok := f.sessions.Current()
	assert.False(t, ok)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAdminFixture(t)

	_, err := NewLoginHandler(f.accounts, f.sessions).Handle(LoginCommand{
		Email:    "nobody@lisbeauty.ao",
		Password: "123456",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginRememberPicksDurableScope(t *testing.T) {
	f := newAdminFixture(t)
	handler := NewLoginHandler(f.accounts, f.sessions)

	_, err := handler.Handle(LoginCommand{
		Email:    "erikson@lisbeauty.ao",
		Password: "123456",
		Remember: true,
	})
	require.NoError(t, err)

	_, ok := f.durable.Get(store.KeySession)
	assert.True(t, ok)
	_, ok = f.session.Get(store.KeySession)
	assert.False(t, ok)
}

func TestLogoutClearsBothScopes(t *testing.T) {
	f := newAdminFixture(t)
	login := NewLoginHandler(f.accounts, f.sessions)

	_, err := login.Handle(LoginCommand{
		Email:    "elisabete@lisbeauty.ao",
		Password: "123456",
		Remember: true,
	})
	require.NoError(t, err)

	NewLogoutHandler(f.sessions).Handle(LogoutCommand{})

	_, ok := f.sessions.Current()
	assert.False(t, ok)
	_, ok = f.durable.Get(store.KeySession)
	assert.False(t, ok)
}

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		FirstName:       "Ana",
		LastName:        "Gomes",
		Email:           "ana@lisbeauty.ao",
		Phone:           "912345678",
		Password:        "segredo-forte",
		ConfirmPassword: "segredo-forte",
		AccessCode:      AccessCode,
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	f := newAdminFixture(t)

	account, err := NewRegisterHandler(f.accounts).Handle(validRegisterCommand())
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.True(t, account.Active)
	assert.NotEqual(t, "segredo-forte", account.Password)

	stored, ok := f.accounts.FindByEmail("ana@lisbeauty.ao")
	require.True(t, ok)
	assert.Equal(t, "Ana", stored.FirstName)
}

func TestRegisterValidation(t *testing.T) {
	f := newAdminFixture(t)
	handler := NewRegisterHandler(f.accounts)

	cases := []struct {
		name   string
		mutate func(*RegisterCommand)
	}{
		{"missing first name", func(c *RegisterCommand) { c.FirstName = "" }},
		{"bad email", func(c *RegisterCommand) { c.Email = "not-an-email" }},
		{"bad phone", func(c *RegisterCommand) { c.Phone = "812345678" }},
		{"short password", func(c *RegisterCommand) { c.Password = "curta"; c.ConfirmPassword = "curta" }},
		{"password mismatch", func(c *RegisterCommand) { c.ConfirmPassword = "outra-coisa" }},
		{"wrong access code", func(c *RegisterCommand) { c.AccessCode = "NOPE" }},
		{"duplicate email", func(c *RegisterCommand) { c.Email = "elisabete@lisbeauty.ao" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validRegisterCommand()
			tc.mutate(&cmd)
			_, err := handler.Handle(cmd)
			assert.Error(t, err)
		})
	}
}
