// Copyright (c) 2026 Folio. All rights reserved.

package auth_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/auth"
	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/platform/sec"
)

// memoryStore is an in-memory AccountStore used to drive the service.
type memoryStore struct {
	accounts map[string]*auth.Credentials
}

func newMemoryStore() *memoryStore {
	return &memoryStore{accounts: make(map[string]*auth.Credentials)}
}

func (store *memoryStore) Count(context.Context) (int64, error) {
	return int64(len(store.accounts)), nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*auth.Account, error) {
	if credentials, ok := store.accounts[id]; ok {
		copied := credentials.Account
		return &copied, nil
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryStore) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	for _, credentials := range store.accounts {
		if strings.EqualFold(credentials.Email, email) {
			copied := credentials.Account
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryStore) FindCredentialsByEmail(_ context.Context, email string) (*auth.Credentials, error) {
	for _, credentials := range store.accounts {
		if strings.EqualFold(credentials.Email, email) {
			copied := *credentials
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryStore) FindCredentialsByID(_ context.Context, id string) (*auth.Credentials, error) {
	if credentials, ok := store.accounts[id]; ok {
		copied := *credentials
		return &copied, nil
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryStore) Create(_ context.Context, account *auth.Credentials) error {
	for _, existing := range store.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return apperr.Conflict("Email already in use")
		}
	}
	store.accounts[account.ID] = account
	return nil
}

func (store *memoryStore) UpdatePassword(_ context.Context, accountID, newHash string) error {
	if credentials, ok := store.accounts[accountID]; ok {
		credentials.PasswordHash = newHash
	}
	return nil
}

// stubTokens issues deterministic tokens.
type stubTokens struct{}

func (stubTokens) GenerateToken(accountID string) (string, error) {
	return "token-for-" + accountID, nil
}

func newService(store *memoryStore) *auth.Service {
	return auth.NewService(store, stubTokens{})
}

func validBootstrap() auth.BootstrapInput {
	return auth.BootstrapInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "Longenough1",
		ConfirmPassword: "Longenough1",
	}
}

/*
TestBootstrap_FirstAccount verifies the first registration creates an active
superadmin and opens a session.
*/
func TestBootstrap_FirstAccount(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	session, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, sec.RoleSuperAdmin, session.Account.Role)
	assert.True(t, session.Account.IsActive)
	assert.Equal(t, "token-for-"+session.Account.ID, session.Token)
	assert.Len(t, store.accounts, 1)

	// The stored hash is a real bcrypt hash, not the plain-text password.
	stored := store.accounts[session.Account.ID]
	assert.NotEqual(t, "Longenough1", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("Longenough1", stored.PasswordHash))
}

/*
TestBootstrap_ClosedAfterFirst verifies the endpoint is permanently closed
once any account exists, and that the existence check runs before input
validation so repeated probing always yields the same answer.
*/
func TestBootstrap_ClosedAfterFirst(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	_, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)

	// A perfectly valid second registration is refused.
	second := validBootstrap()
	second.Email = "someone-else@example.com"
	_, err = service.Bootstrap(context.Background(), second)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Admin already exists. Please login.", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)

	// Even garbage input gets the same refusal, never a validation hint.
	_, err = service.Bootstrap(context.Background(), auth.BootstrapInput{Password: "x"})
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Admin already exists. Please login.", appErr.Message)

	assert.Len(t, store.accounts, 1)
}

/*
TestBootstrap_ValidationOrder verifies the structural checks fire in a fixed
order with the documented messages.
*/
func TestBootstrap_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   auth.BootstrapInput
		message string
	}{
		{
			"missing_fields",
			auth.BootstrapInput{Name: "Ada", Password: "Longenough1"},
			"Please provide all fields",
		},
		{
			"too_short",
			auth.BootstrapInput{Name: "Ada", Email: "ada@example.com", Password: "Sh0rt", ConfirmPassword: "Sh0rt"},
			"Password must be at least 8 characters",
		},
		{
			"no_uppercase",
			auth.BootstrapInput{Name: "Ada", Email: "ada@example.com", Password: "longenough1", ConfirmPassword: "longenough1"},
			"Password must contain at least one uppercase letter",
		},
		{
			"no_digit",
			auth.BootstrapInput{Name: "Ada", Email: "ada@example.com", Password: "Longenough", ConfirmPassword: "Longenough"},
			"Password must contain at least one number",
		},
		{
			"mismatch",
			auth.BootstrapInput{Name: "Ada", Email: "ada@example.com", Password: "Longenough1", ConfirmPassword: "Longenough2"},
			"Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newMemoryStore())

			_, err := service.Bootstrap(context.Background(), tt.input)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}

/*
TestLogin_UniformFailure verifies an unknown email and a wrong password are
indistinguishable from the caller's point of view.
*/
func TestLogin_UniformFailure(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	_, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "Longenough1",
	})
	_, wrongErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "ada@example.com",
		Password: "Wrongpass1",
	})

	unknownApp := apperr.As(unknownErr)
	wrongApp := apperr.As(wrongErr)
	require.NotNil(t, unknownApp)
	require.NotNil(t, wrongApp)

	assert.Equal(t, unknownApp.Message, wrongApp.Message)
	assert.Equal(t, unknownApp.HTTPStatus, wrongApp.HTTPStatus)
	assert.Equal(t, "Invalid credentials", unknownApp.Message)
	assert.Equal(t, http.StatusUnauthorized, unknownApp.HTTPStatus)
}

/*
TestLogin_Deactivated verifies a deactivated account is refused, and that
the deactivation message is only shown to callers holding the correct
password.
*/
func TestLogin_Deactivated(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	session, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)
	store.accounts[session.Account.ID].IsActive = false

	// Correct password: the caller learns the account is deactivated.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ada@example.com",
		Password: "Longenough1",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Account is deactivated", appErr.Message)

	// Wrong password: the caller learns nothing beyond the generic refusal.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ada@example.com",
		Password: "Wrongpass1",
	})
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

/*
TestLogin_CaseInsensitiveEmail verifies the email lookup ignores case.
*/
func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	service := newService(newMemoryStore())

	_, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ADA@Example.COM",
		Password: "Longenough1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Account.Email)
}

/*
TestChangePassword_Ordering verifies structural checks on the new password
run before the current password is verified.
*/
func TestChangePassword_Ordering(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	session, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)
	accountID := session.Account.ID

	tests := []struct {
		name    string
		current string
		new     string
		confirm string
		message string
	}{
		{"missing_fields", "", "Newpassword1", "Newpassword1", "Please provide all fields"},
		{"mismatch", "Longenough1", "Newpassword1", "Newpassword2", "New passwords do not match"},
		{"weak_new", "wrong-current", "short", "short", "Password must be at least 8 characters"},
		{"wrong_current_last", "wrong-current", "Newpassword1", "Newpassword1", "Current password is incorrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ChangePassword(context.Background(), accountID, tt.current, tt.new, tt.confirm)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	// Happy path: the new password is live immediately, the old one is dead.
	err = service.ChangePassword(context.Background(), accountID, "Longenough1", "Newpassword1", "Newpassword1")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{Email: "ada@example.com", Password: "Newpassword1"})
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{Email: "ada@example.com", Password: "Longenough1"})
	assert.Error(t, err)
}

/*
TestResolveAccount verifies the guard view reflects storage state at call
time, not token-issuance time.
*/
func TestResolveAccount(t *testing.T) {
	store := newMemoryStore()
	service := newService(store)

	session, err := service.Bootstrap(context.Background(), validBootstrap())
	require.NoError(t, err)

	identity, err := service.ResolveAccount(context.Background(), session.Account.ID)
	require.NoError(t, err)
	assert.True(t, identity.IsActive)
	assert.Equal(t, sec.RoleSuperAdmin, identity.Role)

	// Deactivate and downgrade behind the token's back.
	store.accounts[session.Account.ID].IsActive = false
	store.accounts[session.Account.ID].Role = sec.RoleAdmin

	identity, err = service.ResolveAccount(context.Background(), session.Account.ID)
	require.NoError(t, err)
	assert.False(t, identity.IsActive)
	assert.Equal(t, sec.RoleAdmin, identity.Role)

	// A deleted account no longer resolves at all.
	delete(store.accounts, session.Account.ID)
	_, err = service.ResolveAccount(context.Background(), session.Account.ID)
	assert.Error(t, err)
}
