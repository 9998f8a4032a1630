// Copyright (c) 2026 Folio. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/platform/validate"
	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT string whose subject is the accountID.
	GenerateToken(accountID string) (string, error)
}

// Service implements account authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, bootstrap,
// or login logic must be reviewed carefully.
type Service struct {
	accountStore  AccountStore
	tokenProvider TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(accounts AccountStore, tokens TokenProvider) *Service {
	return &Service{
		accountStore:  accounts,
		tokenProvider: tokens,
	}
}

// # Bootstrap Flow

// BootstrapInput holds the data required to enroll the first administrator.
type BootstrapInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Session represents a successfully established authentication session:
// a signed token plus the public account shape.
type Session struct {
	Token   string
	Account *Account
}

/*
Bootstrap creates the very first administrator account.

Description: One-shot enrollment. The operation is open to the public but
succeeds at most once: as soon as any account exists, every further attempt
is rejected before any input is even looked at. The created account is
always a superadmin.

Parameters:
  - context: context.Context
  - input: BootstrapInput

Returns:
  - *Session: Signed token and created account
  - error: Conflict (if an account exists), validation, or storage errors
*/
func (service *Service) Bootstrap(context context.Context, input BootstrapInput) (*Session, error) {

	// Existence check comes BEFORE validation: once an account exists the
	// endpoint reveals nothing about what valid input would look like.
	count, err := service.accountStore.Count(context)
	if err != nil {
		return nil, fmt.Errorf("auth_service_count_failed: %w", err)
	}
	if count > 0 {
		return nil, apperr.Conflict("Admin already exists. Please login.")
	}

	// Ordered structural checks. The first violated rule wins.
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.ValidationError("Please provide all fields")
	}
	if policyErr := validate.PasswordPolicy(input.Password); policyErr != nil {
		return nil, policyErr
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperr.ValidationError("Passwords do not match")
	}

	// Belt-and-suspenders duplicate check. The unique index on lower(email)
	// is the real backstop against a concurrent racer.
	if _, err := service.accountStore.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email already in use")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// The first account is always a superadmin. Time-sortable ID to prevent
	// PG index fragmentation.
	account := &Credentials{
		Account: Account{
			ID:       uuidv7.Must(),
			Name:     input.Name,
			Email:    input.Email,
			Role:     sec.RoleSuperAdmin,
			IsActive: true,
		},
		PasswordHash: hashedPassword,
	}

	if err := service.accountStore.Create(context, account); err != nil {
		return nil, err
	}

	return service.openSession(&account.Account)
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates account credentials and issues a session token.

Description: Verifies identity with constant-time password comparison. The
failure message never distinguishes an unknown email from a wrong password,
and the deactivation check runs only after the password has been verified so
that account state leaks to credential holders only.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Signed token and account profile
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {

	if input.Email == "" || input.Password == "" {
		return nil, apperr.ValidationError("Please provide email and password")
	}

	credentials, err := service.accountStore.FindCredentialsByEmail(context, input.Email)

	// Unknown email and wrong password produce the same message to prevent
	// account enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if !sec.CheckPasswordHash(input.Password, credentials.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !credentials.IsActive {
		return nil, apperr.Unauthorized("Account is deactivated")
	}

	return service.openSession(&credentials.Account)
}

/*
CurrentAccount returns the public profile of the authenticated account.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - *Account: Hydrated entity, hash structurally absent
  - error: NotFound or database errors
*/
func (service *Service) CurrentAccount(context context.Context, accountID string) (*Account, error) {
	account, err := service.accountStore.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

/*
ChangePassword allows an authenticated account to rotate its credentials.

Description: Structural checks on the new password run first. The current
password is verified last, so an attacker probing with garbage input learns
the password rules before learning anything about the stored credential.
Previously issued tokens remain valid until they expire.

Parameters:
  - context: context.Context
  - accountID: string
  - currentPassword: string
  - newPassword: string
  - confirmPassword: string

Returns:
  - err: Validation, NotFound, or storage failures
*/
func (service *Service) ChangePassword(context context.Context, accountID, currentPassword, newPassword, confirmPassword string) error {

	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return apperr.ValidationError("Please provide all fields")
	}
	if newPassword != confirmPassword {
		return apperr.ValidationError("New passwords do not match")
	}
	if policyErr := validate.PasswordPolicy(newPassword); policyErr != nil {
		return policyErr
	}

	credentials, err := service.accountStore.FindCredentialsByID(context, accountID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, credentials.PasswordHash) {
		return apperr.ValidationError("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	if err := service.accountStore.UpdatePassword(context, accountID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_change_password_update_failed: %w", err)
	}

	return nil
}

// # Guard Resolution

/*
ResolveAccount resolves a token subject into a live authorization identity.

Description: Called by the request guard on every authenticated request, so
deactivation or a role downgrade takes effect on the very next request even
while previously issued tokens are still unexpired.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - *sec.Identity: Current role and active flag from storage
  - error: NotFound or database errors
*/
func (service *Service) ResolveAccount(context context.Context, accountID string) (*sec.Identity, error) {
	account, err := service.accountStore.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}
	return account.Identity(), nil
}

// openSession signs a token for the account and pairs it with the profile.
func (service *Service) openSession(account *Account) (*Session, error) {
	token, err := service.tokenProvider.GenerateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}
	return &Session{Token: token, Account: account}, nil
}
