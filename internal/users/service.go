// Copyright (c) 2026 Folio. All rights reserved.

package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foliohq/folio/internal/auth"
	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/platform/validate"
	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates administrator account management.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
List returns every administrator account.

Parameters:
  - context: context.Context

Returns:
  - []*auth.Account: All accounts, hashes structurally absent
  - error: Database failures
*/
func (service *Service) List(context context.Context) ([]*auth.Account, error) {
	accounts, err := service.store.List(context)
	if err != nil {
		return nil, fmt.Errorf("users_service_list_failed: %w", err)
	}
	return accounts, nil
}

// CreateInput holds the data required to enroll an additional administrator.
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

/*
Create enrolls an additional administrator account.

Description: Unlike the public bootstrap, this path is superadmin-gated and
may assign either role. An empty role defaults to admin; anything outside
the closed enumeration is rejected.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *auth.Account: Created account
  - error: Validation, Conflict (duplicate email), or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.Account, error) {

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.ValidationError("Please provide all fields")
	}
	if policyErr := validate.PasswordPolicy(input.Password); policyErr != nil {
		return nil, policyErr
	}

	role := sec.RoleAdmin
	if input.Role != "" {
		parsed, err := sec.ParseRole(input.Role)
		if err != nil {
			return nil, apperr.ValidationError("Role must be admin or superadmin")
		}
		role = parsed
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("users_service_hash_failed: %w", err)
	}

	account := &auth.Credentials{
		Account: auth.Account{
			ID:       uuidv7.Must(),
			Name:     input.Name,
			Email:    input.Email,
			Role:     role,
			IsActive: true,
		},
		PasswordHash: hashedPassword,
	}

	if err := service.store.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_created",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)

	return &account.Account, nil
}

// UpdateInput defines the mutable subset of an account: role and active flag.
type UpdateInput struct {
	Role     *string
	IsActive *bool
}

/*
Update applies a partial change to an account's role or active flag.

Description: A deactivation or downgrade propagates on the target's very
next request, because the request guard re-reads the account from storage
every time.

Parameters:
  - context: context.Context
  - accountID: string
  - input: UpdateInput

Returns:
  - *auth.Account: Updated account
  - error: Validation, NotFound, or storage failures
*/
func (service *Service) Update(context context.Context, accountID string, input UpdateInput) (*auth.Account, error) {

	account, err := service.store.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		parsed, err := sec.ParseRole(*input.Role)
		if err != nil {
			return nil, apperr.ValidationError("Role must be admin or superadmin")
		}
		account.Role = parsed
	}

	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := service.store.Update(context, account); err != nil {
		return nil, fmt.Errorf("users_service_update_failed: %w", err)
	}

	service.logger.Info("account_updated",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
		slog.Bool("is_active", account.IsActive),
	)

	return account, nil
}

/*
Delete permanently removes an administrator account.

Description: A superadmin may never delete their own account, so the system
can never talk itself out of its last superadmin through this endpoint.

Parameters:
  - context: context.Context
  - actorID: string (The authenticated superadmin performing the deletion)
  - accountID: string (The target account)

Returns:
  - error: Validation (self-deletion), NotFound, or storage failures
*/
func (service *Service) Delete(context context.Context, actorID, accountID string) error {

	if actorID == accountID {
		return apperr.ValidationError("You cannot delete your own account")
	}

	if _, err := service.store.FindByID(context, accountID); err != nil {
		return err
	}

	if err := service.store.Delete(context, accountID); err != nil {
		return fmt.Errorf("users_service_delete_failed: %w", err)
	}

	service.logger.Info("account_deleted", slog.String("account_id", accountID))

	return nil
}
