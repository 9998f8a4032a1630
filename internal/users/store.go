// Copyright (c) 2026 Folio. All rights reserved.

/*
Package users handles administrator account management.

It lets a superadmin enroll further administrators, adjust their role or
active flag, and remove them.

# Architecture

  - Domain: This package depends on the auth package for the Account entity.
  - Authorization: Every route is gated to superadmin by the router; the
    service additionally enforces the self-deletion rule.
*/
package users

import (
	"context"

	"github.com/foliohq/folio/internal/auth"
)

// # Repository Contracts

// Store defines the persistence contract for account administration.
type Store interface {

	/*
		List returns all accounts, newest first, without password hashes.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*auth.Account: Hydrated entities
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*auth.Account, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*auth.Account, error)

	/*
		Create persists a new administrator account with its password hash.

		Parameters:
		  - context: context.Context
		  - account: *auth.Credentials

		Returns:
		  - error: Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, account *auth.Credentials) error

	/*
		Update persists changes to the account's role and active flag.

		Parameters:
		  - context: context.Context
		  - account: *auth.Account

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, account *auth.Account) error

	/*
		Delete permanently removes the account row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error
}
