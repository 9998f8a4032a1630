// Copyright (c) 2026 Folio. All rights reserved.

package auth

import (
	"context"
)

// # Account Data Access

// AccountStore defines the data access contract for administrator accounts.
type AccountStore interface {

	/*
		Count returns the total number of accounts in storage.

		Parameters:
		  - context: context.Context

		Returns:
		  - int64: Account count
		  - error: Database retrieval failures
	*/
	Count(context context.Context) (int64, error)

	/*
		FindByID returns the account with the given ID, without the password hash.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email, without the
		password hash. Matching is case-insensitive.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindCredentialsByEmail returns the authentication projection for the
		given email, including the password hash. Matching is case-insensitive.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Credentials: Hydrated entity with password hash
		  - error: Database retrieval failures
	*/
	FindCredentialsByEmail(context context.Context, email string) (*Credentials, error)

	/*
		FindCredentialsByID returns the authentication projection for the
		given account ID, including the password hash.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Credentials: Hydrated entity with password hash
		  - error: Database retrieval failures
	*/
	FindCredentialsByID(context context.Context, id string) (*Credentials, error)

	/*
		Create persists a brand-new account with its password hash.

		Parameters:
		  - context: context.Context
		  - account: *Credentials

		Returns:
		  - error: Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, account *Credentials) error

	/*
		UpdatePassword replaces only the account's password hash.

		Parameters:
		  - context: context.Context
		  - accountID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, accountID, newHash string) error
}
