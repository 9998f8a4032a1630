// Copyright (c) 2026 Folio. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountStore implements the AccountStore interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped through [dberr.Wrap]
// to domain-friendly application errors so no driver detail leaks upward.
type PostgresAccountStore struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of AccountStore.
func NewPostgresAccountStore(pool *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{pool: pool}
}

/*
Count returns the total number of accounts.

Parameters:
  - context: context.Context

Returns:
  - int64: Row count
  - error: Execution errors
*/
func (store *PostgresAccountStore) Count(context context.Context) (int64, error) {
	const query = "SELECT COUNT(*) FROM accounts"

	var count int64
	if err := store.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_account_store_count_failed: %w", err)
	}

	return count, nil
}

/*
FindByID retrieves an account by its unique ID, without the password hash.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Account: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresAccountStore) FindByID(context context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, name, email, role, isactive, createdat, updatedat
		FROM accounts
		WHERE id = $1`

	account := &Account{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return account, nil
}

/*
FindByEmail retrieves an account by email, without the password hash.

Description: Lookup is case-insensitive; the unique index on lower(email)
keeps this query on an index scan.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresAccountStore) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, name, email, role, isactive, createdat, updatedat
		FROM accounts
		WHERE lower(email) = lower($1)`

	account := &Account{}
	err := store.pool.QueryRow(context, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return account, nil
}

/*
FindCredentialsByEmail retrieves the authentication projection by email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Credentials: Hydrated entity including password hash
  - error: apperr.NotFound or database errors
*/
func (store *PostgresAccountStore) FindCredentialsByEmail(context context.Context, email string) (*Credentials, error) {
	const query = `
		SELECT id, name, email, passwordhash, role, isactive, createdat, updatedat
		FROM accounts
		WHERE lower(email) = lower($1)`

	credentials := &Credentials{}
	err := store.pool.QueryRow(context, query, email).Scan(
		&credentials.ID,
		&credentials.Name,
		&credentials.Email,
		&credentials.PasswordHash,
		&credentials.Role,
		&credentials.IsActive,
		&credentials.CreatedAt,
		&credentials.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return credentials, nil
}

/*
FindCredentialsByID retrieves the authentication projection by account ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Credentials: Hydrated entity including password hash
  - error: apperr.NotFound or database errors
*/
func (store *PostgresAccountStore) FindCredentialsByID(context context.Context, id string) (*Credentials, error) {
	const query = `
		SELECT id, name, email, passwordhash, role, isactive, createdat, updatedat
		FROM accounts
		WHERE id = $1`

	credentials := &Credentials{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&credentials.ID,
		&credentials.Name,
		&credentials.Email,
		&credentials.PasswordHash,
		&credentials.Role,
		&credentials.IsActive,
		&credentials.CreatedAt,
		&credentials.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return credentials, nil
}

/*
Create persists a new account record.

Description: Timestamps are initialized here. A unique violation on the
lower(email) index surfaces as a client-safe conflict.

Parameters:
  - context: context.Context
  - account: *Credentials

Returns:
  - error: apperr.Conflict on duplicate email, or persistence failures
*/
func (store *PostgresAccountStore) Create(context context.Context, account *Credentials) error {
	const query = `
		INSERT INTO accounts (
			id, name, email, passwordhash, role, isactive, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.IsActive,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "Email already in use")
		}
		return fmt.Errorf("postgres_account_store_create_failed: %w", err)
	}

	return nil
}

/*
UpdatePassword replaces only the password hash for a specific account.

Parameters:
  - context: context.Context
  - accountID: string
  - newHash: string

Returns:
  - error: Execution errors
*/
func (store *PostgresAccountStore) UpdatePassword(context context.Context, accountID, newHash string) error {
	const query = `
		UPDATE accounts
		SET passwordhash = $2, updatedat = $3
		WHERE id = $1`

	_, err := store.pool.Exec(context, query, accountID, newHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_store_update_password_failed: %w", err)
	}

	return nil
}
