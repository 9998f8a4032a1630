// Copyright (c) 2026 Folio. All rights reserved.

package users

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/auth"
	"github.com/foliohq/folio/internal/platform/dberr"
)

// # Account Administration Repository

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

/*
List retrieves all accounts ordered by creation time, newest first.

Parameters:
  - context: context.Context

Returns:
  - []*auth.Account: Hydrated entities
  - error: Execution errors
*/
func (store *PostgresStore) List(context context.Context) ([]*auth.Account, error) {
	const query = `
		SELECT id, name, email, role, isactive, createdat, updatedat
		FROM accounts
		ORDER BY createdat DESC`

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_users_store_list_failed: %w", err)
	}
	defer rows.Close()

	accounts := make([]*auth.Account, 0)
	for rows.Next() {
		account := &auth.Account{}
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Email,
			&account.Role,
			&account.IsActive,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_users_store_scan_failed: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_users_store_rows_failed: %w", err)
	}

	return accounts, nil
}

/*
FindByID retrieves an account by its unique ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.Account: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresStore) FindByID(context context.Context, id string) (*auth.Account, error) {
	const query = `
		SELECT id, name, email, role, isactive, createdat, updatedat
		FROM accounts
		WHERE id = $1`

	account := &auth.Account{}
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
Create persists a new administrator account.

Parameters:
  - context: context.Context
  - account: *auth.Credentials

Returns:
  - error: apperr.Conflict on duplicate email, or persistence failures
*/
func (store *PostgresStore) Create(context context.Context, account *auth.Credentials) error {
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
		return fmt.Errorf("postgres_users_store_create_failed: %w", err)
	}

	return nil
}

/*
Update persists the account's role and active flag.

Parameters:
  - context: context.Context
  - account: *auth.Account

Returns:
  - error: Execution errors
*/
func (store *PostgresStore) Update(context context.Context, account *auth.Account) error {
	const query = `
		UPDATE accounts
		SET role = $2, isactive = $3, updatedat = $4
		WHERE id = $1`

	account.UpdatedAt = time.Now()
	_, err := store.pool.Exec(context, query,
		account.ID,
		account.Role,
		account.IsActive,
		account.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_users_store_update_failed: %w", err)
	}

	return nil
}

/*
Delete permanently removes an account row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound if no row matched, or execution errors
*/
func (store *PostgresStore) Delete(context context.Context, id string) error {
	const query = "DELETE FROM accounts WHERE id = $1"

	tag, err := store.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_users_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}

	return nil
}
