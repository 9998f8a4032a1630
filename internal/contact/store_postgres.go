// Copyright (c) 2026 Folio. All rights reserved.

package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
)

const messageColumns = `
	id, name, email, subject, message, phone, company, status, isspam,
	ipaddress, createdat, updatedat`

// # Message Repository

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanMessage(row pgx.Row) (*Message, error) {
	message := &Message{}
	err := row.Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Subject,
		&message.Message,
		&message.Phone,
		&message.Company,
		&message.Status,
		&message.IsSpam,
		&message.IPAddress,
		&message.CreatedAt,
		&message.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}

/*
Create persists a new submission.

Parameters:
  - context: context.Context
  - message: *Message

Returns:
  - error: Persistence failures
*/
func (store *PostgresStore) Create(context context.Context, message *Message) error {
	const query = `
		INSERT INTO messages (
			id, name, email, subject, message, phone, company, status,
			isspam, ipaddress, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	message.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.Phone,
		message.Company,
		message.Status,
		message.IsSpam,
		message.IPAddress,
		message.CreatedAt,
		message.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_contact_store_create_failed: %w", err)
	}

	return nil
}

/*
List retrieves messages newest first, optionally filtered by status and
spam flag.

Parameters:
  - context: context.Context
  - filter: ListFilter

Returns:
  - []*Message: Matching messages
  - error: Execution errors
*/
func (store *PostgresStore) List(context context.Context, filter ListFilter) ([]*Message, error) {
	query := "SELECT " + messageColumns + ` FROM messages
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = FALSE OR isspam = FALSE)
		ORDER BY createdat DESC`

	rows, err := store.pool.Query(context, query, filter.Status, filter.HideSpam)
	if err != nil {
		return nil, fmt.Errorf("postgres_contact_store_list_failed: %w", err)
	}
	defer rows.Close()

	messages := make([]*Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_contact_store_scan_failed: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_contact_store_rows_failed: %w", err)
	}

	return messages, nil
}

// FindByID retrieves a message by its unique ID.
func (store *PostgresStore) FindByID(context context.Context, id string) (*Message, error) {
	query := "SELECT " + messageColumns + " FROM messages WHERE id = $1"

	message, err := scanMessage(store.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return message, nil
}

// UpdateStatus sets the message's triage state.
func (store *PostgresStore) UpdateStatus(context context.Context, id, status string) error {
	const query = "UPDATE messages SET status = $2, updatedat = $3 WHERE id = $1"

	tag, err := store.pool.Exec(context, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_contact_store_update_status_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}

	return nil
}

// ToggleSpam flips the spam flag.
func (store *PostgresStore) ToggleSpam(context context.Context, id string) (bool, error) {
	const query = `
		UPDATE messages
		SET isspam = NOT isspam, updatedat = $2
		WHERE id = $1
		RETURNING isspam`

	var spam bool
	if err := store.pool.QueryRow(context, query, id, time.Now()).Scan(&spam); err != nil {
		return false, dberr.Wrap(err, "")
	}

	return spam, nil
}

// Delete permanently removes a message row.
func (store *PostgresStore) Delete(context context.Context, id string) error {
	tag, err := store.pool.Exec(context, "DELETE FROM messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("postgres_contact_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}
	return nil
}
