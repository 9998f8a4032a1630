// Copyright (c) 2026 Folio. All rights reserved.

package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
)

const resumeColumns = "id, title, fileurl, filetype, filesize, isactive, createdat, updatedat"

// # Resume Repository

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanResume(row pgx.Row) (*Resume, error) {
	entry := &Resume{}
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.FileURL,
		&entry.FileType,
		&entry.FileSize,
		&entry.IsActive,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (store *PostgresStore) queryList(context context.Context, query string) ([]*Resume, error) {
	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_resume_store_list_failed: %w", err)
	}
	defer rows.Close()

	entries := make([]*Resume, 0)
	for rows.Next() {
		entry, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_resume_store_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_resume_store_rows_failed: %w", err)
	}

	return entries, nil
}

// List retrieves every document, newest first.
func (store *PostgresStore) List(context context.Context) ([]*Resume, error) {
	return store.queryList(context, "SELECT "+resumeColumns+" FROM resumes ORDER BY createdat DESC")
}

// ListActive retrieves publicly visible documents, newest first.
func (store *PostgresStore) ListActive(context context.Context) ([]*Resume, error) {
	return store.queryList(context, "SELECT "+resumeColumns+" FROM resumes WHERE isactive = TRUE ORDER BY createdat DESC")
}

// FindByID retrieves a document by its unique ID.
func (store *PostgresStore) FindByID(context context.Context, id string) (*Resume, error) {
	query := "SELECT " + resumeColumns + " FROM resumes WHERE id = $1"

	entry, err := scanResume(store.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return entry, nil
}

// Create persists a new document.
func (store *PostgresStore) Create(context context.Context, entry *Resume) error {
	const query = `
		INSERT INTO resumes (id, title, fileurl, filetype, filesize, isactive, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		entry.ID,
		entry.Title,
		entry.FileURL,
		entry.FileType,
		entry.FileSize,
		entry.IsActive,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_resume_store_create_failed: %w", err)
	}

	return nil
}

// Update persists changes to an existing document.
func (store *PostgresStore) Update(context context.Context, entry *Resume) error {
	const query = `
		UPDATE resumes
		SET title = $2, fileurl = $3, filetype = $4, filesize = $5,
		    isactive = $6, updatedat = $7
		WHERE id = $1`

	entry.UpdatedAt = time.Now()

	tag, err := store.pool.Exec(context, query,
		entry.ID,
		entry.Title,
		entry.FileURL,
		entry.FileType,
		entry.FileSize,
		entry.IsActive,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_resume_store_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}

	return nil
}

// Delete permanently removes a document.
func (store *PostgresStore) Delete(context context.Context, id string) error {
	tag, err := store.pool.Exec(context, "DELETE FROM resumes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("postgres_resume_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}
	return nil
}

// ToggleActive flips the active flag and returns the new state.
func (store *PostgresStore) ToggleActive(context context.Context, id string) (bool, error) {
	const query = `
		UPDATE resumes
		SET isactive = NOT isactive, updatedat = $2
		WHERE id = $1
		RETURNING isactive`

	var active bool
	if err := store.pool.QueryRow(context, query, id, time.Now()).Scan(&active); err != nil {
		return false, dberr.Wrap(err, "")
	}

	return active, nil
}
