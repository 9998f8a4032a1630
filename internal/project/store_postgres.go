// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
	"github.com/foliohq/folio/pkg/pagination"
)

// projectColumns is the shared projection for project queries.
const projectColumns = `
	id, title, description, fulldescription, image, images, technologies,
	category, liveurl, githuburl, status, featured, displayorder, startdate,
	completiondate, client, views, likes, ispublished, createdby, createdat,
	updatedat`

// # Project Repository

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanProject(row pgx.Row) (*Project, error) {
	entry := &Project{}
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&entry.FullDescription,
		&entry.Image,
		&entry.Images,
		&entry.Technologies,
		&entry.Category,
		&entry.LiveURL,
		&entry.GithubURL,
		&entry.Status,
		&entry.Featured,
		&entry.Order,
		&entry.StartDate,
		&entry.CompletionDate,
		&entry.Client,
		&entry.Views,
		&entry.Likes,
		&entry.IsPublished,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

/*
ListPublished retrieves a page of published projects ordered by display
order, then recency.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Project: Page of projects
  - int: Total matching count
  - error: Execution errors
*/
func (store *PostgresStore) ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Project, int, error) {
	const where = `
		WHERE ispublished = TRUE
		  AND ($1 = '' OR category = $1)
		  AND ($2 = ''
		       OR title ILIKE '%' || $2 || '%'
		       OR description ILIKE '%' || $2 || '%'
		       OR EXISTS (SELECT 1 FROM unnest(technologies) tech WHERE lower(tech) = lower($2)))`

	var total int
	if err := store.pool.QueryRow(context, "SELECT COUNT(*) FROM projects "+where, filter.Category, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_project_store_count_failed: %w", err)
	}

	query := "SELECT " + projectColumns + " FROM projects " + where + `
		ORDER BY displayorder ASC, createdat DESC
		LIMIT $3 OFFSET $4`

	rows, err := store.pool.Query(context, query, filter.Category, filter.Search, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_project_store_list_failed: %w", err)
	}
	defer rows.Close()

	projects := make([]*Project, 0)
	for rows.Next() {
		entry, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_project_store_scan_failed: %w", err)
		}
		projects = append(projects, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_project_store_rows_failed: %w", err)
	}

	return projects, total, nil
}

// ListAll retrieves every project regardless of publish state, newest first.
func (store *PostgresStore) ListAll(context context.Context) ([]*Project, error) {
	query := "SELECT " + projectColumns + " FROM projects ORDER BY createdat DESC"

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_project_store_list_all_failed: %w", err)
	}
	defer rows.Close()

	projects := make([]*Project, 0)
	for rows.Next() {
		entry, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_project_store_scan_failed: %w", err)
		}
		projects = append(projects, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_project_store_rows_failed: %w", err)
	}

	return projects, nil
}

// ViewByID resolves a project and counts the view in one statement.
func (store *PostgresStore) ViewByID(context context.Context, id string) (*Project, error) {
	query := `
		UPDATE projects
		SET views = views + 1
		WHERE id = $1
		RETURNING ` + projectColumns

	entry, err := scanProject(store.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return entry, nil
}

// FindByID retrieves a project by its unique ID.
func (store *PostgresStore) FindByID(context context.Context, id string) (*Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE id = $1"

	entry, err := scanProject(store.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return entry, nil
}

/*
Create persists a new project.

Parameters:
  - context: context.Context
  - project: *Project

Returns:
  - error: Persistence failures
*/
func (store *PostgresStore) Create(context context.Context, project *Project) error {
	const query = `
		INSERT INTO projects (
			id, title, description, fulldescription, image, images,
			technologies, category, liveurl, githuburl, status, featured,
			displayorder, startdate, completiondate, client, views, likes,
			ispublished, createdby, createdat, updatedat
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)`

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		project.ID,
		project.Title,
		project.Description,
		project.FullDescription,
		project.Image,
		project.Images,
		project.Technologies,
		project.Category,
		project.LiveURL,
		project.GithubURL,
		project.Status,
		project.Featured,
		project.Order,
		project.StartDate,
		project.CompletionDate,
		project.Client,
		project.Views,
		project.Likes,
		project.IsPublished,
		project.CreatedBy,
		project.CreatedAt,
		project.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_project_store_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to an existing project.

Parameters:
  - context: context.Context
  - project: *Project

Returns:
  - error: Persistence failures
*/
func (store *PostgresStore) Update(context context.Context, project *Project) error {
	const query = `
		UPDATE projects
		SET title = $2, description = $3, fulldescription = $4, image = $5,
		    images = $6, technologies = $7, category = $8, liveurl = $9,
		    githuburl = $10, status = $11, featured = $12, displayorder = $13,
		    startdate = $14, completiondate = $15, client = $16,
		    ispublished = $17, updatedat = $18
		WHERE id = $1`

	project.UpdatedAt = time.Now()
	_, err := store.pool.Exec(context, query,
		project.ID,
		project.Title,
		project.Description,
		project.FullDescription,
		project.Image,
		project.Images,
		project.Technologies,
		project.Category,
		project.LiveURL,
		project.GithubURL,
		project.Status,
		project.Featured,
		project.Order,
		project.StartDate,
		project.CompletionDate,
		project.Client,
		project.IsPublished,
		project.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_project_store_update_failed: %w", err)
	}

	return nil
}

// Delete permanently removes a project row.
func (store *PostgresStore) Delete(context context.Context, id string) error {
	tag, err := store.pool.Exec(context, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("postgres_project_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}
	return nil
}

// IncrementLikes adds one to the project's like counter.
func (store *PostgresStore) IncrementLikes(context context.Context, id string) (int, error) {
	const query = "UPDATE projects SET likes = likes + 1 WHERE id = $1 RETURNING likes"

	var likes int
	if err := store.pool.QueryRow(context, query, id).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "")
	}

	return likes, nil
}

// ToggleFeatured flips the project's featured flag.
func (store *PostgresStore) ToggleFeatured(context context.Context, id string) (bool, error) {
	const query = `
		UPDATE projects
		SET featured = NOT featured, updatedat = $2
		WHERE id = $1
		RETURNING featured`

	var featured bool
	if err := store.pool.QueryRow(context, query, id, time.Now()).Scan(&featured); err != nil {
		return false, dberr.Wrap(err, "")
	}

	return featured, nil
}
