// Copyright (c) 2026 Folio. All rights reserved.

package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
	"github.com/foliohq/folio/pkg/pagination"
)

// slugConflictMessage is the client-facing text for the rare race in which
// two writers derive the same slug before either commits.
const slugConflictMessage = "A post with this slug already exists, please retry"

// postColumns is the shared projection, joined with the author's name.
const postColumns = `
	p.id, p.title, p.slug, p.excerpt, p.content, p.featuredimage, p.category,
	p.tags, p.authorid, COALESCE(a.name, ''), p.readingtime, p.views, p.likes,
	p.ispublished, p.featured, p.metadescription, p.createdat, p.updatedat`

// # Post Repository

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// scanPost hydrates a single post from the shared projection.
func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		&post.Category,
		&post.Tags,
		&post.AuthorID,
		&post.AuthorName,
		&post.ReadingTime,
		&post.Views,
		&post.Likes,
		&post.IsPublished,
		&post.Featured,
		&post.MetaDescription,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

/*
ListPublished retrieves a page of published posts, newest first.

Description: Category and search filters are applied in SQL. Search matches
title, excerpt, or an exact tag, case-insensitively.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Post: Page of posts
  - int: Total matching count
  - error: Execution errors
*/
func (store *PostgresStore) ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, int, error) {
	const where = `
		WHERE p.ispublished = TRUE
		  AND ($1 = '' OR p.category = $1)
		  AND ($2 = ''
		       OR p.title ILIKE '%' || $2 || '%'
		       OR p.excerpt ILIKE '%' || $2 || '%'
		       OR EXISTS (SELECT 1 FROM unnest(p.tags) tag WHERE lower(tag) = lower($2)))`

	countQuery := "SELECT COUNT(*) FROM blog_posts p " + where

	var total int
	if err := store.pool.QueryRow(context, countQuery, filter.Category, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_blog_store_count_failed: %w", err)
	}

	listQuery := "SELECT " + postColumns + `
		FROM blog_posts p
		LEFT JOIN accounts a ON a.id = p.authorid ` + where + `
		ORDER BY p.createdat DESC
		LIMIT $3 OFFSET $4`

	rows, err := store.pool.Query(context, listQuery, filter.Category, filter.Search, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_blog_store_list_failed: %w", err)
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_blog_store_scan_failed: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_blog_store_rows_failed: %w", err)
	}

	return posts, total, nil
}

/*
ListAll retrieves every post regardless of publish state, newest first.

Parameters:
  - context: context.Context

Returns:
  - []*Post: All posts
  - error: Execution errors
*/
func (store *PostgresStore) ListAll(context context.Context) ([]*Post, error) {
	query := "SELECT " + postColumns + `
		FROM blog_posts p
		LEFT JOIN accounts a ON a.id = p.authorid
		ORDER BY p.createdat DESC`

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_blog_store_list_all_failed: %w", err)
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_blog_store_scan_failed: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_blog_store_rows_failed: %w", err)
	}

	return posts, nil
}

/*
FindByID retrieves a post by its unique ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Post: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresStore) FindByID(context context.Context, id string) (*Post, error) {
	query := "SELECT " + postColumns + `
		FROM blog_posts p
		LEFT JOIN accounts a ON a.id = p.authorid
		WHERE p.id = $1`

	post, err := scanPost(store.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return post, nil
}

/*
ViewPublishedBySlug resolves a published post by slug and counts the view.

Description: The view increment and the read happen in one statement, so
concurrent readers never lose a count.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Post: Entity with the incremented view count
  - error: apperr.NotFound for unknown slugs and drafts, or database errors
*/
func (store *PostgresStore) ViewPublishedBySlug(context context.Context, slug string) (*Post, error) {
	query := `
		WITH viewed AS (
			UPDATE blog_posts
			SET views = views + 1
			WHERE slug = $1 AND ispublished = TRUE
			RETURNING *
		)
		SELECT ` + postColumns + `
		FROM viewed p
		LEFT JOIN accounts a ON a.id = p.authorid`

	post, err := scanPost(store.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return post, nil
}

/*
SlugExists reports whether the slug is held by any post other than excludeID.

Parameters:
  - context: context.Context
  - slug: string
  - excludeID: string

Returns:
  - bool: True if taken
  - error: Execution errors
*/
func (store *PostgresStore) SlugExists(context context.Context, slug, excludeID string) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1 AND id != $2)"

	var exists bool
	if err := store.pool.QueryRow(context, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_blog_store_slug_exists_failed: %w", err)
	}

	return exists, nil
}

/*
Create persists a new post.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: apperr.Conflict on a slug collision, or persistence failures
*/
func (store *PostgresStore) Create(context context.Context, post *Post) error {
	const query = `
		INSERT INTO blog_posts (
			id, title, slug, excerpt, content, featuredimage, category, tags,
			authorid, readingtime, views, likes, ispublished, featured,
			metadescription, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Category,
		post.Tags,
		post.AuthorID,
		post.ReadingTime,
		post.Views,
		post.Likes,
		post.IsPublished,
		post.Featured,
		post.MetaDescription,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, slugConflictMessage)
		}
		return fmt.Errorf("postgres_blog_store_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to an existing post.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: apperr.Conflict on a slug collision, or persistence failures
*/
func (store *PostgresStore) Update(context context.Context, post *Post) error {
	const query = `
		UPDATE blog_posts
		SET title = $2, slug = $3, excerpt = $4, content = $5,
		    featuredimage = $6, category = $7, tags = $8, readingtime = $9,
		    ispublished = $10, featured = $11, metadescription = $12,
		    updatedat = $13
		WHERE id = $1`

	post.UpdatedAt = time.Now()
	_, err := store.pool.Exec(context, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Category,
		post.Tags,
		post.ReadingTime,
		post.IsPublished,
		post.Featured,
		post.MetaDescription,
		post.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, slugConflictMessage)
		}
		return fmt.Errorf("postgres_blog_store_update_failed: %w", err)
	}

	return nil
}

/*
Delete permanently removes a post row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound if no row matched, or execution errors
*/
func (store *PostgresStore) Delete(context context.Context, id string) error {
	const query = "DELETE FROM blog_posts WHERE id = $1"

	tag, err := store.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_blog_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "")
	}

	return nil
}

/*
IncrementLikes adds one to the post's like counter.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - int: New like count
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) IncrementLikes(context context.Context, id string) (int, error) {
	const query = "UPDATE blog_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes"

	var likes int
	if err := store.pool.QueryRow(context, query, id).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "")
	}

	return likes, nil
}

/*
TogglePublish flips the post's published flag.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - bool: New publish state
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) TogglePublish(context context.Context, id string) (bool, error) {
	const query = `
		UPDATE blog_posts
		SET ispublished = NOT ispublished, updatedat = $2
		WHERE id = $1
		RETURNING ispublished`

	var published bool
	if err := store.pool.QueryRow(context, query, id, time.Now()).Scan(&published); err != nil {
		return false, dberr.Wrap(err, "")
	}

	return published, nil
}
