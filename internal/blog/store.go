// Copyright (c) 2026 Folio. All rights reserved.

package blog

import (
	"context"

	"github.com/foliohq/folio/pkg/pagination"
)

// ListFilter narrows the public post listing.
type ListFilter struct {
	// Category filters to a single category. Empty (or "all") means no filter.
	Category string

	// Search matches title, excerpt, or an exact tag, case-insensitively.
	Search string
}

// # Post Data Access

// Store defines the persistence contract for blog posts.
type Store interface {

	/*
		ListPublished returns published posts newest first, filtered and paged.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - params: pagination.Params

		Returns:
		  - []*Post: Page of posts
		  - int: Total matching count (for pagination metadata)
		  - error: Database retrieval failures
	*/
	ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, int, error)

	/*
		ListAll returns every post regardless of publish state, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Post: All posts
		  - error: Database retrieval failures
	*/
	ListAll(context context.Context) ([]*Post, error)

	/*
		FindByID returns the post with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		ViewPublishedBySlug returns the published post with the given slug and
		atomically increments its view counter.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Post: Hydrated entity with the incremented view count
		  - error: NotFound (unknown slug or unpublished post) or database errors
	*/
	ViewPublishedBySlug(context context.Context, slug string) (*Post, error)

	/*
		SlugExists reports whether any post other than excludeID holds the slug.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - excludeID: string (own post ID to ignore; empty for new posts)

		Returns:
		  - bool: True if the slug is taken
		  - error: Database retrieval failures
	*/
	SlugExists(context context.Context, slug, excludeID string) (bool, error)

	/*
		Create persists a brand-new post.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Conflict on slug collision, or persistence failures
	*/
	Create(context context.Context, post *Post) error

	/*
		Update persists changes to an existing post.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Conflict on slug collision, or persistence failures
	*/
	Update(context context.Context, post *Post) error

	/*
		Delete permanently removes the post row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error

	/*
		IncrementLikes adds one to the post's like counter.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - int: New like count
		  - error: NotFound or persistence failures
	*/
	IncrementLikes(context context.Context, id string) (int, error)

	/*
		TogglePublish flips the post's published flag.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: New publish state
		  - error: NotFound or persistence failures
	*/
	TogglePublish(context context.Context, id string) (bool, error)
}
