// Copyright (c) 2026 Folio. All rights reserved.

package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/foliohq/folio/pkg/pagination"
	"github.com/foliohq/folio/pkg/readtime"
	"github.com/foliohq/folio/pkg/slug"
	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the post lifecycle and derived identity.
type Service struct {
	store Store
}

// NewService constructs a new [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
ListPublished returns a page of published posts for the public site.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Post: Page of posts, newest first
  - pagination.Meta: Page metadata
  - error: Database failures
*/
func (service *Service) ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Post, pagination.Meta, error) {
	if filter.Category == "all" {
		filter.Category = ""
	}

	posts, total, err := service.store.ListPublished(context, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("blog_service_list_failed: %w", err)
	}

	return posts, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
ListAll returns every post, drafts included, for the admin dashboard.

Parameters:
  - context: context.Context

Returns:
  - []*Post: All posts
  - error: Database failures
*/
func (service *Service) ListAll(context context.Context) ([]*Post, error) {
	posts, err := service.store.ListAll(context)
	if err != nil {
		return nil, fmt.Errorf("blog_service_list_all_failed: %w", err)
	}
	return posts, nil
}

/*
Read returns a published post by slug and counts the view.

Description: Unpublished posts are invisible here: an existing draft yields
the same NotFound as a slug that never existed.

Parameters:
  - context: context.Context
  - postSlug: string

Returns:
  - *Post: Hydrated entity with the view already counted
  - error: NotFound or database failures
*/
func (service *Service) Read(context context.Context, postSlug string) (*Post, error) {
	post, err := service.store.ViewPublishedBySlug(context, postSlug)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CreateInput holds the author-supplied fields of a new post. Slug and
// reading time are derived, never accepted.
type CreateInput struct {
	Title           string
	Excerpt         string
	Content         string
	FeaturedImage   string
	Category        string
	Tags            []string
	IsPublished     bool
	Featured        bool
	MetaDescription string
}

/*
Create persists a new post with freshly derived identity.

Parameters:
  - context: context.Context
  - authorID: string (The authenticated author)
  - input: CreateInput

Returns:
  - *Post: Created entity, slug and reading time populated
  - error: Validation, Conflict, or storage failures
*/
func (service *Service) Create(context context.Context, authorID string, input CreateInput) (*Post, error) {

	post := &Post{
		ID:              uuidv7.Must(),
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		FeaturedImage:   input.FeaturedImage,
		Category:        input.Category,
		Tags:            input.Tags,
		AuthorID:        authorID,
		IsPublished:     input.IsPublished,
		Featured:        input.Featured,
		MetaDescription: input.MetaDescription,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := service.deriveSlug(context, post); err != nil {
		return nil, err
	}
	post.ReadingTime = readtime.Estimate(post.Content)

	if err := service.store.Create(context, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdateInput defines the mutable subset of a post. Nil fields are left
// untouched.
type UpdateInput struct {
	Title           *string
	Excerpt         *string
	Content         *string
	FeaturedImage   *string
	Category        *string
	Tags            []string
	IsPublished     *bool
	Featured        *bool
	MetaDescription *string
}

/*
Update applies a partial change to a post, re-deriving identity as needed.

Description: The slug is recomputed only when the title actually changes,
so permalinks stay stable across content edits. Reading time follows the
content wherever it goes.

Parameters:
  - context: context.Context
  - postID: string
  - input: UpdateInput

Returns:
  - *Post: Updated entity
  - error: NotFound, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, postID string, input UpdateInput) (*Post, error) {

	post, err := service.store.FindByID(context, postID)
	if err != nil {
		return nil, err
	}

	titleChanged := false
	if input.Title != nil && *input.Title != post.Title {
		post.Title = *input.Title
		titleChanged = true
	}

	contentChanged := false
	if input.Content != nil && *input.Content != post.Content {
		post.Content = *input.Content
		contentChanged = true
	}

	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = *input.FeaturedImage
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}
	if input.Featured != nil {
		post.Featured = *input.Featured
	}
	if input.MetaDescription != nil {
		post.MetaDescription = *input.MetaDescription
	}

	// Permalink stability: only a title change (or a missing slug) triggers
	// re-derivation.
	if titleChanged || post.Slug == "" {
		if err := service.deriveSlug(context, post); err != nil {
			return nil, err
		}
	}
	if contentChanged {
		post.ReadingTime = readtime.Estimate(post.Content)
	}

	if err := service.store.Update(context, post); err != nil {
		return nil, err
	}

	return post, nil
}

/*
Delete permanently removes a post.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, postID string) error {
	if _, err := service.store.FindByID(context, postID); err != nil {
		return err
	}
	if err := service.store.Delete(context, postID); err != nil {
		return fmt.Errorf("blog_service_delete_failed: %w", err)
	}
	return nil
}

/*
Like adds one public like to a post.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - int: New like count
  - error: NotFound or storage failures
*/
func (service *Service) Like(context context.Context, postID string) (int, error) {
	likes, err := service.store.IncrementLikes(context, postID)
	if err != nil {
		return 0, err
	}
	return likes, nil
}

/*
TogglePublish flips a post between draft and published.

Parameters:
  - context: context.Context
  - postID: string

Returns:
  - bool: New publish state
  - error: NotFound or storage failures
*/
func (service *Service) TogglePublish(context context.Context, postID string) (bool, error) {
	published, err := service.store.TogglePublish(context, postID)
	if err != nil {
		return false, err
	}
	return published, nil
}

// # Identity Derivation

// deriveSlug computes a unique slug from the post's title.
//
// The base slug is suffixed -1, -2, ... until it is free, checked against
// every post except this one. After MaxSlugAttempts the search gives up and
// appends a unix timestamp. The UNIQUE constraint on the slug column catches
// the remaining concurrent-writer window.
func (service *Service) deriveSlug(context context.Context, post *Post) error {
	base := slug.From(post.Title)
	candidate := base

	for counter := 1; ; counter++ {
		taken, err := service.store.SlugExists(context, candidate, post.ID)
		if err != nil {
			return fmt.Errorf("blog_service_slug_lookup_failed: %w", err)
		}
		if !taken {
			break
		}
		if counter >= MaxSlugAttempts {
			candidate = fmt.Sprintf("%s-%d", base, time.Now().Unix())
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	post.Slug = candidate
	return nil
}
