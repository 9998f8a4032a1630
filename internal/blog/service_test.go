// Copyright (c) 2026 Folio. All rights reserved.

package blog_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/blog"
	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/pkg/pagination"
)

// memoryStore is an in-memory Store used to drive the service.
type memoryStore struct {
	posts map[string]*blog.Post
}

func newMemoryStore() *memoryStore {
	return &memoryStore{posts: make(map[string]*blog.Post)}
}

func (store *memoryStore) ListPublished(_ context.Context, filter blog.ListFilter, params pagination.Params) ([]*blog.Post, int, error) {
	matched := make([]*blog.Post, 0)
	for _, post := range store.posts {
		if !post.IsPublished {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(post.Title), strings.ToLower(filter.Search)) {
			continue
		}
		copied := *post
		matched = append(matched, &copied)
	}
	return matched, len(matched), nil
}

func (store *memoryStore) ListAll(context.Context) ([]*blog.Post, error) {
	listed := make([]*blog.Post, 0, len(store.posts))
	for _, post := range store.posts {
		copied := *post
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*blog.Post, error) {
	if post, ok := store.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, apperr.NotFound("Blog")
}

func (store *memoryStore) ViewPublishedBySlug(_ context.Context, slug string) (*blog.Post, error) {
	for _, post := range store.posts {
		if post.Slug == slug && post.IsPublished {
			post.Views++
			copied := *post
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Blog")
}

func (store *memoryStore) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, post := range store.posts {
		if post.Slug == slug && post.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (store *memoryStore) Create(_ context.Context, post *blog.Post) error {
	copied := *post
	store.posts[post.ID] = &copied
	return nil
}

func (store *memoryStore) Update(_ context.Context, post *blog.Post) error {
	copied := *post
	store.posts[post.ID] = &copied
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	delete(store.posts, id)
	return nil
}

func (store *memoryStore) IncrementLikes(_ context.Context, id string) (int, error) {
	if post, ok := store.posts[id]; ok {
		post.Likes++
		return post.Likes, nil
	}
	return 0, apperr.NotFound("Blog")
}

func (store *memoryStore) TogglePublish(_ context.Context, id string) (bool, error) {
	if post, ok := store.posts[id]; ok {
		post.IsPublished = !post.IsPublished
		return post.IsPublished, nil
	}
	return false, apperr.NotFound("Blog")
}

func basePost() blog.CreateInput {
	return blog.CreateInput{
		Title:       "Hello World",
		Excerpt:     "A first post",
		Content:     "some words of content here",
		Category:    "general",
		IsPublished: true,
	}
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "w" + strconv.Itoa(i)
	}
	return strings.Join(parts, " ")
}

/*
TestCreate_DerivedIdentity verifies slug and reading time are computed at
creation and never taken from the client.
*/
func TestCreate_DerivedIdentity(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	input := basePost()
	input.Content = words(401)

	post, err := service.Create(context.Background(), "author-1", input)
	require.NoError(t, err)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, 3, post.ReadingTime)
	assert.Equal(t, "author-1", post.AuthorID)
}

/*
TestCreate_SlugSuffixing verifies colliding titles receive -1, -2, ...
suffixes in order.
*/
func TestCreate_SlugSuffixing(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	first, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)
	third, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-1", second.Slug)
	assert.Equal(t, "hello-world-2", third.Slug)
}

/*
TestCreate_FallbackSlug verifies a title with no usable characters gets the
fallback slug, which still participates in suffixing.
*/
func TestCreate_FallbackSlug(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	input := basePost()
	input.Title = "!!! ???"

	first, err := service.Create(context.Background(), "author-1", input)
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "author-1", input)
	require.NoError(t, err)

	assert.Equal(t, "post", first.Slug)
	assert.Equal(t, "post-1", second.Slug)
}

/*
TestCreate_SuffixExhaustion verifies the numeric search gives up after the
attempt cap and falls back to a timestamp suffix.
*/
func TestCreate_SuffixExhaustion(t *testing.T) {
	store := newMemoryStore()
	service := blog.NewService(store)

	// Occupy the base slug and every numeric suffix up to the cap.
	_, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)
	for i := 1; i < blog.MaxSlugAttempts; i++ {
		store.posts["taken-"+strconv.Itoa(i)] = &blog.Post{
			ID:   "taken-" + strconv.Itoa(i),
			Slug: "hello-world-" + strconv.Itoa(i),
		}
	}

	post, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(post.Slug, "hello-world-"))
	suffix := strings.TrimPrefix(post.Slug, "hello-world-")
	n, convErr := strconv.ParseInt(suffix, 10, 64)
	require.NoError(t, convErr)
	assert.Greater(t, n, int64(blog.MaxSlugAttempts), "expected a timestamp, not a small counter")
}

/*
TestUpdate_PermalinkStability verifies content edits keep the slug while a
title change re-derives it, and reading time follows the content.
*/
func TestUpdate_PermalinkStability(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	post, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)
	originalSlug := post.Slug

	// Content-only edit: slug untouched, reading time recomputed.
	longer := words(401)
	updated, err := service.Update(context.Background(), post.ID, blog.UpdateInput{Content: &longer})
	require.NoError(t, err)
	assert.Equal(t, originalSlug, updated.Slug)
	assert.Equal(t, 3, updated.ReadingTime)

	// Re-submitting the same title is not a change.
	sameTitle := post.Title
	updated, err = service.Update(context.Background(), post.ID, blog.UpdateInput{Title: &sameTitle})
	require.NoError(t, err)
	assert.Equal(t, originalSlug, updated.Slug)

	// A real title change re-derives the slug.
	newTitle := "Goodbye World"
	updated, err = service.Update(context.Background(), post.ID, blog.UpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "goodbye-world", updated.Slug)
}

/*
TestUpdate_OwnSlugExcluded verifies a post updating its unchanged title does
not collide with itself.
*/
func TestUpdate_OwnSlugExcluded(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	post, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)

	// Change the title away and back: the post reclaims its original slug
	// rather than getting a -1 suffix against itself.
	away := "Something Else"
	_, err = service.Update(context.Background(), post.ID, blog.UpdateInput{Title: &away})
	require.NoError(t, err)

	back := "Hello World"
	updated, err := service.Update(context.Background(), post.ID, blog.UpdateInput{Title: &back})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", updated.Slug)
}

/*
TestRead_DraftsInvisible verifies drafts are indistinguishable from missing
posts on the public read path, and that views count on success.
*/
func TestRead_DraftsInvisible(t *testing.T) {
	store := newMemoryStore()
	service := blog.NewService(store)

	draft := basePost()
	draft.IsPublished = false
	created, err := service.Create(context.Background(), "author-1", draft)
	require.NoError(t, err)

	_, err = service.Read(context.Background(), created.Slug)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	// Publish and read twice: each read counts a view.
	_, err = service.TogglePublish(context.Background(), created.ID)
	require.NoError(t, err)

	read, err := service.Read(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, read.Views)

	read, err = service.Read(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, read.Views)
}

/*
TestListPublished_AllCategory verifies the "all" pseudo-category clears the
filter.
*/
func TestListPublished_AllCategory(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	_, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)

	other := basePost()
	other.Title = "Second"
	other.Category = "golang"
	_, err = service.Create(context.Background(), "author-1", other)
	require.NoError(t, err)

	posts, meta, err := service.ListPublished(context.Background(), blog.ListFilter{Category: "all"}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 2, meta.Total)

	posts, _, err = service.ListPublished(context.Background(), blog.ListFilter{Category: "golang"}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

/*
TestLike verifies the public like counter.
*/
func TestLike(t *testing.T) {
	service := blog.NewService(newMemoryStore())

	post, err := service.Create(context.Background(), "author-1", basePost())
	require.NoError(t, err)

	likes, err := service.Like(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = service.Like(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	_, err = service.Like(context.Background(), "missing")
	assert.Error(t, err)
}
