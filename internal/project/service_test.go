// Copyright (c) 2026 Folio. All rights reserved.

package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/project"
	"github.com/foliohq/folio/pkg/pagination"
)

// memoryStore is an in-memory Store used to drive the service.
type memoryStore struct {
	projects map[string]*project.Project
}

func newMemoryStore() *memoryStore {
	return &memoryStore{projects: make(map[string]*project.Project)}
}

func (store *memoryStore) ListPublished(_ context.Context, filter project.ListFilter, _ pagination.Params) ([]*project.Project, int, error) {
	matched := make([]*project.Project, 0)
	for _, entry := range store.projects {
		if !entry.IsPublished {
			continue
		}
		if filter.Category != "" && entry.Category != filter.Category {
			continue
		}
		copied := *entry
		matched = append(matched, &copied)
	}
	return matched, len(matched), nil
}

func (store *memoryStore) ListAll(context.Context) ([]*project.Project, error) {
	listed := make([]*project.Project, 0, len(store.projects))
	for _, entry := range store.projects {
		copied := *entry
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (store *memoryStore) ViewByID(_ context.Context, id string) (*project.Project, error) {
	if entry, ok := store.projects[id]; ok {
		entry.Views++
		copied := *entry
		return &copied, nil
	}
	return nil, apperr.NotFound("Project")
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*project.Project, error) {
	if entry, ok := store.projects[id]; ok {
		copied := *entry
		return &copied, nil
	}
	return nil, apperr.NotFound("Project")
}

func (store *memoryStore) Create(_ context.Context, entry *project.Project) error {
	copied := *entry
	store.projects[entry.ID] = &copied
	return nil
}

func (store *memoryStore) Update(_ context.Context, entry *project.Project) error {
	copied := *entry
	store.projects[entry.ID] = &copied
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	delete(store.projects, id)
	return nil
}

func (store *memoryStore) IncrementLikes(_ context.Context, id string) (int, error) {
	if entry, ok := store.projects[id]; ok {
		entry.Likes++
		return entry.Likes, nil
	}
	return 0, apperr.NotFound("Project")
}

func (store *memoryStore) ToggleFeatured(_ context.Context, id string) (bool, error) {
	if entry, ok := store.projects[id]; ok {
		entry.Featured = !entry.Featured
		return entry.Featured, nil
	}
	return false, apperr.NotFound("Project")
}

func baseProject() project.CreateInput {
	return project.CreateInput{
		Title:           "Folio API",
		Description:     "A portfolio backend",
		FullDescription: "A longer story about the portfolio backend.",
		Technologies:    []string{"Go", "PostgreSQL"},
		Category:        "Backend",
	}
}

/*
TestCreate_Defaults verifies the status and published defaults.
*/
func TestCreate_Defaults(t *testing.T) {
	service := project.NewService(newMemoryStore())

	entry, err := service.Create(context.Background(), "creator-1", baseProject())
	require.NoError(t, err)

	assert.Equal(t, project.DefaultStatus, entry.Status)
	assert.True(t, entry.IsPublished)
	assert.Equal(t, "creator-1", entry.CreatedBy)
	assert.NotNil(t, entry.Images)

	// Explicit values survive.
	input := baseProject()
	input.Status = "Planned"
	hidden := false
	input.IsPublished = &hidden

	entry, err = service.Create(context.Background(), "creator-1", input)
	require.NoError(t, err)
	assert.Equal(t, "Planned", entry.Status)
	assert.False(t, entry.IsPublished)
}

/*
TestListPublished_HidesDrafts verifies unpublished projects stay off the
public listing but appear on the admin listing.
*/
func TestListPublished_HidesDrafts(t *testing.T) {
	service := project.NewService(newMemoryStore())

	_, err := service.Create(context.Background(), "creator-1", baseProject())
	require.NoError(t, err)

	draft := baseProject()
	hidden := false
	draft.IsPublished = &hidden
	_, err = service.Create(context.Background(), "creator-1", draft)
	require.NoError(t, err)

	public, meta, err := service.ListPublished(context.Background(), project.ListFilter{}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, 1, meta.Total)

	all, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

/*
TestUpdate_Partial verifies nil fields leave the entity untouched.
*/
func TestUpdate_Partial(t *testing.T) {
	service := project.NewService(newMemoryStore())

	entry, err := service.Create(context.Background(), "creator-1", baseProject())
	require.NoError(t, err)

	status := "In Progress"
	updated, err := service.Update(context.Background(), entry.ID, project.UpdateInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "In Progress", updated.Status)
	assert.Equal(t, entry.Title, updated.Title)
	assert.Equal(t, entry.Technologies, updated.Technologies)

	_, err = service.Update(context.Background(), "missing", project.UpdateInput{Status: &status})
	assert.Error(t, err)
}

/*
TestView_CountsViews verifies each public view increments the counter.
*/
func TestView_CountsViews(t *testing.T) {
	service := project.NewService(newMemoryStore())

	entry, err := service.Create(context.Background(), "creator-1", baseProject())
	require.NoError(t, err)

	viewed, err := service.View(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.Views)

	viewed, err = service.View(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.Views)
}

/*
TestToggleFeatured flips the flag back and forth.
*/
func TestToggleFeatured(t *testing.T) {
	service := project.NewService(newMemoryStore())

	entry, err := service.Create(context.Background(), "creator-1", baseProject())
	require.NoError(t, err)

	featured, err := service.ToggleFeatured(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.True(t, featured)

	featured, err = service.ToggleFeatured(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.False(t, featured)
}
