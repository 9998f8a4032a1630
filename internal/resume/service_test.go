// Copyright (c) 2026 Folio. All rights reserved.

package resume_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/resume"
)

// memoryStore is an in-memory Store used to drive the service.
type memoryStore struct {
	entries map[string]*resume.Resume
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]*resume.Resume)}
}

func (store *memoryStore) List(context.Context) ([]*resume.Resume, error) {
	listed := make([]*resume.Resume, 0, len(store.entries))
	for _, entry := range store.entries {
		copied := *entry
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (store *memoryStore) ListActive(context.Context) ([]*resume.Resume, error) {
	listed := make([]*resume.Resume, 0)
	for _, entry := range store.entries {
		if !entry.IsActive {
			continue
		}
		copied := *entry
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*resume.Resume, error) {
	if entry, ok := store.entries[id]; ok {
		copied := *entry
		return &copied, nil
	}
	return nil, apperr.NotFound("Resume")
}

func (store *memoryStore) Create(_ context.Context, entry *resume.Resume) error {
	copied := *entry
	store.entries[entry.ID] = &copied
	return nil
}

func (store *memoryStore) Update(_ context.Context, entry *resume.Resume) error {
	if _, ok := store.entries[entry.ID]; !ok {
		return apperr.NotFound("Resume")
	}
	copied := *entry
	store.entries[entry.ID] = &copied
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := store.entries[id]; !ok {
		return apperr.NotFound("Resume")
	}
	delete(store.entries, id)
	return nil
}

func (store *memoryStore) ToggleActive(_ context.Context, id string) (bool, error) {
	entry, ok := store.entries[id]
	if !ok {
		return false, apperr.NotFound("Resume")
	}
	entry.IsActive = !entry.IsActive
	return entry.IsActive, nil
}

/*
TestCreate_Defaults verifies new documents arrive active and that an
omitted file type falls back to pdf.
*/
func TestCreate_Defaults(t *testing.T) {
	service := resume.NewService(newMemoryStore())

	entry, err := service.Create(context.Background(), resume.CreateInput{
		Title:    "Resume (EN)",
		FileURL:  "https://cdn.example.com/resume-en.pdf",
		FileSize: 120_000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.True(t, entry.IsActive)
	assert.Equal(t, resume.FileTypePDF, entry.FileType)

	entry, err = service.Create(context.Background(), resume.CreateInput{
		Title:    "Resume (DOCX)",
		FileURL:  "https://cdn.example.com/resume.docx",
		FileType: resume.FileTypeDocx,
	})
	require.NoError(t, err)
	assert.Equal(t, resume.FileTypeDocx, entry.FileType)
}

/*
TestListActive_HidesInactive verifies only active documents are returned
to public visitors, while the admin listing sees everything.
*/
func TestListActive_HidesInactive(t *testing.T) {
	store := newMemoryStore()
	service := resume.NewService(store)

	visible, err := service.Create(context.Background(), resume.CreateInput{
		Title:   "Current",
		FileURL: "https://cdn.example.com/current.pdf",
	})
	require.NoError(t, err)

	hidden, err := service.Create(context.Background(), resume.CreateInput{
		Title:   "Outdated",
		FileURL: "https://cdn.example.com/outdated.pdf",
	})
	require.NoError(t, err)

	active, err := service.ToggleActive(context.Background(), hidden.ID)
	require.NoError(t, err)
	assert.False(t, active)

	public, err := service.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	all, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

/*
TestUpdate_Partial verifies nil fields are untouched and present fields
are applied.
*/
func TestUpdate_Partial(t *testing.T) {
	service := resume.NewService(newMemoryStore())

	created, err := service.Create(context.Background(), resume.CreateInput{
		Title:    "Resume",
		FileURL:  "https://cdn.example.com/v1.pdf",
		FileSize: 90_000,
	})
	require.NoError(t, err)

	newURL := "https://cdn.example.com/v2.pdf"
	inactive := false
	updated, err := service.Update(context.Background(), created.ID, resume.UpdateInput{
		FileURL:  &newURL,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Resume", updated.Title)
	assert.Equal(t, newURL, updated.FileURL)
	assert.Equal(t, int64(90_000), updated.FileSize)
	assert.False(t, updated.IsActive)

	_, err = service.Update(context.Background(), "missing", resume.UpdateInput{})
	require.Error(t, err)
}

/*
TestGet_ResolvesInactive verifies a document stays addressable for
download even after deactivation.
*/
func TestGet_ResolvesInactive(t *testing.T) {
	service := resume.NewService(newMemoryStore())

	created, err := service.Create(context.Background(), resume.CreateInput{
		Title:   "Archived copy",
		FileURL: "https://cdn.example.com/old.pdf",
	})
	require.NoError(t, err)

	_, err = service.ToggleActive(context.Background(), created.ID)
	require.NoError(t, err)

	entry, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.FileURL, entry.FileURL)
}
