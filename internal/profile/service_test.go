// Copyright (c) 2026 Folio. All rights reserved.

package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/profile"
)

// memoryStore is an in-memory Store used to drive the service.
type memoryStore struct {
	entry      *profile.Profile
	ownerName  string
	ownerEmail string
}

func (store *memoryStore) Find(context.Context) (*profile.Profile, error) {
	if store.entry == nil {
		return nil, apperr.NotFound("Profile")
	}
	copied := *store.entry
	return &copied, nil
}

func (store *memoryStore) Upsert(_ context.Context, entry *profile.Profile) error {
	copied := *entry
	store.entry = &copied
	return nil
}

func (store *memoryStore) OwnerContact(context.Context) (string, string, error) {
	if store.ownerName == "" {
		return "", "", apperr.NotFound("Admin")
	}
	return store.ownerName, store.ownerEmail, nil
}

/*
TestGet_SeedsFromOwner verifies the first read creates and persists a
profile from the oldest admin account.
*/
func TestGet_SeedsFromOwner(t *testing.T) {
	store := &memoryStore{ownerName: "Ada", ownerEmail: "ada@example.com"}
	service := profile.NewService(store)

	entry, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ada", entry.Name)
	assert.Equal(t, "ada@example.com", entry.ContactEmail)
	assert.Equal(t, profile.DefaultTitle, entry.Title)
	require.NotNil(t, store.entry)

	// A second read returns the persisted row, not a fresh seed.
	store.ownerName = "Someone else"
	again, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name)
}

/*
TestGet_NoOwner verifies the read fails when no admin account exists to
seed from.
*/
func TestGet_NoOwner(t *testing.T) {
	service := profile.NewService(&memoryStore{})

	_, err := service.Get(context.Background())
	require.Error(t, err)
}

/*
TestUpdate_PartialMerge verifies nil fields survive an edit and social
links merge per-field.
*/
func TestUpdate_PartialMerge(t *testing.T) {
	store := &memoryStore{ownerName: "Ada", ownerEmail: "ada@example.com"}
	service := profile.NewService(store)

	github := "https://github.com/ada"
	_, err := service.Update(context.Background(), profile.UpdateInput{
		SocialLinks: &profile.SocialLinksInput{Github: &github},
	})
	require.NoError(t, err)

	bio := "I build things for the web."
	website := "https://ada.dev"
	entry, err := service.Update(context.Background(), profile.UpdateInput{
		Bio:         &bio,
		SocialLinks: &profile.SocialLinksInput{Website: &website},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", entry.Name)
	assert.Equal(t, bio, entry.Bio)
	assert.Equal(t, github, entry.SocialLinks.Github)
	assert.Equal(t, website, entry.SocialLinks.Website)
	assert.Equal(t, profile.DefaultTitle, entry.Title)
}

/*
TestUpdate_SeedsWhenMissing verifies an edit against a fresh deployment
creates the row first instead of failing.
*/
func TestUpdate_SeedsWhenMissing(t *testing.T) {
	store := &memoryStore{ownerName: "Ada", ownerEmail: "ada@example.com"}
	service := profile.NewService(store)

	name := "Ada Lovelace"
	entry, err := service.Update(context.Background(), profile.UpdateInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", entry.Name)
	assert.Equal(t, "ada@example.com", entry.ContactEmail)
}
