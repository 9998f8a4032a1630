// Copyright (c) 2026 Folio. All rights reserved.

package profile

import (
	"context"
	"fmt"

	"github.com/foliohq/folio/internal/platform/apperr"
)

// # Service Layer

// Service orchestrates reads and edits of the owner profile.
type Service struct {
	store Store
}

// NewService constructs a new [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
Get returns the owner profile, seeding it on first read.

Description: When no profile row exists yet, one is created from the
oldest admin account's name and email with a default headline, then
persisted so later edits have a row to land on.

Parameters:
  - context: context.Context

Returns:
  - *Profile: The profile, freshly seeded if needed
  - error: NotFound when no admin account exists, or storage failures
*/
func (service *Service) Get(context context.Context) (*Profile, error) {

	entry, err := service.store.Find(context)
	if err == nil {
		return entry, nil
	}

	appErr := apperr.As(err)
	if appErr == nil || appErr.Code != "NOT_FOUND" {
		return nil, err
	}

	// First read: seed from the site owner's account.
	name, email, err := service.store.OwnerContact(context)
	if err != nil {
		return nil, err
	}

	entry = &Profile{
		Name:         name,
		Title:        DefaultTitle,
		ContactEmail: email,
	}

	if err := service.store.Upsert(context, entry); err != nil {
		return nil, fmt.Errorf("profile_service_seed_failed: %w", err)
	}

	return entry, nil
}

// SocialLinksInput holds partial-change fields for the social URLs.
type SocialLinksInput struct {
	Github    *string
	Linkedin  *string
	Twitter   *string
	Facebook  *string
	Instagram *string
	Website   *string
}

// UpdateInput holds the partial-change fields for the profile. Nil
// fields are left untouched.
type UpdateInput struct {
	Name         *string
	Title        *string
	Bio          *string
	ProfileImage *string
	ContactEmail *string
	Phone        *string
	Address      *string
	SocialLinks  *SocialLinksInput
}

/*
Update applies a partial change to the profile.

Description: The current profile is loaded first (seeding it if absent)
so an edit never clobbers fields the caller didn't send. Social links
merge per-field for the same reason.

Parameters:
  - context: context.Context
  - input: UpdateInput

Returns:
  - *Profile: Updated profile
  - error: Storage failures
*/
func (service *Service) Update(context context.Context, input UpdateInput) (*Profile, error) {

	entry, err := service.Get(context)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		entry.Name = *input.Name
	}
	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Bio != nil {
		entry.Bio = *input.Bio
	}
	if input.ProfileImage != nil {
		entry.ProfileImage = *input.ProfileImage
	}
	if input.ContactEmail != nil {
		entry.ContactEmail = *input.ContactEmail
	}
	if input.Phone != nil {
		entry.Phone = *input.Phone
	}
	if input.Address != nil {
		entry.Address = *input.Address
	}

	if links := input.SocialLinks; links != nil {
		if links.Github != nil {
			entry.SocialLinks.Github = *links.Github
		}
		if links.Linkedin != nil {
			entry.SocialLinks.Linkedin = *links.Linkedin
		}
		if links.Twitter != nil {
			entry.SocialLinks.Twitter = *links.Twitter
		}
		if links.Facebook != nil {
			entry.SocialLinks.Facebook = *links.Facebook
		}
		if links.Instagram != nil {
			entry.SocialLinks.Instagram = *links.Instagram
		}
		if links.Website != nil {
			entry.SocialLinks.Website = *links.Website
		}
	}

	if err := service.store.Upsert(context, entry); err != nil {
		return nil, fmt.Errorf("profile_service_update_failed: %w", err)
	}

	return entry, nil
}
