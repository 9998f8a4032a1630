// Copyright (c) 2026 Folio. All rights reserved.

package resume

import (
	"context"
	"fmt"

	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates resume document management.
type Service struct {
	store Store
}

// NewService constructs a new [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every document for the admin dashboard.
func (service *Service) List(context context.Context) ([]*Resume, error) {
	entries, err := service.store.List(context)
	if err != nil {
		return nil, fmt.Errorf("resume_service_list_failed: %w", err)
	}
	return entries, nil
}

// ListActive returns the documents visible to public visitors.
func (service *Service) ListActive(context context.Context) ([]*Resume, error) {
	entries, err := service.store.ListActive(context)
	if err != nil {
		return nil, fmt.Errorf("resume_service_list_active_failed: %w", err)
	}
	return entries, nil
}

// Get returns a single document, active or not.
func (service *Service) Get(context context.Context, resumeID string) (*Resume, error) {
	return service.store.FindByID(context, resumeID)
}

// CreateInput holds the fields accepted when registering a document.
type CreateInput struct {
	Title    string
	FileURL  string
	FileType string
	FileSize int64
}

/*
Create registers a new resume document.

Description: New documents are active on arrival. An omitted file type
defaults to pdf.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Resume: Created entity
  - error: Persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Resume, error) {

	fileType := input.FileType
	if fileType == "" {
		fileType = DefaultFileType
	}

	entry := &Resume{
		ID:       uuidv7.Must(),
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: fileType,
		FileSize: input.FileSize,
		IsActive: true,
	}

	if err := service.store.Create(context, entry); err != nil {
		return nil, fmt.Errorf("resume_service_create_failed: %w", err)
	}

	return entry, nil
}

// UpdateInput holds the partial-change fields for a document. Nil fields
// are left untouched.
type UpdateInput struct {
	Title    *string
	FileURL  *string
	FileType *string
	FileSize *int64
	IsActive *bool
}

/*
Update applies a partial change to a document.

Parameters:
  - context: context.Context
  - resumeID: string
  - input: UpdateInput

Returns:
  - *Resume: Updated entity
  - error: NotFound or persistence failures
*/
func (service *Service) Update(context context.Context, resumeID string, input UpdateInput) (*Resume, error) {

	entry, err := service.store.FindByID(context, resumeID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.FileURL != nil {
		entry.FileURL = *input.FileURL
	}
	if input.FileType != nil {
		entry.FileType = *input.FileType
	}
	if input.FileSize != nil {
		entry.FileSize = *input.FileSize
	}
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}

	if err := service.store.Update(context, entry); err != nil {
		return nil, fmt.Errorf("resume_service_update_failed: %w", err)
	}

	return entry, nil
}

// Delete permanently removes a document.
func (service *Service) Delete(context context.Context, resumeID string) error {
	return service.store.Delete(context, resumeID)
}

// ToggleActive flips a document's public visibility.
func (service *Service) ToggleActive(context context.Context, resumeID string) (bool, error) {
	return service.store.ToggleActive(context, resumeID)
}
