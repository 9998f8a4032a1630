// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/foliohq/folio/pkg/pagination"
	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the project showcase lifecycle.
type Service struct {
	store Store
}

// NewService constructs a new [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
ListPublished returns a page of published projects for the public site,
ordered by display order and then recency.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []*Project: Page of projects
  - pagination.Meta: Page metadata
  - error: Database failures
*/
func (service *Service) ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Project, pagination.Meta, error) {
	if filter.Category == "all" {
		filter.Category = ""
	}

	projects, total, err := service.store.ListPublished(context, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("project_service_list_failed: %w", err)
	}

	return projects, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// ListAll returns every project, drafts included, for the admin dashboard.
func (service *Service) ListAll(context context.Context) ([]*Project, error) {
	projects, err := service.store.ListAll(context)
	if err != nil {
		return nil, fmt.Errorf("project_service_list_all_failed: %w", err)
	}
	return projects, nil
}

// View returns a project by ID and counts the view.
func (service *Service) View(context context.Context, projectID string) (*Project, error) {
	return service.store.ViewByID(context, projectID)
}

// CreateInput holds the fields of a new project.
type CreateInput struct {
	Title           string
	Description     string
	FullDescription string
	Image           string
	Images          []string
	Technologies    []string
	Category        string
	LiveURL         string
	GithubURL       string
	Status          string
	Featured        bool
	Order           int
	StartDate       *time.Time
	CompletionDate  *time.Time
	Client          string
	IsPublished     *bool
}

/*
Create persists a new project.

Description: Status defaults to Completed and the published flag defaults
to true, matching the showcase-first nature of a portfolio.

Parameters:
  - context: context.Context
  - creatorID: string
  - input: CreateInput

Returns:
  - *Project: Created entity
  - error: Storage failures
*/
func (service *Service) Create(context context.Context, creatorID string, input CreateInput) (*Project, error) {

	status := input.Status
	if status == "" {
		status = DefaultStatus
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	entry := &Project{
		ID:              uuidv7.Must(),
		Title:           input.Title,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Image:           input.Image,
		Images:          input.Images,
		Technologies:    input.Technologies,
		Category:        input.Category,
		LiveURL:         input.LiveURL,
		GithubURL:       input.GithubURL,
		Status:          status,
		Featured:        input.Featured,
		Order:           input.Order,
		StartDate:       input.StartDate,
		CompletionDate:  input.CompletionDate,
		Client:          input.Client,
		IsPublished:     published,
		CreatedBy:       creatorID,
	}
	if entry.Images == nil {
		entry.Images = []string{}
	}

	if err := service.store.Create(context, entry); err != nil {
		return nil, fmt.Errorf("project_service_create_failed: %w", err)
	}

	return entry, nil
}

// UpdateInput defines the mutable subset of a project. Nil fields are left
// untouched.
type UpdateInput struct {
	Title           *string
	Description     *string
	FullDescription *string
	Image           *string
	Images          []string
	Technologies    []string
	Category        *string
	LiveURL         *string
	GithubURL       *string
	Status          *string
	Featured        *bool
	Order           *int
	StartDate       *time.Time
	CompletionDate  *time.Time
	Client          *string
	IsPublished     *bool
}

/*
Update applies a partial change to a project.

Parameters:
  - context: context.Context
  - projectID: string
  - input: UpdateInput

Returns:
  - *Project: Updated entity
  - error: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, projectID string, input UpdateInput) (*Project, error) {

	entry, err := service.store.FindByID(context, projectID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.FullDescription != nil {
		entry.FullDescription = *input.FullDescription
	}
	if input.Image != nil {
		entry.Image = *input.Image
	}
	if input.Images != nil {
		entry.Images = input.Images
	}
	if input.Technologies != nil {
		entry.Technologies = input.Technologies
	}
	if input.Category != nil {
		entry.Category = *input.Category
	}
	if input.LiveURL != nil {
		entry.LiveURL = *input.LiveURL
	}
	if input.GithubURL != nil {
		entry.GithubURL = *input.GithubURL
	}
	if input.Status != nil {
		entry.Status = *input.Status
	}
	if input.Featured != nil {
		entry.Featured = *input.Featured
	}
	if input.Order != nil {
		entry.Order = *input.Order
	}
	if input.StartDate != nil {
		entry.StartDate = input.StartDate
	}
	if input.CompletionDate != nil {
		entry.CompletionDate = input.CompletionDate
	}
	if input.Client != nil {
		entry.Client = *input.Client
	}
	if input.IsPublished != nil {
		entry.IsPublished = *input.IsPublished
	}

	if err := service.store.Update(context, entry); err != nil {
		return nil, fmt.Errorf("project_service_update_failed: %w", err)
	}

	return entry, nil
}

// Delete permanently removes a project.
func (service *Service) Delete(context context.Context, projectID string) error {
	if _, err := service.store.FindByID(context, projectID); err != nil {
		return err
	}
	if err := service.store.Delete(context, projectID); err != nil {
		return fmt.Errorf("project_service_delete_failed: %w", err)
	}
	return nil
}

// Like adds one public like to a project and returns the new count.
func (service *Service) Like(context context.Context, projectID string) (int, error) {
	return service.store.IncrementLikes(context, projectID)
}

// ToggleFeatured flips the project's featured flag and returns the new state.
func (service *Service) ToggleFeatured(context context.Context, projectID string) (bool, error) {
	return service.store.ToggleFeatured(context, projectID)
}
