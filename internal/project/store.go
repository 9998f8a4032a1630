// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"

	"github.com/foliohq/folio/pkg/pagination"
)

// ListFilter narrows the public project listing.
type ListFilter struct {
	// Category filters to a single category. Empty (or "all") means no filter.
	Category string

	// Search matches title, description, or an exact technology.
	Search string
}

// Store defines the persistence contract for projects.
//
// ListPublished orders by display order first, then newest. The remaining
// operations mirror the blog store: atomic counters, row-level CRUD.
type Store interface {
	ListPublished(context context.Context, filter ListFilter, params pagination.Params) ([]*Project, int, error)
	ListAll(context context.Context) ([]*Project, error)

	// ViewByID returns the project and atomically increments its view counter.
	ViewByID(context context.Context, id string) (*Project, error)

	FindByID(context context.Context, id string) (*Project, error)
	Create(context context.Context, project *Project) error
	Update(context context.Context, project *Project) error
	Delete(context context.Context, id string) error

	IncrementLikes(context context.Context, id string) (int, error)
	ToggleFeatured(context context.Context, id string) (bool, error)
}
