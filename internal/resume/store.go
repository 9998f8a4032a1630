// Copyright (c) 2026 Folio. All rights reserved.

package resume

import "context"

// # Repository Contract

// Store is the persistence contract for resume documents.
type Store interface {
	// List retrieves every document, newest first.
	List(context context.Context) ([]*Resume, error)

	// ListActive retrieves publicly visible documents, newest first.
	ListActive(context context.Context) ([]*Resume, error)

	// FindByID retrieves a document by its unique ID.
	FindByID(context context.Context, id string) (*Resume, error)

	// Create persists a new document.
	Create(context context.Context, entry *Resume) error

	// Update persists changes to an existing document.
	Update(context context.Context, entry *Resume) error

	// Delete permanently removes a document.
	Delete(context context.Context, id string) error

	// ToggleActive flips the active flag and returns the new state.
	ToggleActive(context context.Context, id string) (bool, error)
}
