// Copyright (c) 2026 Folio. All rights reserved.

package contact

import (
	"context"
	"time"
)

// ListFilter narrows the admin inbox listing.
type ListFilter struct {
	// Status filters to one triage state. Empty means all.
	Status string

	// HideSpam excludes messages flagged as spam.
	HideSpam bool
}

// # Message Data Access

// Store defines the persistence contract for inbox messages.
type Store interface {

	/*
		Create persists a new submission.

		Parameters:
		  - context: context.Context
		  - message: *Message

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, message *Message) error

	/*
		List returns messages newest first, optionally filtered.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter

		Returns:
		  - []*Message: Matching messages
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter ListFilter) ([]*Message, error)

	/*
		FindByID returns the message with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Message: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Message, error)

	/*
		UpdateStatus sets the message's triage state.

		Parameters:
		  - context: context.Context
		  - id: string
		  - status: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	UpdateStatus(context context.Context, id, status string) error

	/*
		ToggleSpam flips the spam flag.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: New spam state
		  - error: NotFound or persistence failures
	*/
	ToggleSpam(context context.Context, id string) (bool, error)

	/*
		Delete permanently removes the message row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error
}

// # Submission Throttling

// Throttle limits how often a single client IP may submit.
type Throttle interface {

	/*
		Hit records one submission attempt, returning the attempt count in
		the current window and the time until the window resets.

		Parameters:
		  - context: context.Context
		  - ip: string

		Returns:
		  - int64: Attempts within the current window, this one included
		  - time.Duration: Time until the window resets
		  - error: Backend failures
	*/
	Hit(context context.Context, ip string) (int64, time.Duration, error)
}
