// Copyright (c) 2026 Folio. All rights reserved.

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates inbox submissions and triage.
type Service struct {
	store    Store
	throttle Throttle
	limit    int64
	logger   *slog.Logger
}

// NewService constructs a new [Service].
//
// limit is the maximum number of submissions a single IP may make within
// the throttle's window.
func NewService(store Store, throttle Throttle, limit int64, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		throttle: throttle,
		limit:    limit,
		logger:   logger,
	}
}

// SubmitInput holds a public contact-form submission.
type SubmitInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Phone     string
	Company   string
	IPAddress string
}

/*
Submit records a public contact message after passing the per-IP throttle.

Description: The throttle is consulted before any persistence. Over-limit
callers get a 429 with the window's remaining time; the attempt still
counts, so hammering the endpoint extends nothing but the caller's wait.

Parameters:
  - context: context.Context
  - input: SubmitInput

Returns:
  - *Message: Stored message
  - error: RateLimited or storage failures
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Message, error) {

	count, remaining, err := service.throttle.Hit(context, input.IPAddress)
	if err != nil {
		return nil, fmt.Errorf("contact_service_throttle_failed: %w", err)
	}
	if count > service.limit {
		service.logger.Warn("contact_throttled",
			slog.String("ip", input.IPAddress),
			slog.Int64("count", count),
		)
		return nil, apperr.RateLimited(int(remaining.Seconds()))
	}

	message := &Message{
		ID:        uuidv7.Must(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Phone:     input.Phone,
		Company:   input.Company,
		Status:    StatusUnread,
		IPAddress: input.IPAddress,
	}

	if err := service.store.Create(context, message); err != nil {
		return nil, fmt.Errorf("contact_service_create_failed: %w", err)
	}

	return message, nil
}

// List returns inbox messages for the admin dashboard, newest first.
func (service *Service) List(context context.Context, filter ListFilter) ([]*Message, error) {
	messages, err := service.store.List(context, filter)
	if err != nil {
		return nil, fmt.Errorf("contact_service_list_failed: %w", err)
	}
	return messages, nil
}

/*
Get returns a single message and marks it read on first open.

Parameters:
  - context: context.Context
  - messageID: string

Returns:
  - *Message: Hydrated entity, status advanced to read if it was unread
  - error: NotFound or storage failures
*/
func (service *Service) Get(context context.Context, messageID string) (*Message, error) {
	message, err := service.store.FindByID(context, messageID)
	if err != nil {
		return nil, err
	}

	if message.Status == StatusUnread {
		if err := service.store.UpdateStatus(context, messageID, StatusRead); err != nil {
			return nil, fmt.Errorf("contact_service_mark_read_failed: %w", err)
		}
		message.Status = StatusRead
	}

	return message, nil
}

/*
UpdateStatus sets a message's triage state.

Parameters:
  - context: context.Context
  - messageID: string
  - status: string (must be one of the closed status set)

Returns:
  - *Message: Updated entity
  - error: Validation, NotFound, or storage failures
*/
func (service *Service) UpdateStatus(context context.Context, messageID, status string) (*Message, error) {

	valid := false
	for _, allowed := range Statuses {
		if status == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperr.ValidationError("Status must be unread, read, replied, or archived")
	}

	if err := service.store.UpdateStatus(context, messageID, status); err != nil {
		return nil, err
	}

	return service.store.FindByID(context, messageID)
}

// ToggleSpam flips a message's spam flag and returns the new state.
func (service *Service) ToggleSpam(context context.Context, messageID string) (bool, error) {
	return service.store.ToggleSpam(context, messageID)
}

// Delete permanently removes a message.
func (service *Service) Delete(context context.Context, messageID string) error {
	if err := service.store.Delete(context, messageID); err != nil {
		return err
	}
	return nil
}
