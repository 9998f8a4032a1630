// Copyright (c) 2026 Folio. All rights reserved.

package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/contact"
	"github.com/foliohq/folio/internal/platform/apperr"
)

// memoryStore is an in-memory Store used to drive the service.
type memoryStore struct {
	messages map[string]*contact.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{messages: make(map[string]*contact.Message)}
}

func (store *memoryStore) Create(_ context.Context, message *contact.Message) error {
	copied := *message
	store.messages[message.ID] = &copied
	return nil
}

func (store *memoryStore) List(_ context.Context, filter contact.ListFilter) ([]*contact.Message, error) {
	matched := make([]*contact.Message, 0)
	for _, message := range store.messages {
		if filter.Status != "" && message.Status != filter.Status {
			continue
		}
		if filter.HideSpam && message.IsSpam {
			continue
		}
		copied := *message
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*contact.Message, error) {
	if message, ok := store.messages[id]; ok {
		copied := *message
		return &copied, nil
	}
	return nil, apperr.NotFound("Message")
}

func (store *memoryStore) UpdateStatus(_ context.Context, id, status string) error {
	message, ok := store.messages[id]
	if !ok {
		return apperr.NotFound("Message")
	}
	message.Status = status
	return nil
}

func (store *memoryStore) ToggleSpam(_ context.Context, id string) (bool, error) {
	message, ok := store.messages[id]
	if !ok {
		return false, apperr.NotFound("Message")
	}
	message.IsSpam = !message.IsSpam
	return message.IsSpam, nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := store.messages[id]; !ok {
		return apperr.NotFound("Message")
	}
	delete(store.messages, id)
	return nil
}

// stubThrottle counts hits per IP without Redis.
type stubThrottle struct {
	counts map[string]int64
	window time.Duration
	err    error
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{counts: make(map[string]int64), window: time.Hour}
}

func (throttle *stubThrottle) Hit(_ context.Context, ip string) (int64, time.Duration, error) {
	if throttle.err != nil {
		return 0, 0, throttle.err
	}
	throttle.counts[ip]++
	return throttle.counts[ip], throttle.window, nil
}

func newService(store contact.Store, throttle contact.Throttle, limit int64) *contact.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return contact.NewService(store, throttle, limit, logger)
}

func validSubmission() contact.SubmitInput {
	return contact.SubmitInput{
		Name:      "Grace",
		Email:     "grace@example.com",
		Subject:   "Collaboration",
		Message:   "I would love to work together on a project.",
		IPAddress: "203.0.113.7",
	}
}

/*
TestSubmit_StoresUnread verifies a fresh submission is persisted with the
unread status and the caller's IP.
*/
func TestSubmit_StoresUnread(t *testing.T) {
	store := newMemoryStore()
	service := newService(store, newStubThrottle(), 5)

	message, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, contact.StatusUnread, message.Status)
	assert.Equal(t, "203.0.113.7", message.IPAddress)
	assert.False(t, message.IsSpam)
	assert.Len(t, store.messages, 1)
}

/*
TestSubmit_Throttled verifies submissions beyond the per-IP limit are
rejected with a 429 and are never persisted, while other IPs are unaffected.
*/
func TestSubmit_Throttled(t *testing.T) {
	store := newMemoryStore()
	service := newService(store, newStubThrottle(), 2)

	for i := 0; i < 2; i++ {
		_, err := service.Submit(context.Background(), validSubmission())
		require.NoError(t, err)
	}

	_, err := service.Submit(context.Background(), validSubmission())
	require.Error(t, err)

	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RATE_LIMITED", appErr.Code)
	assert.Equal(t, 429, appErr.HTTPStatus)
	assert.Len(t, store.messages, 2)

	// A different address has its own counter.
	other := validSubmission()
	other.IPAddress = "198.51.100.9"
	_, err = service.Submit(context.Background(), other)
	require.NoError(t, err)
}

/*
TestGet_MarksRead verifies opening an unread message advances it to read,
and that subsequent opens leave later states untouched.
*/
func TestGet_MarksRead(t *testing.T) {
	store := newMemoryStore()
	service := newService(store, newStubThrottle(), 5)

	created, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	opened, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, opened.Status)
	assert.Equal(t, contact.StatusRead, store.messages[created.ID].Status)

	// Replied must not be demoted back to read.
	_, err = service.UpdateStatus(context.Background(), created.ID, contact.StatusReplied)
	require.NoError(t, err)

	again, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusReplied, again.Status)
}

/*
TestUpdateStatus_ClosedSet verifies only the known triage states are
accepted.
*/
func TestUpdateStatus_ClosedSet(t *testing.T) {
	store := newMemoryStore()
	service := newService(store, newStubThrottle(), 5)

	created, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), created.ID, "starred")
	require.Error(t, err)

	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, "Status must be unread, read, replied, or archived", appErr.Message)

	updated, err := service.UpdateStatus(context.Background(), created.ID, contact.StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusArchived, updated.Status)
}

/*
TestToggleSpam verifies the spam flag flips on each call and spam messages
drop out of spam-hiding listings.
*/
func TestToggleSpam(t *testing.T) {
	store := newMemoryStore()
	service := newService(store, newStubThrottle(), 5)

	created, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	spam, err := service.ToggleSpam(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, spam)

	visible, err := service.List(context.Background(), contact.ListFilter{HideSpam: true})
	require.NoError(t, err)
	assert.Empty(t, visible)

	spam, err = service.ToggleSpam(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, spam)
}
