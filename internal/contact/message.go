// Copyright (c) 2026 Folio. All rights reserved.

/*
Package contact implements the public contact-form inbox.

Anyone may submit a message; reading and triage are admin-gated. Submissions
are throttled per client IP through a Redis TTL counter so the public
endpoint cannot be flooded from a single source.
*/
package contact

import (
	"time"
)

// # Domain Entities

// Message represents a contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Status    string    `json:"status"`
	IsSpam    bool      `json:"is_spam"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Constraints

const (
	MaxNameLength    = 50
	MaxSubjectLength = 100
	MaxMessageLength = 1000
)

// Statuses is the closed set of triage states.
var Statuses = []string{StatusUnread, StatusRead, StatusReplied, StatusArchived}

const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// # Field Identifiers

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)
