// Copyright (c) 2026 Folio. All rights reserved.

/*
Package auth implements the credential and session core of the Folio API.

It defines the account entity, the single-admin bootstrap flow, password
verification, and stateless session token issuance.

# Architecture

This layer is the "Truth" of the system for identity. Two read shapes keep
the password hash contained:

  - Account: the public shape. The hash is structurally absent, so it can
    never leak through serialization.
  - Credentials: the authentication shape, carrying the hash. Only the
    login and password-change paths ever touch it.
*/
package auth

import (
	"time"

	"github.com/foliohq/folio/internal/platform/sec"
)

// # Domain Entities

// Account represents an administrator of the Folio platform.
//
// It intentionally has no password field: callers that need the hash must go
// through [Credentials].
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      sec.Role  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credentials is the authentication-only projection of an account, including
// the bcrypt password hash. It is never serialized to clients.
type Credentials struct {
	Account
	PasswordHash string `json:"-"`
}

// Identity converts the account into its request-scoped authorization view.
func (account *Account) Identity() *sec.Identity {
	return &sec.Identity{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		Role:     account.Role,
		IsActive: account.IsActive,
	}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldToken           = "token"
	FieldUser            = "user"
	FieldMessage         = "message"
)
