// Copyright (c) 2026 Folio. All rights reserved.

package profile

import "context"

// # Repository Contract

// Store is the persistence contract for the single profile row.
type Store interface {
	// Find retrieves the profile. Returns NotFound when no row exists yet.
	Find(context context.Context) (*Profile, error)

	// Upsert inserts the profile row or overwrites the existing one.
	Upsert(context context.Context, entry *Profile) error

	// OwnerContact returns the name and email of the oldest admin
	// account, used to seed a fresh profile.
	OwnerContact(context context.Context) (name, email string, err error)
}
