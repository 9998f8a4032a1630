// Copyright (c) 2026 Folio. All rights reserved.

package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliohq/folio/internal/platform/dberr"
)

// # Profile Repository

// PostgresStore implements the Store interface using pgx. The profile
// table holds at most one row, enforced by a CHECK on its key.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of Store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Find retrieves the profile row.
func (store *PostgresStore) Find(context context.Context) (*Profile, error) {
	const query = `
		SELECT name, title, bio, profileimage, contactemail, phone, address,
		       github, linkedin, twitter, facebook, instagram, website,
		       createdat, updatedat
		FROM profile WHERE id = 1`

	entry := &Profile{}
	err := store.pool.QueryRow(context, query).Scan(
		&entry.Name,
		&entry.Title,
		&entry.Bio,
		&entry.ProfileImage,
		&entry.ContactEmail,
		&entry.Phone,
		&entry.Address,
		&entry.SocialLinks.Github,
		&entry.SocialLinks.Linkedin,
		&entry.SocialLinks.Twitter,
		&entry.SocialLinks.Facebook,
		&entry.SocialLinks.Instagram,
		&entry.SocialLinks.Website,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return entry, nil
}

// Upsert inserts the profile row or overwrites the existing one.
func (store *PostgresStore) Upsert(context context.Context, entry *Profile) error {
	const query = `
		INSERT INTO profile (
			id, name, title, bio, profileimage, contactemail, phone, address,
			github, linkedin, twitter, facebook, instagram, website,
			createdat, updatedat
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			profileimage = EXCLUDED.profileimage,
			contactemail = EXCLUDED.contactemail,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			github = EXCLUDED.github,
			linkedin = EXCLUDED.linkedin,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			website = EXCLUDED.website,
			updatedat = EXCLUDED.updatedat`

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		entry.Name,
		entry.Title,
		entry.Bio,
		entry.ProfileImage,
		entry.ContactEmail,
		entry.Phone,
		entry.Address,
		entry.SocialLinks.Github,
		entry.SocialLinks.Linkedin,
		entry.SocialLinks.Twitter,
		entry.SocialLinks.Facebook,
		entry.SocialLinks.Instagram,
		entry.SocialLinks.Website,
		entry.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_profile_store_upsert_failed: %w", err)
	}

	return nil
}

// OwnerContact returns the oldest admin account's name and email.
func (store *PostgresStore) OwnerContact(context context.Context) (string, string, error) {
	const query = `
		SELECT name, email FROM accounts
		WHERE role IN ('admin', 'superadmin')
		ORDER BY createdat ASC
		LIMIT 1`

	var name, email string
	if err := store.pool.QueryRow(context, query).Scan(&name, &email); err != nil {
		return "", "", dberr.Wrap(err, "")
	}

	return name, email, nil
}
