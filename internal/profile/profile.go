// Copyright (c) 2026 Folio. All rights reserved.

/*
Package profile manages the site owner's public profile.

The profile is a single row. The first public read seeds it from the
oldest admin account so a fresh deployment serves sensible data before
the owner ever edits anything.
*/
package profile

import "time"

// # Entity

// SocialLinks holds the owner's public social URLs.
type SocialLinks struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
}

// Profile is the owner's public presentation.
type Profile struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profile_image"`
	ContactEmail string      `json:"contact_email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	SocialLinks  SocialLinks `json:"social_links"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DefaultTitle is the headline used when seeding a fresh profile.
const DefaultTitle = "Full Stack Developer"

// # Field Identifiers

const (
	FieldName         = "name"
	FieldContactEmail = "contact_email"
)
