// Copyright (c) 2026 Folio. All rights reserved.

/*
Package blog implements the publishing core of the Folio API.

It owns the post entity, its derived identity (URL slug and estimated
reading time), and the publish lifecycle.

# Derived Identity

A post's slug and reading time are never supplied by clients. They are
computed synchronously right before persistence:

  - Slug: derived from the title, made unique against existing posts by
    numeric suffixing, with the schema-level UNIQUE constraint as the
    backstop against concurrent writers.
  - Reading time: ceil(words / 200), recomputed whenever content changes.
*/
package blog

import (
	"time"
)

// # Domain Entities

// Post represents a blog article.
type Post struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	FeaturedImage   string    `json:"featured_image,omitempty"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	ReadingTime     int       `json:"reading_time"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	IsPublished     bool      `json:"is_published"`
	Featured        bool      `json:"featured"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// # Constraints

const (
	// MaxExcerptLength bounds the short summary shown in list views.
	MaxExcerptLength = 300

	// MaxMetaDescriptionLength bounds the SEO description.
	MaxMetaDescriptionLength = 160

	// MaxSlugAttempts caps the numeric suffix search before falling back
	// to a timestamp suffix.
	MaxSlugAttempts = 100
)

// # Field Identifiers

// Global field names for validation in the blog domain.
const (
	FieldTitle           = "title"
	FieldExcerpt         = "excerpt"
	FieldContent         = "content"
	FieldCategory        = "category"
	FieldMetaDescription = "meta_description"
)
