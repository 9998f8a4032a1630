// Copyright (c) 2026 Folio. All rights reserved.

/*
Package project implements the portfolio project showcase.

Projects carry presentation metadata (gallery, technologies, display order)
and public engagement counters (views, likes). Write access is admin-gated;
reads and likes are public.
*/
package project

import (
	"time"
)

// # Domain Entities

// Project represents a portfolio entry.
type Project struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"full_description"`
	Image           string     `json:"image,omitempty"`
	Images          []string   `json:"images"`
	Technologies    []string   `json:"technologies"`
	Category        string     `json:"category"`
	LiveURL         string     `json:"live_url,omitempty"`
	GithubURL       string     `json:"github_url,omitempty"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	Order           int        `json:"order"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`
	Client          string     `json:"client,omitempty"`
	Views           int        `json:"views"`
	Likes           int        `json:"likes"`
	IsPublished     bool       `json:"is_published"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// # Constraints

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
)

// Categories is the closed set of accepted project categories.
var Categories = []string{
	"Web Development",
	"Mobile App",
	"Desktop App",
	"UI/UX Design",
	"Full Stack",
	"Frontend",
	"Backend",
	"Game Development",
	"AI/ML",
	"Other",
}

// Statuses is the closed set of accepted project statuses.
var Statuses = []string{"Completed", "In Progress", "Planned"}

// DefaultStatus is applied when a new project omits its status.
const DefaultStatus = "Completed"

// # Field Identifiers

const (
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldFullDescription = "full_description"
	FieldTechnologies    = "technologies"
	FieldCategory        = "category"
	FieldStatus          = "status"
)
