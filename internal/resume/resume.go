// Copyright (c) 2026 Folio. All rights reserved.

/*
Package resume manages downloadable resume documents.

The files themselves live in external object storage; this package stores
only their metadata and URL. Multiple documents may exist at once (for
example per-language variants), each with its own active flag controlling
public visibility.
*/
package resume

import "time"

// # Entity

// Resume describes one hosted resume document.
type Resume struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Constraints

// FileTypes is the closed set of accepted document formats.
var FileTypes = []string{FileTypePDF, FileTypeDoc, FileTypeDocx}

const (
	FileTypePDF  = "pdf"
	FileTypeDoc  = "doc"
	FileTypeDocx = "docx"
)

// DefaultFileType is assumed when a submission omits the format.
const DefaultFileType = FileTypePDF

// # Field Identifiers

const (
	FieldTitle    = "title"
	FieldFileURL  = "file_url"
	FieldFileType = "file_type"
)
