// Copyright (c) 2026 Folio. All rights reserved.

package resume

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliohq/folio/internal/platform/middleware"
	requestutil "github.com/foliohq/folio/internal/platform/request"
	"github.com/foliohq/folio/internal/platform/respond"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements resume HTTP endpoints.
type Handler struct {
	resumeService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{resumeService: service}
}

// Routes returns a [chi.Router] configured with resume routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/active", handler.listActive)
	router.Get("/download/{id}", handler.download)

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleSuperAdmin))

		r.Get("/", handler.list)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Put("/{id}/toggle", handler.toggleActive)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title    string `json:"title"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	FileURL  *string `json:"file_url"`
	FileType *string `json:"file_type"`
	FileSize *int64  `json:"file_size"`
	IsActive *bool   `json:"is_active"`
}

/*
ListActive returns the documents visible to public visitors.

GET /api/v1/resumes/active
*/
func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.resumeService.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

/*
Download redirects the caller to the document's storage URL.

GET /api/v1/resumes/download/{id}
*/
func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.resumeService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, entry.FileURL, http.StatusFound)
}

/*
List returns every document for the admin dashboard.

GET /api/v1/resumes
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.resumeService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

/*
Create registers a new resume document.

POST /api/v1/resumes

Response:
  - 201: Resume: Registered document
  - 400: ErrValidation: Missing title or URL, or unknown file type
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Required(FieldFileURL, input.FileURL)
	if input.FileType != "" {
		validator.OneOf(FieldFileType, input.FileType, FileTypes...)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.resumeService.Create(request.Context(), CreateInput{
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: input.FileType,
		FileSize: input.FileSize,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Update applies a partial change to a document.

PUT /api/v1/resumes/{id}
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title)
	}
	if input.FileURL != nil {
		validator.Required(FieldFileURL, *input.FileURL)
	}
	if input.FileType != nil {
		validator.OneOf(FieldFileType, *input.FileType, FileTypes...)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.resumeService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: input.FileType,
		FileSize: input.FileSize,
		IsActive: input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Remove permanently deletes a document record.

DELETE /api/v1/resumes/{id}
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.resumeService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ToggleActive flips a document's public visibility.

PUT /api/v1/resumes/{id}/toggle
*/
func (handler *Handler) toggleActive(writer http.ResponseWriter, request *http.Request) {
	active, err := handler.resumeService.ToggleActive(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"is_active": active})
}
