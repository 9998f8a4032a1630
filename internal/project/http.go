// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foliohq/folio/internal/platform/middleware"
	requestutil "github.com/foliohq/folio/internal/platform/request"
	"github.com/foliohq/folio/internal/platform/respond"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/platform/validate"
	"github.com/foliohq/folio/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements project HTTP endpoints.
type Handler struct {
	projectService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{projectService: service}
}

// Routes returns a [chi.Router] configured with project routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{id}", handler.view)
	router.Put("/{id}/like", handler.like)

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleSuperAdmin))

		r.Get("/admin", handler.listAll)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Put("/{id}/featured", handler.toggleFeatured)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"full_description"`
	Image           string     `json:"image"`
	Images          []string   `json:"images"`
	Technologies    []string   `json:"technologies"`
	Category        string     `json:"category"`
	LiveURL         string     `json:"live_url"`
	GithubURL       string     `json:"github_url"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	Order           int        `json:"order"`
	StartDate       *time.Time `json:"start_date"`
	CompletionDate  *time.Time `json:"completion_date"`
	Client          string     `json:"client"`
	IsPublished     *bool      `json:"is_published"`
}

type updateRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	FullDescription *string    `json:"full_description"`
	Image           *string    `json:"image"`
	Images          []string   `json:"images"`
	Technologies    []string   `json:"technologies"`
	Category        *string    `json:"category"`
	LiveURL         *string    `json:"live_url"`
	GithubURL       *string    `json:"github_url"`
	Status          *string    `json:"status"`
	Featured        *bool      `json:"featured"`
	Order           *int       `json:"order"`
	StartDate       *time.Time `json:"start_date"`
	CompletionDate  *time.Time `json:"completion_date"`
	Client          *string    `json:"client"`
	IsPublished     *bool      `json:"is_published"`
}

/*
List returns a page of published projects.

GET /api/v1/projects?category=&search=&page=&limit=

Response:
  - 200: PaginatedEnvelope: Projects by display order, then recency
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := ListFilter{
		Category: request.URL.Query().Get("category"),
		Search:   request.URL.Query().Get("search"),
	}

	projects, meta, err := handler.projectService.ListPublished(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, projects, meta)
}

/*
ListAll returns every project including unpublished ones.

GET /api/v1/projects/admin
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.projectService.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projects)
}

/*
View returns a single project and counts the view.

GET /api/v1/projects/{id}
*/
func (handler *Handler) view(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.projectService.View(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Create persists a new project.

POST /api/v1/projects

Response:
  - 201: Project: Created project
  - 400: ErrValidation: Missing fields, oversized text, or unknown enum value
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, MaxDescriptionLength).
		Required(FieldFullDescription, input.FullDescription).
		Required(FieldCategory, input.Category).
		OneOf(FieldCategory, input.Category, Categories...).
		Custom(FieldTechnologies, len(input.Technologies) == 0, "must contain at least one technology")
	if input.Status != "" {
		validator.OneOf(FieldStatus, input.Status, Statuses...)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.projectService.Create(request.Context(), identity.ID, CreateInput{
		Title:           input.Title,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Image:           input.Image,
		Images:          input.Images,
		Technologies:    input.Technologies,
		Category:        input.Category,
		LiveURL:         input.LiveURL,
		GithubURL:       input.GithubURL,
		Status:          input.Status,
		Featured:        input.Featured,
		Order:           input.Order,
		StartDate:       input.StartDate,
		CompletionDate:  input.CompletionDate,
		Client:          input.Client,
		IsPublished:     input.IsPublished,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Update applies a partial change to a project.

PUT /api/v1/projects/{id}
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, MaxTitleLength)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, MaxDescriptionLength)
	}
	if input.Category != nil {
		validator.OneOf(FieldCategory, *input.Category, Categories...)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, Statuses...)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.projectService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Title:           input.Title,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Image:           input.Image,
		Images:          input.Images,
		Technologies:    input.Technologies,
		Category:        input.Category,
		LiveURL:         input.LiveURL,
		GithubURL:       input.GithubURL,
		Status:          input.Status,
		Featured:        input.Featured,
		Order:           input.Order,
		StartDate:       input.StartDate,
		CompletionDate:  input.CompletionDate,
		Client:          input.Client,
		IsPublished:     input.IsPublished,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Remove deletes a project.

DELETE /api/v1/projects/{id}
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.projectService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Like adds a public like to a project.

PUT /api/v1/projects/{id}/like
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	likes, err := handler.projectService.Like(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"likes": likes})
}

/*
ToggleFeatured flips a project's featured flag.

PUT /api/v1/projects/{id}/featured
*/
func (handler *Handler) toggleFeatured(writer http.ResponseWriter, request *http.Request) {
	featured, err := handler.projectService.ToggleFeatured(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"featured": featured})
}
