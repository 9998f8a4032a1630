// Copyright (c) 2026 Folio. All rights reserved.

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliohq/folio/internal/platform/middleware"
	requestutil "github.com/foliohq/folio/internal/platform/request"
	"github.com/foliohq/folio/internal/platform/respond"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/platform/validate"
	"github.com/foliohq/folio/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements blog HTTP endpoints.
//
// # Scope
//
// Public read surface (listing, permalink reads, likes) plus the
// admin-gated write surface.
type Handler struct {
	blogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{blogService: service}
}

// Routes returns a [chi.Router] configured with blog routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{slug}", handler.read)
	router.Put("/{id}/like", handler.like)

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleSuperAdmin))

		r.Get("/admin", handler.listAll)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Put("/{id}/publish", handler.togglePublish)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	FeaturedImage   string   `json:"featured_image"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	IsPublished     bool     `json:"is_published"`
	Featured        bool     `json:"featured"`
	MetaDescription string   `json:"meta_description"`
}

type updateRequest struct {
	Title           *string  `json:"title"`
	Excerpt         *string  `json:"excerpt"`
	Content         *string  `json:"content"`
	FeaturedImage   *string  `json:"featured_image"`
	Category        *string  `json:"category"`
	Tags            []string `json:"tags"`
	IsPublished     *bool    `json:"is_published"`
	Featured        *bool    `json:"featured"`
	MetaDescription *string  `json:"meta_description"`
}

/*
List returns a page of published posts.

GET /api/v1/blogs?category=&search=&page=&limit=

Response:
  - 200: PaginatedEnvelope: Posts newest first with page metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := ListFilter{
		Category: request.URL.Query().Get("category"),
		Search:   request.URL.Query().Get("search"),
	}

	posts, meta, err := handler.blogService.ListPublished(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, meta)
}

/*
ListAll returns every post including drafts.

GET /api/v1/blogs/admin

Response:
  - 200: []Post: All posts
  - 403: ErrForbidden: Caller lacks an admin role
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.blogService.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

/*
Read returns a single published post by slug and counts the view.

GET /api/v1/blogs/{slug}

Response:
  - 200: Post: The post, view already counted
  - 404: ErrNotFound: Unknown slug or unpublished draft
*/
func (handler *Handler) read(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.blogService.Read(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
Create persists a new post with derived slug and reading time.

POST /api/v1/blogs

Request:
  - Body: createRequest

Response:
  - 201: Post: Created post, identity populated
  - 400: ErrValidation: Missing or oversized fields
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
		Required(FieldExcerpt, input.Excerpt).
		MaxLen(FieldExcerpt, input.Excerpt, MaxExcerptLength).
		Required(FieldContent, input.Content).
		Required(FieldCategory, input.Category).
		MaxLen(FieldMetaDescription, input.MetaDescription, MaxMetaDescriptionLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.blogService.Create(request.Context(), identity.ID, CreateInput{
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		FeaturedImage:   input.FeaturedImage,
		Category:        input.Category,
		Tags:            input.Tags,
		IsPublished:     input.IsPublished,
		Featured:        input.Featured,
		MetaDescription: input.MetaDescription,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

/*
Update applies a partial change to a post.

PUT /api/v1/blogs/{id}

Request:
  - Body: updateRequest (all fields optional)

Response:
  - 200: Post: Updated post
  - 404: ErrNotFound: Unknown post
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Excerpt != nil {
		validator.Required(FieldExcerpt, *input.Excerpt).
			MaxLen(FieldExcerpt, *input.Excerpt, MaxExcerptLength)
	}
	if input.MetaDescription != nil {
		validator.MaxLen(FieldMetaDescription, *input.MetaDescription, MaxMetaDescriptionLength)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.blogService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		FeaturedImage:   input.FeaturedImage,
		Category:        input.Category,
		Tags:            input.Tags,
		IsPublished:     input.IsPublished,
		Featured:        input.Featured,
		MetaDescription: input.MetaDescription,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
Remove deletes a post.

DELETE /api/v1/blogs/{id}

Response:
  - 204: No Content: Post removed
  - 404: ErrNotFound: Unknown post
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.blogService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Like adds a public like to a post.

PUT /api/v1/blogs/{id}/like

Response:
  - 200: {likes}: New like count
  - 404: ErrNotFound: Unknown post
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	likes, err := handler.blogService.Like(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"likes": likes})
}

/*
TogglePublish flips a post between draft and published.

PUT /api/v1/blogs/{id}/publish

Response:
  - 200: {is_published}: New publish state
  - 404: ErrNotFound: Unknown post
*/
func (handler *Handler) togglePublish(writer http.ResponseWriter, request *http.Request) {
	published, err := handler.blogService.TogglePublish(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"is_published": published})
}
