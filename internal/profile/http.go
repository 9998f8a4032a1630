// Copyright (c) 2026 Folio. All rights reserved.

package profile

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

// Handler implements profile HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] configured with profile routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Get("/", handler.get)

	// Admin endpoint
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleSuperAdmin))

		r.Put("/", handler.update)
	})

	return router
}

// # Request Payloads

type socialLinksRequest struct {
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Website   *string `json:"website"`
}

type updateRequest struct {
	Name         *string             `json:"name"`
	Title        *string             `json:"title"`
	Bio          *string             `json:"bio"`
	ProfileImage *string             `json:"profile_image"`
	ContactEmail *string             `json:"contact_email"`
	Phone        *string             `json:"phone"`
	Address      *string             `json:"address"`
	SocialLinks  *socialLinksRequest `json:"social_links"`
}

/*
Get returns the owner's public profile.

GET /api/v1/profile
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.profileService.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Update applies a partial change to the profile.

PUT /api/v1/profile

Response:
  - 200: map: Confirmation message plus the updated profile
  - 400: ErrValidation: Empty name or malformed contact email
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name)
	}
	if input.ContactEmail != nil && *input.ContactEmail != "" {
		validator.Email(FieldContactEmail, *input.ContactEmail)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updateInput := UpdateInput{
		Name:         input.Name,
		Title:        input.Title,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
		ContactEmail: input.ContactEmail,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if links := input.SocialLinks; links != nil {
		updateInput.SocialLinks = &SocialLinksInput{
			Github:    links.Github,
			Linkedin:  links.Linkedin,
			Twitter:   links.Twitter,
			Facebook:  links.Facebook,
			Instagram: links.Instagram,
			Website:   links.Website,
		}
	}

	entry, err := handler.profileService.Update(request.Context(), updateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": entry,
	})
}
