// Copyright (c) 2026 Folio. All rights reserved.

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliohq/folio/internal/platform/middleware"
	requestutil "github.com/foliohq/folio/internal/platform/request"
	"github.com/foliohq/folio/internal/platform/respond"
	"github.com/foliohq/folio/internal/platform/sec"
)

// # Definitions & Constructors

// Handler implements account administration HTTP endpoints.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns a [chi.Router] with superadmin-only account management routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleSuperAdmin))

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateRequest struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

/*
List returns every administrator account.

GET /api/v1/users

Response:
  - 200: []Account: All accounts
  - 403: ErrForbidden: Caller is not a superadmin
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.userService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, accounts)
}

/*
Create enrolls an additional administrator.

POST /api/v1/users

Request:
  - Body: createRequest (Name, Email, Password, Role)

Response:
  - 201: Account: Created account
  - 400: ErrValidation: Missing fields, weak password, unknown role, or duplicate email
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.Create(request.Context(), CreateInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

/*
Update adjusts an account's role or active flag.

PATCH /api/v1/users/{id}

Request:
  - Body: updateRequest (Role?, IsActive?)

Response:
  - 200: Account: Updated account
  - 404: ErrNotFound: Unknown account
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput{
		Role:     input.Role,
		IsActive: input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
Remove deletes an administrator account.

DELETE /api/v1/users/{id}

Response:
  - 204: No Content: Account removed
  - 400: ErrValidation: Attempted self-deletion
  - 404: ErrNotFound: Unknown account
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.Delete(request.Context(), identity.ID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
