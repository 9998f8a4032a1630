// Copyright (c) 2026 Folio. All rights reserved.

package contact

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

// Handler implements contact HTTP endpoints.
type Handler struct {
	contactService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{contactService: service}
}

// Routes returns a [chi.Router] configured with contact routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Post("/", handler.submit)

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleSuperAdmin))

		r.Get("/", handler.list)
		r.Get("/{id}", handler.get)
		r.Put("/{id}/status", handler.updateStatus)
		r.Put("/{id}/spam", handler.toggleSpam)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

// # Request Payloads

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type statusRequest struct {
	Status string `json:"status"`
}

/*
Submit accepts a public contact form submission.

POST /api/v1/contact

Response:
  - 201: map: Confirmation message
  - 400: ErrValidation: Missing or oversized fields
  - 429: ErrRateLimited: Too many submissions from this address
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldSubject, input.Subject).
		MaxLen(FieldSubject, input.Subject, MaxSubjectLength).
		Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, MaxMessageLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.contactService.Submit(request.Context(), SubmitInput{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Phone:     input.Phone,
		Company:   input.Company,
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		"message": "Your message has been sent successfully",
	})
}

/*
List returns messages for triage, newest first.

GET /api/v1/contact?status=&hide_spam=
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := ListFilter{
		Status:   request.URL.Query().Get("status"),
		HideSpam: request.URL.Query().Get("hide_spam") == "true",
	}

	messages, err := handler.contactService.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messages)
}

/*
Get returns a single message and marks it read.

GET /api/v1/contact/{id}
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.contactService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
}

/*
UpdateStatus moves a message between triage states.

PUT /api/v1/contact/{id}/status
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input statusRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.contactService.UpdateStatus(request.Context(), requestutil.Param(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
}

/*
ToggleSpam flips a message's spam flag.

PUT /api/v1/contact/{id}/spam
*/
func (handler *Handler) toggleSpam(writer http.ResponseWriter, request *http.Request) {
	spam, err := handler.contactService.ToggleSpam(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"is_spam": spam})
}

/*
Remove permanently deletes a message.

DELETE /api/v1/contact/{id}
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.contactService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
