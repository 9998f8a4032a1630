// Copyright (c) 2026 Folio. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foliohq/folio/internal/platform/constants"
	"github.com/foliohq/folio/internal/platform/middleware"
	requestutil "github.com/foliohq/folio/internal/platform/request"
	"github.com/foliohq/folio/internal/platform/respond"
)

// # Definitions & Constructors

// CookieSettings controls how the session token cookie is written.
type CookieSettings struct {
	// TTL is the cookie lifetime. Independent of the token lifetime so the
	// cookie can outlive or undercut the JWT if operations require it.
	TTL time.Duration

	// Secure marks the cookie HTTPS-only. Disabled in development where the
	// API is served over plain HTTP.
	Secure bool
}

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the session lifecycle entry points (Bootstrap
// registration, Login, Logout, Password rotation). The token travels both
// ways: in an HttpOnly cookie for browsers and in the response body for
// programmatic clients.
type Handler struct {
	authService *Service
	cookies     CookieSettings
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, cookies CookieSettings) *Handler {
	return &Handler{authService: service, cookies: cookies}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register : One-shot bootstrap of the first administrator.
//   - POST /login    : Authenticates and returns a session token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
		r.Post("/logout", handler.logout)
		r.Put("/password", handler.changePassword)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

/*
Register bootstraps the first administrator account.

POST /api/v1/auth/register

Description: Creates the one and only self-registered account. The service
rejects the call outright once any account exists, so input validation is
deliberately left entirely to the service to preserve check ordering.

Request:
  - Body: registerRequest (Name, Email, Password, ConfirmPassword)

Response:
  - 201: Session: Token and created account
  - 400: ErrConflict: An administrator already exists
  - 400: ErrValidation: Missing fields or weak password
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Bootstrap(request.Context(), BootstrapInput{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookie(writer, session.Token)
	respond.Created(writer, map[string]any{
		FieldToken: session.Token,
		FieldUser:  session.Account,
	})
}

/*
Login authenticates an administrator and establishes a session.

POST /api/v1/auth/login

Description: Verifies credentials, signs a session token, and injects it as
an HttpOnly cookie alongside the response body.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Session: Token and account profile
  - 401: ErrUnauthorized: Invalid credentials or deactivated account
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookie(writer, session.Token)
	respond.OK(writer, map[string]any{
		FieldToken: session.Token,
		FieldUser:  session.Account,
	})
}

/*
Me returns the authenticated account's profile.

GET /api/v1/auth/me

Response:
  - 200: Account: Current profile, freshly read from storage
  - 401: ErrUnauthorized: Missing or invalid session
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.authService.CurrentAccount(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldUser: account})
}

/*
Logout clears the session cookie.

POST /api/v1/auth/logout

Description: Tokens are stateless, so logout is purely a client-side
affair: the cookie is expired and the client discards its copy.

Response:
  - 200: Success: Cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     constants.TokenCookiePath,
		MaxAge:   -1,
		Secure:   handler.cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, map[string]string{
		FieldMessage: "Logged out successfully",
	})
}

/*
ChangePassword rotates the authenticated account's password.

PUT /api/v1/auth/password

Description: Validation ordering lives in the service: structural checks on
the new password first, current-password verification last.

Request:
  - Body: changePasswordRequest (CurrentPassword, NewPassword, ConfirmPassword)

Response:
  - 200: Success: Password updated
  - 400: ErrValidation: Weak password or wrong current password
  - 401: ErrUnauthorized: Missing or invalid session
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.authService.ChangePassword(
		request.Context(),
		identity.ID,
		input.CurrentPassword,
		input.NewPassword,
		input.ConfirmPassword,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "Password updated successfully",
	})
}

// setTokenCookie writes the session token as an HttpOnly cookie.
func (handler *Handler) setTokenCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    token,
		Path:     constants.TokenCookiePath,
		Expires:  time.Now().Add(handler.cookies.TTL),
		Secure:   handler.cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
