// Copyright (c) 2026 Folio. All rights reserved.

// Authentication and authorization middleware for the Folio API server.
//
// # Architecture
//
// The guard ([Authenticate]) turns a bearer token into a storage-fresh
// account identity; the gate ([RequireRole]) authorizes that identity
// against the role set a route declares. The two are deliberately separate
// decisions with separate failure modes (401 vs 403).
package middleware

import (
	"net/http"
	"strings"

	stdctx "context"

	"github.com/foliohq/folio/internal/platform/apperr"
	"github.com/foliohq/folio/internal/platform/ctxutil"
	"github.com/foliohq/folio/internal/platform/respond"
	"github.com/foliohq/folio/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token
// service implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.TokenClaims, error)
}

// AccountSource resolves a token subject into a current account identity.
//
// # Freshness
//
// The token intentionally carries no role, so the guard must hit storage
// for every authenticated request. Implemented by the auth service.
type AccountSource interface {
	ResolveAccount(ctx stdctx.Context, accountID string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the session token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the token via [TokenVerifier].
//  4. Resolve the token subject to a live account via [AccountSource];
//     reject if the account is gone or deactivated.
//  5. Inject the resolved [*sec.Identity] into the request context.
//
// Because the identity is re-read from storage on every request, a role
// downgrade or deactivation is effective immediately, not at token expiry.
func Authenticate(verifier TokenVerifier, accounts AccountSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Account Resolution ─────────────────────────────────────────
			identity, err := accounts.ResolveAccount(request.Context(), claims.Subject)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Not authorized"))
				return
			}

			if !identity.IsActive {
				respond.Error(writer, request, apperr.Unauthorized("Account is deactivated"))
				return
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Not authorized, no token"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose authenticated account is not in the
// route's accepted role set.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It implies
// [RequireAuth] so you don't need to mount both.
//
// # Design
//
// The gate is pure set membership over the closed [sec.Role] enum: there
// is no privilege ordering, and every route enumerates the full set it
// accepts (by convention RoleSuperAdmin is listed wherever RoleAdmin is).
func RequireRole(accepted ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Not authorized, no token"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !identity.Role.In(accepted...) {
				respond.Error(writer, request, apperr.Forbidden("Forbidden"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
