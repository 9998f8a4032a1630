// Copyright (c) 2026 Folio. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	stdctx "context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/foliohq/folio/internal/platform/ctxutil"
	"github.com/foliohq/folio/internal/platform/middleware"
	"github.com/foliohq/folio/internal/platform/sec"
)

// mockVerifier returns canned claims or an error.
type mockVerifier struct {
	claims *sec.TokenClaims
	err    error
}

func (m *mockVerifier) VerifyToken(string) (*sec.TokenClaims, error) {
	return m.claims, m.err
}

// mockAccounts returns a canned identity or an error.
type mockAccounts struct {
	identity *sec.Identity
	err      error
}

func (m *mockAccounts) ResolveAccount(stdctx.Context, string) (*sec.Identity, error) {
	return m.identity, m.err
}

func claimsFor(subject string) *sec.TokenClaims {
	return &sec.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
}

// capture runs the Authenticate middleware and records the downstream identity.
func runAuthenticate(t *testing.T, verifier middleware.TokenVerifier, accounts middleware.AccountSource, header string) (*httptest.ResponseRecorder, *sec.Identity) {
	t.Helper()

	var seen *sec.Identity
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetIdentity(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	handler := middleware.Authenticate(verifier, accounts)(next)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		request.Header.Set("Authorization", header)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder, seen
}

/*
TestAuthenticate_Anonymous verifies that requests without an Authorization
header pass through unauthenticated.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	recorder, seen := runAuthenticate(t, &mockVerifier{}, &mockAccounts{}, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)
}

/*
TestAuthenticate_MalformedHeader verifies non-Bearer headers are rejected.
*/
func TestAuthenticate_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Basic abc123", "Bearer", "Bearer a b"} {
		recorder, _ := runAuthenticate(t, &mockVerifier{}, &mockAccounts{}, header)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

/*
TestAuthenticate_InvalidToken verifies that signature/expiry failures yield 401.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &mockVerifier{err: errors.New("sec: invalid token")}
	recorder, _ := runAuthenticate(t, verifier, &mockAccounts{}, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestAuthenticate_AccountGone verifies that a valid token whose subject no
longer exists is rejected.
*/
func TestAuthenticate_AccountGone(t *testing.T) {
	verifier := &mockVerifier{claims: claimsFor("account-1")}
	accounts := &mockAccounts{err: errors.New("not found")}
	recorder, _ := runAuthenticate(t, verifier, accounts, "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestAuthenticate_Deactivated verifies that a deactivated account is rejected
on the very next request even with a valid, unexpired token.
*/
func TestAuthenticate_Deactivated(t *testing.T) {
	verifier := &mockVerifier{claims: claimsFor("account-1")}
	accounts := &mockAccounts{identity: &sec.Identity{ID: "account-1", Role: sec.RoleAdmin, IsActive: false}}

	recorder, seen := runAuthenticate(t, verifier, accounts, "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, seen)
	assert.Contains(t, recorder.Body.String(), "Account is deactivated")
}

/*
TestAuthenticate_Success verifies the resolved identity lands in context.
*/
func TestAuthenticate_Success(t *testing.T) {
	verifier := &mockVerifier{claims: claimsFor("account-1")}
	accounts := &mockAccounts{identity: &sec.Identity{ID: "account-1", Role: sec.RoleSuperAdmin, IsActive: true}}

	recorder, seen := runAuthenticate(t, verifier, accounts, "Bearer token")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, "account-1", seen.ID)
	assert.Equal(t, sec.RoleSuperAdmin, seen.Role)
}

/*
TestRequireRole verifies the gate over the declared role sets used by the
actual route table: content routes accept {admin, superadmin}, account
management accepts {superadmin} only.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *sec.Identity
		accepted   []sec.Role
		wantStatus int
	}{
		{"anonymous", nil, []sec.Role{sec.RoleAdmin, sec.RoleSuperAdmin}, http.StatusUnauthorized},
		{"admin_on_content_routes", &sec.Identity{Role: sec.RoleAdmin, IsActive: true}, []sec.Role{sec.RoleAdmin, sec.RoleSuperAdmin}, http.StatusOK},
		{"superadmin_on_content_routes", &sec.Identity{Role: sec.RoleSuperAdmin, IsActive: true}, []sec.Role{sec.RoleAdmin, sec.RoleSuperAdmin}, http.StatusOK},
		{"admin_on_user_management", &sec.Identity{Role: sec.RoleAdmin, IsActive: true}, []sec.Role{sec.RoleSuperAdmin}, http.StatusForbidden},
		{"superadmin_on_user_management", &sec.Identity{Role: sec.RoleSuperAdmin, IsActive: true}, []sec.Role{sec.RoleSuperAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusOK)
			})
			handler := middleware.RequireRole(tt.accepted...)(next)

			request := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.identity != nil {
				request = request.WithContext(ctxutil.WithIdentity(request.Context(), tt.identity))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
