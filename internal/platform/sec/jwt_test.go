// Copyright (c) 2026 Folio. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliohq/folio/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a signed token verifies and
carries the subject and issuer back out.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "folio.dev", time.Hour)
	require.NoError(t, err)

	token, err := service.GenerateToken("account-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", claims.Subject)
	assert.Equal(t, "folio.dev", claims.Issuer)
}

/*
TestTokenService_Expired verifies that a token past its expiry is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "folio.dev", -time.Minute)
	require.NoError(t, err)

	token, err := service.GenerateToken("account-123")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret fails signature verification.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-a", "folio.dev", time.Hour)
	require.NoError(t, err)

	verifier, err := sec.NewTokenService("secret-b", "folio.dev", time.Hour)
	require.NoError(t, err)

	token, err := signer.GenerateToken("account-123")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies that malformed token strings are rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "folio.dev", time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.VerifyToken(raw)
		assert.Error(t, err)
	}
}

/*
TestNewTokenService_EmptySecret verifies the constructor rejects a missing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "folio.dev", time.Hour)
	assert.Error(t, err)
}
