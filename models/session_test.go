// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestSession_Claims(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	session := Session{AccessToken: signedToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "issuer",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
	})}

	claims, err := session.Claims()
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "issuer", claims.Issuer)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(time.Hour)))

	userID, err := claims.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSession_ClaimsErrors(t *testing.T) {
	_, err := Session{}.Claims()
	assert.ErrorIs(t, err, ErrEmptyAccessToken)

	_, err = Session{AccessToken: "not-a-jwt"}.Claims()
	assert.ErrorContains(t, err, "parse access token")
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
		want   bool
	}{
		{name: "valid", claims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}, want: false},
		{name: "expired", claims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}, want: true},
		{name: "expires exactly now", claims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now)}, want: true},
		{name: "no expiry", claims: jwt.RegisteredClaims{Subject: "1"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Session{AccessToken: signedToken(t, tt.claims)}.IsExpired(now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := Session{}.IsExpired(now)
	assert.False(t, got)
	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

func TestSessionClaims_GetUserID(t *testing.T) {
	_, err := SessionClaims{}.GetUserID()
	assert.EqualError(t, err, "error extracting UserID from token: empty subject")

	_, err = SessionClaims{Subject: "abc"}.GetUserID()
	assert.ErrorContains(t, err, "error converting UserID from token to int64")
}

func TestURLParts_Optional(t *testing.T) {
	assert.False(t, URLParts{Prefix: "https", Host: "example.com"}.HasPort())
	assert.False(t, URLParts{Prefix: "https", Host: "example.com"}.HasResources())
	assert.True(t, URLParts{Port: "3000"}.HasPort())
	assert.True(t, URLParts{Resources: "a.b"}.HasResources())
}
