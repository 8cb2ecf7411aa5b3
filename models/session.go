// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is a backend-issued record binding an authenticated device to a
// user through a pair of access and refresh tokens.
//
// The backend owns the record; the client only reads, refreshes, and revokes
// it and never keeps a copy beyond a single call.
type Session struct {
	// ID is the backend identifier of the session.
	ID int64 `json:"id"`

	// AccessToken is the bearer token presented to protected endpoints.
	AccessToken string `json:"accessToken"`

	// RefreshToken is exchanged for a new token pair via PATCH /sessions/{id}.
	RefreshToken string `json:"refreshToken"`

	// Device is the free-form device label supplied at login.
	Device string `json:"device"`

	// UserID is the owner of the session. Some backend responses omit it.
	UserID int64 `json:"userId,omitempty"`
}

// RefreshRequest is the PATCH body sent to rotate a session's tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Claims reads the registered claims of the session's access token without
// verifying its signature. The client has no signing key; the result is only
// suitable for display and expiry checks.
func (s Session) Claims() (SessionClaims, error) {
	if s.AccessToken == "" {
		return SessionClaims{}, ErrEmptyAccessToken
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &claims); err != nil {
		return SessionClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	sc := SessionClaims{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.ExpiresAt != nil {
		sc.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		sc.IssuedAt = claims.IssuedAt.Time
	}

	return sc, nil
}

// IsExpired reports whether the access token is expired at now. Tokens that
// cannot be parsed or carry no expiry are reported as not expired together
// with the parse error, if any.
func (s Session) IsExpired(now time.Time) (bool, error) {
	claims, err := s.Claims()
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt.IsZero() {
		return false, nil
	}

	return !now.Before(claims.ExpiresAt), nil
}
