// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrEmptyAccessToken is returned by [Session.Claims] when the session carries
// no access token at all.
var ErrEmptyAccessToken = errors.New("empty access token")

// SessionClaims is the subset of RFC 7519 registered claims the client reads
// from a session's access token.
type SessionClaims struct {
	// Subject is the "sub" claim; the backend stores the user ID there.
	Subject string

	// Issuer is the "iss" claim.
	Issuer string

	// ExpiresAt is the "exp" claim, zero when absent.
	ExpiresAt time.Time

	// IssuedAt is the "iat" claim, zero when absent.
	IssuedAt time.Time
}

// GetUserID parses the subject claim as a base-10 int64 user identifier.
func (c SessionClaims) GetUserID() (int64, error) {
	if c.Subject == "" {
		return 0, errors.New("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}
