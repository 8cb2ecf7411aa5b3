// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-session-client/models"
)

// SessionService defines the client-side contract for the backend's session
// resource. Every method performs exactly one HTTP call through the
// transport adapter and never retries.
//
// On failure each method returns a [*SessionError] whose message is a fixed
// text naming the operation and the ID; the transport error is not part of
// the message (except for RefreshSession) but stays reachable through
// [errors.Is] and [errors.As].
type SessionService interface {
	// GetSessionByID fetches GET /sessions/{sessionID}.
	// Fails with "Error getting session with ID: {sessionID}".
	GetSessionByID(ctx context.Context, sessionID string) (models.Session, error)

	// GetSessionsByUserID fetches GET /sessions/users/{userID}.
	// Fails with "Error getting sessions for user with ID: {userID}".
	GetSessionsByUserID(ctx context.Context, userID string) ([]models.Session, error)

	// RefreshSession sends PATCH /sessions/{sessionID} with the refresh token
	// and returns the rotated session.
	// Fails with "Error refreshing session with ID: {sessionID}: {cause}".
	RefreshSession(ctx context.Context, sessionID, refreshToken string) (models.Session, error)

	// RevokeSessionByID sends DELETE /sessions/{sessionID} and returns the
	// backend's confirmation text.
	// Fails with "Error revoking session with ID: {sessionID}".
	RevokeSessionByID(ctx context.Context, sessionID string) (string, error)

	// RevokeSessionsByUserID sends DELETE /users/{userID}/sessions and
	// returns the backend's confirmation text.
	// Fails with "Error revoking sessions for user with ID: {userID}".
	RevokeSessionsByUserID(ctx context.Context, userID string) (string, error)
}

// URLService builds login and register URLs that carry a redirect URL as
// prefix/host/port/resources query parameters.
type URLService interface {
	// GenerateURL parses redirectURL and appends its parts to baseURL.
	GenerateURL(baseURL, redirectURL string) (string, error)

	// GenerateLoginURL is GenerateURL against the configured login URL.
	GenerateLoginURL(redirectURL string) (string, error)

	// GenerateRegisterURL is GenerateURL against the configured register URL.
	GenerateRegisterURL(redirectURL string) (string, error)
}
