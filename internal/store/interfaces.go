package store

import (
	"context"

	"github.com/MKhiriev/go-auth-session-client/models"
)

// UserRepository persists the accounts of the backend stub.
type UserRepository interface {
	// CreateUser stores user and returns it with its assigned ID. A taken
	// email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail yields [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// DeleteUser yields [ErrNoUserWasFound] when no account matches.
	DeleteUser(ctx context.Context, userID int64) error
}

// SessionRepository persists the sessions issued by the backend stub.
type SessionRepository interface {
	// CreateSession stores session and returns it with its assigned ID.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// GetSession yields [ErrSessionNotFound] when no session matches.
	GetSession(ctx context.Context, sessionID int64) (models.Session, error)

	// GetSessionsByUserID returns every session of userID, oldest first. The
	// result is empty, not nil, when there are none.
	GetSessionsByUserID(ctx context.Context, userID int64) ([]models.Session, error)

	// RotateTokens replaces the token pair of a session whose current refresh
	// token equals refreshToken. A different refresh token yields
	// [ErrRefreshTokenMismatch].
	RotateTokens(ctx context.Context, sessionID int64, refreshToken, newAccessToken, newRefreshToken string) (models.Session, error)

	// DeleteSession yields [ErrSessionNotFound] when no session matches.
	DeleteSession(ctx context.Context, sessionID int64) error

	// DeleteSessionsByUserID removes every session of userID and reports how
	// many there were.
	DeleteSessionsByUserID(ctx context.Context, userID int64) (int64, error)
}
