package stub

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/crypto"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/store"
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
	"github.com/MKhiriev/go-auth-session-client/internal/validators"
	"github.com/MKhiriev/go-auth-session-client/models"
)

// TokenIssuer is the "iss" claim of every access token the stub signs.
const TokenIssuer = "auth-session-stub"

// Backend is the domain logic behind the stub's HTTP handlers.
type Backend struct {
	users     store.UserRepository
	sessions  store.SessionRepository
	hasher    crypto.PasswordHasher
	validator validators.Validator

	signKey       string
	tokenDuration time.Duration
	now           func() time.Time

	logger *logger.Logger
}

// NewBackend wires a [Backend] over storages. Tokens are signed with
// cfg.TokenSignKey and live for cfg.TokenDuration.
func NewBackend(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StubConfig, logger *logger.Logger) *Backend {
	return &Backend{
		users:         storages.UserRepository,
		sessions:      storages.SessionRepository,
		hasher:        hasher,
		validator:     validators.NewAuthRequestValidator(),
		signKey:       cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Register creates an account. Email and password are required; the email is
// stored lower-cased.
func (b *Backend) Register(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := b.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := b.hasher.Hash(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	return b.users.CreateUser(ctx, user)
}

// Login checks the credentials of req and opens a new session for device
// req.Device.
func (b *Backend) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := b.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := b.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return models.Session{}, err
	}

	ok, err := b.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return models.Session{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return models.Session{}, ErrWrongPassword
	}

	accessToken, refreshToken, err := b.issueTokens(user.ID)
	if err != nil {
		return models.Session{}, err
	}

	return b.sessions.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Device:       req.Device,
	})
}

// GetSession returns the session sessionID.
func (b *Backend) GetSession(ctx context.Context, sessionID int64) (models.Session, error) {
	return b.sessions.GetSession(ctx, sessionID)
}

// GetSessionsByUserID returns every session of userID.
func (b *Backend) GetSessionsByUserID(ctx context.Context, userID int64) ([]models.Session, error) {
	return b.sessions.GetSessionsByUserID(ctx, userID)
}

// Refresh rotates both tokens of sessionID when refreshToken is the current
// one.
func (b *Backend) Refresh(ctx context.Context, sessionID int64, refreshToken string) (models.Session, error) {
	// a missing token can never match the stored one
	if err := b.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", store.ErrRefreshTokenMismatch, err)
	}

	session, err := b.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, err
	}

	accessToken, newRefreshToken, err := b.issueTokens(session.UserID)
	if err != nil {
		return models.Session{}, err
	}

	return b.sessions.RotateTokens(ctx, sessionID, refreshToken, accessToken, newRefreshToken)
}

// RevokeSession deletes the session sessionID.
func (b *Backend) RevokeSession(ctx context.Context, sessionID int64) error {
	return b.sessions.DeleteSession(ctx, sessionID)
}

// RevokeUserSessions deletes every session of userID.
func (b *Backend) RevokeUserSessions(ctx context.Context, userID int64) error {
	deleted, err := b.sessions.DeleteSessionsByUserID(ctx, userID)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("deleted", deleted).Msg("user sessions revoked")
	return nil
}

// DeleteUser deletes userID together with its sessions.
func (b *Backend) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := b.sessions.DeleteSessionsByUserID(ctx, userID); err != nil {
		return err
	}

	return b.users.DeleteUser(ctx, userID)
}

// RedirectTarget rebuilds the redirect URL carried by the prefix, host,
// port and resources query parameters of a login request.
func RedirectTarget(query url.Values) (string, error) {
	parts, err := utils.URLPartsFromQuery(query)
	if err != nil {
		return "", errors.Join(ErrMissingRedirect, err)
	}

	redirect, err := utils.BuildRedirectURL(parts)
	if err != nil {
		return "", errors.Join(ErrMissingRedirect, err)
	}

	return redirect, nil
}

// WithSessionParams appends the sessionId and userId of session to redirect.
func WithSessionParams(redirect string, session models.Session) string {
	params := url.Values{}
	params.Set("sessionId", strconv.FormatInt(session.ID, 10))
	params.Set("userId", strconv.FormatInt(session.UserID, 10))

	return redirect + "?" + params.Encode()
}

func (b *Backend) issueTokens(userID int64) (string, string, error) {
	accessToken, err := utils.GenerateJWTToken(TokenIssuer, userID, b.tokenDuration, b.signKey, uuid.NewString(), b.now())
	if err != nil {
		return "", "", err
	}

	return accessToken, uuid.NewString(), nil
}
