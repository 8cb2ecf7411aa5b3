package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-auth-session-client/internal/adapter"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/models"
)

type sessionService struct {
	transport adapter.Transport
	baseURL   string

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] issuing its calls through
// transport against baseURL (no trailing slash).
func NewSessionService(transport adapter.Transport, baseURL string, logger *logger.Logger) SessionService {
	return &sessionService{transport: transport, baseURL: baseURL, logger: logger}
}

func (s *sessionService) GetSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	resp, err := s.transport.FetchData(ctx, s.sessionURL(sessionID))
	if err == nil {
		var session models.Session
		if session, err = adapter.DecodeJSON[models.Session](resp); err == nil {
			return session, nil
		}
	}

	return models.Session{}, s.fail(ErrGetSession, fmt.Sprintf("Error getting session with ID: %s", sessionID), err)
}

func (s *sessionService) GetSessionsByUserID(ctx context.Context, userID string) ([]models.Session, error) {
	resp, err := s.transport.FetchData(ctx, s.userSessionsURL(userID))
	if err == nil {
		var sessions []models.Session
		if sessions, err = adapter.DecodeJSON[[]models.Session](resp); err == nil {
			return sessions, nil
		}
	}

	return nil, s.fail(ErrGetUserSessions, fmt.Sprintf("Error getting sessions for user with ID: %s", userID), err)
}

func (s *sessionService) RefreshSession(ctx context.Context, sessionID, refreshToken string) (models.Session, error) {
	resp, err := s.transport.PatchData(ctx, s.sessionURL(sessionID), models.RefreshRequest{RefreshToken: refreshToken})
	if err == nil {
		var session models.Session
		if session, err = adapter.DecodeJSON[models.Session](resp); err == nil {
			return session, nil
		}
	}

	// the only operation that keeps the cause in its message
	return models.Session{}, s.fail(ErrRefreshSession, fmt.Sprintf("Error refreshing session with ID: %s: %v", sessionID, err), err)
}

func (s *sessionService) RevokeSessionByID(ctx context.Context, sessionID string) (string, error) {
	resp, err := s.transport.DeleteData(ctx, s.sessionURL(sessionID))
	if err != nil {
		return "", s.fail(ErrRevokeSession, fmt.Sprintf("Error revoking session with ID: %s", sessionID), err)
	}

	return adapter.DecodeText(resp), nil
}

func (s *sessionService) RevokeSessionsByUserID(ctx context.Context, userID string) (string, error) {
	resp, err := s.transport.DeleteData(ctx, s.baseURL+"/users/"+url.PathEscape(userID)+"/sessions")
	if err != nil {
		return "", s.fail(ErrRevokeUserSessions, fmt.Sprintf("Error revoking sessions for user with ID: %s", userID), err)
	}

	return adapter.DecodeText(resp), nil
}

func (s *sessionService) sessionURL(sessionID string) string {
	return s.baseURL + "/sessions/" + url.PathEscape(sessionID)
}

func (s *sessionService) userSessionsURL(userID string) string {
	return s.baseURL + "/sessions/users/" + url.PathEscape(userID)
}

func (s *sessionService) fail(op error, msg string, cause error) error {
	s.logger.Error().Err(cause).Msg(msg)
	return &SessionError{Op: op, Msg: msg, Err: cause}
}
