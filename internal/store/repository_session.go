package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/models"
)

var sessionColumns = []string{"id", "user_id", "access_token", "refresh_token", "device"}

// sessionRepository is the SQL implementation of [SessionRepository] over
// the "sessions" table.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	query, args, err := r.db.builder.
		Insert("sessions").
		Columns("user_id", "access_token", "refresh_token", "device").
		Values(session.UserID, session.AccessToken, session.RefreshToken, session.Device).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID int64) (models.Session, error) {
	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where("id = ?", sessionID).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*sessionRepository.GetSession", query, args)
}

func (r *sessionRepository) GetSessionsByUserID(ctx context.Context, userID int64) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where("user_id = ?", userID).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSessionsByUserID").Msg("error querying sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var s models.Session
		if err = rows.Scan(&s.ID, &s.UserID, &s.AccessToken, &s.RefreshToken, &s.Device); err != nil {
			log.Err(err).Str("func", "*sessionRepository.GetSessionsByUserID").Msg("error scanning session")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (r *sessionRepository) RotateTokens(ctx context.Context, sessionID int64, refreshToken, newAccessToken, newRefreshToken string) (models.Session, error) {
	query, args, err := r.db.builder.
		Update("sessions").
		Set("access_token", newAccessToken).
		Set("refresh_token", newRefreshToken).
		Where("id = ? AND refresh_token = ?", sessionID, refreshToken).
		Suffix("RETURNING " + joinColumns(sessionColumns)).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := r.scanOne(ctx, "*sessionRepository.RotateTokens", query, args)
	if !errors.Is(err, ErrSessionNotFound) {
		return session, err
	}

	// nothing updated: tell a missing session from a stale token
	if _, err = r.GetSession(ctx, sessionID); err != nil {
		return models.Session{}, err
	}

	return models.Session{}, ErrRefreshTokenMismatch
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID int64) error {
	query, args, err := r.db.builder.
		Delete("sessions").
		Where("id = ?", sessionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) DeleteSessionsByUserID(ctx context.Context, userID int64) (int64, error) {
	query, args, err := r.db.builder.
		Delete("sessions").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.exec(ctx, query, args...)
}

func (r *sessionRepository) scanOne(ctx context.Context, fn, query string, args []any) (models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.UserID, &s.AccessToken, &s.RefreshToken, &s.Device)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}
