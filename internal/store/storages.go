// Package store holds the persistence of the backend stub: an in-memory
// implementation used by default and in tests, and a SQL implementation on
// PostgreSQL (pgx) or SQLite selected by the configured DSN.
package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
)

// Storages aggregates the repositories of the backend stub.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages builds the repositories selected by cfg.DatabaseDSN: none
// keeps everything in memory, a postgres:// or postgresql:// DSN connects
// through pgx, anything else is opened as a SQLite file. SQL stores are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.StubConfig, log *logger.Logger) (*Storages, error) {
	if cfg.DatabaseDSN == "" {
		return NewMemoryStorages(), nil
	}

	var db *DB
	var err error
	if isPostgresDSN(cfg.DatabaseDSN) {
		db, err = NewConnectPostgres(ctx, cfg.DatabaseDSN, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DatabaseDSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewMemoryStorages returns repositories sharing one in-memory store.
func NewMemoryStorages() *Storages {
	m := newMemoryStore()
	return &Storages{UserRepository: m, SessionRepository: m}
}

// NewSQLStorages returns repositories over an already migrated db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
