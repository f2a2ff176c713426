package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
)

// Storages groups every repository over one shared connection pool.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	PostRepository    PostRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection chosen by the DSN scheme (PostgreSQL or SQLite).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories over an already opened and
// migrated connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProfileRepository: NewProfileRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		db:                db,
	}
}

// NewConnect opens the database selected by the DSN scheme:
// "postgres://" or "postgresql://" for PostgreSQL, "sqlite://" or "file:"
// for SQLite.
func NewConnect(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		db, err := NewConnectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	case isSQLiteDSN(cfg.DSN):
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Close releases the shared connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
