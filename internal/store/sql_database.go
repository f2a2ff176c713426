package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/migrations"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is an open connection pool together with the dialect-specific
// statement builder used by every repository.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	// likeSeq is the column that grows with every inserted like.
	likeSeq string
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	likeSeq := "rowid"
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
		likeSeq = "like_seq"
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		likeSeq: likeSeq,
		logger:  log,
	}
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn again while it fails with a [ClassRetryable] error.
// Only idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil || ClassifyError(err) != ClassRetryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt).
			Str("func", "*DB.withRetry").
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
