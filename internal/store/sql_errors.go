package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the coarse category of a driver error, independent of the
// database dialect that produced it.
type ErrorClass int

const (
	// ClassOther covers every error that needs no special mapping.
	ClassOther ErrorClass = iota

	// ClassUniqueViolation is a UNIQUE or PRIMARY KEY constraint violation.
	ClassUniqueViolation

	// ClassForeignKeyViolation is a violated REFERENCES constraint.
	ClassForeignKeyViolation

	// ClassRetryable is a transient failure (lost connection, serialization
	// failure, deadlock, busy database).
	ClassRetryable
)

// ClassifyError maps PostgreSQL (pgconn) and SQLite (go-sqlite3) errors
// to an [ErrorClass].
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ClassOther
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLiteError(liteErr)
	}

	return ClassOther
}

// classifyPgError maps a PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKeyViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ClassRetryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return ClassRetryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow:
		return ClassRetryable
	}

	return ClassOther
}

func classifySQLiteError(liteErr sqlite3.Error) ErrorClass {
	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ClassUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ClassForeignKeyViolation
	}

	switch liteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ClassRetryable
	}

	return ClassOther
}
