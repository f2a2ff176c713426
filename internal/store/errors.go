package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key, or when
	// a referenced user no longer exists.
	ErrUserNotFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileAlreadyExists is returned when a second profile is inserted
	// for the same user.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrPostNotFound is returned when a post lookup, delete or like targets
	// a post that does not exist (or, for delete, is not owned by the caller).
	ErrPostNotFound = errors.New("post was not found")

	// ErrPostAlreadyLiked is returned when the (post, user) like pair already
	// exists.
	ErrPostAlreadyLiked = errors.New("post already liked")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a value cannot be encoded into or
	// decoded from its column representation.
	ErrEncodingColumn = errors.New("failed to encode column value")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
