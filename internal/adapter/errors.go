package adapter

import "errors"

// Sentinel errors mapped from non-2xx server responses. The server's
// {"msg": ...} text is appended, so errors.Is matches the class while the
// message stays readable.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyServerURL = errors.New("empty server url")
)
