package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrProfileNotFound = errors.New("no profile found")

	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostOwner     = errors.New("user does not own the post")
	ErrPostAlreadyLiked = errors.New("post already liked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
