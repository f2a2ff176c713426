// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// token header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthToken is returned by the auth middleware when the incoming
	// request carries no token header, or only whitespace in it.
	ErrEmptyAuthToken = errors.New("empty `x-auth-token` header")

	// ErrNoUserInContext is returned when a protected handler runs without
	// an identity stored by the auth middleware.
	ErrNoUserInContext = errors.New("no user id in request context")
)

// Response messages shared by handlers and middleware.
const (
	msgInvalidJSON    = "Invalid JSON was passed"
	msgServerError    = "Server Error"
	msgNoToken        = "No token, authorization denied"
	msgInvalidToken   = "Token is not valid"
	msgUserRegistered = "User registered successfully"
	msgPostRemoved    = "Post removed"
)
