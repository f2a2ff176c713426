// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUserClaim is returned by [Claims.Validate] when the token payload
// does not carry a user identifier.
var ErrEmptyUserClaim = errors.New("token has no user id claim")

// ClaimsUser is the identity part of the session token payload.
type ClaimsUser struct {
	ID string `json:"id"`
}

// Claims is the payload of a session token:
//
//	{"user": {"id": "<user id>"}, "exp": ..., "iat": ..., "iss": ...}
type Claims struct {
	User ClaimsUser `json:"user"`
	jwt.RegisteredClaims
}

// Validate implements [jwt.ClaimsValidator]. It runs after the standard
// exp/iat/iss checks performed by the parser.
func (c Claims) Validate() error {
	if c.User.ID == "" {
		return ErrEmptyUserClaim
	}
	return nil
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is a copy of Claims.User.ID.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
